package viewtree

// Package viewtree holds pure lookups over an abstract view hierarchy. Hosts
// adapt their widget tree to Node so that refresh indicators can be located in,
// or pruned from, a window without the gesture code knowing any widget types.
