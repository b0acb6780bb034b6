package scroll

// Package scroll provides gesture.Oracle implementations for the two kinds of
// hosts: item lists, which are at the top when the first item is fully shown,
// and free scroll panes, which compare a pixel offset against two slacks.
