package gesture

// Package gesture implements the pull-to-refresh touch state machine. A Machine
// observes pointer events forwarded by a scrollable host, consults the host's
// Oracle to decide whether a pull is legal, and reports lifecycle transitions
// to a Listener. It never consumes events and never renders anything.
