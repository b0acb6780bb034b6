package platform

// Package platform contains OS integration for the command line tools:
// where state and log files live on each platform.
