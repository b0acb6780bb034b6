package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	DemoItemFormat = "Item %d"
)

// Layout sizing
const (
	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	RowMinHeight = MinTouchTargetSize
)

// Demo content
const (
	DemoInitialItems   = 40
	DemoRefreshItems   = 3
	DemoRefreshLatency = 1500 * time.Millisecond
)
