package ui

// Package ui contains the Fyne host for the pull-to-refresh gesture machine:
// a scroll container that forwards touch, mouse and drag events, a refresh
// indicator that renders lifecycle callbacks, and the demo window wiring them
// together. All UI strings are localized via Localization.
