package tui

// Package tui is a terminal host for the gesture machine. A bubbletea model
// shows a list in a viewport and turns left-button mouse drags into pointer
// events, so a pull from the first row refreshes the list.
