package config

// Package config stores gesture and refresh indicator settings in the Fyne
// preferences of the running app and converts them to bind-time gesture
// configuration.
