package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Sizes the demo list relies on; everything else comes from the default theme
const (
	ThemePadding      = 3
	ThemeInnerPadding = 6
	ThemeScrollBar    = 10
	ThemeText         = 13
)

// PullTheme is a dense theme for refreshable lists. The primary color tints
// the pull progress and the refresh spinner.
type PullTheme struct {
	fyne.Theme
}

// NewPullTheme creates a theme layered over the default one
func NewPullTheme() fyne.Theme {
	return &PullTheme{Theme: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *PullTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameSuccess:
		// "refreshed" status
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameInputBackground:
		// progress track
		if variant == theme.VariantDark {
			return color.RGBA{R: 48, G: 48, B: 48, A: 255}
		}
		return color.RGBA{R: 224, G: 224, B: 224, A: 255}
	}

	return t.Theme.Color(name, variant)
}

// Size returns theme sizes
func (t *PullTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return ThemePadding
	case theme.SizeNameInnerPadding:
		return ThemeInnerPadding
	case theme.SizeNameScrollBar:
		return ThemeScrollBar
	case theme.SizeNameText:
		return ThemeText
	case theme.SizeNameInputBorder:
		return 1
	}

	return t.Theme.Size(name)
}
