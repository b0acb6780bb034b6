package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides device queries used when binding gesture hosts
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// CanvasScale returns the pixel scale of the canvas showing obj, or 1 when
// obj is not on a canvas yet
func (m *MobileUI) CanvasScale(obj fyne.CanvasObject) float32 {
	return canvasScale(m.app, obj)
}

func canvasScale(app fyne.App, obj fyne.CanvasObject) float32 {
	if app == nil {
		app = fyne.CurrentApp()
	}
	if app == nil || app.Driver() == nil {
		return 1
	}
	c := app.Driver().CanvasForObject(obj)
	if c == nil || c.Scale() <= 0 {
		return 1
	}
	return c.Scale()
}

// ToPixels converts a length in canvas units to device pixels
func ToPixels(v, scale float32) float32 {
	return v * scale
}
