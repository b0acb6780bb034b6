package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"

	"github.com/ytget/pulltorefresh/internal/gesture"
)

// TouchableWidget represents a widget that can handle touch events
type TouchableWidget interface {
	fyne.CanvasObject
	mobile.Touchable
}

var (
	_ TouchableWidget   = (*RefreshableScroll)(nil)
	_ desktop.Mouseable = (*RefreshableScroll)(nil)
	_ fyne.Draggable    = (*RefreshableScroll)(nil)
)

// forward hands one event to the machine when refreshing is enabled
func (s *RefreshableScroll) forward(typ gesture.EventType, pos fyne.Position) {
	if !s.canRefresh {
		return
	}
	s.machine.HandleEvent(gesture.Event{Type: typ, Y: ToPixels(pos.Y, s.scale)})
}

// TouchDown handles touch down events
func (s *RefreshableScroll) TouchDown(event *mobile.TouchEvent) {
	s.forward(gesture.EventDown, event.Position)
}

// TouchUp handles touch up events
func (s *RefreshableScroll) TouchUp(event *mobile.TouchEvent) {
	s.forward(gesture.EventUp, event.Position)
}

// TouchCancel handles touch cancel events
func (s *RefreshableScroll) TouchCancel(event *mobile.TouchEvent) {
	s.forward(gesture.EventCancel, event.Position)
}

// MouseDown starts a gesture with the primary button on desktop
func (s *RefreshableScroll) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	s.forward(gesture.EventDown, event.Position)
}

// MouseUp ends a gesture on desktop
func (s *RefreshableScroll) MouseUp(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	s.forward(gesture.EventUp, event.Position)
}

// Dragged reports the pointer position as a move, then lets the pane scroll
func (s *RefreshableScroll) Dragged(event *fyne.DragEvent) {
	s.forward(gesture.EventMove, event.Position)
	s.Scroll.Dragged(event)
}

// DragEnd ends the gesture, then lets the pane settle
func (s *RefreshableScroll) DragEnd() {
	s.forward(gesture.EventUp, fyne.Position{})
	s.Scroll.DragEnd()
}
