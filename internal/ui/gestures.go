package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/pulltorefresh/internal/config"
	"github.com/ytget/pulltorefresh/internal/gesture"
	"github.com/ytget/pulltorefresh/internal/scroll"
)

// RefreshableScroll is a vertical scroll container that feeds its pointer
// events to a gesture.Machine. Scrolling itself is left to container.Scroll.
type RefreshableScroll struct {
	container.Scroll

	settings   *config.Settings
	machine    *gesture.Machine
	oracle     *scroll.OffsetOracle
	scale      float32
	canRefresh bool
}

// NewRefreshableScroll creates a refreshable scroll pane around content.
// settings may be nil, in which case defaults are used.
func NewRefreshableScroll(content fyne.CanvasObject, settings *config.Settings) *RefreshableScroll {
	s := &RefreshableScroll{
		settings:   settings,
		scale:      1,
		canRefresh: true,
	}
	s.Direction = container.ScrollVerticalOnly
	s.Content = content
	s.ExtendBaseWidget(s)

	s.oracle = scroll.NewOffsetOracle(s.offsetPx)
	s.machine = gesture.New(s.oracle, s.gestureConfig(0),
		gesture.WithLogger(slog.Default().With(slog.String("host", "scroll"))))

	return s
}

// Resize resizes the pane and rebinds the gesture machine to the new height
func (s *RefreshableScroll) Resize(size fyne.Size) {
	s.Scroll.Resize(size)
	s.rebind(size.Height)
}

func (s *RefreshableScroll) rebind(height float32) {
	s.scale = canvasScale(nil, s)
	s.machine.Bind(s.gestureConfig(height))

	if s.settings != nil {
		s.settings.ApplyScrollSlacks(s.oracle, s.scale)
		return
	}
	s.oracle.TopSlack = scroll.DefaultTopSlack * s.scale
	s.oracle.StartSlack = scroll.DefaultStartSlack * s.scale
}

func (s *RefreshableScroll) gestureConfig(height float32) gesture.Config {
	heightPx := int(ToPixels(height, s.scale))
	if s.settings != nil {
		return s.settings.GestureConfig(heightPx, s.scale)
	}
	return gesture.Config{
		TouchSlopPx:       gesture.TouchSlopPx(gesture.DefaultTouchSlopDp, s.scale),
		ContainerHeightPx: heightPx,
		DensityScale:      s.scale,
	}
}

func (s *RefreshableScroll) offsetPx() float32 {
	return ToPixels(s.Offset.Y, s.scale)
}

// Machine returns the gesture machine bound to this pane
func (s *RefreshableScroll) Machine() *gesture.Machine {
	return s.machine
}

// SetListener attaches the lifecycle listener
func (s *RefreshableScroll) SetListener(l gesture.Listener) {
	s.machine.SetListener(l)
}

// SetCanRefresh enables or disables forwarding of pointer events
func (s *RefreshableScroll) SetCanRefresh(canRefresh bool) {
	s.canRefresh = canRefresh
}

// CanRefresh returns whether pointer events are forwarded
func (s *RefreshableScroll) CanRefresh() bool {
	return s.canRefresh
}

// StartRefresh starts a refresh without a pull
func (s *RefreshableScroll) StartRefresh() {
	s.machine.StartRefresh()
}

// IndeterminateRefresh starts a refresh showing only the indeterminate progress
func (s *RefreshableScroll) IndeterminateRefresh() {
	s.machine.Refresh()
}

// OnRefreshComplete must be called when the refresh work finishes
func (s *RefreshableScroll) OnRefreshComplete() {
	s.machine.OnRefreshComplete()
}

// ScrollOffsetPx returns the vertical scroll offset in device pixels
func (s *RefreshableScroll) ScrollOffsetPx() float32 {
	return s.offsetPx()
}
