package gesture

import (
	"log/slog"
)

// Machine interprets pointer events from one scrollable host as a pull-to-refresh
// lifecycle. It is not safe for concurrent use; call it from the goroutine that
// owns the host.
type Machine struct {
	oracle   Oracle
	listener Listener
	logger   *slog.Logger

	touchSlop     float32
	pullThreshold float32

	initialY float32
	lastY    float32

	tracking   bool
	dragging   bool
	refreshing bool
}

// Option configures a Machine
type Option func(*Machine)

// WithListener attaches a lifecycle listener at construction
func WithListener(l Listener) Option {
	return func(m *Machine) { m.listener = l }
}

// WithLogger sets the logger used for debug traces
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a machine bound to oracle with the given configuration
func New(oracle Oracle, cfg Config, opts ...Option) *Machine {
	m := &Machine{
		oracle: oracle,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Bind(cfg)
	return m
}

// Bind recomputes slop and threshold, e.g. after the host was resized
func (m *Machine) Bind(cfg Config) {
	m.touchSlop = float32(cfg.TouchSlopPx)
	m.pullThreshold = PullThreshold(cfg)
}

// SetListener replaces the lifecycle listener; nil detaches it
func (m *Machine) SetListener(l Listener) {
	m.listener = l
}

// SetOracle replaces the scroll position oracle
func (m *Machine) SetOracle(o Oracle) {
	m.oracle = o
}

// Phase returns the current lifecycle phase
func (m *Machine) Phase() Phase {
	switch {
	case m.refreshing:
		return PhaseRefreshing
	case m.dragging:
		return PhaseDragging
	case m.tracking:
		return PhaseAwaitingThreshold
	}
	return PhaseIdle
}

// IsRefreshing returns true between a refresh start and OnRefreshComplete
func (m *Machine) IsRefreshing() bool {
	return m.refreshing
}

// PullThreshold returns the current pull distance in pixels
func (m *Machine) PullThreshold() float32 {
	return m.pullThreshold
}

// TouchSlop returns the current touch slop in pixels
func (m *Machine) TouchSlop() float32 {
	return m.touchSlop
}

// HandleEvent feeds one pointer event to the machine. It always returns false:
// the machine observes events and leaves scrolling to the host.
func (m *Machine) HandleEvent(ev Event) bool {
	switch ev.Type {
	case EventDown:
		m.handleDown(ev)
	case EventMove:
		m.handleMove(ev)
	case EventUp, EventCancel:
		m.resetTouch()
	}
	return false
}

func (m *Machine) handleDown(ev Event) {
	if ev.EdgeFlags != 0 {
		m.logger.Debug("down rejected", slog.Int("edge_flags", ev.EdgeFlags))
		return
	}

	if m.canRefresh(true) && m.scrolledToTop() {
		m.startTracking(ev.Y)
		return
	}
	m.tracking = false
}

func (m *Machine) handleMove(ev Event) {
	if m.refreshing {
		// Content scrolled away under a running refresh.
		if !m.scrolledToTop() {
			m.resetTouch()
		}
		return
	}

	y := ev.Y

	// Some hosts swallow the down event, so a move may start the gesture.
	if !m.tracking {
		if !m.canRefresh(true) || !m.canStartRefreshing() {
			return
		}
		m.startTracking(y)
	}

	if !m.dragging && y-m.initialY > m.touchSlop {
		m.dragging = true
		m.onPullStarted()
	}

	if m.dragging {
		dy := y - m.lastY
		// A small upward wobble is tolerated.
		if dy >= -m.touchSlop {
			if dy > 0 {
				m.lastY = y
			}
			m.onPull()
		} else {
			m.resetTouch()
		}
		return
	}

	if !m.scrolledToTop() {
		m.OnRefreshComplete()
	}
}

func (m *Machine) startTracking(y float32) {
	m.tracking = true
	m.initialY = y
	m.lastY = y
}

func (m *Machine) canRefresh(fromTouch bool) bool {
	return !m.refreshing && (!fromTouch || m.listener != nil)
}

func (m *Machine) onPullStarted() {
	m.logger.Debug("pull started", slog.Float64("y", float64(m.initialY)))
	if m.listener != nil {
		m.listener.OnBeginRefresh()
	}
}

func (m *Machine) onPull() {
	scrollLength := m.lastY - m.initialY
	if scrollLength < m.pullThreshold {
		ratio := scrollLength / m.pullThreshold
		if m.listener != nil {
			m.listener.OnRefreshScrolledPercentage(ratio)
		}
		return
	}
	m.Refresh()
}

// Refresh starts a refresh. It is a no-op while one is running; without a
// listener the refresh cannot proceed and the machine resets instead.
func (m *Machine) Refresh() {
	if m.refreshing {
		return
	}
	if m.listener == nil {
		m.OnRefreshComplete()
		return
	}

	m.refreshing = true
	m.logger.Debug("refresh started", slog.String("phase", m.Phase().String()))
	m.listener.OnRefresh()
}

// StartRefresh starts a refresh programmatically, without a pull
func (m *Machine) StartRefresh() {
	m.Refresh()
}

// OnRefreshComplete ends the current refresh and resets touch tracking.
// Calling it while not refreshing still notifies OnReset.
func (m *Machine) OnRefreshComplete() {
	if m.listener != nil {
		m.listener.OnReset()
	}

	m.refreshing = false
	m.dragging = false
	m.resetTouch()
}

// resetTouch ends any drag and clears tracking. It leaves a running refresh alone.
func (m *Machine) resetTouch() {
	if m.dragging {
		m.dragging = false
		if !m.refreshing {
			m.logger.Debug("pull ended without refresh")
			// OnRefreshComplete comes back here with dragging cleared.
			m.OnRefreshComplete()
			return
		}
	}

	m.tracking = false
	m.initialY = 0
	m.lastY = 0

	if r, ok := m.oracle.(TouchResetter); ok {
		r.OnResetTouch()
	}
}

func (m *Machine) scrolledToTop() bool {
	return m.oracle != nil && m.oracle.IsScrolledToTop()
}

func (m *Machine) canStartRefreshing() bool {
	return m.oracle != nil && m.oracle.CanStartRefreshing()
}
