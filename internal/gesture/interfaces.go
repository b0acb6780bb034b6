package gesture

// Listener receives refresh lifecycle notifications. Calls are made
// synchronously from HandleEvent, Refresh and OnRefreshComplete; an
// implementation may schedule its own delayed visual work.
type Listener interface {
	// OnBeginRefresh is called once when a touch moves past the slop and a pull starts
	OnBeginRefresh()

	// OnRefreshScrolledPercentage reports the raw pull ratio. It is not clamped.
	OnRefreshScrolledPercentage(ratio float32)

	// OnRefresh is called when the pull crosses the threshold or a refresh is started programmatically
	OnRefresh()

	// OnReset is called when a pull ends without refreshing or a refresh completes
	OnReset()
}

// Oracle is implemented by the scrollable host and queried, never mutated, by the Machine.
type Oracle interface {
	// IsScrolledToTop reports whether content cannot scroll further toward the top
	IsScrolledToTop() bool

	// CanStartRefreshing reports whether a move may lazily start a pull
	CanStartRefreshing() bool
}

// TouchResetter is optionally implemented by an Oracle that keeps touch-dependent state.
type TouchResetter interface {
	OnResetTouch()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	BeginRefresh func()
	Progress     func(ratio float32)
	Refresh      func()
	Reset        func()
}

func (f ListenerFuncs) OnBeginRefresh() {
	if f.BeginRefresh != nil {
		f.BeginRefresh()
	}
}

func (f ListenerFuncs) OnRefreshScrolledPercentage(ratio float32) {
	if f.Progress != nil {
		f.Progress(ratio)
	}
}

func (f ListenerFuncs) OnRefresh() {
	if f.Refresh != nil {
		f.Refresh()
	}
}

func (f ListenerFuncs) OnReset() {
	if f.Reset != nil {
		f.Reset()
	}
}
