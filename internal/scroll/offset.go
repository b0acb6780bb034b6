package scroll

// Default slacks for scroll panes, in pixels
const (
	DefaultTopSlack   float32 = 100
	DefaultStartSlack float32 = 0
)

// OffsetOracle reports a scroll pane's position from its vertical offset.
// A pane counts as scrolled to the top within TopSlack, but a gesture may
// only start lazily within StartSlack.
type OffsetOracle struct {
	Offset     func() float32
	TopSlack   float32
	StartSlack float32

	// OnReset is called when the gesture machine resets touch tracking
	OnReset func()
}

// NewOffsetOracle creates an oracle with the default slacks
func NewOffsetOracle(offset func() float32) *OffsetOracle {
	return &OffsetOracle{
		Offset:     offset,
		TopSlack:   DefaultTopSlack,
		StartSlack: DefaultStartSlack,
	}
}

// IsScrolledToTop implements gesture.Oracle
func (o *OffsetOracle) IsScrolledToTop() bool {
	return o.Offset() <= o.TopSlack
}

// CanStartRefreshing implements gesture.Oracle
func (o *OffsetOracle) CanStartRefreshing() bool {
	return o.Offset() <= o.StartSlack
}

// OnResetTouch implements gesture.TouchResetter
func (o *OffsetOracle) OnResetTouch() {
	if o.OnReset != nil {
		o.OnReset()
	}
}

// Funcs builds an oracle from plain functions
type Funcs struct {
	Top      func() bool
	CanStart func() bool
}

// IsScrolledToTop implements gesture.Oracle
func (f Funcs) IsScrolledToTop() bool {
	return f.Top != nil && f.Top()
}

// CanStartRefreshing implements gesture.Oracle; without CanStart it falls back to Top
func (f Funcs) CanStartRefreshing() bool {
	if f.CanStart == nil {
		return f.IsScrolledToTop()
	}
	return f.CanStart()
}
