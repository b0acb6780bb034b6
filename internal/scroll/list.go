package scroll

// ListView is the capability a list host exposes to ListOracle
type ListView interface {
	// Len returns the number of items in the list
	Len() int

	// FirstVisible returns the index of the first visible item
	FirstVisible() int

	// FirstChildTop returns the top edge of the first visible item relative to
	// the list viewport, and false if no item is laid out yet
	FirstChildTop() (float32, bool)
}

// ListOracle reports a list as scrolled to the top when it is empty or its
// first item is fully visible.
type ListOracle struct {
	View ListView

	// StartPredicate overrides CanStartRefreshing when set
	StartPredicate func() bool

	// OnReset is called when the gesture machine resets touch tracking
	OnReset func()
}

// NewListOracle creates an oracle for view
func NewListOracle(view ListView) *ListOracle {
	return &ListOracle{View: view}
}

// IsScrolledToTop implements gesture.Oracle
func (o *ListOracle) IsScrolledToTop() bool {
	if o.View.Len() == 0 {
		return true
	}
	if o.View.FirstVisible() != 0 {
		return false
	}
	top, ok := o.View.FirstChildTop()
	return ok && top >= 0
}

// CanStartRefreshing implements gesture.Oracle
func (o *ListOracle) CanStartRefreshing() bool {
	if o.StartPredicate != nil {
		return o.StartPredicate()
	}
	return o.IsScrolledToTop()
}

// OnResetTouch implements gesture.TouchResetter
func (o *ListOracle) OnResetTouch() {
	if o.OnReset != nil {
		o.OnReset()
	}
}
