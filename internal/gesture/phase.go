package gesture

// Phase represents the refresh lifecycle phase of a Machine
type Phase string

const (
	// PhaseIdle means no gesture is being tracked
	PhaseIdle Phase = "Idle"

	// PhaseAwaitingThreshold means a touch was accepted but has not moved past the slop
	PhaseAwaitingThreshold Phase = "AwaitingThreshold"

	// PhaseDragging means the user is actively pulling
	PhaseDragging Phase = "Dragging"

	// PhaseRefreshing means a refresh was started and not yet completed
	PhaseRefreshing Phase = "Refreshing"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsTracking returns true while pointer coordinates are meaningful
func (p Phase) IsTracking() bool {
	return p == PhaseAwaitingThreshold || p == PhaseDragging
}

// EventType is the kind of pointer event forwarded by a host
type EventType int

const (
	EventDown EventType = iota
	EventMove
	EventUp
	EventCancel
)

// String returns a lowercase name for the event type
func (t EventType) String() string {
	switch t {
	case EventDown:
		return "down"
	case EventMove:
		return "move"
	case EventUp:
		return "up"
	case EventCancel:
		return "cancel"
	}
	return "unknown"
}

// Event is a single pointer event in device pixels
type Event struct {
	Type EventType
	Y    float32
	// EdgeFlags is non-zero when the touch started on a system edge (back gesture etc.)
	EdgeFlags int
}

// Down builds a down event at y
func Down(y float32) Event { return Event{Type: EventDown, Y: y} }

// Move builds a move event at y
func Move(y float32) Event { return Event{Type: EventMove, Y: y} }

// Up builds an up event at y
func Up(y float32) Event { return Event{Type: EventUp, Y: y} }

// Cancel builds a cancel event
func Cancel() Event { return Event{Type: EventCancel} }
