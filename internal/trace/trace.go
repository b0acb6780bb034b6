package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ytget/pulltorefresh/internal/gesture"
)

var (
	errTraceRead   = errors.New("failed to read trace")
	errTraceDecode = errors.New("failed to decode trace")
	ErrInvalidStep = errors.New("invalid trace step")
)

// Call names for steps that invoke the machine directly
const (
	CallStartRefresh    = "start_refresh"
	CallRefreshComplete = "refresh_complete"
)

// Trace is a recorded gesture session
type Trace struct {
	ID       string `yaml:"id"`
	Config   Config `yaml:"config"`
	Listener *bool  `yaml:"listener,omitempty"`
	Steps    []Step `yaml:"steps"`
}

// Config mirrors gesture.Config
type Config struct {
	TouchSlopPx       int     `yaml:"touch_slop_px"`
	ContainerHeightPx int     `yaml:"container_height_px"`
	DensityScale      float32 `yaml:"density_scale"`
	MaxPullDistanceDp float32 `yaml:"max_pull_distance_dp,omitempty"`
}

// Step is one event or call, with the oracle state in effect while it is handled.
// Top and CanStart carry over from the previous step when omitted.
type Step struct {
	Event     string  `yaml:"event,omitempty"`
	Y         float32 `yaml:"y,omitempty"`
	EdgeFlags int     `yaml:"edge_flags,omitempty"`
	Call      string  `yaml:"call,omitempty"`
	Top       *bool   `yaml:"top,omitempty"`
	CanStart  *bool   `yaml:"can_start,omitempty"`
}

// HasListener reports whether the replay attaches a listener; true unless disabled
func (t *Trace) HasListener() bool {
	return t.Listener == nil || *t.Listener
}

// GestureConfig converts the trace configuration
func (t *Trace) GestureConfig() gesture.Config {
	return gesture.Config{
		TouchSlopPx:       t.Config.TouchSlopPx,
		ContainerHeightPx: t.Config.ContainerHeightPx,
		DensityScale:      t.Config.DensityScale,
		MaxPullDistanceDp: t.Config.MaxPullDistanceDp,
	}
}

// Load decodes a trace and validates its steps. A trace without an id gets a random one.
func Load(r io.Reader) (*Trace, error) {
	var t Trace
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.Join(errTraceDecode, err)
	}

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	for i, step := range t.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	return &t, nil
}

// LoadFile reads a trace from path
func LoadFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(errTraceRead, err)
	}
	defer f.Close()

	return Load(f)
}

func (s Step) validate() error {
	switch {
	case s.Event != "" && s.Call != "":
		return fmt.Errorf("%w: both event %q and call %q set", ErrInvalidStep, s.Event, s.Call)
	case s.Event != "":
		if _, err := ParseEventType(s.Event); err != nil {
			return err
		}
	case s.Call != "":
		if s.Call != CallStartRefresh && s.Call != CallRefreshComplete {
			return fmt.Errorf("%w: unknown call %q", ErrInvalidStep, s.Call)
		}
	default:
		return fmt.Errorf("%w: neither event nor call set", ErrInvalidStep)
	}
	return nil
}

// ParseEventType parses the lowercase event name used in traces
func ParseEventType(name string) (gesture.EventType, error) {
	switch strings.ToLower(name) {
	case "down":
		return gesture.EventDown, nil
	case "move":
		return gesture.EventMove, nil
	case "up":
		return gesture.EventUp, nil
	case "cancel":
		return gesture.EventCancel, nil
	}
	return 0, fmt.Errorf("%w: unknown event %q", ErrInvalidStep, name)
}
