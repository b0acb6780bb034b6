package trace

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ytget/pulltorefresh/internal/gesture"
	"github.com/ytget/pulltorefresh/internal/scroll"
)

// Callback names recorded by Recorder
const (
	CallbackBeginRefresh = "begin_refresh"
	CallbackProgress     = "progress"
	CallbackRefresh      = "refresh"
	CallbackReset        = "reset"
)

// Record is one lifecycle callback observed during replay
type Record struct {
	Step     int
	Callback string
	Ratio    float32
}

// String formats the record for terminal output
func (r Record) String() string {
	if r.Callback == CallbackProgress {
		return fmt.Sprintf("#%d %s %s", r.Step, r.Callback, strconv.FormatFloat(float64(r.Ratio), 'f', 3, 32))
	}
	return fmt.Sprintf("#%d %s", r.Step, r.Callback)
}

// Recorder is a gesture.Listener that keeps every callback in order
type Recorder struct {
	step    int
	Records []Record
}

func (r *Recorder) add(callback string, ratio float32) {
	r.Records = append(r.Records, Record{Step: r.step, Callback: callback, Ratio: ratio})
}

func (r *Recorder) OnBeginRefresh()                           { r.add(CallbackBeginRefresh, 0) }
func (r *Recorder) OnRefreshScrolledPercentage(ratio float32) { r.add(CallbackProgress, ratio) }
func (r *Recorder) OnRefresh()                                { r.add(CallbackRefresh, 0) }
func (r *Recorder) OnReset()                                  { r.add(CallbackReset, 0) }

// Count returns how many times callback was recorded
func (r *Recorder) Count(callback string) int {
	n := 0
	for _, rec := range r.Records {
		if rec.Callback == callback {
			n++
		}
	}
	return n
}

// Result is the outcome of a replay
type Result struct {
	TraceID string
	Records []Record
	// Phases holds the machine phase after each step
	Phases []gesture.Phase
	// Consumed counts events the machine reported as consumed
	Consumed int
}

// Replay drives a fresh machine through every step of t.
// The oracle starts scrolled to the top.
func Replay(t *Trace, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	top, canStart := true, true
	oracle := scroll.Funcs{
		Top:      func() bool { return top },
		CanStart: func() bool { return canStart },
	}
	rec := &Recorder{}

	opts := []gesture.Option{gesture.WithLogger(logger.With(slog.String("trace", t.ID)))}
	if t.HasListener() {
		opts = append(opts, gesture.WithListener(rec))
	}
	m := gesture.New(oracle, t.GestureConfig(), opts...)

	res := &Result{TraceID: t.ID}
	for i, step := range t.Steps {
		rec.step = i
		if step.Top != nil {
			top = *step.Top
		}
		if step.CanStart != nil {
			canStart = *step.CanStart
		}

		switch {
		case step.Event != "":
			typ, err := ParseEventType(step.Event)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			if m.HandleEvent(gesture.Event{Type: typ, Y: step.Y, EdgeFlags: step.EdgeFlags}) {
				res.Consumed++
			}
		case step.Call == CallStartRefresh:
			m.StartRefresh()
		case step.Call == CallRefreshComplete:
			m.OnRefreshComplete()
		default:
			return nil, fmt.Errorf("step %d: %w", i, ErrInvalidStep)
		}

		res.Phases = append(res.Phases, m.Phase())
	}

	res.Records = rec.Records
	return res, nil
}
