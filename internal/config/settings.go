package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/pulltorefresh/internal/gesture"
	"github.com/ytget/pulltorefresh/internal/scroll"
)

// Settings keys for Fyne preferences
const (
	KeyTouchSlopDp       = "touch_slop_dp"
	KeyMaxPullDistanceDp = "max_pull_distance_dp"
	KeyScrollTopSlack    = "scroll_top_slack"
	KeyScrollStartSlack  = "scroll_start_slack"
	KeyOverlayResetDelay = "overlay_reset_delay_ms"
	KeyLabelResetDelay   = "label_reset_delay_ms"
	KeyLanguage          = "app_language"
)

// Default values
const (
	DefaultTouchSlopDp       = float64(gesture.DefaultTouchSlopDp)
	DefaultMaxPullDistanceDp = float64(gesture.MaxPullDistanceDp)
	DefaultScrollTopSlack    = float64(scroll.DefaultTopSlack)
	DefaultScrollStartSlack  = float64(scroll.DefaultStartSlack)
	DefaultOverlayResetDelay = 800 * time.Millisecond
	DefaultLabelResetDelay   = 400 * time.Millisecond
	DefaultLanguage          = "system"
)

// Bounds applied by setters
const (
	MinTouchSlopDp = 1.0
	MaxTouchSlopDp = 64.0

	MinMaxPullDistanceDp = 48.0
	MaxMaxPullDistanceDp = 1000.0
	MaxResetDelay        = 5 * time.Second
)

// Settings manages gesture and indicator configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTouchSlopDp returns the touch slop in density independent units
func (s *Settings) GetTouchSlopDp() float64 {
	value := s.app.Preferences().FloatWithFallback(KeyTouchSlopDp, DefaultTouchSlopDp)
	if value <= 0 {
		return DefaultTouchSlopDp
	}
	return value
}

// SetTouchSlopDp sets the touch slop, clamped to [MinTouchSlopDp, MaxTouchSlopDp]
func (s *Settings) SetTouchSlopDp(dp float64) {
	if dp < MinTouchSlopDp {
		dp = MinTouchSlopDp
	}
	if dp > MaxTouchSlopDp {
		dp = MaxTouchSlopDp
	}
	s.app.Preferences().SetFloat(KeyTouchSlopDp, dp)
}

// GetMaxPullDistanceDp returns the cap on the pull threshold in dp
func (s *Settings) GetMaxPullDistanceDp() float64 {
	value := s.app.Preferences().FloatWithFallback(KeyMaxPullDistanceDp, DefaultMaxPullDistanceDp)
	if value <= 0 {
		return DefaultMaxPullDistanceDp
	}
	return value
}

// SetMaxPullDistanceDp sets the threshold cap, clamped to [MinMaxPullDistanceDp, MaxMaxPullDistanceDp]
func (s *Settings) SetMaxPullDistanceDp(dp float64) {
	dp = max(dp, MinMaxPullDistanceDp)
	dp = min(dp, MaxMaxPullDistanceDp)
	s.app.Preferences().SetFloat(KeyMaxPullDistanceDp, dp)
}

// GetScrollTopSlack returns the offset within which a scroll pane counts as at the top
func (s *Settings) GetScrollTopSlack() float64 {
	return s.app.Preferences().FloatWithFallback(KeyScrollTopSlack, DefaultScrollTopSlack)
}

// SetScrollTopSlack sets the top slack; negative values are stored as zero
func (s *Settings) SetScrollTopSlack(px float64) {
	s.app.Preferences().SetFloat(KeyScrollTopSlack, max(px, 0))
}

// GetScrollStartSlack returns the offset within which a move may start a pull
func (s *Settings) GetScrollStartSlack() float64 {
	return s.app.Preferences().FloatWithFallback(KeyScrollStartSlack, DefaultScrollStartSlack)
}

// SetScrollStartSlack sets the start slack. It never exceeds the top slack.
func (s *Settings) SetScrollStartSlack(px float64) {
	px = max(px, 0)
	px = min(px, s.GetScrollTopSlack())
	s.app.Preferences().SetFloat(KeyScrollStartSlack, px)
}

// GetOverlayResetDelay returns how long the overlay stays after a refresh begins
func (s *Settings) GetOverlayResetDelay() time.Duration {
	return s.getDelay(KeyOverlayResetDelay, DefaultOverlayResetDelay)
}

// SetOverlayResetDelay sets the overlay reset delay
func (s *Settings) SetOverlayResetDelay(d time.Duration) {
	s.setDelay(KeyOverlayResetDelay, d)
}

// GetLabelResetDelay returns how long the label keeps its text after the overlay hides
func (s *Settings) GetLabelResetDelay() time.Duration {
	return s.getDelay(KeyLabelResetDelay, DefaultLabelResetDelay)
}

// SetLabelResetDelay sets the label reset delay
func (s *Settings) SetLabelResetDelay(d time.Duration) {
	s.setDelay(KeyLabelResetDelay, d)
}

func (s *Settings) getDelay(key string, fallback time.Duration) time.Duration {
	ms := s.app.Preferences().IntWithFallback(key, int(fallback.Milliseconds()))
	if ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *Settings) setDelay(key string, d time.Duration) {
	if d < 0 {
		d = 0
	}
	if d > MaxResetDelay {
		d = MaxResetDelay
	}
	s.app.Preferences().SetInt(key, int(d.Milliseconds()))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GestureConfig builds the bind-time configuration for a container of the given
// height in pixels on a canvas with the given scale
func (s *Settings) GestureConfig(containerHeightPx int, scale float32) gesture.Config {
	return gesture.Config{
		TouchSlopPx:       gesture.TouchSlopPx(float32(s.GetTouchSlopDp()), scale),
		ContainerHeightPx: containerHeightPx,
		DensityScale:      scale,
		MaxPullDistanceDp: float32(s.GetMaxPullDistanceDp()),
	}
}

// ApplyScrollSlacks copies the configured slacks, scaled to pixels, onto oracle
func (s *Settings) ApplyScrollSlacks(oracle *scroll.OffsetOracle, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	oracle.TopSlack = float32(s.GetScrollTopSlack()) * scale
	oracle.StartSlack = float32(s.GetScrollStartSlack()) * scale
}
