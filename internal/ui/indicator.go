package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pulltorefresh/internal/config"
	"github.com/ytget/pulltorefresh/internal/gesture"
)

// RefreshHost is a container whose event forwarding the indicator pauses while a
// refresh is on screen
type RefreshHost interface {
	SetCanRefresh(bool)
}

// RefreshIndicator renders pull progress and the running refresh. It is the
// gesture.Listener of one or more hosts.
type RefreshIndicator struct {
	widget.BaseWidget

	localization *Localization
	onRefresh    func()

	overlayDelay time.Duration
	labelDelay   time.Duration
	// after runs fn on the UI goroutine once d has passed
	after func(d time.Duration, fn func())

	overlay       *fyne.Container
	label         *widget.Label
	progress      *widget.ProgressBar
	indeterminate *widget.ProgressBarInfinite

	hosts      []RefreshHost
	refreshing bool
	// generation invalidates delayed resets scheduled before the latest lifecycle callback
	generation int
}

var _ gesture.Listener = (*RefreshIndicator)(nil)

// NewRefreshIndicator creates a hidden indicator. onRefresh is called when a
// refresh starts; the caller must complete it through the host.
func NewRefreshIndicator(localization *Localization, settings *config.Settings, onRefresh func()) *RefreshIndicator {
	ri := &RefreshIndicator{
		localization: localization,
		onRefresh:    onRefresh,
		overlayDelay: config.DefaultOverlayResetDelay,
		labelDelay:   config.DefaultLabelResetDelay,
		after:        runAfter,
	}
	ri.ApplySettings(settings)

	ri.label = widget.NewLabel(localization.GetText(KeyPullToRefresh))
	ri.label.Alignment = fyne.TextAlignCenter

	ri.progress = widget.NewProgressBar()
	ri.progress.Min = 0
	ri.progress.Max = 1
	ri.progress.TextFormatter = func() string { return "" }
	ri.progress.Hide()

	ri.indeterminate = widget.NewProgressBarInfinite()
	ri.indeterminate.Hide()

	ri.overlay = container.NewVBox(ri.label, ri.progress)
	ri.overlay.Hide()

	ri.ExtendBaseWidget(ri)
	return ri
}

func runAfter(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { fyne.Do(fn) })
}

// CreateRenderer implements fyne.Widget
func (ri *RefreshIndicator) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(ri.overlay, ri.indeterminate))
}

// ApplySettings re-reads the reset delays; nil keeps the current ones
func (ri *RefreshIndicator) ApplySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	ri.overlayDelay = settings.GetOverlayResetDelay()
	ri.labelDelay = settings.GetLabelResetDelay()
}

// Attach makes the indicator the listener of host
func (ri *RefreshIndicator) Attach(host *RefreshableScroll) {
	host.SetListener(ri)
	ri.hosts = append(ri.hosts, host)
}

// AddHost registers a host to pause while refreshing without attaching a listener
func (ri *RefreshIndicator) AddHost(host RefreshHost) {
	ri.hosts = append(ri.hosts, host)
}

// SetRefreshing overrides the refreshing flag, e.g. when restoring a page
func (ri *RefreshIndicator) SetRefreshing(refreshing bool) {
	ri.refreshing = refreshing
}

// IsRefreshing returns true while a refresh is on screen
func (ri *RefreshIndicator) IsRefreshing() bool {
	return ri.refreshing
}

// HideHelper hides the indeterminate progress of a running refresh. Useful
// when several refreshable pages share one window.
func (ri *RefreshIndicator) HideHelper() {
	if ri.refreshing {
		ri.indeterminate.Hide()
	}
}

// ShowHelper shows the indeterminate progress again
func (ri *RefreshIndicator) ShowHelper() {
	if ri.refreshing {
		ri.indeterminate.Show()
	}
}

// OnBeginRefresh shows the overlay with a full bar until the first progress report
func (ri *RefreshIndicator) OnBeginRefresh() {
	ri.generation++
	ri.label.SetText(ri.localization.GetText(KeyPullToRefresh))
	ri.progress.SetValue(float64(accelerate(1)))
	ri.overlay.Show()
}

// OnRefreshScrolledPercentage shows the pull progress. The raw ratio is clamped here.
func (ri *RefreshIndicator) OnRefreshScrolledPercentage(ratio float32) {
	ri.progress.Show()
	ri.progress.SetValue(float64(accelerate(ratio)))
}

// OnRefresh switches to the indeterminate progress and notifies the app
func (ri *RefreshIndicator) OnRefresh() {
	for _, host := range ri.hosts {
		host.SetCanRefresh(false)
	}

	ri.generation++
	ri.refreshing = true
	ri.progress.Hide()
	ri.indeterminate.Show()
	ri.indeterminate.Start()
	ri.label.SetText(ri.localization.GetText(KeyRefreshing))

	ri.schedule(ri.overlayDelay, ri.resetOverlay)

	if ri.onRefresh != nil {
		ri.onRefresh()
	}
}

// OnReset hides everything and re-enables the hosts
func (ri *RefreshIndicator) OnReset() {
	ri.generation++
	ri.refreshing = false
	if ri.indeterminate.Visible() {
		ri.indeterminate.Stop()
		ri.indeterminate.Hide()
	}

	ri.resetOverlay()

	for _, host := range ri.hosts {
		host.SetCanRefresh(true)
	}
}

func (ri *RefreshIndicator) resetOverlay() {
	if !ri.overlay.Visible() {
		ri.label.SetText(ri.localization.GetText(KeyPullToRefresh))
		return
	}

	ri.overlay.Hide()
	ri.progress.Hide()
	ri.progress.SetValue(0)

	ri.schedule(ri.labelDelay, func() {
		ri.label.SetText(ri.localization.GetText(KeyPullToRefresh))
	})
}

// schedule runs fn after d unless a newer lifecycle callback arrived first
func (ri *RefreshIndicator) schedule(d time.Duration, fn func()) {
	generation := ri.generation
	ri.after(d, func() {
		if generation == ri.generation {
			fn()
		}
	})
}

// RefreshTexts re-reads localized strings after a language change
func (ri *RefreshIndicator) RefreshTexts() {
	key := KeyPullToRefresh
	if ri.refreshing {
		key = KeyRefreshing
	}
	ri.label.SetText(ri.localization.GetText(key))
}

// accelerate clamps a pull ratio to [0,1] and eases it in quadratically
func accelerate(ratio float32) float32 {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return ratio * ratio
}

// WrapRefreshable places an indicator above host, attaches it, and returns
// both the indicator and the combined content. Stale indicators left in root
// by a previous wrap are removed first.
func WrapRefreshable(root *fyne.Container, host *RefreshableScroll, localization *Localization,
	settings *config.Settings, onRefresh func()) (*RefreshIndicator, fyne.CanvasObject) {
	if root != nil {
		if removed := ResetIndicators(root); removed > 0 {
			log.Printf("Removed %d stale refresh indicators", removed)
		}
	}

	indicator := NewRefreshIndicator(localization, settings, onRefresh)
	indicator.Attach(host)

	return indicator, container.NewBorder(indicator, nil, nil, nil, host)
}
