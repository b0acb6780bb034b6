package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/pulltorefresh/internal/config"
)

type fakeHost struct {
	canRefresh bool
}

func (h *fakeHost) SetCanRefresh(canRefresh bool) { h.canRefresh = canRefresh }

// scheduler collects delayed work so tests can run it on demand
type scheduler struct {
	delays []time.Duration
	queue  []func()
}

func (s *scheduler) after(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	s.queue = append(s.queue, fn)
}

func (s *scheduler) run() {
	for len(s.queue) > 0 {
		fn := s.queue[0]
		s.queue = s.queue[1:]
		fn()
	}
}

func newTestIndicator(onRefresh func()) (*RefreshIndicator, *fakeHost, *scheduler) {
	test.NewApp()
	sched := &scheduler{}
	host := &fakeHost{canRefresh: true}

	ri := NewRefreshIndicator(NewLocalization(), nil, onRefresh)
	ri.after = sched.after
	ri.AddHost(host)

	return ri, host, sched
}

func TestAccelerate(t *testing.T) {
	tests := []struct {
		ratio    float32
		expected float32
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.25},
		{1, 1},
		{1.7, 1},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.expected, accelerate(tc.ratio), 0.0001, "ratio %v", tc.ratio)
	}
}

func TestRefreshIndicator_Pull(t *testing.T) {
	ri, _, _ := newTestIndicator(nil)
	require.False(t, ri.overlay.Visible())

	ri.OnBeginRefresh()
	assert.True(t, ri.overlay.Visible())
	assert.InDelta(t, 1, ri.progress.Value, 0.0001)

	ri.OnRefreshScrolledPercentage(0.5)
	assert.True(t, ri.progress.Visible())
	assert.InDelta(t, 0.25, ri.progress.Value, 0.0001)

	ri.OnRefreshScrolledPercentage(3)
	assert.InDelta(t, 1, ri.progress.Value, 0.0001)
}

func TestRefreshIndicator_RefreshLifecycle(t *testing.T) {
	calls := 0
	ri, host, sched := newTestIndicator(func() { calls++ })

	ri.OnBeginRefresh()
	ri.OnRefreshScrolledPercentage(0.9)
	ri.OnRefresh()

	assert.Equal(t, 1, calls)
	assert.True(t, ri.IsRefreshing())
	assert.False(t, host.canRefresh)
	assert.False(t, ri.progress.Visible())
	assert.True(t, ri.indeterminate.Visible())
	assert.Equal(t, ri.localization.GetText(KeyRefreshing), ri.label.Text)
	require.Equal(t, []time.Duration{config.DefaultOverlayResetDelay}, sched.delays)

	sched.run()
	assert.False(t, ri.overlay.Visible())
	assert.True(t, ri.indeterminate.Visible())
	assert.Equal(t, ri.localization.GetText(KeyPullToRefresh), ri.label.Text)

	ri.OnReset()
	assert.False(t, ri.IsRefreshing())
	assert.True(t, host.canRefresh)
	assert.False(t, ri.indeterminate.Visible())
}

func TestRefreshIndicator_ResetWhileOverlayShown(t *testing.T) {
	ri, _, sched := newTestIndicator(nil)

	ri.OnBeginRefresh()
	ri.OnRefreshScrolledPercentage(0.3)
	ri.OnReset()

	assert.False(t, ri.overlay.Visible())
	assert.InDelta(t, 0, ri.progress.Value, 0.0001)
	require.Equal(t, []time.Duration{config.DefaultLabelResetDelay}, sched.delays)
}

func TestRefreshIndicator_Helpers(t *testing.T) {
	ri, _, _ := newTestIndicator(nil)

	// no effect while idle
	ri.ShowHelper()
	assert.False(t, ri.indeterminate.Visible())

	ri.OnRefresh()
	ri.HideHelper()
	assert.False(t, ri.indeterminate.Visible())
	ri.ShowHelper()
	assert.True(t, ri.indeterminate.Visible())

	ri.SetRefreshing(false)
	ri.HideHelper()
	assert.True(t, ri.indeterminate.Visible())
}

func TestRefreshIndicator_ApplySettings(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetOverlayResetDelay(100 * time.Millisecond)
	settings.SetLabelResetDelay(50 * time.Millisecond)

	ri := NewRefreshIndicator(NewLocalization(), settings, nil)
	assert.Equal(t, 100*time.Millisecond, ri.overlayDelay)
	assert.Equal(t, 50*time.Millisecond, ri.labelDelay)

	ri.ApplySettings(nil)
	assert.Equal(t, 100*time.Millisecond, ri.overlayDelay)
}

func TestRefreshIndicator_RefreshTexts(t *testing.T) {
	ri, _, _ := newTestIndicator(nil)
	ri.localization.SetLanguage("ru")

	ri.RefreshTexts()
	assert.Equal(t, "Потяните вниз, чтобы обновить", ri.label.Text)

	ri.SetRefreshing(true)
	ri.RefreshTexts()
	assert.Equal(t, "Обновление...", ri.label.Text)
}

func TestViewTreeLookups(t *testing.T) {
	test.NewApp()
	loc := NewLocalization()

	toolbar := widget.NewToolbar()
	root := container.NewVBox(
		toolbar,
		NewRefreshIndicator(loc, nil, nil),
		container.NewStack(NewRefreshIndicator(loc, nil, nil)),
		container.NewVScroll(container.NewVBox(widget.NewLabel("row"))),
	)

	assert.Same(t, toolbar, FindToolbar(root))
	require.NotNil(t, FindIndicator(root))

	assert.Equal(t, 2, ResetIndicators(root))
	assert.Nil(t, FindIndicator(root))
	assert.Len(t, root.Objects, 3)
}

func TestWrapRefreshable(t *testing.T) {
	test.NewApp()
	loc := NewLocalization()

	content := container.NewVBox(widget.NewLabel("row"))
	s := NewRefreshableScroll(content, nil)
	w := test.NewWindow(s)
	t.Cleanup(w.Close)

	root := container.NewVBox(NewRefreshIndicator(loc, nil, nil))
	indicator, body := WrapRefreshable(root, s, loc, nil, nil)
	root.Add(body)

	assert.NotNil(t, body)
	assert.Same(t, indicator, FindIndicator(root))
	assert.Len(t, root.Objects, 1)

	s.StartRefresh()
	assert.True(t, indicator.IsRefreshing())
	assert.False(t, s.CanRefresh())
}

func TestRefreshIndicator_StaleOverlayResetIgnored(t *testing.T) {
	ri, _, sched := newTestIndicator(nil)

	ri.OnBeginRefresh()
	ri.OnRefresh()
	require.Len(t, sched.queue, 1)

	// the refresh completes before the overlay delay, then a new pull starts
	ri.OnReset()
	ri.OnBeginRefresh()
	ri.OnRefreshScrolledPercentage(0.4)

	sched.run()
	assert.True(t, ri.overlay.Visible())
	assert.InDelta(t, 0.16, ri.progress.Value, 0.0001)
}

func TestRefreshIndicator_StaleLabelResetIgnored(t *testing.T) {
	ri, _, sched := newTestIndicator(nil)

	ri.OnBeginRefresh()
	ri.OnReset()
	require.Len(t, sched.queue, 1)

	ri.OnRefresh()
	sched.queue = sched.queue[:1]
	sched.run()
	assert.Equal(t, ri.localization.GetText(KeyRefreshing), ri.label.Text)
}
