package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/pulltorefresh/internal/gesture"
)

func TestRootUI_Refresh(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	ui := NewRootUI(w, app)
	sched := &scheduler{}
	ui.after = sched.after
	ui.indicator.after = sched.after
	w.Resize(fyne.NewSize(400, 700))

	require.Len(t, ui.items, DemoInitialItems)
	require.NotNil(t, FindToolbar(w.Content()))

	ui.scroll.StartRefresh()
	assert.Equal(t, gesture.PhaseRefreshing, ui.scroll.Machine().Phase())
	assert.Equal(t, ui.localization.GetText(KeyRefreshing), ui.status.Text)

	sched.run()
	assert.Equal(t, gesture.PhaseIdle, ui.scroll.Machine().Phase())
	assert.Len(t, ui.items, DemoInitialItems+DemoRefreshItems)
	assert.Equal(t, "Item 41", ui.items[0])
	assert.Len(t, ui.rows.Objects, DemoInitialItems+DemoRefreshItems)
	assert.True(t, ui.scroll.CanRefresh())
}

func TestRootUI_LanguageChange(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	ui := NewRootUI(w, app)
	ui.onLanguageChange("pt")

	assert.Equal(t, "Puxar para Atualizar", w.Title())
	assert.Equal(t, "pt", ui.settings.GetLanguage())
}

func TestRootUI_SettingsRebind(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	ui := NewRootUI(w, app)
	ui.settings.SetTouchSlopDp(24)
	ui.onSettingsSaved()

	assert.InDelta(t, 24, ui.scroll.Machine().TouchSlop(), 0.001)
}
