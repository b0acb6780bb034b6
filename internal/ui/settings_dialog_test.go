package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/pulltorefresh/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	settings := config.NewSettings(app)
	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved++ })
	sd.loadCurrentSettings()

	assert.Equal(t, "8", sd.touchSlopEntry.Text)
	assert.Equal(t, "800", sd.overlayDelayEntry.Text)
	assert.Equal(t, "300", sd.maxPullEntry.Text)

	sd.touchSlopEntry.SetText("12")
	sd.maxPullEntry.SetText("20")
	sd.topSlackEntry.SetText("40")
	sd.startSlackEntry.SetText("60")
	sd.overlayDelayEntry.SetText("250")
	sd.languageSelect.SetSelected("ru")
	sd.onSave(true)

	assert.Equal(t, 1, saved)
	assert.Equal(t, 12.0, settings.GetTouchSlopDp())
	// clamped to the minimum
	assert.Equal(t, config.MinMaxPullDistanceDp, settings.GetMaxPullDistanceDp())
	assert.Equal(t, 40.0, settings.GetScrollTopSlack())
	// bounded by the top slack
	assert.Equal(t, 40.0, settings.GetScrollStartSlack())
	assert.Equal(t, 250*time.Millisecond, settings.GetOverlayResetDelay())
	assert.Equal(t, "ru", settings.GetLanguage())
}

func TestSettingsDialog_CancelAndBadInput(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	settings := config.NewSettings(app)
	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved++ })
	sd.loadCurrentSettings()

	sd.touchSlopEntry.SetText("20")
	sd.onSave(false)
	assert.Zero(t, saved)
	assert.Equal(t, config.DefaultTouchSlopDp, settings.GetTouchSlopDp())

	sd.touchSlopEntry.SetText("lots")
	sd.onSave(true)
	assert.Equal(t, 1, saved)
	assert.Equal(t, config.DefaultTouchSlopDp, settings.GetTouchSlopDp())
}
