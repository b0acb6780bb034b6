package ui

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pulltorefresh/internal/config"
)

// SettingsDialog represents the gesture settings dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	touchSlopEntry    *widget.Entry
	maxPullEntry      *widget.Entry
	topSlackEntry     *widget.Entry
	startSlackEntry   *widget.Entry
	overlayDelayEntry *widget.Entry
	languageSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows a settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.touchSlopEntry = widget.NewEntry()
	sd.touchSlopEntry.SetPlaceHolder(fmt.Sprintf("%g-%g", config.MinTouchSlopDp, config.MaxTouchSlopDp))

	sd.maxPullEntry = widget.NewEntry()
	sd.maxPullEntry.SetPlaceHolder(fmt.Sprintf("%g-%g", config.MinMaxPullDistanceDp, config.MaxMaxPullDistanceDp))

	sd.topSlackEntry = widget.NewEntry()
	sd.startSlackEntry = widget.NewEntry()
	sd.overlayDelayEntry = widget.NewEntry()

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(sd.localization.GetText(KeyTouchSlop), sd.touchSlopEntry),
		widget.NewFormItem(sd.localization.GetText(KeyMaxPullDistance), sd.maxPullEntry),
		widget.NewFormItem(sd.localization.GetText(KeyScrollTopSlack), sd.topSlackEntry),
		widget.NewFormItem(sd.localization.GetText(KeyScrollStartSlack), sd.startSlackEntry),
		widget.NewFormItem(sd.localization.GetText(KeyOverlayResetDelay), sd.overlayDelayEntry),
		widget.NewFormItem(sd.localization.GetText(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		container.NewPadded(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 320))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.touchSlopEntry.SetText(formatFloat(sd.settings.GetTouchSlopDp()))
	sd.maxPullEntry.SetText(formatFloat(sd.settings.GetMaxPullDistanceDp()))
	sd.topSlackEntry.SetText(formatFloat(sd.settings.GetScrollTopSlack()))
	sd.startSlackEntry.SetText(formatFloat(sd.settings.GetScrollStartSlack()))
	sd.overlayDelayEntry.SetText(strconv.FormatInt(sd.settings.GetOverlayResetDelay().Milliseconds(), 10))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// apply validates the form fields and stores the ones that parse
func (sd *SettingsDialog) apply() {
	if v, err := strconv.ParseFloat(sd.touchSlopEntry.Text, 64); err == nil {
		sd.settings.SetTouchSlopDp(v)
	}
	if v, err := strconv.ParseFloat(sd.maxPullEntry.Text, 64); err == nil {
		sd.settings.SetMaxPullDistanceDp(v)
	}

	// top slack first: the start slack is bounded by it
	if v, err := strconv.ParseFloat(sd.topSlackEntry.Text, 64); err == nil {
		sd.settings.SetScrollTopSlack(v)
	}
	if v, err := strconv.ParseFloat(sd.startSlackEntry.Text, 64); err == nil {
		sd.settings.SetScrollStartSlack(v)
	}

	if ms, err := strconv.Atoi(sd.overlayDelayEntry.Text); err == nil {
		sd.settings.SetOverlayResetDelay(time.Duration(ms) * time.Millisecond)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
