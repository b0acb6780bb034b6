package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pulltorefresh/internal/config"
)

// RootUI is the demo window: a refreshable list of rows under a toolbar
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	rows      *fyne.Container
	scroll    *RefreshableScroll
	indicator *RefreshIndicator
	toolbar   *widget.Toolbar
	status    *widget.Label

	items     []string
	nextItem  int
	refreshes int

	// after runs fn on the UI goroutine once d has passed
	after func(d time.Duration, fn func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		after:        runAfter,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	for ui.nextItem < DemoInitialItems {
		ui.nextItem++
		ui.items = append(ui.items, fmt.Sprintf(DemoItemFormat, ui.nextItem))
	}

	ui.rows = container.NewVBox()
	ui.renderRows()

	ui.scroll = NewRefreshableScroll(ui.rows, ui.settings)
	ui.status = widget.NewLabel("")

	ui.toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.ViewRefreshIcon(), ui.scroll.StartRefresh),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), ui.onShowSettings),
	)

	root := container.NewBorder(ui.toolbar, ui.status, nil, nil)
	var body fyne.CanvasObject
	ui.indicator, body = WrapRefreshable(root, ui.scroll, ui.localization, ui.settings, ui.onRefresh)
	root.Add(body)

	ui.window.SetContent(root)

	log.Printf("UI setup completed: mobile=%v landscape=%v scale=%.2f threshold=%.0fpx",
		ui.mobile.IsMobileDevice(), ui.mobile.IsLandscape(), ui.mobile.CanvasScale(ui.scroll),
		ui.scroll.Machine().PullThreshold())
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), func() {
		ui.scroll.StartRefresh()
	})

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), refreshItem, settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.indicator.RefreshTexts()
	ui.createMenu()
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved rebinds the host so new slop and slack values apply
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.indicator.ApplySettings(ui.settings)
	ui.indicator.RefreshTexts()
	ui.scroll.Resize(ui.scroll.Size())
}

// onRefresh simulates loading new rows, then completes the refresh
func (ui *RootUI) onRefresh() {
	log.Printf("Refresh started")
	ui.status.SetText(ui.localization.GetText(KeyRefreshing))
	ui.after(DemoRefreshLatency, ui.finishRefresh)
}

func (ui *RootUI) finishRefresh() {
	fresh := make([]string, 0, DemoRefreshItems)
	for i := 0; i < DemoRefreshItems; i++ {
		ui.nextItem++
		fresh = append(fresh, fmt.Sprintf(DemoItemFormat, ui.nextItem))
	}
	ui.items = append(fresh, ui.items...)
	ui.refreshes++
	ui.renderRows()

	ui.status.SetText(fmt.Sprintf("%s · %d", ui.localization.GetText(KeyRefreshed), ui.refreshes))
	ui.scroll.OnRefreshComplete()
	log.Printf("Refresh completed, %d rows", len(ui.items))
}

func (ui *RootUI) renderRows() {
	objects := make([]fyne.CanvasObject, 0, len(ui.items))
	for _, item := range ui.items {
		label := widget.NewLabel(item)
		objects = append(objects, container.New(&minHeightLayout{height: RowMinHeight}, label))
	}
	ui.rows.Objects = objects
	ui.rows.Refresh()
}

// minHeightLayout stacks objects and keeps rows touch friendly
type minHeightLayout struct {
	height float32
}

func (l *minHeightLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Resize(size)
		o.Move(fyne.NewPos(0, 0))
	}
}

func (l *minHeightLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, l.height)
	for _, o := range objects {
		minSize = minSize.Max(o.MinSize())
	}
	return minSize
}
