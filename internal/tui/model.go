package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/pulltorefresh/internal/gesture"
	"github.com/ytget/pulltorefresh/internal/scroll"
)

const (
	// RowHeightPx is the pixel height a terminal row stands for
	RowHeightPx = 16

	DefaultItems    = 40
	DefaultLatency  = 1500 * time.Millisecond
	refreshedItems  = 3
	chromeRows      = 3
	pullBarMaxWidth = 40
)

type refreshDoneMsg struct{}

// Options configures a Model
type Options struct {
	Items   int
	Latency time.Duration
	Logger  *slog.Logger
}

// Model is a refreshable list. It must be used through its pointer.
type Model struct {
	viewport viewport.Model
	spinner  spinner.Model
	machine  *gesture.Machine
	logger   *slog.Logger

	lines   []string
	next    int
	latency time.Duration

	width  int
	height int

	pulling   bool
	ratio     float32
	refreshes int
	status    string

	// commands queued by listener callbacks during one Update
	pending []tea.Cmd
}

// New creates a model with opts.Items rows
func New(opts Options) *Model {
	if opts.Items <= 0 {
		opts.Items = DefaultItems
	}
	if opts.Latency <= 0 {
		opts.Latency = DefaultLatency
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	m := &Model{
		viewport: viewport.New(0, 0),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		logger:   opts.Logger.With(slog.String("host", "tui")),
		latency:  opts.Latency,
	}
	for m.next < opts.Items {
		m.next++
		m.lines = append(m.lines, fmt.Sprintf("Item %d", m.next))
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))

	m.machine = gesture.New(scroll.NewListOracle(listView{m}), m.gestureConfig(),
		gesture.WithLogger(m.logger),
		gesture.WithListener(gesture.ListenerFuncs{
			BeginRefresh: m.onBeginRefresh,
			Progress:     m.onProgress,
			Refresh:      m.onRefresh,
			Reset:        m.onReset,
		}))

	return m
}

// listView exposes the viewport as a list of one-row items
type listView struct {
	m *Model
}

func (v listView) Len() int          { return len(v.m.lines) }
func (v listView) FirstVisible() int { return v.m.viewport.YOffset }

// Rows are laid out edge to edge, so the first visible row starts at the top.
func (v listView) FirstChildTop() (float32, bool) { return 0, true }

func (m *Model) gestureConfig() gesture.Config {
	return gesture.Config{
		TouchSlopPx:       gesture.TouchSlopPx(gesture.DefaultTouchSlopDp, 1),
		ContainerHeightPx: m.viewport.Height * RowHeightPx,
		DensityScale:      1,
	}
}

// Machine returns the gesture machine driven by this model
func (m *Model) Machine() *gesture.Machine {
	return m.machine
}

// Lines returns the current list rows
func (m *Model) Lines() []string {
	return m.lines
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.quit):
			return m, tea.Quit
		case key.Matches(msg, DefaultKeyMap.refresh):
			m.machine.StartRefresh()
		case key.Matches(msg, DefaultKeyMap.top):
			m.viewport.GotoTop()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	case tea.MouseMsg:
		if tea.MouseEvent(msg).IsWheel() {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			m.onMouse(msg)
		}
	case refreshDoneMsg:
		m.finishRefresh()
	case spinner.TickMsg:
		if m.machine.IsRefreshing() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.pending...)
	m.pending = nil

	return m, tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-chromeRows, 0)
	m.machine.Bind(m.gestureConfig())
}

func (m *Model) onMouse(msg tea.MouseMsg) {
	y := float32(msg.Y * RowHeightPx)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.machine.HandleEvent(gesture.Down(y))
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.machine.HandleEvent(gesture.Move(y))
		}
	case tea.MouseActionRelease:
		// some terminals report releases without a button
		m.machine.HandleEvent(gesture.Up(y))
	}
}

func (m *Model) onBeginRefresh() {
	m.pulling = true
	m.ratio = 0
}

func (m *Model) onProgress(ratio float32) {
	m.ratio = min(max(ratio, 0), 1)
}

func (m *Model) onRefresh() {
	m.pulling = false
	m.status = "Refreshing..."
	m.logger.Info("refresh started", slog.Int("rows", len(m.lines)))

	m.pending = append(m.pending, m.spinner.Tick, tea.Tick(m.latency, func(_ time.Time) tea.Msg {
		return refreshDoneMsg{}
	}))
}

func (m *Model) onReset() {
	m.pulling = false
	m.ratio = 0
}

func (m *Model) finishRefresh() {
	if !m.machine.IsRefreshing() {
		return
	}

	fresh := make([]string, 0, refreshedItems)
	for range refreshedItems {
		m.next++
		fresh = append(fresh, fmt.Sprintf("Item %d", m.next))
	}
	m.lines = append(fresh, m.lines...)
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.refreshes++
	m.status = fmt.Sprintf("Refreshed · %d", m.refreshes)

	m.machine.OnRefreshComplete()
	m.logger.Info("refresh completed", slog.Int("rows", len(m.lines)))
}

func (m *Model) View() string {
	title := titleStyle.Render("Pull to Refresh")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.indicatorView(),
		m.viewport.View(),
		statusStyle.Width(m.width).Render(m.statusText()),
	)
}

func (m *Model) indicatorView() string {
	switch {
	case m.machine.IsRefreshing():
		return m.spinner.View() + " Refreshing..."
	case m.pulling:
		width := min(m.width, pullBarMaxWidth)
		filled := int(m.ratio * float32(width))
		bar := strings.Repeat("█", filled) + strings.Repeat("░", max(width-filled, 0))
		if m.ratio >= 1 {
			return armedStyle.Render(bar)
		}
		return pullStyle.Render(bar)
	}
	return hintStyle.Render("Drag down from the first row to refresh")
}

func (m *Model) statusText() string {
	if m.status != "" {
		return m.status
	}
	return fmt.Sprintf("%s  %s  %s  %d rows",
		DefaultKeyMap.refresh.Help().Key+" "+DefaultKeyMap.refresh.Help().Desc,
		DefaultKeyMap.top.Help().Key+" "+DefaultKeyMap.top.Help().Desc,
		DefaultKeyMap.quit.Help().Key+" "+DefaultKeyMap.quit.Help().Desc,
		len(m.lines))
}
