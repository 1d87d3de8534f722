package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/step"
)

const barHeight = 16

// Options configure the terminal player.
type Options struct {
	Title    string
	Warning  string
	Speed    time.Duration
	MinSpeed time.Duration
	MaxSpeed time.Duration
	Autoplay bool
	Theme    string
	Logger   *slog.Logger
	Clock    playback.Clock
}

// changeMsg wakes the program after the controller changed.
type changeMsg struct{}

// Model renders a step sequence driven by a playback.Controller. The
// controller is the only source of playback state; the model reads a
// fresh snapshot on every render.
type Model struct {
	ctrl     *playback.Controller
	changes  chan struct{}
	seq      step.Sequence
	mode     step.Mode
	title    string
	warning  string
	autoplay bool
	theme    int
	showHelp bool
}

func NewModel(seq step.Sequence, opts Options) Model {
	changes := make(chan struct{}, 1)
	popts := []playback.Option{
		playback.WithOnChange(func(playback.Snapshot) {
			select {
			case changes <- struct{}{}:
			default:
			}
		}),
	}
	if opts.MinSpeed > 0 && opts.MaxSpeed > 0 {
		popts = append(popts, playback.WithSpeedBounds(opts.MinSpeed, opts.MaxSpeed))
	}
	if opts.Speed > 0 {
		popts = append(popts, playback.WithSpeed(opts.Speed))
	}
	if opts.Logger != nil {
		popts = append(popts, playback.WithLogger(opts.Logger))
	}
	if opts.Clock != nil {
		popts = append(popts, playback.WithClock(opts.Clock))
	}

	ctrl := playback.New(popts...)
	ctrl.Load(seq)

	mode := step.ModeSorting
	if len(seq) > 0 {
		mode = step.ModeFor(seq[0].Kind())
	}

	theme := 0
	for i, name := range ThemeNames() {
		if name == opts.Theme {
			theme = i
		}
	}

	return Model{
		ctrl:     ctrl,
		changes:  changes,
		seq:      seq,
		mode:     mode,
		title:    opts.Title,
		warning:  opts.Warning,
		autoplay: opts.Autoplay,
		theme:    theme,
	}
}

// Controller exposes the underlying controller.
func (m Model) Controller() *playback.Controller { return m.ctrl }

func (m Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return changeMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	if m.autoplay {
		m.ctrl.Play()
	}
	return m.waitForChange()
}

// Update maps keys onto controller operations. Step controls pause first so
// a manual step is never overtaken by a pending tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.ctrl.Close()
			return m, tea.Quit
		case " ", "p":
			m.ctrl.Toggle()
		case "left", "h":
			m.ctrl.Pause()
			m.ctrl.StepBack()
		case "right", "l":
			m.ctrl.Pause()
			m.ctrl.StepForward()
		case "home", "g":
			m.ctrl.Pause()
			m.ctrl.JumpToStart()
		case "end", "G":
			m.ctrl.Pause()
			m.ctrl.JumpToEnd()
		case "+", "=":
			m.ctrl.SetSpeed(m.ctrl.Snapshot().Speed * 4 / 5)
		case "-", "_":
			m.ctrl.SetSpeed(m.ctrl.Snapshot().Speed * 5 / 4)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "?":
			m.showHelp = !m.showHelp
		}
	case changeMsg:
		return m, m.waitForChange()
	}
	return m, nil
}

func (m Model) status(s playback.Snapshot) string {
	switch {
	case s.Playing:
		return StatusPlaying.Render("PLAYING")
	case s.Complete:
		return StatusDone.Render("COMPLETE")
	case s.State == playback.Idle:
		return StatusPaused.Render("NO STEPS")
	}
	return StatusPaused.Render("PAUSED")
}

func (m Model) View() string {
	snap := m.ctrl.Snapshot()
	theme := Themes[m.theme]

	barsView := barsStyle.Render(Bars(snap.Step, m.mode, barHeight, theme))

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.status(snap) + "\n\n")

	if snap.Step != nil {
		s.WriteString(actionStyle.Render(snap.Step.Common().Action) + "\n\n")
	}

	position := "0 / 0"
	pct := 0.0
	if snap.Len > 0 {
		position = fmt.Sprintf("%d / %d", snap.Index+1, snap.Len)
		pct = float64(snap.Index+1) / float64(snap.Len)
	}
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(position) + "\n")
	s.WriteString(labelStyle.Render("") + ProgressBar(pct, 24) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(snap.Speed.String()) + "\n")
	s.WriteString(labelStyle.Render("Mode") + valueStyle.Render(m.mode.String()) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(theme.Name) + "\n")

	if chart := Chart(m.seq, snap.Index, 30, 5); chart != "" {
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if m.warning != "" {
		s.WriteString(warnStyle.Render("! "+m.warning) + "\n")
	}
	s.WriteString(helpStyle.Render("─────────────────────\nSP:Play/Pause  Q:Quit\n←→:Step  g/G:Start/End\n+/-:Speed  T:Theme  ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, barsView, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n" + Legend(m.mode) + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Play/Pause               ║
║  ← / H    - Step back                ║
║  → / L    - Step forward             ║
║  G / Home - Jump to start            ║
║  ⇧G / End - Jump to end              ║
║  + / -    - Faster / slower          ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run plays seq in the terminal until the user quits.
func Run(seq step.Sequence, opts Options) error {
	m := NewModel(seq, opts)
	defer m.ctrl.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
