// Package tui provides a Bubble Tea terminal user interface for aoc-init.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gisleudo-cortez/aoc-init/internal/aoc"
	"github.com/gisleudo-cortez/aoc-init/internal/config"
	"github.com/gisleudo-cortez/aoc-init/internal/model"
	"github.com/gisleudo-cortez/aoc-init/internal/session"
	"github.com/gisleudo-cortez/aoc-init/internal/setup"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// languagePresets are the selections the l key cycles through.
var languagePresets = []string{"all", "python", "rust", "go"}

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateRunning
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   setup.ProgressLevel
}

// eventBuffer collects manager events for the UI goroutine to drain.
//
// The manager runs in a background command and reports through a callback;
// the model picks the accumulated events up on each tick.
type eventBuffer struct {
	mu     sync.Mutex
	events []setup.ProgressEvent
}

func (b *eventBuffer) add(e setup.ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *eventBuffer) drain() []setup.ProgressEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// Setup manager and its event feed
	manager *setup.Manager
	events  *eventBuffer

	// Step progress
	stepsDone  int32
	stepsTotal int32

	// Options
	instructions bool
	force        bool
	verbose      bool
	langIndex    int

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "2024 7"
	ti.Focus()
	ti.CharLimit = 12
	ti.Width = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  config.DefaultSettings(),
		logs:      make([]LogEntry, 0),
		events:    &eventBuffer{},
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// RunDoneMsg is sent when the setup run finishes.
	RunDoneMsg struct {
		Err error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateRunning {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				ch, err := parseChallenge(m.textInput.Value())
				if err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.state = StateRunning
				return m, tea.Batch(m.startRun(ch), m.spinner.Tick, m.tickProgress())
			}

		case "i":
			if m.state == StateInput {
				m.instructions = !m.instructions
			}

		case "f":
			if m.state == StateInput {
				m.force = !m.force
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "l":
			if m.state == StateInput {
				m.langIndex = (m.langIndex + 1) % len(languagePresets)
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for another day
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.manager = nil
				m.events = &eventBuffer{}
				m.stepsDone = 0
				m.stepsTotal = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case RunDoneMsg:
		m.drainEvents()
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.state == StateRunning {
			m.drainEvents()
			if m.manager != nil {
				done, total := m.manager.Progress()
				m.stepsDone = done
				m.stepsTotal = total

				var percent float64
				if total > 0 {
					percent = float64(done) / float64(total)
				}
				cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
			}
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// drainEvents moves buffered manager events into the visible log tail.
func (m *Model) drainEvents() {
	for _, event := range m.events.drain() {
		if event.Level == setup.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	}
	// Keep only the last 10 entries
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("* aoc-init"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Bootstrap a day of Advent of Code"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter year and day:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	instructionsCheck := "[ ]"
	if m.instructions {
		instructionsCheck = "[x]"
	}
	forceCheck := "[ ]"
	if m.force {
		forceCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Save problem statement (i)\n", instructionsCheck))
	b.WriteString(fmt.Sprintf("  %s Force input re-download (f)\n", forceCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString(fmt.Sprintf("  Languages: %s (l)\n", languagePresets[m.langIndex]))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Base directory: %s", m.settings.BaseDir)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Setting up..."))
	b.WriteString("\n\n")

	var percent float64
	if m.stepsTotal > 0 {
		percent = float64(m.stepsDone) / float64(m.stepsTotal)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Steps: %d/%d", m.stepsDone, m.stepsTotal)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"Setup complete!\n\n"+
			"Steps finished: %d/%d",
		m.stepsDone,
		m.stepsTotal,
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "."
		switch log.Level {
		case setup.LevelError:
			style = errorStyle
			prefix = "x"
		case setup.LevelWarning:
			style = warningStyle
			prefix = "!"
		case setup.LevelSuccess:
			style = successStyle
			prefix = "+"
		case setup.LevelInfo:
			style = infoStyle
			prefix = ">"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start | i: statement | f: force | l: languages | v: verbose | esc: quit"
	case StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: another day | q: quit"
	}
	return ""
}

// parseChallenge reads "<year> <day>" from the input field.
func parseChallenge(value string) (model.Challenge, error) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return model.Challenge{}, fmt.Errorf("enter year and day, e.g. \"2024 7\"")
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Challenge{}, fmt.Errorf("invalid year %q", fields[0])
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Challenge{}, fmt.Errorf("invalid day %q", fields[1])
	}
	return model.New(year, day)
}

// startRun resolves the session cookie, builds the manager, and runs the
// setup in the background.
func (m *Model) startRun(ch model.Challenge) tea.Cmd {
	cookie, _, err := session.Resolve("", session.EnvFilePath())
	if err != nil {
		return func() tea.Msg { return RunDoneMsg{Err: err} }
	}

	client := aoc.NewClient(aoc.ClientConfig{
		BaseURL:   m.settings.BaseURL,
		Session:   cookie,
		UserAgent: m.settings.UserAgent,
		Timeout:   time.Duration(m.settings.TimeoutSeconds) * time.Second,
	})

	manager := setup.NewManager(m.settings, client, setup.Options{
		FetchStatement: m.instructions,
		ForceInput:     m.force,
		Languages:      []string{languagePresets[m.langIndex]},
	}, m.events.add)
	m.manager = manager

	ctx := m.ctx
	return func() tea.Msg {
		return RunDoneMsg{Err: manager.Run(ctx, ch)}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
