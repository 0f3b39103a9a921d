package setup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gisleudo-cortez/aoc-init/internal/aoc"
	"github.com/gisleudo-cortez/aoc-init/internal/config"
	ioutils "github.com/gisleudo-cortez/aoc-init/internal/io"
	"github.com/gisleudo-cortez/aoc-init/internal/model"
	"github.com/gisleudo-cortez/aoc-init/internal/scaffold"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a setup progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// StatementStatus classifies the outcome of a statement refresh.
type StatementStatus int

const (
	// StatementCreated means no prior statement file existed.
	StatementCreated StatementStatus = iota

	// StatementUpdated means the file existed with different content and
	// was overwritten.
	StatementUpdated

	// StatementUnchanged means the fetched text matched the file
	// byte-for-byte; the file was left untouched.
	StatementUnchanged
)

// String returns the status the way the CLI reports it.
func (s StatementStatus) String() string {
	switch s {
	case StatementCreated:
		return "created"
	case StatementUpdated:
		return "updated"
	case StatementUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Options selects what a setup run does.
type Options struct {
	// FetchStatement saves the problem statement during setup.
	FetchStatement bool

	// RefreshOnly refreshes the statement and skips everything else.
	RefreshOnly bool

	// ForceInput re-downloads input.txt even when it exists.
	ForceInput bool

	// DryRun reports planned actions without touching network or disk.
	DryRun bool

	// Languages are the requested scaffold tags; empty falls back to the
	// configured defaults.
	Languages []string

	// Runner executes scaffolding commands; nil uses the real toolchains.
	Runner scaffold.Runner
}

// Manager coordinates one challenge setup run.
//
// All observable output flows through the onProgress callback as
// ProgressEvents, so the same Manager drives both the line-oriented CLI and
// the TUI. Step counters are kept with atomics because the TUI polls them
// from its own goroutine while Run executes.
type Manager struct {
	settings   *config.Settings
	client     *aoc.Client
	scaffolder *scaffold.Scaffolder
	opts       Options

	stepsDone  int32
	stepsTotal int32

	onProgress func(ProgressEvent)
}

// NewManager creates a Manager.
//
// onProgress may be nil when the caller doesn't care about status lines.
func NewManager(settings *config.Settings, client *aoc.Client, opts Options, onProgress func(ProgressEvent)) *Manager {
	m := &Manager{
		settings:   settings,
		client:     client,
		opts:       opts,
		onProgress: onProgress,
	}
	m.scaffolder = scaffold.New(opts.Runner, func(format string, args ...any) {
		m.progress(ProgressEvent{Message: fmt.Sprintf(format, args...), Level: LevelVerbose})
	})
	return m
}

// Progress returns the number of completed and planned steps.
func (m *Manager) Progress() (done, total int32) {
	return atomic.LoadInt32(&m.stepsDone), atomic.LoadInt32(&m.stepsTotal)
}

// Run executes the full setup sequence for the challenge:
// directory layout, then either the statement refresh alone (RefreshOnly) or
// input download, optional statement fetch, and language scaffolding.
//
// A scaffolding failure in one language is reported and does not abort the
// others; all other failures stop the run and are returned.
func (m *Manager) Run(ctx context.Context, ch model.Challenge) error {
	langs, invalid := m.languages()
	m.planSteps(langs)

	if m.opts.DryRun {
		m.reportPlan(ch, langs, invalid)
		return nil
	}

	dir, err := m.EnsureLayout(ch)
	if err != nil {
		return err
	}

	if m.opts.RefreshOnly {
		status, err := m.RefreshStatement(ctx, ch, dir)
		if err != nil {
			return err
		}
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Statement refresh finished: %s", status),
			Level:   LevelSuccess,
		})
		return nil
	}

	if err := m.FetchInput(ctx, ch, dir); err != nil {
		return err
	}

	if m.opts.FetchStatement {
		status, err := m.RefreshStatement(ctx, ch, dir)
		if err != nil {
			// The input is already on disk; a statement hiccup
			// shouldn't undo the setup.
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Statement fetch failed: %v", err),
				Level:   LevelWarning,
			})
		} else {
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Problem statement %s", status),
				Level:   LevelSuccess,
			})
		}
	}

	m.Scaffold(ctx, ch, dir, langs, invalid)

	m.progress(ProgressEvent{Message: "Setup complete.", Level: LevelSuccess})
	return nil
}

// EnsureLayout creates the day directory (with parents) and returns it.
// Creation is idempotent; an existing directory is reused.
func (m *Manager) EnsureLayout(ch model.Challenge) (string, error) {
	dir := ch.Dir(m.settings.BaseDir)
	if err := ioutils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Using directory: %s", dir), Level: LevelInfo})
	m.step()
	return dir, nil
}

// FetchInput downloads the puzzle input into the day directory and makes
// sure an (empty) example file exists next to it.
//
// An existing input file is never overwritten silently: without ForceInput
// the download is skipped with a notice.
func (m *Manager) FetchInput(ctx context.Context, ch model.Challenge, dir string) error {
	inputPath := filepath.Join(dir, m.settings.InputFileName)

	if ioutils.Exists(inputPath) && !m.opts.ForceInput {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("%s already exists, skipping download (use -force to re-download)", m.settings.InputFileName),
			Level:   LevelInfo,
		})
	} else {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Fetching puzzle input from: %s", ch.InputURL(m.client.BaseURL())),
			Level:   LevelVerbose,
		})

		input, err := m.client.FetchInput(ctx, ch)
		if err != nil {
			return m.describeFetchError(ctx, ch, err)
		}
		if err := ioutils.WriteFile(inputPath, []byte(input)); err != nil {
			return fmt.Errorf("write %s: %w", inputPath, err)
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Input saved to %s", inputPath), Level: LevelSuccess})
	}

	examplePath := filepath.Join(dir, m.settings.ExampleFileName)
	existed := ioutils.Exists(examplePath)
	if err := ioutils.Touch(examplePath); err != nil {
		return fmt.Errorf("create %s: %w", examplePath, err)
	}
	if !existed {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Empty example file created at %s", examplePath), Level: LevelInfo})
	}

	m.step()
	return nil
}

// RefreshStatement fetches the problem statement, renders it to text, and
// reconciles it with any saved copy.
//
// Classification is a three-way full replacement with no merge logic:
// no prior file means created, different bytes mean updated (overwrite),
// identical bytes mean unchanged (file untouched).
func (m *Manager) RefreshStatement(ctx context.Context, ch model.Challenge, dir string) (StatementStatus, error) {
	statementPath := filepath.Join(dir, m.settings.StatementFileName)

	var oldContent []byte
	hadOld := false
	if ioutils.Exists(statementPath) {
		data, err := os.ReadFile(statementPath)
		if err != nil {
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Could not read existing statement for comparison: %v", err),
				Level:   LevelWarning,
			})
		} else {
			oldContent = data
			hadOld = true
		}
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Fetching problem statement from: %s", ch.URL(m.client.BaseURL())),
		Level:   LevelVerbose,
	})

	page, err := m.client.FetchStatementPage(ctx, ch)
	if err != nil {
		return 0, m.describeFetchError(ctx, ch, err)
	}

	parts, err := aoc.ParseStatement(page)
	if err != nil {
		return 0, fmt.Errorf("statement page for %s: %w", ch, err)
	}

	statement := aoc.Statement{Challenge: ch, BaseURL: m.client.BaseURL(), Parts: parts}
	newContent := []byte(statement.Render())

	defer m.step()

	if hadOld && string(oldContent) == string(newContent) {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Problem statement at %s is already up-to-date.", statementPath),
			Level:   LevelInfo,
		})
		return StatementUnchanged, nil
	}

	if err := ioutils.WriteFile(statementPath, newContent); err != nil {
		return 0, fmt.Errorf("write %s: %w", statementPath, err)
	}

	if hadOld {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Problem statement updated at %s", statementPath), Level: LevelSuccess})
		return StatementUpdated, nil
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Problem statement saved to %s", statementPath), Level: LevelSuccess})
	return StatementCreated, nil
}

// Scaffold runs the requested language scaffolds one at a time.
//
// Unknown tags and per-language failures are reported as events; they never
// abort the remaining languages.
func (m *Manager) Scaffold(ctx context.Context, ch model.Challenge, dir string, langs, invalid []string) {
	for _, tag := range invalid {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Unsupported language %q, skipping (supported: python, rust, go)", tag),
			Level:   LevelError,
		})
	}
	if len(langs) == 0 {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(1) // one language at a time, in order

	for _, lang := range langs {
		lang := lang
		g.Go(func() error {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Scaffolding %s project...", lang), Level: LevelInfo})

			err := m.scaffolder.Language(ctx, lang, dir, ch)
			switch {
			case errors.Is(err, scaffold.ErrExists):
				m.progress(ProgressEvent{
					Message: fmt.Sprintf("%s project already exists, skipping", lang),
					Level:   LevelInfo,
				})
			case err != nil:
				m.progress(ProgressEvent{
					Message: fmt.Sprintf("Error scaffolding %s: %v", lang, err),
					Level:   LevelError,
				})
			default:
				m.progress(ProgressEvent{Message: fmt.Sprintf("%s project scaffolded", lang), Level: LevelSuccess})
			}

			m.step()
			return nil // a failed language never aborts the others
		})
	}

	_ = g.Wait()
}

// languages resolves the requested tags, falling back to configured defaults.
func (m *Manager) languages() (valid, invalid []string) {
	tags := m.opts.Languages
	if len(tags) == 0 {
		tags = m.settings.Languages
	}
	if m.opts.RefreshOnly {
		return nil, nil
	}
	return scaffold.Normalize(tags)
}

// planSteps sets the total step counter for progress reporting.
func (m *Manager) planSteps(langs []string) {
	total := int32(1) // layout
	if m.opts.RefreshOnly {
		total++ // statement
	} else {
		total++ // input
		if m.opts.FetchStatement {
			total++
		}
		total += int32(len(langs))
	}
	atomic.StoreInt32(&m.stepsTotal, total)
	atomic.StoreInt32(&m.stepsDone, 0)
}

// reportPlan lists what a real run would do, for -dry-run.
func (m *Manager) reportPlan(ch model.Challenge, langs, invalid []string) {
	dir := ch.Dir(m.settings.BaseDir)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Would use directory: %s", dir), Level: LevelInfo})

	if m.opts.RefreshOnly {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Would refresh %s from %s", m.settings.StatementFileName, ch.URL(m.client.BaseURL())), Level: LevelInfo})
		return
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Would fetch input from %s", ch.InputURL(m.client.BaseURL())), Level: LevelInfo})
	if m.opts.FetchStatement {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Would save %s", m.settings.StatementFileName), Level: LevelInfo})
	}
	for _, lang := range langs {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Would scaffold %s project", lang), Level: LevelInfo})
	}
	for _, tag := range invalid {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Unsupported language %q would be skipped", tag), Level: LevelWarning})
	}
}

// describeFetchError enriches classified fetch errors with context the user
// can act on. For a not-yet-released puzzle it consults the year calendar to
// report the latest day that is actually out.
func (m *Manager) describeFetchError(ctx context.Context, ch model.Challenge, err error) error {
	switch {
	case errors.Is(err, aoc.ErrNotReleased):
		if latest, calErr := m.client.LatestDay(ctx, ch.Year); calErr == nil && latest < ch.Day {
			return fmt.Errorf("puzzle %s is not released yet (latest available: day %d)", ch, latest)
		}
		return fmt.Errorf("puzzle %s is not released yet", ch)
	case errors.Is(err, aoc.ErrBadSession):
		return fmt.Errorf("%w; check that your %s cookie is valid and not expired", err, "AOC_SESSION")
	default:
		var statusErr *aoc.StatusError
		if errors.As(err, &statusErr) && statusErr.Body != "" {
			m.progress(ProgressEvent{Message: "Response body: " + statusErr.Body, Level: LevelVerbose})
		}
		return err
	}
}

func (m *Manager) step() {
	atomic.AddInt32(&m.stepsDone, 1)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
