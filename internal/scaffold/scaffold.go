package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/gisleudo-cortez/aoc-init/internal/model"
)

// Supported lists the language tags the scaffolder knows, in canonical order.
var Supported = []string{"python", "rust", "go"}

// TagAll expands to every supported language.
const TagAll = "all"

// ErrUnknownLanguage is returned for a tag outside Supported.
var ErrUnknownLanguage = errors.New("unsupported language tag")

// ErrExists is returned when a language directory is already present.
//
// Callers treat this as a skip, not a failure: re-running setup must never
// clobber an existing project.
var ErrExists = errors.New("project already exists")

// Runner executes external commands in a working directory.
//
// The production implementation shells out; tests substitute a recording
// fake so scaffolding logic is exercised without cargo/go/uv installed.
type Runner interface {
	// Run executes name with args in dir and returns the combined output.
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Scaffolder creates per-language project skeletons inside a day directory.
//
// Each language gets its own subdirectory and that ecosystem's minimal
// initialization: `cargo new` for rust, `go mod init` for go, `uv venv` for
// python. When the native tool is not on PATH the scaffolder falls back to
// writing manifest stubs directly, so a half-installed machine still gets a
// usable skeleton.
//
// Example usage:
//
//	s := scaffold.New(scaffold.ExecRunner{}, nil)
//	if err := s.Language(ctx, "rust", dayDir, ch); err != nil {
//	    if errors.Is(err, scaffold.ErrExists) {
//	        fmt.Println("rust project already there, skipping")
//	    }
//	}
type Scaffolder struct {
	runner Runner
	logf   func(format string, args ...any)
}

// New creates a Scaffolder.
//
// A nil runner defaults to ExecRunner. logf, when non-nil, receives notices
// about fallbacks (tool missing, stub written); pass nil to discard them.
func New(runner Runner, logf func(format string, args ...any)) *Scaffolder {
	if runner == nil {
		runner = ExecRunner{}
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Scaffolder{runner: runner, logf: logf}
}

// Normalize expands and validates a list of requested tags.
//
// TagAll expands to every supported language. Duplicates collapse, and the
// returned valid tags follow the canonical Supported order regardless of
// input order. Unknown tags come back in invalid, in input order, so the
// caller can report each one individually.
func Normalize(tags []string) (valid, invalid []string) {
	requested := make(map[string]bool)
	for _, tag := range tags {
		if tag == TagAll {
			for _, lang := range Supported {
				requested[lang] = true
			}
			continue
		}
		known := false
		for _, lang := range Supported {
			if tag == lang {
				requested[lang] = true
				known = true
				break
			}
		}
		if !known {
			invalid = append(invalid, tag)
		}
	}

	for _, lang := range Supported {
		if requested[lang] {
			valid = append(valid, lang)
		}
	}
	return valid, invalid
}

// Language scaffolds a single language under dir.
//
// Returns ErrExists (wrapped) when the language directory is already there,
// ErrUnknownLanguage (wrapped) for tags outside Supported, and the underlying
// error for tool or filesystem failures.
func (s *Scaffolder) Language(ctx context.Context, lang, dir string, ch model.Challenge) error {
	switch lang {
	case "rust":
		return s.rust(ctx, dir, ch)
	case "go":
		return s.golang(ctx, dir, ch)
	case "python":
		return s.python(ctx, dir, ch)
	default:
		return fmt.Errorf("%q: %w", lang, ErrUnknownLanguage)
	}
}

// toolMissing reports whether an exec error means the binary isn't on PATH.
func toolMissing(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
