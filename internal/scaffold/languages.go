package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ioutils "github.com/gisleudo-cortez/aoc-init/internal/io"
	"github.com/gisleudo-cortez/aoc-init/internal/model"
)

// moduleName builds the per-language project name, e.g. aoc_2024_day_07_rust.
func moduleName(ch model.Challenge, lang string) string {
	return fmt.Sprintf("aoc_%d_day_%s_%s", ch.Year, ch.PaddedDay(), lang)
}

// rust scaffolds a Rust crate via `cargo new`, or a manifest stub when cargo
// is not installed. The crate name is rewritten from the generic "rust"
// directory name to the challenge-specific module name.
func (s *Scaffolder) rust(ctx context.Context, dir string, ch model.Challenge) error {
	rustDir := filepath.Join(dir, "rust")
	if ioutils.Exists(rustDir) {
		return fmt.Errorf("%s: %w", rustDir, ErrExists)
	}

	crate := moduleName(ch, "rust")

	out, err := s.runner.Run(ctx, dir, "cargo", "new", "rust", "--vcs", "none")
	switch {
	case toolMissing(err):
		s.logf("cargo not found, writing manifest stub instead")
		return s.rustStub(rustDir, crate)
	case err != nil:
		return fmt.Errorf("cargo new failed: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	// cargo names the crate after the directory; rename it.
	tomlPath := filepath.Join(rustDir, "Cargo.toml")
	toml, err := os.ReadFile(tomlPath)
	if err != nil {
		return fmt.Errorf("read Cargo.toml: %w", err)
	}
	patched := strings.Replace(string(toml), `name = "rust"`, fmt.Sprintf("name = %q", crate), 1)
	if err := ioutils.WriteFile(tomlPath, []byte(patched)); err != nil {
		return fmt.Errorf("update Cargo.toml: %w", err)
	}
	return nil
}

// rustStub writes a minimal crate by hand.
func (s *Scaffolder) rustStub(rustDir, crate string) error {
	if err := ioutils.EnsureDir(filepath.Join(rustDir, "src")); err != nil {
		return err
	}
	manifest := fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2021\"\n\n[dependencies]\n", crate)
	if err := ioutils.WriteFile(filepath.Join(rustDir, "Cargo.toml"), []byte(manifest)); err != nil {
		return err
	}
	mainRS := "fn main() {\n    println!(\"Solve me!\");\n}\n"
	return ioutils.WriteFile(filepath.Join(rustDir, "src", "main.rs"), []byte(mainRS))
}

// golang scaffolds a Go module via `go mod init`, or a go.mod stub when the
// go tool is not installed, plus a hello-world main.go either way.
func (s *Scaffolder) golang(ctx context.Context, dir string, ch model.Challenge) error {
	goDir := filepath.Join(dir, "go")
	if ioutils.Exists(goDir) {
		return fmt.Errorf("%s: %w", goDir, ErrExists)
	}
	if err := ioutils.EnsureDir(goDir); err != nil {
		return err
	}

	module := moduleName(ch, "go")

	out, err := s.runner.Run(ctx, goDir, "go", "mod", "init", module)
	switch {
	case toolMissing(err):
		s.logf("go tool not found, writing go.mod stub instead")
		stub := fmt.Sprintf("module %s\n\ngo 1.21\n", module)
		if err := ioutils.WriteFile(filepath.Join(goDir, "go.mod"), []byte(stub)); err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("go mod init failed: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	mainGo := fmt.Sprintf(
		"package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Day %s - Advent of Code %d\")\n}\n",
		ch.PaddedDay(), ch.Year,
	)
	return ioutils.WriteFile(filepath.Join(goDir, "main.go"), []byte(mainGo))
}

// python scaffolds a python directory with a main.py stub. A virtualenv is
// attempted with uv; a missing uv just skips the venv rather than failing,
// since the stub alone is still a usable starting point.
func (s *Scaffolder) python(ctx context.Context, dir string, ch model.Challenge) error {
	pyDir := filepath.Join(dir, "python")
	if ioutils.Exists(pyDir) {
		return fmt.Errorf("%s: %w", pyDir, ErrExists)
	}
	if err := ioutils.EnsureDir(pyDir); err != nil {
		return err
	}

	out, err := s.runner.Run(ctx, pyDir, "uv", "venv")
	switch {
	case toolMissing(err):
		s.logf("uv not found, skipping virtualenv")
	case err != nil:
		s.logf("uv venv failed, skipping virtualenv: %v (output: %s)", err, strings.TrimSpace(string(out)))
	}

	mainPy := "def main():\n    print(\"Solve me!\")\n\n\nif __name__ == \"__main__\":\n    main()\n"
	return ioutils.WriteFile(filepath.Join(pyDir, "main.py"), []byte(mainPy))
}
