package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default values applied when a field is absent from the settings file.
const (
	// DefaultBaseURL is the puzzle site all endpoints are built from.
	DefaultBaseURL = "https://adventofcode.com"

	// DefaultUserAgent identifies the tool to the puzzle site.
	DefaultUserAgent = "aoc-init/0.3"

	defaultTimeoutSeconds = 15

	// File names created inside the day directory.
	defaultInputFileName     = "input.txt"
	defaultExampleFileName   = "example.txt"
	defaultStatementFileName = "problem_statement.txt"
)

// Settings holds all configuration options.
type Settings struct {
	// BaseDir is where year/day folders are created.
	// Empty means the current working directory.
	BaseDir string `json:"base_dir"`

	// BaseURL is the puzzle site base URL.
	BaseURL string `json:"base_url"`

	// UserAgent is sent with every HTTP request.
	UserAgent string `json:"user_agent"`

	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `json:"timeout_seconds"`

	// Languages are the tags scaffolded when the user doesn't pick any.
	Languages []string `json:"languages"`

	// File names inside the day directory.
	InputFileName     string `json:"input_file_name"`
	ExampleFileName   string `json:"example_file_name"`
	StatementFileName string `json:"statement_file_name"`

	// FetchStatement saves the problem statement during setup.
	FetchStatement bool `json:"fetch_statement"`

	// ForceInput re-downloads input.txt even when it already exists.
	ForceInput bool `json:"force_input"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	cwd, _ := os.Getwd()
	return &Settings{
		BaseDir:           cwd,
		BaseURL:           DefaultBaseURL,
		UserAgent:         DefaultUserAgent,
		TimeoutSeconds:    defaultTimeoutSeconds,
		Languages:         []string{"all"},
		InputFileName:     defaultInputFileName,
		ExampleFileName:   defaultExampleFileName,
		StatementFileName: defaultStatementFileName,
		FetchStatement:    false,
		ForceInput:        false,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so the tool works
// without any configuration. Values present in the file override defaults
// field by field.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", settings, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	settings.BaseURL = strings.TrimRight(strings.TrimSpace(settings.BaseURL), "/")
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}
	if settings.UserAgent == "" {
		settings.UserAgent = DefaultUserAgent
	}
	if settings.TimeoutSeconds <= 0 {
		settings.TimeoutSeconds = defaultTimeoutSeconds
	}
	if settings.InputFileName == "" {
		settings.InputFileName = defaultInputFileName
	}
	if settings.ExampleFileName == "" {
		settings.ExampleFileName = defaultExampleFileName
	}
	if settings.StatementFileName == "" {
		settings.StatementFileName = defaultStatementFileName
	}
	if len(settings.Languages) == 0 {
		settings.Languages = []string{"all"}
	}

	return settings, nil
}

// Save writes settings to a JSON file.
//
// The write goes through a temp file and rename so a crash can't leave a
// half-written settings file behind.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
