package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	require.Equal(t, DefaultBaseURL, s.BaseURL)
	require.Equal(t, DefaultUserAgent, s.UserAgent)
	require.Equal(t, "input.txt", s.InputFileName)
	require.Equal(t, "example.txt", s.ExampleFileName)
	require.Equal(t, "problem_statement.txt", s.StatementFileName)
	require.Equal(t, []string{"all"}, s.Languages)
	require.Positive(t, s.TimeoutSeconds)
	require.False(t, s.ForceInput)
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Equal(t, DefaultSettings().BaseURL, s.BaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc-init.json")
	content := `{
  "base_dir": "/puzzles",
  "base_url": "https://aoc.example.com/",
  "languages": ["go", "rust"],
  "fetch_statement": true
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "/puzzles", s.BaseDir)
	// Trailing slash is trimmed so URL building stays predictable.
	require.Equal(t, "https://aoc.example.com", s.BaseURL)
	require.Equal(t, []string{"go", "rust"}, s.Languages)
	require.True(t, s.FetchStatement)

	// Untouched fields keep their defaults.
	require.Equal(t, DefaultUserAgent, s.UserAgent)
	require.Equal(t, "input.txt", s.InputFileName)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc-init.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSave_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "aoc-init.json")

	s := DefaultSettings()
	s.BaseDir = "/puzzles"
	s.Languages = []string{"python"}
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/puzzles", loaded.BaseDir)
	require.Equal(t, []string{"python"}, loaded.Languages)
}
