// Package session resolves the puzzle-site session cookie.
//
// The cookie can come from two places, in strict priority order:
//
//  1. the -session command line flag
//  2. the AOC_SESSION entry of a .env file in the working directory
//
// The value is treated as opaque; only the remote server can tell whether it
// is valid. The one local check offered is IsPlaceholder, which catches the
// copy-pasted documentation value before it hits the network.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// EnvKey is the .env entry holding the session cookie.
const EnvKey = "AOC_SESSION"

// DefaultEnvFile is the conventional env file name looked up in the
// working directory.
const DefaultEnvFile = ".env"

// placeholderValue is the literal from the usage examples; people paste it.
const placeholderValue = "YOUR_AOC_SESSION_COOKIE"

// ErrNotFound is returned when neither the flag nor the env file provides
// a session cookie.
var ErrNotFound = errors.New("session cookie not found")

// Source identifies where a resolved cookie came from.
type Source int

const (
	// SourceFlag means the cookie came from the -session flag.
	SourceFlag Source = iota

	// SourceEnvFile means the cookie came from the .env file.
	SourceEnvFile
)

// String returns a human-readable source name for status output.
func (s Source) String() string {
	switch s {
	case SourceFlag:
		return "command line flag"
	case SourceEnvFile:
		return DefaultEnvFile + " file"
	default:
		return "unknown"
	}
}

// Resolve returns the session cookie, preferring the flag value over the
// env file.
//
// flagValue is the raw -session argument, empty when the flag was not given.
// envFile is the path of the env file to consult; an unreadable or missing
// file just means that source yields nothing.
//
// Returns ErrNotFound (wrapped with a message naming both sources) when no
// source provides a value. Resolve performs no writes of any kind.
func Resolve(flagValue, envFile string) (string, Source, error) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v, SourceFlag, nil
	}

	if vars, err := godotenv.Read(envFile); err == nil {
		if v := strings.TrimSpace(vars[EnvKey]); v != "" {
			return v, SourceEnvFile, nil
		}
	}

	return "", 0, fmt.Errorf(
		"%w: provide it with -session, or set %s in %q",
		ErrNotFound, EnvKey, envFile,
	)
}

// IsPlaceholder reports whether the cookie looks like the documentation
// placeholder rather than a real value.
func IsPlaceholder(cookie string) bool {
	return cookie == placeholderValue
}

// EnvFilePath returns the conventional env file path in the current working
// directory.
func EnvFilePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultEnvFile
	}
	return filepath.Join(cwd, DefaultEnvFile)
}
