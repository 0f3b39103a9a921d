package model

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"
)

// FirstYear is the first year a puzzle calendar was published.
const FirstYear = 2015

// MaxDay is the last calendar day with a puzzle.
const MaxDay = 25

// Challenge identifies a single daily puzzle by (year, day).
//
// A Challenge is the unit everything else operates on: the target directory,
// the remote endpoints, and the scaffolded module names are all derived from
// it. Construct one through New so the identifier is validated exactly once,
// at input time.
//
// Example:
//
//	ch, err := model.New(2024, 7)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ch.Dir("/puzzles"))         // /puzzles/2024/07
//	fmt.Println(ch.URL("https://adventofcode.com"))
type Challenge struct {
	// Year is the challenge year, FirstYear or later.
	Year int

	// Day is the calendar day, 1 through MaxDay.
	Day int
}

// New validates (year, day) and returns the Challenge.
//
// Validation rules:
//   - year must be FirstYear (2015) or later
//   - year must not be more than one year in the future
//   - day must be between 1 and MaxDay (25)
//
// Each rule failure produces its own descriptive error so the CLI can report
// exactly what was wrong with the input.
func New(year, day int) (Challenge, error) {
	if year < FirstYear {
		return Challenge{}, fmt.Errorf("year must be %d or later, got %d", FirstYear, year)
	}
	if current := time.Now().Year(); year > current+1 {
		return Challenge{}, fmt.Errorf("year %d is too far in the future (current: %d)", year, current)
	}
	if day < 1 || day > MaxDay {
		return Challenge{}, fmt.Errorf("day must be between 1 and %d, got %d", MaxDay, day)
	}
	return Challenge{Year: year, Day: day}, nil
}

// PaddedDay returns the day zero-padded to two digits, e.g. "07".
//
// Directory names always use the padded form so days sort correctly;
// remote URLs always use the unpadded form.
func (c Challenge) PaddedDay() string {
	return fmt.Sprintf("%02d", c.Day)
}

// Dir returns the target directory for this challenge under base.
//
// The layout is base/<year>/<DD>. When base itself already ends in the year
// segment (the user runs the tool from inside a year folder), the year is not
// repeated:
//
//	Challenge{2024, 7}.Dir("/puzzles")      // /puzzles/2024/07
//	Challenge{2024, 7}.Dir("/puzzles/2024") // /puzzles/2024/07
func (c Challenge) Dir(base string) string {
	year := strconv.Itoa(c.Year)
	if filepath.Base(base) == year {
		return filepath.Join(base, c.PaddedDay())
	}
	return filepath.Join(base, year, c.PaddedDay())
}

// URL returns the puzzle statement page URL under the given site base URL.
func (c Challenge) URL(baseURL string) string {
	return fmt.Sprintf("%s/%d/day/%d", baseURL, c.Year, c.Day)
}

// InputURL returns the puzzle input URL under the given site base URL.
func (c Challenge) InputURL(baseURL string) string {
	return c.URL(baseURL) + "/input"
}

// String returns a short human-readable identifier like "2024 day 07".
func (c Challenge) String() string {
	return fmt.Sprintf("%d day %s", c.Year, c.PaddedDay())
}
