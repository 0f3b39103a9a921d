package model

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		day     int
		wantErr string
	}{
		{name: "first year day one", year: 2015, day: 1},
		{name: "current year", year: time.Now().Year(), day: 12},
		{name: "last day", year: 2023, day: 25},
		{name: "year before first", year: 2014, day: 1, wantErr: "2015 or later"},
		{name: "year far in future", year: time.Now().Year() + 2, day: 1, wantErr: "too far in the future"},
		{name: "day zero", year: 2023, day: 0, wantErr: "between 1 and 25"},
		{name: "day too large", year: 2023, day: 26, wantErr: "between 1 and 25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := New(tt.year, tt.day)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got none", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want to contain %q", err.Error(), tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ch.Year != tt.year || ch.Day != tt.day {
				t.Errorf("got %+v, want {%d %d}", ch, tt.year, tt.day)
			}
		})
	}
}

func TestChallenge_PaddedDay(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "01"},
		{9, "09"},
		{10, "10"},
		{25, "25"},
	}

	for _, tt := range tests {
		ch := Challenge{Year: 2024, Day: tt.day}
		if got := ch.PaddedDay(); got != tt.want {
			t.Errorf("PaddedDay(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestChallenge_Dir(t *testing.T) {
	ch := Challenge{Year: 2024, Day: 7}

	tests := []struct {
		name string
		base string
		want string
	}{
		{
			name: "base without year",
			base: filepath.Join("home", "puzzles"),
			want: filepath.Join("home", "puzzles", "2024", "07"),
		},
		{
			name: "base ending in year",
			base: filepath.Join("home", "puzzles", "2024"),
			want: filepath.Join("home", "puzzles", "2024", "07"),
		},
		{
			name: "other year in base is not ours",
			base: filepath.Join("home", "2023"),
			want: filepath.Join("home", "2023", "2024", "07"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ch.Dir(tt.base); got != tt.want {
				t.Errorf("Dir(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}

func TestChallenge_URLs(t *testing.T) {
	ch := Challenge{Year: 2024, Day: 7}
	base := "https://adventofcode.com"

	// URLs use the unpadded day.
	if got, want := ch.URL(base), "https://adventofcode.com/2024/day/7"; got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
	if got, want := ch.InputURL(base), "https://adventofcode.com/2024/day/7/input"; got != want {
		t.Errorf("InputURL = %q, want %q", got, want)
	}
}
