package aoc

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// ErrNoDaysReleased is returned when a year calendar page links no days.
//
// This typically occurs when:
//   - the requested year's event has not started yet
//   - the page is not actually a calendar page (e.g. an error page)
var ErrNoDaysReleased = errors.New("no released days found on calendar page")

// ParseCalendar extracts the released day numbers from a year calendar page.
//
// The calendar links every released puzzle as /<year>/day/<N>. The returned
// days are deduplicated and sorted ascending. The year parameter scopes the
// match so links to other years in the page chrome are ignored.
//
// Returns ErrNoDaysReleased if no day links are present.
//
// Example:
//
//	days, err := aoc.ParseCalendar(calendarHTML, 2024)
//	if err == nil {
//	    fmt.Printf("latest released day: %d\n", days[len(days)-1])
//	}
func ParseCalendar(htmlContent string, year int) ([]int, error) {
	re := regexp.MustCompile(fmt.Sprintf(`href="/%d/day/(\d+)"`, year))
	matches := re.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return nil, ErrNoDaysReleased
	}

	daySet := make(map[int]struct{})
	for _, match := range matches {
		day, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		daySet[day] = struct{}{}
	}

	days := make([]int, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Ints(days)

	return days, nil
}

// LatestDay returns the highest released day for the year, fetching and
// parsing the calendar page in one step.
func (c *Client) LatestDay(ctx context.Context, year int) (int, error) {
	page, err := c.FetchCalendar(ctx, year)
	if err != nil {
		return 0, err
	}
	days, err := ParseCalendar(page, year)
	if err != nil {
		return 0, err
	}
	return days[len(days)-1], nil
}
