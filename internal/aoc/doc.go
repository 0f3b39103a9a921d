// Package aoc talks to the puzzle site and understands its pages.
//
// The Client issues cookie-authenticated GET requests for the three resources
// the tool needs: the puzzle input, the statement page, and the year
// calendar. Failures come back classified so callers can print actionable
// messages:
//
//	input, err := client.FetchInput(ctx, ch)
//	switch {
//	case errors.Is(err, aoc.ErrNotReleased):
//	    // puzzle not unlocked yet
//	case errors.Is(err, aoc.ErrBadSession):
//	    // cookie invalid or expired
//	}
//
// ParseStatement extracts the problem description from a statement page and
// Statement.Render turns it into the normalized text stored on disk; the
// statement refresh comparison operates on exactly that rendering.
//
// ParseCalendar reads the released-day links off a year page, which lets the
// tool tell a user requesting day 20 that only day 8 is out so far.
package aoc
