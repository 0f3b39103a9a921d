package aoc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"

	"github.com/gisleudo-cortez/aoc-init/internal/model"
)

// dayDescClass marks the article elements holding the problem description.
const dayDescClass = "day-desc"

// ErrStatementNotFound is returned when a statement page contains no problem
// description articles.
//
// This typically occurs when:
//   - the puzzle page exists but the description markup changed
//   - the session cookie maps to a page without puzzle content
var ErrStatementNotFound = errors.New("no problem description found on page")

// Statement is the extracted problem statement for one challenge.
//
// Parts holds the plain text of each description article on the page: one
// entry before Part Two is solved, two after, and Render labels any further
// parts generically should the site ever add them.
type Statement struct {
	// Challenge is the puzzle this statement belongs to.
	Challenge model.Challenge

	// BaseURL is the site base URL, used for the source lines in Render.
	BaseURL string

	// Parts are the extracted part texts in page order.
	Parts []string
}

// ParseStatement extracts the problem description parts from a statement
// page.
//
// The site wraps each part in <article class="day-desc">. Each article is
// rendered to plain text: text nodes are trimmed and joined with newlines,
// script and style content is skipped, and empty lines are dropped. The
// result is deterministic for a given page, which is what makes the
// created/updated/unchanged comparison meaningful.
//
// Returns ErrStatementNotFound when no description article is present.
//
// Example:
//
//	parts, err := aoc.ParseStatement(pageHTML)
//	if err != nil {
//	    return err
//	}
//	st := aoc.Statement{Challenge: ch, BaseURL: baseURL, Parts: parts}
//	text := st.Render()
func ParseStatement(htmlContent string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse statement page: %w", err)
	}

	var parts []string
	for _, article := range dom.GetElementsByTagName(doc, "article") {
		if !hasClass(article, dayDescClass) {
			continue
		}
		parts = append(parts, renderText(article))
	}

	if len(parts) == 0 {
		return nil, ErrStatementNotFound
	}
	return parts, nil
}

// Render produces the text persisted to the statement file.
//
// The layout is a small header naming the challenge and its endpoints,
// followed by each part under a "--- Part N ---" title:
//
//	Problem Statement for Advent of Code 2024 Day 7
//	Source: https://adventofcode.com/2024/day/7
//	Input File URL: https://adventofcode.com/2024/day/7/input
//
//	--- Part One ---
//	...
//
//	--- Part Two ---
//	...
func (s Statement) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem Statement for Advent of Code %d Day %d\n", s.Challenge.Year, s.Challenge.Day)
	fmt.Fprintf(&b, "Source: %s\n", s.Challenge.URL(s.BaseURL))
	fmt.Fprintf(&b, "Input File URL: %s\n\n", s.Challenge.InputURL(s.BaseURL))

	for i, part := range s.Parts {
		b.WriteString(partTitle(i))
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(part))
		b.WriteString("\n\n")
	}

	return strings.TrimSpace(b.String())
}

// partTitle returns the heading for the i-th (zero-based) part.
func partTitle(i int) string {
	switch i {
	case 0:
		return "--- Part One ---"
	case 1:
		return "--- Part Two ---"
	default:
		return fmt.Sprintf("--- Part %d ---", i+1)
	}
}

// hasClass reports whether the node's class attribute contains the given
// class name.
func hasClass(node *html.Node, class string) bool {
	for _, c := range strings.Fields(dom.GetAttribute(node, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// renderText flattens an element to plain text.
//
// Every non-empty text node is trimmed and emitted on its own line, in
// document order. Script and style subtrees are skipped.
func renderText(node *html.Node) string {
	var lines []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)

	return strings.Join(lines, "\n")
}
