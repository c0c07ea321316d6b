// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package challenge is a graded exercise set for the lamb algebra.
//
// Each [Challenge] asks for one definition written as Go source, for
// example
//
//	var NOT = func(b any) any {
//		return func(x any) any { return func(y any) any { return ap(b, y, x) } }
//	}
//
// A [Runner] interprets the submission together with a small prelude of
// encodings (I, K, M, Y, TRUE, FALSE, ZERO..THREE, SUCC, PAIR) and helpers
// (ap, toInt, toChurch, toBool), then evaluates every [Case]. The value a
// case expects is computed by the compiled algebra in package lamb, read
// back through package conv, so the interpreted submission is graded
// against the same definitions the library ships.
package challenge

import (
	"fmt"
	"slices"
	"strings"
)

// Difficulty grades a challenge.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Chapter groups challenges.
type Chapter struct {
	Num   int
	Title string
}

// Case is one graded expression.
//
// Setup holds statements run before Expr inside the generated check
// function. Want computes the expected host value from the compiled
// algebra.
type Case struct {
	Description string
	Setup       string
	Expr        string
	Want        func() (any, error)
}

// Challenge is one exercise.
type Challenge struct {
	ID          string
	Chapter     int
	Title       string
	Difficulty  Difficulty
	Description string
	Concepts    []string
	Hint        string
	Given       []string
	Starter     string
	Solution    string
	// ExportName is the identifier the submission must declare. The
	// prelude entry of the same name is withheld.
	ExportName string
	Cases      []Case
}

// Chapters lists chapter metadata in order.
func Chapters() []Chapter {
	return slices.Clone(chapters)
}

// ChapterTitle returns the title of chapter num, or "".
func ChapterTitle(num int) string {
	for _, ch := range chapters {
		if ch.Num == num {
			return ch.Title
		}
	}
	return ""
}

// All returns every challenge in catalog order.
func All() []*Challenge {
	return slices.Clone(catalog)
}

// Lookup finds a challenge by id.
func Lookup(id string) (*Challenge, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// InChapter returns the challenges of chapter num in catalog order.
func InChapter(num int) []*Challenge {
	var out []*Challenge
	for _, c := range catalog {
		if c.Chapter == num {
			out = append(out, c)
		}
	}
	return out
}

// Neighbors returns the challenges before and after id in catalog order.
// Either may be nil.
func Neighbors(id string) (prev, next *Challenge) {
	i := slices.IndexFunc(catalog, func(c *Challenge) bool { return c.ID == id })
	if i < 0 {
		return nil, nil
	}
	if i > 0 {
		prev = catalog[i-1]
	}
	if i < len(catalog)-1 {
		next = catalog[i+1]
	}
	return prev, next
}

// Markdown renders the lesson card: everything except the hint and the
// solution.
func (c *Challenge) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	fmt.Fprintf(&b, "*Chapter %d: %s* · **%s**\n\n", c.Chapter, ChapterTitle(c.Chapter), c.Difficulty)
	fmt.Fprintf(&b, "%s\n\n", c.Description)
	if len(c.Concepts) > 0 {
		b.WriteString("## Key Concepts\n\n")
		for _, k := range c.Concepts {
			fmt.Fprintf(&b, "- %s\n", k)
		}
		b.WriteString("\n")
	}
	if len(c.Given) > 0 {
		b.WriteString("## Given\n\n```go\n")
		for _, g := range c.Given {
			fmt.Fprintf(&b, "%s\n", g)
		}
		b.WriteString("```\n\n")
	}
	fmt.Fprintf(&b, "## Starter\n\n```go\n%s\n```\n\n", c.Starter)
	b.WriteString("## Tests\n\n")
	for _, tc := range c.Cases {
		fmt.Fprintf(&b, "- %s\n", tc.Description)
	}
	return b.String()
}

// HintMarkdown renders the hint.
func (c *Challenge) HintMarkdown() string {
	return fmt.Sprintf("**Hint:** %s\n", c.Hint)
}

// SolutionMarkdown renders the reference solution.
func (c *Challenge) SolutionMarkdown() string {
	return fmt.Sprintf("## Solution\n\n```go\n%s\n```\n", c.Solution)
}
