// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	Title lipgloss.Style
	Muted lipgloss.Style
	Value lipgloss.Style
	Pass  lipgloss.Style
	Fail  lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		Value: lipgloss.NewStyle().
			Bold(true),
		Pass: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		Fail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")),
	}
}

// mark renders a pass or fail glyph.
func (s styles) mark(ok bool) string {
	if ok {
		return s.Pass.Render("✓")
	}
	return s.Fail.Render("✗")
}

// renderMarkdown renders md for the terminal, falling back to the raw
// text when the renderer cannot be built.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
