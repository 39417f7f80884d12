// SPDX-License-Identifier: MIT

// Package render draws a belief grid as a terminal heat map.
//
// Every cell becomes a fixed-width right-aligned label. With color enabled
// the cell background runs from near-black (no belief) to bright yellow
// (certainty); inadmissible cells are drawn as a grey "##" block.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridbelief/belief"
)

// Options controls the heat map.
type Options struct {
	// Title, when set, is printed above the grid.
	Title string
	// Precision is the number of decimals printed per cell (default 4).
	Precision int
	// Color enables ANSI foreground/background colors.
	Color bool
}

const defaultPrecision = 4

const (
	wallLabel    = "##"
	cellPaddingX = 1
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	wallStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))            // Grey
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Grid renders g; it returns "" for a nil grid.
func Grid(g *belief.Grid, opts Options) string {
	if g == nil || g.Height() == 0 {
		return ""
	}
	prec := opts.Precision
	if prec <= 0 {
		prec = defaultPrecision
	}
	width := prec + 2 + 2*cellPaddingX // "0." + decimals + padding

	rows := make([]string, 0, g.Height())
	for _, row := range g.Cells() {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, cell(c, prec, width, opts.Color))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	body := frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	if opts.Title == "" {
		return body
	}
	title := opts.Title
	if opts.Color {
		title = titleStyle.Render(title)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

// cell renders one label padded to width.
func cell(c belief.Cell, prec, width int, color bool) string {
	st := lipgloss.NewStyle().Width(width).Align(lipgloss.Right).PaddingRight(cellPaddingX)

	p, ok := c.Probability()
	if !ok {
		if color {
			st = st.Inherit(wallStyle)
		}
		return st.Render(wallLabel)
	}

	label := fmt.Sprintf("%.*f", prec, p)
	if color {
		st = st.Background(lipgloss.Color(heat(p))).Foreground(lipgloss.Color(ink(p)))
	}
	return st.Render(label)
}

// heat maps p in [0,1] to a background color from dark blue to bright yellow.
func heat(p float64) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	r := int(20 + p*235)
	g := int(20 + p*215)
	b := int(60 - p*60)
	return GenerateHexColor(r, g, b)
}

// ink keeps the label readable against its background.
func ink(p float64) string {
	if p > 0.5 {
		return "#000000"
	}
	return "#FFFFFF"
}

// GenerateHexColor formats r, g, b (each 0-255) as #RRGGBB.
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// Plain strips trailing spaces from every line of s, which keeps golden
// comparisons of uncolored output stable.
func Plain(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
