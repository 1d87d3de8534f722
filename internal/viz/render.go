package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/highlight"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/step"
)

// Marker is the plain-text suffix for a class.
func Marker(c highlight.Class) string {
	switch c {
	case highlight.Found:
		return "!"
	case highlight.Current:
		return ">"
	case highlight.Mid:
		return "^"
	case highlight.Excluded:
		return "-"
	case highlight.Sorted:
		return "+"
	case highlight.Pivot:
		return "p"
	case highlight.Highlighted:
		return "*"
	}
	return ""
}

// FormatArray renders the record array with one marker per element.
func FormatArray(r step.Record, mode step.Mode) string {
	if r == nil {
		return "[]"
	}
	arr := r.Common().Array
	classes := highlight.Resolve(r, mode)
	parts := make([]string, len(arr))
	for i, v := range arr {
		parts[i] = strconv.Itoa(v) + Marker(classes[i])
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FormatStep is one line of the plain step listing.
func FormatStep(i int, r step.Record, mode step.Mode) string {
	b := r.Common()
	line := fmt.Sprintf("%4d  %-10s %-44s %s", i, b.Op, b.Action, FormatArray(r, mode))
	switch s := r.(type) {
	case step.SortStep:
		if s.Gap > 0 {
			line += fmt.Sprintf("  gap=%d", s.Gap)
		}
	case step.BinarySearchStep:
		line += fmt.Sprintf("  low=%d high=%d", s.Low, s.High)
	case step.TreeStep:
		line += fmt.Sprintf("  value=%d", s.Value)
	}
	return line
}

// Legend lists the markers that can appear in mode.
func Legend(mode step.Mode) string {
	var classes []highlight.Class
	switch mode {
	case step.ModeSorting:
		classes = []highlight.Class{highlight.Highlighted, highlight.Pivot, highlight.Sorted}
	case step.ModeLinearSearch:
		classes = []highlight.Class{highlight.Current, highlight.Found}
	case step.ModeBinarySearch:
		classes = []highlight.Class{highlight.Mid, highlight.Excluded, highlight.Found}
	case step.ModeTree:
		classes = []highlight.Class{highlight.Highlighted}
	}
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = Marker(c) + " " + c.String()
	}
	return strings.Join(parts, "  ")
}

// Bars renders the record as vertical bars colored by class. Bar heights
// are scaled to the largest value so the tallest bar fills height rows.
func Bars(r step.Record, mode step.Mode, height int, theme Theme) string {
	if r == nil || len(r.Common().Array) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Muted).Render("(empty)")
	}
	arr := r.Common().Array
	classes := highlight.Resolve(r, mode)

	top := 1
	for _, v := range arr {
		top = max(top, v)
	}

	rows := make([]string, height)
	for row := range height {
		level := height - row
		var line strings.Builder
		for i, v := range arr {
			h := max((v*height+top-1)/top, 1)
			cell := "  "
			if h >= level {
				cell = "█ "
			}
			line.WriteString(lipgloss.NewStyle().Foreground(theme.Color(classes[i])).Render(cell))
		}
		rows[row] = line.String()
	}

	return strings.Join(rows, "\n")
}

// Caption names the quantity Chart plots for mode.
func Caption(mode step.Mode) string {
	switch mode {
	case step.ModeBinarySearch:
		return "search window"
	case step.ModeLinearSearch:
		return "cursor position"
	case step.ModeTree:
		return "tree size"
	}
	return "sorted fraction"
}

// Chart plots metrics.Progress over the first upto steps.
func Chart(seq step.Sequence, upto, width, height int) string {
	progress := metrics.Progress(seq)
	if upto >= 0 && upto+1 < len(progress) {
		progress = progress[:upto+1]
	}
	if len(progress) < 2 {
		return ""
	}
	mode := step.ModeFor(seq[0].Kind())
	return asciigraph.Plot(progress,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(Caption(mode)))
}
