package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/ui/theme"
)

// Bar is one column of a BarChart.
type Bar struct {
	Label string
	Value int
	Up    bool
}

// BarChart renders vertical bars with values on top and labels below.
type BarChart struct {
	Bars   []Bar
	Height int
	// ColWidth is the width of one column including spacing.
	ColWidth int
}

// View renders the chart.
func (c BarChart) View() string {
	if len(c.Bars) == 0 {
		return ""
	}
	height := max(c.Height, 1)
	col := max(c.ColWidth, 3)
	peak := 0
	for _, b := range c.Bars {
		peak = max(peak, b.Value)
	}

	levels := make([]int, len(c.Bars))
	for i, b := range c.Bars {
		if peak > 0 {
			levels[i] = (b.Value*height + peak - 1) / peak
		}
	}

	cell := func(s string) string {
		return lipgloss.PlaceHorizontal(col, lipgloss.Center, s)
	}

	var rows []string
	var values strings.Builder
	for _, b := range c.Bars {
		values.WriteString(cell(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprint(b.Value))))
	}
	rows = append(rows, values.String())

	block := strings.Repeat("█", max(col-2, 1))
	for row := height; row >= 1; row-- {
		var line strings.Builder
		for i, b := range c.Bars {
			if levels[i] >= row {
				style := theme.BarUp
				if !b.Up {
					style = theme.BarDown
				}
				line.WriteString(cell(style.Render(block)))
			} else {
				line.WriteString(strings.Repeat(" ", col))
			}
		}
		rows = append(rows, line.String())
	}

	var labels strings.Builder
	for _, b := range c.Bars {
		labels.WriteString(cell(lipgloss.NewStyle().Foreground(theme.Text).Render(b.Label)))
	}
	rows = append(rows, labels.String())
	return strings.Join(rows, "\n")
}
