package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChartMarker labels a bar index below the x-axis.
type ChartMarker struct {
	Index int
	Label string
}

// BarChart renders one column per value, sampling when there are more values than columns.
// Highlighted values use the theme's event color. Markers are drawn as ▲ under their column
// and listed in a legend line.
func BarChart(values []float64, highlight []bool, markers []ChartMarker, width, height int) string {
	n := len(values)
	if n == 0 {
		return ""
	}
	if height < 3 {
		height = 3
	}

	t := Active

	maxVal := 0.0
	for _, v := range values {
		maxVal = math.Max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: compute tick step and ceiling
	tickStep := chartTickStep(maxVal)
	maxIntervals := max(2, height/2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(1, int(math.Round(ceiling/tickStep)))
	rowsPerTick := max(2, height/numIntervals)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(5, len(formatChartLabel(ceiling))+1)
	tickLabels := make(map[int]string, numIntervals)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	chartW := max(10, width-yLabelW-1)

	// column index -> source index
	cols := n
	barW := 1
	if n > chartW {
		cols = chartW
	} else {
		barW = min(3, chartW/n)
	}
	source := make([]int, cols)
	for c := range source {
		if cols == n || cols == 1 {
			source[c] = c
		} else {
			source[c] = c * (n - 1) / (cols - 1)
		}
	}
	column := func(idx int) int {
		if cols == n {
			return idx * barW
		}
		if n == 1 {
			return 0
		}
		return idx * (cols - 1) / (n - 1)
	}
	axisLen := cols * barW

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	eventStyle := lipgloss.NewStyle().Foreground(t.Event)

	var b strings.Builder

	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, tickLabels[row])))

		for _, src := range source {
			v := values[src]
			style := barStyle
			if src < len(highlight) && highlight[src] {
				style = eventStyle
			}
			switch {
			case v >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				idx = min(8, max(1, idx))
				b.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	// X-axis line with 0 label
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", yLabelW, "0", strings.Repeat("─", axisLen))))

	if len(markers) > 0 {
		line := []rune(strings.Repeat(" ", axisLen))
		legend := make([]string, 0, len(markers))
		for _, m := range markers {
			if m.Index < 0 || m.Index >= n {
				continue
			}
			pos := column(m.Index)
			if pos < len(line) {
				line[pos] = '▲'
			}
			legend = append(legend, "▲ "+m.Label)
		}
		if len(legend) > 0 {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", yLabelW+1))
			b.WriteString(eventStyle.Render(strings.TrimRight(string(line), " ")))
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", yLabelW+1))
			b.WriteString(axisStyle.Render(strings.Join(legend, "  ")))
		}
	}

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("$%.0fM", v/1e6)
		}
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("$%.0fk", v/1e3)
		}
		return fmt.Sprintf("$%.1fk", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
