// Package report renders run summaries for the terminal.
package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Row struct {
	Label string
	Value string
}

// Summary renders a titled panel with one aligned row per entry.
func Summary(title string, rows []Row) string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r.Label))
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, Title.Render(title))
	for _, r := range rows {
		label := MetricLabel.Render(fmt.Sprintf("%-*s", width, r.Label))
		lines = append(lines, label+"  "+MetricValue.Render(r.Value))
	}
	return Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func Status(interrupted bool) string {
	if interrupted {
		return StatusInterrupted.Render("interrupted")
	}
	return StatusDone.Render("done")
}

// MetricRows formats metrics in name order. Non-finite values print as n/a.
func MetricRows(metrics map[string]float64) []Row {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, Row{Label: name, Value: Float(metrics[name])})
	}
	return rows
}

func Float(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Sparkline draws values as a one-line bar chart of at most width cells.
func Sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return Subtle.Render(strings.Repeat("─", width))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	step := max(len(values)/width, 1)

	var sb strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / span
		idx := min(max(int(norm*float64(len(chars)-1)), 0), len(chars)-1)

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			sb.WriteString(SparkHigh.Render(c))
		case norm > 0.3:
			sb.WriteString(SparkMid.Render(c))
		default:
			sb.WriteString(SparkLow.Render(c))
		}
	}
	return sb.String()
}

// Histogram bins values into n equal-width buckets over their range.
func Histogram(values []float64, n int) []float64 {
	if len(values) == 0 || n <= 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	bins := make([]float64, n)
	span := hi - lo
	for _, v := range values {
		i := 0
		if span > 0 {
			i = min(int((v-lo)/span*float64(n)), n-1)
		}
		bins[i]++
	}
	return bins
}
