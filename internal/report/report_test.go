package report

import (
	"math"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestSummary(t *testing.T) {
	out := Summary("point", []Row{
		{Label: "seeds", Value: "12"},
		{Label: "furthest_radius", Value: "4.5"},
	})

	assert.Contains(t, out, "point")
	assert.Contains(t, out, "seeds            12")
	assert.Contains(t, out, "furthest_radius  4.5")
	assert.Contains(t, out, "╭")
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "done", Status(false))
	assert.Equal(t, "interrupted", Status(true))
}

func TestMetricRows(t *testing.T) {
	rows := MetricRows(map[string]float64{
		"seeds":             3,
		"fractal_dimension": math.NaN(),
		"furthest_radius":   2.25,
	})

	assert.Equal(t, []Row{
		{Label: "fractal_dimension", Value: "n/a"},
		{Label: "furthest_radius", Value: "2.25"},
		{Label: "seeds", Value: "3"},
	}, rows)
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline([]float64{1}, 0))
	assert.Equal(t, "────", Sparkline(nil, 4))
	assert.Equal(t, "▁▄█", Sparkline([]float64{0, 0.5, 1}, 8))
	assert.Equal(t, "▁▁", Sparkline([]float64{3, 3}, 8))
}

func TestHistogram(t *testing.T) {
	assert.Nil(t, Histogram(nil, 4))
	assert.Equal(t, []float64{2, 0, 1, 1}, Histogram([]float64{0, 0.1, 2, 4}, 4))
	assert.Equal(t, []float64{3, 0}, Histogram([]float64{5, 5, 5}, 2))
}
