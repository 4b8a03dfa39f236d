package export

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
	"github.com/wcharczuk/go-chart/v2"
)

// DemographicsCharts renders the summary's age distribution as a bar chart
// and its gender distribution as a pie chart, both returned as base64 PNG
// keyed the way the API exposes them. Empty distributions produce no chart.
// The two charts render independently: a failure in one is reported in the
// returned error while the other still appears in the map.
func DemographicsCharts(summary *models.InterviewSummary) (map[string]string, error) {
	charts := make(map[string]string)
	var errs []error

	if len(summary.QuantitativeResults.AgeDistribution) > 0 {
		png, err := renderBarChart("Age Distribution", summary.QuantitativeResults.AgeDistribution)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to render age chart: %w", err))
		} else {
			charts["age_distribution"] = png
		}
	}

	if len(summary.QuantitativeResults.GenderDistribution) > 0 {
		png, err := renderPieChart("Gender Distribution", summary.QuantitativeResults.GenderDistribution)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to render gender chart: %w", err))
		} else {
			charts["gender_distribution"] = png
		}
	}

	return charts, errors.Join(errs...)
}

func renderBarChart(title string, counts map[string]int) (string, error) {
	maxCount := 0
	bars := make([]chart.Value, 0, len(counts))
	for _, label := range sortedKeys(counts) {
		bars = append(bars, chart.Value{Label: label, Value: float64(counts[label])})
		if counts[label] > maxCount {
			maxCount = counts[label]
		}
	}

	// An explicit range keeps the render from rejecting uniform counts,
	// where the values alone give a zero-height window.
	graph := chart.BarChart{
		Title:    title,
		Width:    640,
		Height:   400,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
		Bars: bars,
	}

	return encodePNG(graph.Render)
}

func renderPieChart(title string, counts map[string]int) (string, error) {
	values := make([]chart.Value, 0, len(counts))
	for _, label := range sortedKeys(counts) {
		values = append(values, chart.Value{Label: label, Value: float64(counts[label])})
	}

	graph := chart.PieChart{
		Title:  title,
		Width:  480,
		Height: 480,
		Values: values,
	}

	return encodePNG(graph.Render)
}

func encodePNG(render func(chart.RendererProvider, io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
