// Package transform reshapes dashboard aggregates into the structures each
// chart renderer expects. Every function is pure and total.
package transform

import (
	"strings"
	"time"

	"github.com/j-veylop/trafficbuddy-tui/internal/models"
)

// TimeSeriesLabelLayout renders bucket dates as en-US "Mar 13".
const TimeSeriesLabelLayout = "Jan 2"

// bucketLayouts are the aggregation key formats the backend is known to send.
var bucketLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// LabeledRatio pairs a card title with its two-value ratio.
type LabeledRatio struct {
	Title string
	Ratio models.TwoValueRatio
}

// ToCategoryPoints maps {label, count} buckets to chart points, keeping order.
func ToCategoryPoints(types []models.TypeCount) []models.CategoryPoint {
	points := make([]models.CategoryPoint, 0, len(types))
	for _, t := range types {
		points = append(points, models.CategoryPoint{Name: t.Label, Value: t.Count})
	}
	return points
}

// ToTwoValueRatio pairs partial with total-partial. The remainder is not
// clamped: partial > total yields a negative ValueB.
func ToTwoValueRatio(partial, total int, partialLabel, totalLabel string) models.TwoValueRatio {
	return models.TwoValueRatio{
		LabelA: partialLabel,
		ValueA: partial,
		LabelB: totalLabel,
		ValueB: total - partial,
	}
}

// ToTimeSeries labels each day bucket with a short month/day string.
// A nil input yields an empty series.
func ToTimeSeries(days []models.DayCount) []models.TimeSeriesPoint {
	points := make([]models.TimeSeriesPoint, 0, len(days))
	for _, d := range days {
		points = append(points, models.TimeSeriesPoint{
			Name:  FormatBucketDate(d.Bucket),
			Value: d.Count,
		})
	}
	return points
}

// FormatBucketDate formats an aggregation key as "Jan 2" in UTC. Keys that
// are not dates are returned unchanged.
func FormatBucketDate(bucket string) string {
	trimmed := strings.TrimSpace(bucket)
	for _, layout := range bucketLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Format(TimeSeriesLabelLayout)
		}
	}
	return bucket
}

// StatusRatios builds the four summary cards shown above the charts.
func StatusRatios(s models.DashboardSummary) []LabeledRatio {
	return []LabeledRatio{
		{
			Title: "Pending Queries",
			Ratio: ToTwoValueRatio(s.QueryStatus.Pending, s.TotalQueries, "Pending", "Total"),
		},
		{
			Title: "In Progress",
			Ratio: ToTwoValueRatio(s.QueryStatus.InProgress, s.TotalQueries, "In Progress", "Total"),
		},
		{
			Title: "Resolved Issues",
			Ratio: ToTwoValueRatio(s.QueryStatus.Resolved, s.TotalQueries, "Resolved", "Total"),
		},
		{
			Title: "Active Users",
			Ratio: ToTwoValueRatio(s.ActiveSessions, s.UserCount, "Active Sessions", "Total Users"),
		},
	}
}

// TimeSeriesValues extracts the y values of a series for plotting.
func TimeSeriesValues(points []models.TimeSeriesPoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = float64(p.Value)
	}
	return values
}

// TimeSeriesLabels extracts the x labels of a series.
func TimeSeriesLabels(points []models.TimeSeriesPoint) []string {
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Name
	}
	return labels
}

// CategoryValues extracts bar heights and labels from category points.
func CategoryValues(points []models.CategoryPoint) ([]float64, []string) {
	values := make([]float64, len(points))
	labels := make([]string, len(points))
	for i, p := range points {
		values[i] = float64(p.Value)
		labels[i] = p.Name
	}
	return values, labels
}
