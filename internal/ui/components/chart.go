// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/trafficbuddy-tui/internal/models"
	"github.com/j-veylop/trafficbuddy-tui/internal/transform"
	"github.com/j-veylop/trafficbuddy-tui/internal/ui/styles"
)

// NoDataText is shown by charts with nothing to plot.
const NoDataText = "No data available"

// ChartPalette colors successive bars of a distribution chart.
var ChartPalette = []lipgloss.Color{
	lipgloss.Color("#6366f1"),
	lipgloss.Color("#8b5cf6"),
	lipgloss.Color("#ec4899"),
	lipgloss.Color("#10b981"),
	lipgloss.Color("#f59e0b"),
}

// DivisionInfractions is the fixed data set behind the division chart.
var DivisionInfractions = []models.CategoryPoint{
	{Name: "North", Value: 4200},
	{Name: "South", Value: 3800},
	{Name: "East", Value: 2900},
	{Name: "West", Value: 3500},
	{Name: "Central", Value: 4100},
}

// RenderHeader renders the page header spanning width columns.
func RenderHeader(title string, width int) string {
	style := styles.HeaderStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(title)
}

// RenderTimeSeriesChart plots a time series as an ASCII line chart inside a card.
func RenderTimeSeriesChart(points []models.TimeSeriesPoint, title string, width, height int) string {
	return renderCard(title, width, timeSeriesBody(points, width-6, height))
}

func timeSeriesBody(points []models.TimeSeriesPoint, width, height int) string {
	if len(points) == 0 {
		return styles.HelpStyle.Render(NoDataText)
	}

	// Ensure minimum dimensions
	width = max(width-8, 20)
	height = max(height, 3)

	data := transform.TimeSeriesValues(points)
	if len(data) == 1 {
		data = append(data, data[0])
	}

	labels := transform.TimeSeriesLabels(points)
	caption := labels[0]
	if len(labels) > 1 {
		caption = labels[0] + " - " + labels[len(labels)-1]
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.SlateBlue),
	)
}

// RenderCategoryChart renders a category distribution as horizontal bars
// with each category's share of the whole.
func RenderCategoryChart(points []models.CategoryPoint, title string, width int) string {
	if len(points) == 0 {
		return renderCard(title, width, styles.HelpStyle.Render(NoDataText))
	}
	values, labels := transform.CategoryValues(points)
	return renderCard(title, width, RenderBarChart(values, labels, width-6, true))
}

// RenderDivisionChart renders infractions by division.
func RenderDivisionChart(width int) string {
	values, labels := transform.CategoryValues(DivisionInfractions)
	return renderCard("Infractions by Division", width, RenderBarChart(values, labels, width-6, false))
}

// RenderBarChart creates a simple horizontal bar chart. With share set, each
// bar also shows its percentage of the total.
func RenderBarChart(values []float64, labels []string, width int, share bool) string {
	if len(values) == 0 {
		return ""
	}

	// Find max value for scaling
	maxVal, total := 0.0, 0.0
	for _, v := range values {
		maxVal = max(maxVal, v)
		total += v
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Find max label length
	maxLabelLen := 0
	for _, l := range labels {
		maxLabelLen = max(maxLabelLen, lipgloss.Width(l))
	}

	valueWidth := 8
	if share {
		valueWidth = 16
	}
	barWidth := max(width-maxLabelLen-valueWidth-3, 10)

	lines := make([]string, 0, len(values))
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		paddedLabel := lipgloss.NewStyle().Width(maxLabelLen).Align(lipgloss.Right).Render(label)

		barLen := max(int((v/maxVal)*float64(barWidth)), 0)
		color := ChartPalette[i%len(ChartPalette)]
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))

		valueStr := fmt.Sprintf(" %.0f", v)
		if share && total > 0 {
			valueStr += fmt.Sprintf(" (%.1f%%)", v/total*100)
		}

		lines = append(lines, paddedLabel+" │"+bar+styles.HelpStyle.Render(valueStr))
	}

	return strings.Join(lines, "\n")
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}

// renderCard frames body with a titled border. A non-positive width lets
// the card size itself to its content.
func renderCard(title string, width int, body string) string {
	style := styles.CardStyle
	if width > 0 {
		style = style.Width(max(width-2, 10))
	}
	return style.Render(styles.CardTitleStyle.Render(title) + "\n\n" + body)
}
