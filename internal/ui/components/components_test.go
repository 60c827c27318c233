package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/trafficbuddy-tui/internal/models"
	"github.com/j-veylop/trafficbuddy-tui/internal/transform"
)

func TestSpinner_Methods(t *testing.T) {
	s := NewSpinner("Loading")

	if !strings.Contains(s.ViewWithLabel(), "Loading") {
		t.Error("ViewWithLabel should contain the label")
	}
	if s.Init() == nil {
		t.Error("Init should return command")
	}
	if _, cmd := s.Update(spinner.TickMsg{}); cmd == nil {
		t.Error("Update should return command for tick")
	}
}

func TestSpinner_ViewCentered(t *testing.T) {
	s := NewSpinner("Loading dashboard data...")

	if got := s.ViewCentered(0, 0); got != s.ViewWithLabel() {
		t.Errorf("ViewCentered(0, 0) = %q, want the plain label view", got)
	}

	view := s.ViewCentered(40, 5)
	if lipgloss.Height(view) != 5 {
		t.Errorf("height = %d, want 5", lipgloss.Height(view))
	}
	if !strings.Contains(view, "Loading dashboard data...") {
		t.Error("centered view lost the label")
	}
}

func TestRenderHeader(t *testing.T) {
	view := RenderHeader("Traffic Buddy Dashboard", 60)
	if !strings.Contains(view, "Traffic Buddy Dashboard") {
		t.Error("header should contain its title")
	}
	if w := lipgloss.Width(view); w != 60 {
		t.Errorf("width = %d, want 60", w)
	}
}

func TestRenderTimeSeriesChart(t *testing.T) {
	tests := []struct {
		name   string
		points []models.TimeSeriesPoint
		want   []string
	}{
		{
			name:   "empty",
			points: nil,
			want:   []string{"Reports Per Day", NoDataText},
		},
		{
			name:   "single point",
			points: []models.TimeSeriesPoint{{Name: "Mar 13", Value: 4}},
			want:   []string{"Reports Per Day", "Mar 13"},
		},
		{
			name: "range",
			points: []models.TimeSeriesPoint{
				{Name: "Mar 10", Value: 1},
				{Name: "Mar 11", Value: 5},
				{Name: "Mar 12", Value: 3},
			},
			want: []string{"Mar 10 - Mar 12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ansi.Strip(RenderTimeSeriesChart(tt.points, "Reports Per Day", 60, 6))
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("chart missing %q:\n%s", w, view)
				}
			}
		})
	}
}

func TestRenderCategoryChart(t *testing.T) {
	points := []models.CategoryPoint{
		{Name: "Accident", Value: 3},
		{Name: "Parking", Value: 1},
	}
	view := ansi.Strip(RenderCategoryChart(points, "Report Categories", 60))

	for _, w := range []string{"Report Categories", "Accident", "Parking", "(75.0%)", "(25.0%)"} {
		if !strings.Contains(view, w) {
			t.Errorf("chart missing %q:\n%s", w, view)
		}
	}
	if strings.Index(view, "Accident") > strings.Index(view, "Parking") {
		t.Error("categories should keep their order")
	}

	empty := ansi.Strip(RenderCategoryChart(nil, "Report Categories", 60))
	if !strings.Contains(empty, NoDataText) {
		t.Error("empty chart should say there is no data")
	}
}

func TestRenderDivisionChart(t *testing.T) {
	view := ansi.Strip(RenderDivisionChart(60))
	for _, d := range DivisionInfractions {
		if !strings.Contains(view, d.Name) {
			t.Errorf("division chart missing %q", d.Name)
		}
	}
}

func TestRenderBarChart(t *testing.T) {
	if RenderBarChart(nil, nil, 40, false) != "" {
		t.Error("empty bar chart should render nothing")
	}

	view := ansi.Strip(RenderBarChart([]float64{0, 0}, []string{"a", "b"}, 40, true))
	if got := strings.Count(view, "\n") + 1; got != 2 {
		t.Errorf("lines = %d, want 2", got)
	}
}

func TestRatioFraction(t *testing.T) {
	tests := []struct {
		name  string
		ratio models.TwoValueRatio
		want  float64
	}{
		{"typical", models.TwoValueRatio{ValueA: 30, ValueB: 70}, 0.3},
		{"empty", models.TwoValueRatio{}, 0},
		{"negative remainder", models.TwoValueRatio{ValueA: 5, ValueB: -2}, 1},
		{"negative partial", models.TwoValueRatio{ValueA: -1, ValueB: 4}, 0},
		{"no remainder", models.TwoValueRatio{ValueA: 4}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ratioFraction(tt.ratio)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("ratioFraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderTwoValueRadial(t *testing.T) {
	ratio := transform.ToTwoValueRatio(30, 100, "Pending", "Total")
	view := ansi.Strip(RenderTwoValueRadial(ratio, "Pending Queries", 20, 35, 100))

	for _, w := range []string{"Pending Queries", "Pending 30", "Total 70", "30%"} {
		if !strings.Contains(view, w) {
			t.Errorf("radial missing %q:\n%s", w, view)
		}
	}
	if strings.Contains(view, "!") {
		t.Error("positive remainder should not be flagged")
	}

	negative := ansi.Strip(RenderTwoValueRadial(transform.ToTwoValueRatio(12, 10, "Pending", "Total"), "Pending Queries", 20, 35, 100))
	if !strings.Contains(negative, "Total -2") || !strings.Contains(negative, "!") {
		t.Errorf("negative remainder should be shown and flagged:\n%s", negative)
	}
}

func TestRenderRing(t *testing.T) {
	if RenderRing(0.5, 20, 0, 100) != "" {
		t.Error("zero radius should render nothing")
	}

	full := ansi.Strip(RenderRing(1, 20, 35, 100))
	if strings.Contains(full, radialEmpty) || !strings.Contains(full, radialFilled) {
		t.Error("full ring should only contain filled cells")
	}

	empty := ansi.Strip(RenderRing(0, 20, 35, 100))
	if strings.Contains(empty, radialFilled) || !strings.Contains(empty, radialEmpty) {
		t.Error("empty ring should only contain empty cells")
	}

	if h := lipgloss.Height(full); h != 8 {
		t.Errorf("height = %d, want 8", h)
	}
}

func TestInterpolateColor(t *testing.T) {
	if got := interpolateColor("#000000", "#ffffff", 0); got != "#000000" {
		t.Errorf("t=0: %s", got)
	}
	if got := interpolateColor("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Errorf("t=1: %s", got)
	}
	if got := hexToRGB("zz"); got != [3]int{0, 0, 0} {
		t.Errorf("bad hex = %v, want black", got)
	}
}

func TestRenderActivityTable(t *testing.T) {
	entries := []models.ActivityEntry{
		{
			ID:          "1",
			QueryType:   "Accident",
			Description: "Two cars collided",
			Status:      models.StatusPending,
			Location:    models.Location{Address: "123 Main St, Springfield, IL, 62704"},
			Timestamp:   time.Date(2024, 3, 13, 14, 5, 9, 0, time.UTC),
		},
		{
			ID:          "2",
			QueryType:   "Parking",
			Description: strings.Repeat("very long description ", 10),
			Status:      models.StatusResolved,
		},
	}
	rows := transform.RecentRows(entries, transform.RecentActivityLimit, time.UTC)

	view := ansi.Strip(RenderActivityTable(rows, 120))
	for _, w := range []string{"TYPE", "STATUS", "Accident", "123 Main St, Springfield", "Pending", "Resolved", "3/13/2024, 2:05:09 PM", "…"} {
		if !strings.Contains(view, w) {
			t.Errorf("table missing %q:\n%s", w, view)
		}
	}
	if strings.Contains(view, "IL") {
		t.Error("location should be shortened")
	}

	if got := ansi.Strip(RenderActivityTable(nil, 120)); got != "No recent activity" {
		t.Errorf("empty table = %q", got)
	}
}
