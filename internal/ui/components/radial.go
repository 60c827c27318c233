package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/trafficbuddy-tui/internal/logger"
	"github.com/j-veylop/trafficbuddy-tui/internal/models"
	"github.com/j-veylop/trafficbuddy-tui/internal/ui/styles"
)

const (
	radialFromHex = "#6366f1"
	radialToHex   = "#ec4899"

	// pixels covered by one terminal row of a radial chart
	radialRowPixels = 12.5

	radialFilled = "█"
	radialEmpty  = "░"
)

// RadialColorB is the color of the remainder segment.
var RadialColorB = styles.Subtle

// RenderTwoValueRadial draws ratio as a ring whose first segment covers
// ValueA's share of the whole. Radii and height are in pixels of the
// original chart and are scaled to terminal cells. A negative ValueB is
// drawn as a full ring and flagged next to the legend.
func RenderTwoValueRadial(ratio models.TwoValueRatio, title string, innerRadius, outerRadius, height int) string {
	fraction := ratioFraction(ratio)

	ring := RenderRing(fraction, innerRadius, outerRadius, height)
	legend := RenderLegend([]LegendItem{
		{Label: fmt.Sprintf("%s %d", ratio.LabelA, ratio.ValueA), Color: lipgloss.Color(radialFromHex)},
		{Label: fmt.Sprintf("%s %d", ratio.LabelB, ratio.ValueB), Color: RadialColorB},
	})
	if ratio.ValueB < 0 {
		legend += " " + styles.WarningTextStyle.Render("!")
	}

	barWidth := max(lipgloss.Width(ring), 10)
	bar := progress.New(
		progress.WithScaledGradient(radialFromHex, radialToHex),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	share := styles.StatValueStyle.Render(fmt.Sprintf("%.0f%%", ratio.Share()))

	body := lipgloss.JoinVertical(lipgloss.Center,
		ring,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, bar.ViewAs(fraction), " ", share),
		legend,
	)
	return styles.CardStyle.Render(styles.CardTitleStyle.Render(title) + "\n" + body)
}

// ratioFraction is ValueA's share of the ring, kept within [0, 1].
func ratioFraction(r models.TwoValueRatio) float64 {
	if r.ValueA <= 0 {
		return 0
	}
	if r.ValueB <= 0 {
		return 1
	}
	return math.Min(1, r.Share()/100)
}

// RenderRing rasterizes a donut to terminal cells. Cells between the two
// radii are filled clockwise from twelve o'clock up to fraction of a turn.
func RenderRing(fraction float64, innerRadius, outerRadius, height int) string {
	if outerRadius <= 0 {
		return ""
	}
	innerRadius = max(0, min(innerRadius, outerRadius))
	height = max(height, 2*outerRadius)

	rows := max(int(math.Ceil(float64(2*outerRadius)/radialRowPixels)), 3)
	colPixels := radialRowPixels / 2
	cols := int(math.Ceil(float64(2*outerRadius)/colPixels)) + 1

	cx := float64(cols) * colPixels / 2
	cy := float64(rows) * radialRowPixels / 2

	lines := make([]string, 0, rows)
	for row := range rows {
		var b strings.Builder
		y := (float64(row)+0.5)*radialRowPixels - cy
		for col := range cols {
			x := (float64(col)+0.5)*colPixels - cx
			d := math.Hypot(x, y)
			if d < float64(innerRadius) || d > float64(outerRadius) {
				b.WriteString(" ")
				continue
			}

			// clockwise from the top, in [0, 1)
			turn := math.Atan2(x, -y) / (2 * math.Pi)
			if turn < 0 {
				turn++
			}

			if turn < fraction {
				color := interpolateColor(radialFromHex, radialToHex, turn)
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(radialFilled))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(RadialColorB).Render(radialEmpty))
			}
		}
		lines = append(lines, b.String())
	}

	ring := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Height(int(math.Round(float64(height) / radialRowPixels))).Render(ring)
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}
