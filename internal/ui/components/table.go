package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/trafficbuddy-tui/internal/transform"
	"github.com/j-veylop/trafficbuddy-tui/internal/ui/styles"
)

// ActivityHeaders are the column titles of the activity table.
var ActivityHeaders = []string{"TYPE", "DESCRIPTION", "LOCATION", "STATUS", "TIME"}

const (
	activityStatusCol = 3

	// columns that keep their natural width; the rest share what is left
	fixedTypeWidth   = 16
	fixedStatusWidth = 13
	fixedTimeWidth   = 24
	minFlexWidth     = 12
)

// RenderActivityTable renders rows as a table with alternating row shading
// and a colored status badge. Free-text columns are truncated to fit width.
func RenderActivityTable(rows []transform.ActivityRow, width int) string {
	if len(rows) == 0 {
		return styles.HelpStyle.Render("No recent activity")
	}

	flex := minFlexWidth
	if width > 0 {
		// borders and cell padding take 3 columns per cell plus one
		used := fixedTypeWidth + fixedStatusWidth + fixedTimeWidth + 3*len(ActivityHeaders) + 1
		flex = max((width-used)/2, minFlexWidth)
	}

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			ansi.Truncate(r.Type, fixedTypeWidth, "…"),
			ansi.Truncate(r.Description, flex, "…"),
			ansi.Truncate(r.Location, flex, "…"),
			string(r.Status),
			r.Time,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Subtle)).
		BorderRow(false).
		Headers(ActivityHeaders...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle
			}
			style := styles.GetRowStyle(row)
			if col == activityStatusCol && row < len(data) {
				badge := styles.GetStatusStyle(data[row][col])
				style = style.Foreground(badge.GetForeground()).Background(badge.GetBackground()).Bold(true)
			}
			return style
		})

	return t.Render()
}
