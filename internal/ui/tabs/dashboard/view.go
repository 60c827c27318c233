package dashboard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/trafficbuddy-tui/internal/app"
	"github.com/j-veylop/trafficbuddy-tui/internal/transform"
	"github.com/j-veylop/trafficbuddy-tui/internal/ui/components"
	"github.com/j-veylop/trafficbuddy-tui/internal/ui/styles"
)

// Title is the page header of the dashboard.
const Title = "Traffic Buddy Dashboard"

// Radial card geometry, in chart pixels.
const (
	InnerRadius = 20
	OuterRadius = 35
	CardHeight  = 100
)

const (
	chartHeight = 8

	// below this width charts are stacked instead of paired
	wideLayoutWidth = 110
)

// View renders the dashboard component.
func (m *Model) View() string {
	switch m.state.Phase() {
	case app.PhaseReady:
		m.viewport.SetContent(m.renderContent(m.contentWidth()))
		return styles.DocStyle.Render(m.viewport.View())
	case app.PhaseFailed:
		return m.renderError()
	default:
		return m.renderLoading()
	}
}

func (m *Model) contentWidth() int {
	return max(m.width-2, 40)
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return m.spinner.ViewCentered(m.width, m.height)
}

// renderError renders only the failure message.
func (m *Model) renderError() string {
	box := styles.ErrorBoxStyle.Render(m.state.Error())
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return styles.CenterBoth(box, m.width, m.height)
}

// renderContent composes every derived view from the committed data.
func (m *Model) renderContent(width int) string {
	summary := m.state.Summary()

	sections := []string{
		components.RenderHeader(Title, width),
		"",
		m.renderStatusCards(transform.StatusRatios(summary), width),
		m.renderTotal(summary.TotalQueries, width),
		m.renderCharts(width),
		m.renderActivity(width),
		m.renderLastUpdated(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatusCards lays the radial cards out in as many columns as fit.
func (m *Model) renderStatusCards(ratios []transform.LabeledRatio, width int) string {
	cards := make([]string, 0, len(ratios))
	for _, r := range ratios {
		cards = append(cards, components.RenderTwoValueRadial(r.Ratio, r.Title, InnerRadius, OuterRadius, CardHeight))
	}
	if len(cards) == 0 {
		return ""
	}

	cardWidth := 0
	for _, c := range cards {
		cardWidth = max(cardWidth, lipgloss.Width(c))
	}
	perRow := max(min(width/(cardWidth+1), len(cards)), 1)

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		row := make([]string, 0, 2*(end-start))
		for i, c := range cards[start:end] {
			if i > 0 {
				row = append(row, " ")
			}
			row = append(row, lipgloss.NewStyle().Width(cardWidth).Render(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderTotal(total, width int) string {
	title := styles.CardTitleStyle.Render("Total Traffic Reports")
	value := styles.StatValueStyle.Render(humanize.Comma(int64(total)))

	inner := max(width-4, lipgloss.Width(title)+lipgloss.Width(value)+1)
	gap := lipgloss.NewStyle().Width(inner - lipgloss.Width(title) - lipgloss.Width(value)).Render("")

	return styles.CardStyle.Width(inner + 2).Render(lipgloss.JoinHorizontal(lipgloss.Center, title, gap, value))
}

func (m *Model) renderCharts(width int) string {
	summary := m.state.Summary()

	if width < wideLayoutWidth {
		return lipgloss.JoinVertical(lipgloss.Left,
			components.RenderTimeSeriesChart(transform.ToTimeSeries(summary.QueriesPerDay), "Reports Per Day", width, chartHeight),
			components.RenderCategoryChart(transform.ToCategoryPoints(summary.QueryTypes), "Report Categories", width),
			components.RenderDivisionChart(width),
		)
	}

	half := (width - 1) / 2
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		components.RenderTimeSeriesChart(transform.ToTimeSeries(summary.QueriesPerDay), "Reports Per Day", half, chartHeight),
		" ",
		components.RenderCategoryChart(transform.ToCategoryPoints(summary.QueryTypes), "Report Categories", half),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, components.RenderDivisionChart(half))
}

func (m *Model) renderActivity(width int) string {
	rows := transform.RecentRows(m.state.Activity(), transform.RecentActivityLimit, m.loc)
	body := components.RenderActivityTable(rows, width-4)

	return styles.CardStyle.Width(width - 2).Render(
		styles.CardTitleStyle.Render("Recent Activity") + "\n\n" + body,
	)
}

func (m *Model) renderLastUpdated() string {
	updated := m.state.GetLastUpdated()
	if updated.IsZero() {
		return ""
	}
	return styles.HelpStyle.Render("Last updated " + humanize.Time(updated) + " from " + m.state.Address())
}
