// Package styles defines the visual styling for the application.
package styles

import "github.com/charmbracelet/lipgloss"

// Color definitions for the Traffic Buddy theme.
var (
	// Primary colors
	Primary   = lipgloss.Color("99")  // Indigo
	Secondary = lipgloss.Color("63")  // Purple
	Subtle    = lipgloss.Color("240") // Gray

	// Status colors
	Success = lipgloss.Color("42")  // Green
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow
	Info    = lipgloss.Color("39")  // Blue

	// Background colors
	BgDark   = lipgloss.Color("235")
	BgLight  = lipgloss.Color("237")
	BgAccent = lipgloss.Color("236")

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")

	// ToastStyle for floating notifications.
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1).
			MarginBottom(1)
)

// TitleStyle is used for main headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// SubTitleStyle is used for section headings.
var SubTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary).
	MarginBottom(1)

// DocStyle provides consistent document margins.
var DocStyle = lipgloss.NewStyle().
	Padding(0, 1)

// HeaderStyle frames the page header.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(Subtle).
	Padding(0, 1)

// CardStyle creates a bordered card container.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(0, 1)

// CardTitleStyle styles card headers.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary)

// StatValueStyle renders the big number on a stat card.
var StatValueStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary)

// ErrorBoxStyle renders the failure message in place of the dashboard.
var ErrorBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Error).
	Foreground(TextPrimary).
	Background(lipgloss.Color("52")).
	Padding(1, 3)

// HelpStyle is the base style for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// HelpPanelStyle creates the help overlay panel.
var HelpPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(Primary).
	Padding(1, 3).
	Background(BgDark)

// LabelStyle is used for key/value labels.
var LabelStyle = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Width(18)

// ValueStyle is used for key/value values.
var ValueStyle = lipgloss.NewStyle().
	Foreground(TextPrimary)

// TableHeaderStyle styles table headers.
var TableHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextSecondary).
	Padding(0, 1)

// TableCellStyle styles table cells.
var TableCellStyle = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Padding(0, 1)

// Activity table rows alternate between these backgrounds.
var (
	TableEvenRowStyle = TableCellStyle.Background(BgLight)
	TableOddRowStyle  = TableCellStyle.Background(BgAccent)
)

// Status badges for the activity table.
var (
	StatusPendingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("136"))

	StatusInProgressStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("195")).
				Background(lipgloss.Color("25"))

	StatusDoneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("194")).
			Background(lipgloss.Color("22"))
)

// ErrorTextStyle for error messages.
var ErrorTextStyle = lipgloss.NewStyle().
	Foreground(Error)

// SuccessTextStyle for success messages.
var SuccessTextStyle = lipgloss.NewStyle().
	Foreground(Success)

// WarningTextStyle for warning messages.
var WarningTextStyle = lipgloss.NewStyle().
	Foreground(Warning)

// GetStatusStyle returns the badge style for an activity status.
// Anything that is not pending or in progress is shown as done.
func GetStatusStyle(status string) lipgloss.Style {
	switch status {
	case "Pending":
		return StatusPendingStyle
	case "In Progress":
		return StatusInProgressStyle
	default:
		return StatusDoneStyle
	}
}

// GetRowStyle returns the cell style for the given data row index.
func GetRowStyle(row int) lipgloss.Style {
	if row%2 == 0 {
		return TableEvenRowStyle
	}
	return TableOddRowStyle
}

// CenterHorizontal centers content horizontally within a given width.
func CenterHorizontal(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}

// CenterBoth centers content both horizontally and vertically.
func CenterBoth(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
