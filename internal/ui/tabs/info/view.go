package info

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/trafficbuddy-tui/internal/ui/styles"
	"github.com/j-veylop/trafficbuddy-tui/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	sections := []string{
		m.renderTitle(),
		m.renderConfigCard(),
		m.renderAboutCard(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.Render(m.viewport.View())
}

// renderTitle renders the info tab title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	return min(max(m.width-6, 50), 80)
}

// renderConfigCard renders the active configuration.
func (m *Model) renderConfigCard() string {
	rows := []string{styles.CardTitleStyle.Render("Configuration"), ""}

	if m.services == nil || m.services.Config() == nil {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	} else {
		cfg := m.services.Config()
		backend := m.backendAddress()
		if cfg.AddressPinned {
			backend += " " + styles.HelpStyle.Render("(from environment)")
		}

		rows = append(rows,
			renderRow("Backend", backend),
			renderRow("Request Timeout", cfg.RequestTimeout.String()),
			renderRow("Env File", orNone(cfg.EnvFile)),
			renderRow("Watching Env", strconv.FormatBool(m.services.Watching())),
			renderRow("Desktop Notify", strconv.FormatBool(cfg.DesktopNotify)),
			renderRow("Log File", orNone(cfg.LogFile)),
			renderRow("Log Level", cfg.LogLevel),
			"",
			styles.HelpStyle.Render("Press 'c' to copy the backend address"),
		)
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderAboutCard renders the about/version information card.
func (m *Model) renderAboutCard() string {
	rows := []string{
		styles.CardTitleStyle.Render("About Traffic Buddy TUI"),
		"",
		renderRow("Version", version.GetVersion()),
		renderRow("Commit", version.GetCommit()),
		renderRow("Build Date", version.GetDate()),
		renderRow("Go Version", runtime.Version()),
		renderRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)),
		"",
		fmt.Sprintf("Status: %s", styles.StatValueStyle.Render(m.state.Phase().String())),
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderRow renders a configuration key-value row.
func renderRow(label, value string) string {
	return styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(value)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
