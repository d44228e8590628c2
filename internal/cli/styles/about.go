package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/build"
)

// logoAccents colour the logo rows like freshly created dock areas.
var logoAccents = []string{"#e06c75", "#98c379", "#e5c07b", "#61afef", "#c678dd"}

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with the logo and styled info lines.
func (r *AboutRenderer) Render(info build.Info) string {
	logo := r.renderLogo()
	lines := r.renderInfoLines(info)

	// Combine horizontally: logo | info
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", lines)
}

// renderLogo draws a top area, a left area with a fill, and a bottom area.
func (r *AboutRenderer) renderLogo() string {
	rows := []string{
		"███████████",
		"██ ▄▄▄▄▄▄▄▄",
		"██ █      █",
		"██ ▀▀▀▀▀▀▀▀",
		"███████████",
	}

	styled := make([]string, len(rows))
	for i, row := range rows {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(logoAccents[i%len(logoAccents)])).Bold(true)
		styled[i] = style.Render(row)
	}

	return lipgloss.NewStyle().MarginTop(1).MarginLeft(2).Render(strings.Join(styled, "\n"))
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	lines := []string{
		r.theme.Title.Render("dockyard") + " " + keyStyle.Render("directional panel docking"),
		"",
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconVersion), keyStyle.Render("Version"), valStyle.Render(info.Version)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGitBranch), keyStyle.Render("Commit"), valStyle.Render(info.Commit)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconCalendar), keyStyle.Render("Built"), valStyle.Render(info.BuildDate)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGo), keyStyle.Render("Go"), valStyle.Render(info.GoVersion)),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
		fmt.Sprintf(
			"%s %s %s",
			iconStyle.Render(IconHeart),
			keyStyle.Render("Made by"),
			valStyle.Render(strings.Join(build.Contributors(), ", ")),
		),
	}

	return strings.Join(lines, "\n")
}
