package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigEntry is one key of a rendered configuration section.
type ConfigEntry struct {
	Key   string
	Value string
}

// ConfigSection is a named group of configuration entries.
type ConfigSection struct {
	Name    string
	Entries []ConfigEntry
}

// ConfigRenderer renders configuration with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
	)
}

// RenderSections renders the effective configuration, one block per section.
func (r *ConfigRenderer) RenderSections(sections []ConfigSection) string {
	if len(sections) == 0 {
		return ""
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valueStyle := lipgloss.NewStyle().Foreground(r.theme.Text)

	width := 0
	for _, section := range sections {
		for _, entry := range section.Entries {
			width = max(width, len(entry.Key))
		}
	}

	var sb strings.Builder
	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconCursor), r.theme.Highlight.Render(section.Name)))
		for _, entry := range section.Entries {
			sb.WriteString(fmt.Sprintf(
				"    %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-*s", width, entry.Key)),
				valueStyle.Render(entry.Value),
			))
		}
	}

	return sb.String()
}

// RenderError renders a configuration error.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.ErrorStyle.Render("error:"), err)
}
