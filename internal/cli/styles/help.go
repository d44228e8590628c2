package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// WorkspaceKeyMap defines keybindings for the interactive dock workspace.
type WorkspaceKeyMap struct {
	AddPanel key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k WorkspaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddPanel, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k WorkspaceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddPanel},
		{k.Quit},
	}
}

// DefaultWorkspaceKeyMap returns the default workspace keybindings.
func DefaultWorkspaceKeyMap() WorkspaceKeyMap {
	return WorkspaceKeyMap{
		AddPanel: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add panel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
