package tui_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/ui/tui"
)

func TestCanvas_BoxAndText(t *testing.T) {
	c := tui.NewCanvas(6, 3)
	c.Box(tui.CellRect{W: 6, H: 3}, lipgloss.NormalBorder(), "")
	c.Text(1, 1, "abcdef", 4, "")

	assert.Equal(t, "┌────┐\n│abcd│\n└────┘", c.String())
}

func TestCanvas_Clipping(t *testing.T) {
	c := tui.NewCanvas(4, 2)
	c.Fill(tui.CellRect{X: 2, Y: 1, W: 10, H: 10}, '#', "")
	c.Set(-1, 0, 'x', "")
	c.Text(3, 0, "long", 10, "")

	assert.Equal(t, "   l\n  ##", c.String())
	assert.Equal(t, rune(0), c.At(5, 5))
}

func TestCanvas_ThinBoxIsFilled(t *testing.T) {
	c := tui.NewCanvas(3, 1)
	c.Box(tui.CellRect{W: 3, H: 1}, lipgloss.NormalBorder(), "")

	assert.Equal(t, "───", c.String())
}

func TestCanvas_RenderKeepsText(t *testing.T) {
	c := tui.NewCanvas(8, 1)
	c.DefineStyle("bold", lipgloss.NewStyle().Bold(true))
	c.Text(0, 0, "dock", 4, "bold")
	c.Text(4, 0, "yard", 4, "")

	assert.True(t, c.HasStyle("bold"))
	assert.Equal(t, "bold", c.StyleAt(0, 0))
	assert.Equal(t, "", c.StyleAt(5, 0))
	assert.Contains(t, c.Render(), "dock")
	assert.Contains(t, c.Render(), "yard")
}
