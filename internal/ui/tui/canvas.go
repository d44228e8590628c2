package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r     rune
	style string
}

// Canvas is a grid of runes, each tagged with a named lipgloss style.
// Runs of equally styled cells are rendered together.
type Canvas struct {
	width, height int
	cells         []cell
	styles        map[string]lipgloss.Style
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		styles: make(map[string]lipgloss.Style),
	}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// DefineStyle registers a style under name. The empty name is unstyled.
func (c *Canvas) DefineStyle(name string, style lipgloss.Style) {
	c.styles[name] = style
}

// HasStyle reports whether name is registered.
func (c *Canvas) HasStyle(name string) bool {
	_, ok := c.styles[name]
	return ok
}

// Set writes one cell; out-of-bounds writes are dropped.
func (c *Canvas) Set(x, y int, r rune, style string) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, style: style}
}

// At returns the rune at a cell.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.cells[y*c.width+x].r
}

// StyleAt returns the style name of a cell.
func (c *Canvas) StyleAt(x, y int) string {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ""
	}
	return c.cells[y*c.width+x].style
}

// Fill sets every cell of r.
func (c *Canvas) Fill(r CellRect, ch rune, style string) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.Set(x, y, ch, style)
		}
	}
}

// Box draws the outline of r with border. Rectangles too small for a frame are filled.
func (c *Canvas) Box(r CellRect, border lipgloss.Border, style string) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	if r.W < 2 || r.H < 2 {
		c.Fill(r, firstRune(border.Top), style)
		return
	}

	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		c.Set(x, r.Y, firstRune(border.Top), style)
		c.Set(x, bottom, firstRune(border.Bottom), style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.Set(r.X, y, firstRune(border.Left), style)
		c.Set(right, y, firstRune(border.Right), style)
	}
	c.Set(r.X, r.Y, firstRune(border.TopLeft), style)
	c.Set(right, r.Y, firstRune(border.TopRight), style)
	c.Set(r.X, bottom, firstRune(border.BottomLeft), style)
	c.Set(right, bottom, firstRune(border.BottomRight), style)
}

// Text writes s from (x,y), truncated to maxWidth cells.
func (c *Canvas) Text(x, y int, s string, maxWidth int, style string) {
	n := 0
	for _, r := range s {
		if n >= maxWidth {
			return
		}
		c.Set(x+n, y, r, style)
		n++
	}
}

// String returns the canvas without styles.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cl := range c.row(y) {
			sb.WriteRune(cl.r)
		}
	}
	return sb.String()
}

// Render returns the canvas with styles applied.
func (c *Canvas) Render() string {
	var sb strings.Builder
	var run strings.Builder
	for y := range c.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := c.row(y)
		for start := 0; start < len(row); {
			end := start
			run.Reset()
			for end < len(row) && row[end].style == row[start].style {
				run.WriteRune(row[end].r)
				end++
			}
			if style, ok := c.styles[row[start].style]; ok && row[start].style != "" {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			start = end
		}
	}
	return sb.String()
}

func (c *Canvas) row(y int) []cell {
	return c.cells[y*c.width : (y+1)*c.width]
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ' '
	}
	return r
}
