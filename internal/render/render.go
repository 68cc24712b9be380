// Package render applies resolved styles to terminal toolkits.
//
// Terminals have no alpha channel, so translucent colors are blended over
// the style's background color, or over black when there is none. Lengths
// given in points are converted to cells at PointsPerCell.
package render

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/jsvensson/viewstyle/internal/style"
)

// PointsPerCell is the number of points in one terminal cell.
const PointsPerCell = 4.0

var black = color.New(0, 0, 0)

// cells converts points to whole cells.
func cells(points float64) int {
	n := int(math.Round(points / PointsPerCell))
	if n < 0 {
		return 0
	}
	return n
}

// backdrop returns the opaque color translucent colors are blended over.
func backdrop(s style.Style) color.Color {
	if s.BackgroundColor == nil {
		return black
	}
	return opaque(*s.BackgroundColor, black)
}

// opaque blends c over bg by c's opacity.
func opaque(c, bg color.Color) color.Color {
	o := c.Opacity()
	if o >= 1 {
		return color.New(c.R, c.G, c.B)
	}
	out := color.Mix(color.New(bg.R, bg.G, bg.B), c, o)
	return color.New(out.R, out.G, out.B)
}

// visible reports whether c has any opacity.
func visible(c *color.Color) bool {
	return c != nil && c.Opacity() > 0
}

// Lipgloss returns base with the attributes of s applied. Padding is applied
// per edge. A border is drawn when borderWidth is positive; it is rounded
// when cornerRadius is positive and thick from a width of 2 points.
// numberOfLines caps the rendered height.
func Lipgloss(s style.Style, base lipgloss.Style) lipgloss.Style {
	out := base
	bg := backdrop(s)

	if p := s.Padding; p != nil {
		if p.Top != nil {
			out = out.PaddingTop(cells(*p.Top))
		}
		if p.Right != nil {
			out = out.PaddingRight(cells(*p.Right))
		}
		if p.Bottom != nil {
			out = out.PaddingBottom(cells(*p.Bottom))
		}
		if p.Left != nil {
			out = out.PaddingLeft(cells(*p.Left))
		}
	}

	if visible(s.TextColor) {
		out = out.Foreground(lipglossColor(opaque(*s.TextColor, bg)))
	}
	if visible(s.BackgroundColor) {
		out = out.Background(lipglossColor(bg))
	}

	if s.BorderWidth != nil && *s.BorderWidth > 0 {
		out = out.Border(borderFor(s))
		if visible(s.BorderColor) {
			out = out.BorderForeground(lipglossColor(opaque(*s.BorderColor, bg)))
		}
	}

	if s.FontTrait != nil {
		out = out.Bold(s.FontTrait.IsBold()).Italic(s.FontTrait.IsItalic())
	}
	if s.TextAlignment != nil {
		out = out.Align(lipglossAlign(*s.TextAlignment))
	}
	if s.NumberOfLines != nil && *s.NumberOfLines > 0 {
		out = out.MaxHeight(*s.NumberOfLines)
	}
	return out
}

// Render renders text with s on a fresh lipgloss style. Hidden styles render
// nothing.
func Render(s style.Style, text string) string {
	if s.IsHidden != nil && *s.IsHidden {
		return ""
	}
	return Lipgloss(s, lipgloss.NewStyle()).Render(text)
}

func borderFor(s style.Style) lipgloss.Border {
	switch {
	case s.CornerRadius != nil && *s.CornerRadius > 0:
		return lipgloss.RoundedBorder()
	case *s.BorderWidth >= 2:
		return lipgloss.ThickBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

func lipglossColor(c color.Color) lipgloss.Color {
	return lipgloss.Color(c.HexRGB())
}

func lipglossAlign(a style.TextAlignment) lipgloss.Position {
	switch a {
	case style.AlignCenter:
		return lipgloss.Center
	case style.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Tcell returns base with the text color, background color and font trait
// of s applied.
func Tcell(s style.Style, base tcell.Style) tcell.Style {
	out := base
	bg := backdrop(s)
	if visible(s.TextColor) {
		out = out.Foreground(tcellColor(opaque(*s.TextColor, bg)))
	}
	if visible(s.BackgroundColor) {
		out = out.Background(tcellColor(bg))
	}
	if s.FontTrait != nil {
		out = out.Bold(s.FontTrait.IsBold()).Italic(s.FontTrait.IsItalic())
	}
	return out
}

func tcellColor(c color.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// DrawTcell draws text with s on screen, with its top-left corner at x, y.
// Padding is filled with the style's background. Each rune takes one cell.
// It returns the size of the drawn box; hidden styles draw nothing.
func DrawTcell(screen tcell.Screen, x, y int, s style.Style, text string) (width, height int) {
	if s.IsHidden != nil && *s.IsHidden {
		return 0, 0
	}
	st := Tcell(s, tcell.StyleDefault)

	lines := strings.Split(text, "\n")
	if s.NumberOfLines != nil && *s.NumberOfLines > 0 && len(lines) > *s.NumberOfLines {
		lines = lines[:*s.NumberOfLines]
	}

	var top, left, bottom, right int
	if p := s.Padding; p != nil {
		if p.Top != nil {
			top = cells(*p.Top)
		}
		if p.Left != nil {
			left = cells(*p.Left)
		}
		if p.Bottom != nil {
			bottom = cells(*p.Bottom)
		}
		if p.Right != nil {
			right = cells(*p.Right)
		}
	}

	textWidth := 0
	for _, line := range lines {
		textWidth = max(textWidth, utf8.RuneCountInString(line))
	}
	width = left + textWidth + right
	height = top + len(lines) + bottom

	for row := range height {
		for col := range width {
			screen.SetContent(x+col, y+row, ' ', nil, st)
		}
	}
	for i, line := range lines {
		offset := 0
		if s.TextAlignment != nil {
			switch gap := textWidth - utf8.RuneCountInString(line); *s.TextAlignment {
			case style.AlignCenter:
				offset = gap / 2
			case style.AlignRight:
				offset = gap
			}
		}
		col := x + left + offset
		for _, r := range line {
			screen.SetContent(col, y+top+i, r, nil, st)
			col++
		}
	}
	return width, height
}
