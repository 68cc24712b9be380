package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/jsvensson/viewstyle/internal/style"
)

func TestCells(t *testing.T) {
	tests := []struct {
		points float64
		want   int
	}{
		{0, 0},
		{4, 1},
		{6, 2},
		{8, 2},
		{-8, 0},
	}
	for _, tt := range tests {
		if got := cells(tt.points); got != tt.want {
			t.Errorf("cells(%v) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestOpaque(t *testing.T) {
	white := color.New(255, 255, 255)
	if got := opaque(color.NewAlpha(10, 20, 30, 1), white); !got.Equal(color.New(10, 20, 30)) {
		t.Errorf("opaque(solid) = %v", got)
	}
	if got := opaque(color.NewAlpha(10, 20, 30, 0), white); !got.Equal(white) {
		t.Errorf("opaque(transparent) = %v, want the backdrop", got)
	}
	half := opaque(color.NewAlpha(0, 0, 0, 0.5), white)
	if half.R == 0 || half.R == 255 || *half.Alpha != 1 {
		t.Errorf("opaque(half black over white) = %+v, want an opaque grey", half)
	}
}

func TestLipgloss(t *testing.T) {
	s := style.Style{
		Padding:         &style.Padding{Left: style.Ptr(8.0), Top: style.Ptr(4.0)},
		TextColor:       style.Ptr(color.New(255, 0, 0)),
		BackgroundColor: style.Ptr(color.New(0, 0, 255)),
		BorderWidth:     style.Ptr(1.0),
		BorderColor:     style.Ptr(color.New(0, 255, 0)),
		CornerRadius:    style.Ptr(6.0),
		FontTrait:       style.Ptr(style.TraitBoldItalic),
		TextAlignment:   style.Ptr(style.AlignCenter),
		NumberOfLines:   style.Ptr(3),
	}

	got := Lipgloss(s, lipgloss.NewStyle())

	if got.GetPaddingLeft() != 2 || got.GetPaddingTop() != 1 {
		t.Errorf("padding left/top = %d/%d, want 2/1", got.GetPaddingLeft(), got.GetPaddingTop())
	}
	if got.GetPaddingRight() != 0 {
		t.Errorf("absent right padding set to %d", got.GetPaddingRight())
	}
	if fg := got.GetForeground(); fg != lipgloss.Color("#ff0000") {
		t.Errorf("foreground = %v, want #ff0000", fg)
	}
	if bg := got.GetBackground(); bg != lipgloss.Color("#0000ff") {
		t.Errorf("background = %v, want #0000ff", bg)
	}
	if got.GetBorderStyle() != lipgloss.RoundedBorder() {
		t.Errorf("border = %+v, want rounded", got.GetBorderStyle())
	}
	if !got.GetBold() || !got.GetItalic() {
		t.Errorf("bold/italic = %v/%v, want both", got.GetBold(), got.GetItalic())
	}
	if got.GetAlign() != lipgloss.Center {
		t.Errorf("align = %v, want center", got.GetAlign())
	}
	if got.GetMaxHeight() != 3 {
		t.Errorf("max height = %d, want 3", got.GetMaxHeight())
	}
}

func TestLipglossBorderKinds(t *testing.T) {
	tests := []struct {
		name  string
		style style.Style
		want  lipgloss.Border
	}{
		{"thin square", style.Style{BorderWidth: style.Ptr(1.0)}, lipgloss.NormalBorder()},
		{"thick square", style.Style{BorderWidth: style.Ptr(2.0)}, lipgloss.ThickBorder()},
		{"rounded", style.Style{BorderWidth: style.Ptr(3.0), CornerRadius: style.Ptr(1.0)}, lipgloss.RoundedBorder()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lipgloss(tt.style, lipgloss.NewStyle()).GetBorderStyle(); got != tt.want {
				t.Errorf("border = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLipglossKeepsBase(t *testing.T) {
	base := lipgloss.NewStyle().Underline(true).PaddingRight(5)
	got := Lipgloss(style.Style{}, base)
	if !got.GetUnderline() || got.GetPaddingRight() != 5 {
		t.Errorf("empty style changed base: underline=%v paddingRight=%d", got.GetUnderline(), got.GetPaddingRight())
	}
	if got.GetBorderStyle() != (lipgloss.Border{}) {
		t.Errorf("border set without borderWidth: %+v", got.GetBorderStyle())
	}
}

func TestRender(t *testing.T) {
	if got := Render(style.Style{IsHidden: style.Ptr(true)}, "hello"); got != "" {
		t.Errorf("Render(hidden) = %q, want empty", got)
	}

	out := Render(style.Style{Padding: &style.Padding{Left: style.Ptr(8.0)}}, "hello")
	if !strings.HasPrefix(out, "  hello") {
		t.Errorf("Render(padded) = %q, want two leading cells", out)
	}

	lines := Render(style.Style{NumberOfLines: style.Ptr(1)}, "one\ntwo")
	if strings.Contains(lines, "two") {
		t.Errorf("Render(numberOfLines=1) = %q, want second line cut", lines)
	}
}

func TestTcell(t *testing.T) {
	s := style.Style{
		TextColor:       style.Ptr(color.New(255, 0, 0)),
		BackgroundColor: style.Ptr(color.New(0, 0, 255)),
		FontTrait:       style.Ptr(style.TraitBold),
	}
	fg, bg, attr := Tcell(s, tcell.StyleDefault).Decompose()

	if want := tcell.NewRGBColor(255, 0, 0); fg != want {
		t.Errorf("foreground = %v, want %v", fg, want)
	}
	if want := tcell.NewRGBColor(0, 0, 255); bg != want {
		t.Errorf("background = %v, want %v", bg, want)
	}
	if attr&tcell.AttrBold == 0 {
		t.Error("bold not set")
	}
	if attr&tcell.AttrItalic != 0 {
		t.Error("italic set for bold trait")
	}
}

func TestTcellSkipsTransparent(t *testing.T) {
	s := style.Style{TextColor: style.Ptr(color.NewAlpha(255, 0, 0, 0))}
	fg, _, _ := Tcell(s, tcell.StyleDefault).Decompose()
	if fg != tcell.ColorDefault {
		t.Errorf("transparent text color set foreground %v", fg)
	}
}

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error: %v", err)
	}
	screen.SetSize(20, 6)
	t.Cleanup(screen.Fini)
	return screen
}

func TestDrawTcell(t *testing.T) {
	screen := simScreen(t)
	s := style.Style{
		TextColor:       style.Ptr(color.New(255, 0, 0)),
		BackgroundColor: style.Ptr(color.New(0, 0, 255)),
		Padding:         &style.Padding{Top: style.Ptr(4.0), Left: style.Ptr(8.0)},
		TextAlignment:   style.Ptr(style.AlignRight),
		NumberOfLines:   style.Ptr(2),
	}

	w, h := DrawTcell(screen, 1, 0, s, "ab\nc\ndropped")
	if w != 4 || h != 3 {
		t.Fatalf("DrawTcell size = %dx%d, want 4x3", w, h)
	}

	tests := []struct {
		x, y int
		want rune
	}{
		{1, 0, ' '}, // top padding
		{1, 1, ' '}, // left padding
		{3, 1, 'a'},
		{4, 1, 'b'},
		{3, 2, ' '},
		{4, 2, 'c'}, // right aligned
	}
	for _, tt := range tests {
		r, _, st, _ := screen.GetContent(tt.x, tt.y)
		if r != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, r, tt.want)
		}
		if _, bg, _ := st.Decompose(); bg != tcell.NewRGBColor(0, 0, 255) {
			t.Errorf("cell (%d,%d) background = %v", tt.x, tt.y, bg)
		}
	}

	if r, _, _, _ := screen.GetContent(1, 3); r == 'd' {
		t.Error("line past numberOfLines was drawn")
	}
}

func TestDrawTcellHidden(t *testing.T) {
	screen := simScreen(t)
	w, h := DrawTcell(screen, 0, 0, style.Style{IsHidden: style.Ptr(true)}, "x")
	if w != 0 || h != 0 {
		t.Errorf("hidden DrawTcell size = %dx%d", w, h)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r == 'x' {
		t.Error("hidden style drew text")
	}
}
