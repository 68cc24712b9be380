package widget

import (
	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/jsvensson/viewstyle/internal/style"
)

// Label displays read-only text.
type Label struct {
	View      `yaml:",inline"`
	Text      string              `yaml:"text"`
	TextColor color.Color         `yaml:"textColor"`
	Alignment style.TextAlignment `yaml:"alignment"`
	// Lines is the maximum number of lines; 0 means unlimited.
	Lines int `yaml:"lines"`
}

// NewLabel returns a single-line label with natural alignment.
func NewLabel(text string) *Label {
	l := &Label{Text: text, TextColor: Black, Alignment: style.AlignNatural, Lines: 1}
	l.init()
	return l
}

// Apply sets the view attributes, then the text color, alignment and line
// count from s.
func (l *Label) Apply(s style.Style) *Label {
	l.View.Apply(s)
	if s.TextColor != nil {
		l.SetTextColor(*s.TextColor)
	}
	if s.TextAlignment != nil {
		l.SetAlignment(*s.TextAlignment)
	}
	if s.NumberOfLines != nil {
		l.NumberOfLines(*s.NumberOfLines)
	}
	return l
}

func (l *Label) SetText(text string) *Label {
	l.Text = text
	return l
}

func (l *Label) SetTextColor(c color.Color) *Label {
	l.TextColor = c
	return l
}

func (l *Label) SetAlignment(a style.TextAlignment) *Label {
	l.Alignment = a
	return l
}

// Centered centers the text.
func (l *Label) Centered() *Label {
	return l.SetAlignment(style.AlignCenter)
}

func (l *Label) NumberOfLines(n int) *Label {
	l.Lines = n
	return l
}

// Multiline removes the line limit.
func (l *Label) Multiline() *Label {
	return l.NumberOfLines(0)
}
