package lsp

import (
	"math"
	"testing"

	"github.com/jsvensson/viewstyle/internal/color"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.002
}

func TestColorToLSP(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want protocol.Color
	}{
		{"black", color.New(0, 0, 0), protocol.Color{Red: 0, Green: 0, Blue: 0, Alpha: 1}},
		{"white", color.New(255, 255, 255), protocol.Color{Red: 1, Green: 1, Blue: 1, Alpha: 1}},
		{"translucent", color.NewAlpha(255, 0, 0, 0.5), protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 0.5}},
		{"absent alpha", color.Color{R: 0, G: 0, B: 255}, protocol.Color{Red: 0, Green: 0, Blue: 1, Alpha: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorToLSP(tt.c)
			if !approxEqual(got.Red, tt.want.Red) || !approxEqual(got.Green, tt.want.Green) ||
				!approxEqual(got.Blue, tt.want.Blue) || !approxEqual(got.Alpha, tt.want.Alpha) {
				t.Errorf("colorToLSP(%v) = %+v, want %+v", tt.c, got, tt.want)
			}
		})
	}
}

func TestColorFromLSP(t *testing.T) {
	tests := []struct {
		name string
		in   protocol.Color
		want color.Color
	}{
		{"red", protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1}, color.NewAlpha(255, 0, 0, 1)},
		{"half alpha", protocol.Color{Red: 0, Green: 0, Blue: 1, Alpha: 0.5}, color.NewAlpha(0, 0, 255, 0.5)},
		{"clamped", protocol.Color{Red: 1.5, Green: -0.2, Blue: 0.5, Alpha: 2}, color.NewAlpha(255, 0, 128, 1)},
		{"alpha rounded", protocol.Color{Red: 0, Green: 0, Blue: 0, Alpha: 0.33333}, color.NewAlpha(0, 0, 0, 0.333)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorFromLSP(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("colorFromLSP(%+v) = %s, want %s", tt.in, got.Text(), tt.want.Text())
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, c := range []color.Color{
		color.New(25, 23, 36),
		color.New(235, 111, 146),
		color.NewAlpha(10, 20, 30, 0.25),
	} {
		got := colorFromLSP(colorToLSP(c))
		if got.R != c.R || got.G != c.G || got.B != c.B {
			t.Errorf("round trip %s = %s", c.Hex(), got.Hex())
		}
		if math.Abs(got.Opacity()-c.Opacity()) > 0.001 {
			t.Errorf("round trip %s alpha = %v", c.Hex(), got.Opacity())
		}
	}
}

func TestDocumentColors(t *testing.T) {
	result := Analyze("test.vstyle", validSheet)
	infos := documentColors(result)

	if len(infos) != len(result.Colors) {
		t.Fatalf("got %d color infos, want %d", len(infos), len(result.Colors))
	}
	for i, info := range infos {
		if info.Range != result.Colors[i].Range {
			t.Errorf("info %d range = %v, want %v", i, info.Range, result.Colors[i].Range)
		}
	}

	if got := documentColors(nil); got == nil || len(got) != 0 {
		t.Errorf("documentColors(nil) = %v, want empty slice", got)
	}
}

// literalRange returns the range of the first non-computed color on the line.
func literalRange(t *testing.T, result *AnalysisResult, line uint32) protocol.Range {
	t.Helper()
	for _, c := range result.Colors {
		if c.Range.Start.Line == line {
			return c.Range
		}
	}
	t.Fatalf("no color on line %d", line)
	return protocol.Range{}
}

func TestColorPresentation(t *testing.T) {
	result := Analyze("test.vstyle", validSheet)

	tests := []struct {
		name   string
		line   uint32
		color  protocol.Color
		labels []string
	}{
		{
			name:   "opaque literal",
			line:   14, // borderColor = "#000000ff"
			color:  protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1},
			labels: []string{"#ff0000ff"},
		},
		{
			name:   "translucent literal",
			line:   14,
			color:  protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 0.5},
			labels: []string{"#ff000080", "r:255,g:0,b:0,a:0.5"},
		},
		{
			name:  "palette reference",
			line:  13, // backgroundColor = palette.brand
			color: protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1},
		},
		{
			name:  "function call",
			line:  3, // soft = mix(...)
			color: protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := literalRange(t, result, tt.line)
			got := colorPresentation(validSheet, &protocol.ColorPresentationParams{
				Color: tt.color,
				Range: rng,
			})

			if len(got) != len(tt.labels) {
				t.Fatalf("got %d presentations, want %d: %+v", len(got), len(tt.labels), got)
			}
			for i, p := range got {
				if p.Label != tt.labels[i] {
					t.Errorf("presentation %d label = %q, want %q", i, p.Label, tt.labels[i])
				}
				if p.TextEdit == nil {
					t.Fatalf("presentation %d has no text edit", i)
				}
				if p.TextEdit.Range != rng {
					t.Errorf("edit range = %v, want %v", p.TextEdit.Range, rng)
				}
				if want := "\"" + tt.labels[i] + "\""; p.TextEdit.NewText != want {
					t.Errorf("edit text = %q, want %q", p.TextEdit.NewText, want)
				}
			}
		})
	}
}

func TestColorPresentation_ReadsBack(t *testing.T) {
	result := Analyze("test.vstyle", validSheet)
	rng := literalRange(t, result, 14)

	for _, p := range colorPresentation(validSheet, &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 0.2, Green: 0.4, Blue: 0.6, Alpha: 0.25},
		Range: rng,
	}) {
		if _, err := color.ParseString(p.Label); err != nil {
			t.Errorf("label %q does not parse: %v", p.Label, err)
		}
	}
}
