package style

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsvensson/viewstyle/internal/color"
	"gopkg.in/yaml.v3"
)

const fullRecord = `{
  "inherited": ["base", "rounded"],
  "padding": {"left": 8, "top": 4},
  "textAlignment": "center",
  "textColor": {"hex": "#A82116FF"},
  "fontSize": 15,
  "fontStyle": "headline",
  "fontTrait": "bold",
  "backgroundColor": {"red": 255, "green": 255, "blue": 255, "alpha": 0.5},
  "cornerRadius": 6,
  "borderWidth": 1,
  "borderColor": "#000000ff",
  "isHidden": false,
  "clipsToBounds": true,
  "numberOfLines": 0,
  "shadowColor": {"hex": "#00000080"},
  "shadowOpacity": 0.3,
  "shadowOffset": {"x": 0, "y": 2},
  "shadowRadius": 4
}`

func fullStyle() Style {
	return Style{
		Inherited:       []string{"base", "rounded"},
		Padding:         &Padding{Left: Ptr(8.0), Top: Ptr(4.0)},
		TextAlignment:   Ptr(AlignCenter),
		TextColor:       Ptr(color.New(168, 33, 22)),
		FontSize:        Ptr(15.0),
		FontStyle:       Ptr(FontHeadline),
		FontTrait:       Ptr(TraitBold),
		BackgroundColor: Ptr(color.NewAlpha(255, 255, 255, 0.5)),
		CornerRadius:    Ptr(6.0),
		BorderWidth:     Ptr(1.0),
		BorderColor:     Ptr(color.New(0, 0, 0)),
		IsHidden:        Ptr(false),
		ClipsToBounds:   Ptr(true),
		NumberOfLines:   Ptr(0),
		ShadowColor:     Ptr(color.NewAlpha(0, 0, 0, 128.0/255)),
		ShadowOpacity:   Ptr(0.3),
		ShadowOffset:    &Point{X: 0, Y: 2},
		ShadowRadius:    Ptr(4.0),
	}
}

func TestDecodeJSON(t *testing.T) {
	var got Style
	if err := json.Unmarshal([]byte(fullRecord), &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if diff := cmp.Diff(fullStyle(), got); diff != "" {
		t.Errorf("decoded style mismatch (-want +got):\n%s", diff)
	}
	if n := len(got.Present()); n != len(Attributes) {
		t.Errorf("decoded %d attributes, want %d", n, len(Attributes))
	}
}

func TestDecodeJSONAbsentIsNil(t *testing.T) {
	var got Style
	if err := json.Unmarshal([]byte(`{"cornerRadius": 0}`), &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got.CornerRadius == nil || *got.CornerRadius != 0 {
		t.Errorf("cornerRadius = %v, want present zero", got.CornerRadius)
	}
	if got.BorderWidth != nil {
		t.Errorf("borderWidth = %v, want absent", *got.BorderWidth)
	}
}

func TestDecodeJSONRejectsUnknownEnum(t *testing.T) {
	inputs := []string{
		`{"textAlignment": "middle"}`,
		`{"fontStyle": "huge"}`,
		`{"fontTrait": "underline"}`,
		`{"textColor": {"red": 1}}`,
	}
	for _, in := range inputs {
		var s Style
		if err := json.Unmarshal([]byte(in), &s); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", in)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	want := fullStyle()
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var got Style
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal(%s) error: %v", data, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	want := fullStyle()
	data, err := yaml.Marshal(want)
	if err != nil {
		t.Fatalf("yaml.Marshal error: %v", err)
	}
	var got Style
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("yaml.Unmarshal error: %v\n%s", err, data)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumParsers(t *testing.T) {
	if _, err := ParseTextAlignment("justified"); err != nil {
		t.Errorf("ParseTextAlignment(justified) error: %v", err)
	}
	if _, err := ParseFontStyle("caption3"); err == nil {
		t.Error("ParseFontStyle(caption3) succeeded, want error")
	}
	trait, err := ParseFontTrait("boldItalic")
	if err != nil {
		t.Fatalf("ParseFontTrait(boldItalic) error: %v", err)
	}
	if !trait.IsBold() || !trait.IsItalic() {
		t.Errorf("boldItalic: IsBold=%v IsItalic=%v, want both", trait.IsBold(), trait.IsItalic())
	}
}

func TestIsKnownAttribute(t *testing.T) {
	if !IsKnownAttribute("shadowOffset") {
		t.Error("shadowOffset should be known")
	}
	if IsKnownAttribute("inherited") {
		t.Error("inherited is not an attribute")
	}
}

func TestPaddingConstructors(t *testing.T) {
	got := SymmetricPadding(12, 4)
	want := Padding{Left: Ptr(12.0), Right: Ptr(12.0), Top: Ptr(4.0), Bottom: Ptr(4.0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SymmetricPadding mismatch (-want +got):\n%s", diff)
	}
	if u := UniformPadding(2); *u.Left != 2 || *u.Bottom != 2 {
		t.Errorf("UniformPadding(2) = %+v", u)
	}
}
