package viewstyle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	content := `styles:
  base:
    cornerRadius: 4
    textColor: "#a82116ff"
  button:
    inherited: [base, ghost]
    cornerRadius: 8
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	got, err := s.Resolve("button")
	if err != nil {
		t.Fatalf("Resolve(button) error: %v", err)
	}
	want := Style{
		CornerRadius: Ptr(8.0),
		TextColor:    Ptr(Color{R: 168, G: 33, B: 22, Alpha: Ptr(1.0)}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve(button) mismatch (-want +got):\n%s", diff)
	}

	if _, err := s.Resolve("ghost"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("Resolve(ghost) error = %v, want ErrStyleNotFound", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "styles.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("toml error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestCombineAndResolve(t *testing.T) {
	a := Style{CornerRadius: Ptr(4.0), BorderWidth: Ptr(1.0)}
	b := Style{CornerRadius: Ptr(8.0), IsHidden: Ptr(true)}

	want := Style{CornerRadius: Ptr(8.0), BorderWidth: Ptr(1.0), IsHidden: Ptr(true)}
	if diff := cmp.Diff(want, Combine(a, b)); diff != "" {
		t.Errorf("Combine mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, Merge(Style{}, a, b)); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}

	table := Table{"rounded": a}
	child := Style{Inherited: []string{"rounded", "missing"}, IsHidden: Ptr(true)}
	got, ok := Resolve(child, table)
	if !ok {
		t.Fatal("Resolve reported no value")
	}
	want = Style{CornerRadius: Ptr(4.0), BorderWidth: Ptr(1.0), IsHidden: Ptr(true)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}

	if _, ok := Resolve(Style{}, table); ok {
		t.Error("Resolve of a style without parents reported a value")
	}
}

func TestParseColors(t *testing.T) {
	c, err := ParseHex("#A82116FF")
	if err != nil {
		t.Fatalf("ParseHex error: %v", err)
	}
	if !c.Equal(Color{R: 168, G: 33, B: 22, Alpha: Ptr(1.0)}) {
		t.Errorf("ParseHex = %s", c.Text())
	}

	if _, err := ParseHex("#ABC"); !errors.Is(err, ErrNotHex) {
		t.Errorf("ParseHex(#ABC) error = %v, want ErrNotHex", err)
	}

	got := ParseComponents("r:168,bogus:1,g:33")
	if !got.Equal(Color{R: 168, G: 33, B: 0, Alpha: Ptr(1.0)}) {
		t.Errorf("ParseComponents = %s", got.Text())
	}

	if _, err := ParseString("nothing here"); !errors.Is(err, ErrUnrecognized) {
		t.Errorf("ParseString error = %v, want ErrUnrecognized", err)
	}
}

func TestColorConstructors(t *testing.T) {
	if got := New(1, 2, 3); got.Alpha == nil || *got.Alpha != 1 {
		t.Errorf("New alpha = %v, want 1", got.Alpha)
	}
	if got := NewAlpha(1, 2, 3, 0.25); !got.Equal(Color{R: 1, G: 2, B: 3, Alpha: Ptr(0.25)}) {
		t.Errorf("NewAlpha = %s", got.Text())
	}

	comp, ok := ParseComponent("g:33")
	if !ok {
		t.Fatal("ParseComponent(g:33) not recognized")
	}
	c := New(0, 0, 0)
	c.Update(comp)
	if c.G != 33 {
		t.Errorf("Update(g:33) G = %d", c.G)
	}
	if _, ok := ParseComponent("a:NaN"); ok {
		t.Error("ParseComponent accepted a:NaN")
	}
}

func TestFlatten(t *testing.T) {
	table := Table{"base": {CornerRadius: Ptr(4.0)}}

	got := Flatten(Style{Inherited: []string{"base"}, BorderWidth: Ptr(1.0)}, table)
	want := Style{CornerRadius: Ptr(4.0), BorderWidth: Ptr(1.0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}

	got = Flatten(Style{Inherited: []string{"ghost"}, BorderWidth: Ptr(1.0)}, table)
	if diff := cmp.Diff(Style{BorderWidth: Ptr(1.0)}, got); diff != "" {
		t.Errorf("Flatten unknown parent mismatch (-want +got):\n%s", diff)
	}
}
