package measurement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/measurekit/pkg/geometry"
)

func TestParseDocumentYAML(t *testing.T) {
	data := []byte(`
width:
  active: true
  value: 120 cm
height:
  active: true
  end: {x: 10, y: 130}
`)

	doc, err := ParseDocument(data, FormatYAML)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	s := NewSet()
	doc.Apply(s)

	w := s.Get(Width)
	if !w.Active || w.Value != "120 cm" {
		t.Errorf("width not applied: %+v", w)
	}
	if w.Start != geometry.NewPoint(20, 90) {
		t.Errorf("unset start should keep default, got %v", w.Start)
	}

	h := s.Get(Height)
	if h.End != geometry.NewPoint(10, 100) {
		t.Errorf("end should be clamped to (10,100), got %v", h.End)
	}

	if s.Get(Depth).Active {
		t.Error("depth was not in the document")
	}
}

func TestApplyDocumentNaNStaysInPlane(t *testing.T) {
	data := []byte("width:\n  active: true\n  end: {x: .nan, y: 90}\n")

	doc, err := ParseDocument(data, FormatYAML)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	s := NewSet()
	doc.Apply(s)

	if end := s.Get(Width).End; end != geometry.NewPoint(0, 90) {
		t.Errorf("expected NaN x clamped to (0,90), got %v", end)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("set should stay valid: %v", err)
	}
}

func TestParseDocumentTOML(t *testing.T) {
	data := []byte(`
[depth]
active = true
value = "40 cm"

[depth.start]
x = 60
y = 60
`)

	doc, err := ParseDocument(data, FormatTOML)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	s := NewSet()
	doc.Apply(s)

	d := s.Get(Depth)
	if !d.Active || d.Value != "40 cm" || d.Start != geometry.NewPoint(60, 60) {
		t.Errorf("depth not applied: %+v", d)
	}
}

func TestDocumentRoundTripYAML(t *testing.T) {
	s := NewSet()
	s.Toggle(Height)
	s.SetValue(Height, "85 cm")
	s.SetEndpoint(Height, Start, geometry.NewPoint(12.5, 15))

	data, err := DocumentFromSet(s).Marshal(FormatYAML)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	doc, err := ParseDocument(data, FormatYAML)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	restored := NewSet()
	doc.Apply(restored)

	if restored.All() != s.All() {
		t.Errorf("round trip mismatch:\n%+v\n%+v", s.All(), restored.All())
	}
}

func TestLoadDocumentByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "annotations.toml")
	if err := os.WriteFile(path, []byte("[width]\nactive = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if doc.Width == nil || doc.Width.Active == nil || !*doc.Width.Active {
		t.Errorf("expected width active from toml file, got %+v", doc.Width)
	}

	if _, err := LoadDocument(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("YML"); err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(YML) = %v, %v", f, err)
	}
	if _, err := ParseFormat("json"); err == nil {
		t.Error("expected error for json")
	}
}
