package measurement

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/measurekit/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Entry is the file representation of one measurement. Nil fields keep the
// value already present in the set.
type Entry struct {
	Active *bool           `yaml:"active,omitempty" toml:"active,omitempty"`
	Value  *string         `yaml:"value,omitempty" toml:"value,omitempty"`
	Start  *geometry.Point `yaml:"start,omitempty" toml:"start,omitempty"`
	End    *geometry.Point `yaml:"end,omitempty" toml:"end,omitempty"`
}

// Document is an annotation file: up to one entry per kind
type Document struct {
	Width  *Entry `yaml:"width,omitempty" toml:"width,omitempty"`
	Height *Entry `yaml:"height,omitempty" toml:"height,omitempty"`
	Depth  *Entry `yaml:"depth,omitempty" toml:"depth,omitempty"`
}

// Format is an annotation file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the encoding from a file extension (YAML by default)
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported annotation format %q (want yaml or toml)", s)
}

func (d *Document) entry(kind Kind) **Entry {
	switch kind {
	case Width:
		return &d.Width
	case Height:
		return &d.Height
	default:
		return &d.Depth
	}
}

// Entry returns the entry for kind, or nil if the document leaves it unset
func (d *Document) Entry(kind Kind) *Entry {
	return *d.entry(kind)
}

// LoadDocument reads an annotation file, choosing the decoder by extension
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read annotation file: %w", err)
	}

	doc, err := ParseDocument(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument decodes an annotation document
func ParseDocument(data []byte, format Format) (*Document, error) {
	doc := &Document{}

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), doc); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// Apply writes the document's entries into the set. Points are clamped
// through the store mutators.
func (d *Document) Apply(s *Set) {
	for _, kind := range Kinds {
		e := d.Entry(kind)
		if e == nil {
			continue
		}
		if e.Active != nil {
			s.SetActive(kind, *e.Active)
		}
		if e.Value != nil {
			s.SetValue(kind, *e.Value)
		}
		if e.Start != nil {
			s.SetEndpoint(kind, Start, *e.Start)
		}
		if e.End != nil {
			s.SetEndpoint(kind, End, *e.End)
		}
	}
}

// DocumentFromSet captures every measurement of the set
func DocumentFromSet(s *Set) *Document {
	doc := &Document{}
	for _, m := range s.All() {
		active := m.Active
		value := m.Value
		start := m.Start
		end := m.End
		*doc.entry(m.Kind) = &Entry{
			Active: &active,
			Value:  &value,
			Start:  &start,
			End:    &end,
		}
	}
	return doc
}

// Marshal encodes the document
func (d *Document) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(d); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := yaml.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	}
}
