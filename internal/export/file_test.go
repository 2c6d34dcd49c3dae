package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/measurekit/internal/session"
)

// FileSink is the filesystem implementation of the session sink
var _ session.Sink = FileSink{}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, suffix, expected string
	}{
		{"photo.png", "-medidas", "photo-medidas.jpg"},
		{"dir/photo.jpeg", "-medidas", "dir/photo-medidas.jpg"},
		{"noext", "-x", "noext-x.jpg"},
		{"photo.webp", "", "photo.jpg"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.input, tt.suffix); got != tt.expected {
			t.Errorf("OutputPath(%q, %q): expected %q, got %q", tt.input, tt.suffix, tt.expected, got)
		}
	}
}

func TestResolveOutput(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "photo.jpg")

	tests := []struct {
		name             string
		input, explicit  string
		suffix, expected string
		wantErr          bool
	}{
		{"derived", source, "", "-medidas", filepath.Join(dir, "photo-medidas.jpg"), false},
		{"explicit", source, filepath.Join(dir, "out.jpg"), "-medidas", filepath.Join(dir, "out.jpg"), false},
		{"png input empty suffix", filepath.Join(dir, "photo.png"), "", "", filepath.Join(dir, "photo.jpg"), false},
		{"jpg input empty suffix", source, "", "", "", true},
		{"explicit equals input", source, source, "-medidas", "", true},
		{"explicit equals input uncleaned", source, dir + "/./photo.jpg", "-medidas", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveOutput(tt.input, tt.explicit, tt.suffix)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFileSinkPut(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nested", "out.jpg")

	if err := (FileSink{}).Put(context.Background(), name, []byte("jpeg")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "jpeg" {
		t.Errorf("unexpected content %q", data)
	}
	if _, err := os.Stat(name + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be gone")
	}
}

func TestFileSinkCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	name := filepath.Join(t.TempDir(), "out.jpg")
	if err := (FileSink{}).Put(ctx, name, []byte("x")); err == nil {
		t.Error("expected error for canceled context")
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Error("nothing should be written after cancel")
	}
}
