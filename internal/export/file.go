// Package export writes saved assets to the local filesystem
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath derives "<dir>/<name><suffix>.jpg" from the input image path
func OutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	return base + suffix + ".jpg"
}

// ResolveOutput picks the output path for input: explicit when given,
// otherwise OutputPath with suffix. The source image is never a valid target.
func ResolveOutput(input, explicit, suffix string) (string, error) {
	output := explicit
	if output == "" {
		output = OutputPath(input, suffix)
	}

	same, err := samePath(input, output)
	if err != nil {
		return "", err
	}
	if same {
		return "", fmt.Errorf("output %s would overwrite the source image", output)
	}
	return output, nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", b, err)
	}
	return absA == absB, nil
}

// FileSink writes assets to files named by their full path
type FileSink struct{}

// Put writes data to name, creating parent directories as needed
func (FileSink) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	// Write then rename so watchers never see a partial file
	tmp := name + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, name); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
