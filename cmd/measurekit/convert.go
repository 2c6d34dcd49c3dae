package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/measurekit/internal/export"
	"github.com/philipparndt/measurekit/pkg/compositor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	convertOutput string
	convertWidth  int
	convertHeight int
)

var convertCmd = &cobra.Command{
	Use:   "convert [image]",
	Short: "Convert an image to JPEG on a flat background",
	Long: `Decode a JPEG, PNG, GIF, BMP, TIFF or WebP image and write it as JPEG.
Transparency is flattened onto the configured background. With --width and
--height the image is resized.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file (default <image>.jpg)")
	convertCmd.Flags().IntVar(&convertWidth, "width", 0, "resize to this width")
	convertCmd.Flags().IntVar(&convertHeight, "height", 0, "resize to this height")

	convertCmd.MarkFlagsRequiredTogether("width", "height")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := convertOutput
	if output == "" {
		output = export.OutputPath(input, "")
		if output == input {
			output = export.OutputPath(input, "-converted")
		}
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	encoded, bounds, err := compositor.Convert(data, convertWidth, convertHeight, compositor.Options{
		Background: cfg.BackgroundColor(),
		Quality:    cfg.Render.Quality,
	})
	if err != nil {
		return err
	}

	if err := (export.FileSink{}).Put(cmd.Context(), output, encoded); err != nil {
		return err
	}

	logger.Info("converted",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()))
	fmt.Printf("Wrote %s (%dx%d)\n", output, bounds.Dx(), bounds.Dy())
	return nil
}
