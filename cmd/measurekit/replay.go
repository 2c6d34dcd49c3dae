package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/measurekit/internal/drag"
	"github.com/philipparndt/measurekit/internal/export"
	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/internal/session"
	"github.com/spf13/cobra"
)

var (
	replayTrace       string
	replayAnnotations string
	replayOutput      string
	replayViewWidth   float64
	replayViewHeight  float64
)

var replayCmd = &cobra.Command{
	Use:   "replay [image]",
	Short: "Replay a recorded pointer gesture trace and render the result",
	Long: `Apply a YAML list of pointer events ({event: down|move|up, x, y} in
display pixels) to the annotations, as if they were dragged in an editor
showing the image at --view-width x --view-height. The resulting annotation
file is printed and the composited image written.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVar(&replayTrace, "trace", "", "gesture trace file (.yaml)")
	replayCmd.Flags().StringVarP(&replayAnnotations, "annotations", "a", "", "initial annotation file (.yaml or .toml)")
	replayCmd.Flags().StringVarP(&replayOutput, "output", "o", "", "output file (default <image><suffix>.jpg)")
	replayCmd.Flags().Float64Var(&replayViewWidth, "view-width", 1000, "display width the trace was recorded at")
	replayCmd.Flags().Float64Var(&replayViewHeight, "view-height", 1000, "display height the trace was recorded at")

	_ = replayCmd.MarkFlagRequired("trace")
}

func runReplay(cmd *cobra.Command, args []string) error {
	input := args[0]
	output, err := export.ResolveOutput(input, replayOutput, cfg.Output.Suffix)
	if err != nil {
		return err
	}
	if !(replayViewWidth > 0 && replayViewHeight > 0) {
		return fmt.Errorf("view size must be positive, got %vx%v", replayViewWidth, replayViewHeight)
	}

	traceData, err := os.ReadFile(replayTrace)
	if err != nil {
		return fmt.Errorf("failed to read trace: %w", err)
	}
	trace, err := session.ParseTrace(traceData)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	c, err := session.Open(data, sessionOptions(input)...)
	if err != nil {
		return err
	}
	defer c.Close()

	if replayAnnotations != "" {
		doc, err := measurement.LoadDocument(replayAnnotations)
		if err != nil {
			return err
		}
		if err := c.Apply(doc); err != nil {
			return err
		}
	}

	layout := drag.Layout{Width: replayViewWidth, Height: replayViewHeight}
	if err := c.Replay(trace, layout); err != nil {
		return err
	}

	if _, err := c.SaveTo(cmd.Context(), export.FileSink{}, output); err != nil {
		return err
	}

	snapshot := c.Snapshot()
	doc, err := measurement.DocumentFromSet(&snapshot).Marshal(measurement.FormatYAML)
	if err != nil {
		return err
	}
	fmt.Print(string(doc))
	fmt.Printf("Wrote %s\n", output)
	return nil
}
