package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/measurekit/internal/export"
	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/internal/session"
	"github.com/philipparndt/measurekit/pkg/compositor"
	"github.com/philipparndt/measurekit/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	renderAnnotations string
	renderOutput      string
	renderQuality     int
	renderWatch       bool
)

var renderCmd = &cobra.Command{
	Use:   "render [image]",
	Short: "Render annotations onto an image",
	Long: `Composite the active measurements of an annotation file over the image
and write the result as JPEG. Without --annotations the defaults are used,
which have every measurement inactive.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderAnnotations, "annotations", "a", "", "annotation file (.yaml or .toml)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default <image><suffix>.jpg)")
	renderCmd.Flags().IntVar(&renderQuality, "quality", 0, "JPEG quality 1-100 (default from config)")
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false, "re-render whenever the image or annotation file changes")
}

func runRender(cmd *cobra.Command, args []string) error {
	input := args[0]
	output, err := export.ResolveOutput(input, renderOutput, cfg.Output.Suffix)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := renderOnce(ctx, input, output); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", output)

	if !renderWatch {
		return nil
	}
	return watchRender(ctx, input, output)
}

// renderOnce runs one complete session: open, apply annotations, save, close
func renderOnce(ctx context.Context, input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	c, err := session.Open(data, sessionOptions(input)...)
	if err != nil {
		return err
	}
	defer c.Close()

	if renderAnnotations != "" {
		doc, err := measurement.LoadDocument(renderAnnotations)
		if err != nil {
			return err
		}
		if err := c.Apply(doc); err != nil {
			return err
		}
	}

	_, err = c.SaveTo(ctx, export.FileSink{}, output)
	return err
}

func sessionOptions(input string) []session.Option {
	quality := cfg.Render.Quality
	if renderQuality > 0 {
		quality = renderQuality
	}

	return []session.Option{
		session.WithName(input),
		session.WithLogger(logger),
		session.WithRenderOptions(compositor.Options{
			Background: cfg.BackgroundColor(),
			Quality:    quality,
		}),
	}
}

func watchRender(ctx context.Context, input, output string) error {
	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	files := []string{input}
	if renderAnnotations != "" {
		files = append(files, renderAnnotations)
	}

	err = fw.Watch(files, func(changed string) {
		if err := renderOnce(ctx, input, output); err != nil {
			logger.Error("re-render failed", zap.String("trigger", changed), zap.Error(err))
			return
		}
		logger.Info("re-rendered", zap.String("trigger", changed), zap.String("output", output))
	})
	if err != nil {
		return err
	}

	fmt.Println("Watching for changes, press Ctrl+C to stop")
	if err := fw.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
