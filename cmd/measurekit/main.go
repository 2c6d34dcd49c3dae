package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/measurekit/internal/config"
	"github.com/philipparndt/measurekit/internal/logging"
	"github.com/philipparndt/measurekit/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "measurekit",
	Short: "Burn width/height/depth measurements into product photos",
	Long: `measurekit annotates product photos with up to three dimension
measurements (width, height, depth) and writes a new JPEG with arrows and
value labels burned in. Annotations come from a YAML or TOML file, or from
a recorded pointer gesture trace.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Log.Mode)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default measurekit.yaml if present)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
