package main

import (
	"fmt"

	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/spf13/cobra"
)

var defaultsFormat string

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default annotation set",
	Long:  "Print the default annotation file, a starting point for render --annotations.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := measurement.ParseFormat(defaultsFormat)
		if err != nil {
			return err
		}

		data, err := measurement.DocumentFromSet(measurement.NewSet()).Marshal(format)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)

	defaultsCmd.Flags().StringVar(&defaultsFormat, "format", "yaml", "output format (yaml or toml)")
}
