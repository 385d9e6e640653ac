package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/vizpanel/internal/logging"
	"github.com/philipparndt/vizpanel/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logLevel  string
	logFormat string
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "vizpanel",
	Short: "Inspect and replay the interaction state of a 3D viewport panel",
	Long: `vizpanel works with the saved configuration of a 3D viewport panel.
It generates the crosshair overlay for a camera, validates camera state and
polygon files, and replays recorded pointer and key input through the
panel's interaction controller.`,
	Version: version.GetFullVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logLevel, logFormat)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
