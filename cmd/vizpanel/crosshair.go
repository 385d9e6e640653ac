package main

import (
	"fmt"

	"github.com/philipparndt/vizpanel/internal/config"
	"github.com/philipparndt/vizpanel/internal/crosshair"
	"github.com/spf13/cobra"
)

var (
	crosshairOutput string
	crosshairShow   bool
)

var crosshairCmd = &cobra.Command{
	Use:   "crosshair [config]",
	Short: "Print the crosshair markers for a panel config",
	Long: `Generate the two crosshair line markers for the camera stored in a panel
config. Nothing is printed while the camera is in perspective mode or the
crosshair is hidden.`,
	Args: cobra.ExactArgs(1),
	RunE: runCrosshair,
}

func init() {
	rootCmd.AddCommand(crosshairCmd)

	crosshairCmd.Flags().StringVarP(&crosshairOutput, "output", "o", "yaml", "Output format (yaml, json)")
	crosshairCmd.Flags().BoolVar(&crosshairShow, "show", false, "Show the crosshair even when the config hides it")
}

func runCrosshair(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	ms := crosshair.Generate(cfg.CameraState, cfg.ShowCrosshair || crosshairShow)
	for i := range ms {
		ms[i].FrameID = cfg.FollowTf
	}
	if len(ms) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No crosshair: camera is in perspective mode or the crosshair is hidden")
		return nil
	}
	return writeOutput(cmd.OutOrStdout(), ms, crosshairOutput)
}
