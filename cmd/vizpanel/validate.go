package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/vizpanel/pkg/validate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var validators = map[string]func(any) *validate.Result{
	"camera":   validate.CameraState,
	"polygons": validate.PolygonPoints,
	"point":    validate.Point2D,
}

var validateCmd = &cobra.Command{
	Use:       "validate [camera|polygons|point] [file]",
	Short:     "Validate a camera state, polygon list or point file",
	Long:      "Check a JSON or YAML document against the rules the panel applies to edited values.",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"camera", "polygons", "point"},
	RunE:      runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	validator, ok := validators[args[0]]
	if !ok {
		return fmt.Errorf("unknown document kind %q", args[0])
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}

	// YAML is a superset of JSON, so one decoder covers both
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[1], err)
	}

	if res := validator(doc); res != nil {
		return fmt.Errorf("%s is invalid: %s", args[1], res)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %s\n", args[1], args[0])
	return nil
}
