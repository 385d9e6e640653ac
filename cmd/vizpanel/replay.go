package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/philipparndt/vizpanel/internal/config"
	"github.com/philipparndt/vizpanel/internal/replay"
	"github.com/philipparndt/vizpanel/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	replayOutput  string
	replayWatch   bool
	replayMarkers bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Replay recorded input through the interaction controller",
	Long: `Feed the pointer, key and selection steps of a YAML script into the
panel's interaction controller and print the resulting state. With --watch
the script and its config are replayed again whenever either changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(&replayOutput, "output", "o", "yaml", "Output format (yaml, json)")
	replayCmd.Flags().BoolVarP(&replayWatch, "watch", "w", false, "Replay again when the script or config changes")
	replayCmd.Flags().BoolVar(&replayMarkers, "markers", false, "Include overlay markers in the output")
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := args[0]
	files, err := replayOnce(ctx, cmd, path)
	if !replayWatch {
		return err
	}
	if err != nil {
		logger.Error("replay failed", zap.Error(err))
	}

	fw, err := watcher.NewFileWatcher(200*time.Millisecond, logger.Named("watcher"))
	if err != nil {
		return err
	}
	defer fw.Close()

	changes := make(chan string, 1)
	notify := func(p string) {
		select {
		case changes <- p:
		default:
		}
	}
	if err := fw.Watch(files, notify); err != nil {
		return err
	}
	fw.Start(ctx)
	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes...\n", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-changes:
			logger.Info("replaying", zap.String("changed", changed))
			next, err := replayOnce(ctx, cmd, path)
			if err != nil {
				logger.Error("replay failed", zap.Error(err))
				continue
			}
			if !slices.Equal(next, files) {
				if err := fw.RemoveAll(); err != nil {
					return err
				}
				if err := fw.Watch(next, notify); err != nil {
					return err
				}
				files = next
			}
		}
	}
}

// replayOnce runs the script and returns the files it depends on
func replayOnce(ctx context.Context, cmd *cobra.Command, path string) ([]string, error) {
	files := []string{path}

	script, err := replay.Load(path)
	if err != nil {
		return files, err
	}

	cfg := config.Default()
	if p := script.ConfigPath(); p != "" {
		files = append(files, p)
		if cfg, err = config.Load(p); err != nil {
			return files, err
		}
	}

	summary, err := replay.Run(ctx, script, cfg, logger)
	if err != nil {
		return files, err
	}
	if !replayMarkers {
		summary.Markers = nil
	}
	return files, writeOutput(cmd.OutOrStdout(), summary, replayOutput)
}
