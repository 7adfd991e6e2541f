// galaxy-generator is a desktop toy: a parametric spiral-galaxy point cloud
// with an orbit camera and a live tweak panel. Every parameter edit rebuilds
// the cloud from scratch once the edit settles.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/caloicode/galaxy-generator/internal/config"
	"github.com/caloicode/galaxy-generator/internal/game"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		configPath string
		count      int
		verbose    bool
		mute       bool
	)

	cmd := &cobra.Command{
		Use:           "galaxy-generator",
		Short:         "Interactive spiral-galaxy point-cloud visualization",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
			})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			params := config.Default()
			if configPath != "" {
				var err error
				params, err = config.Load(configPath)
				if err != nil {
					return err
				}
				logger.Info("loaded parameters", "path", configPath)
			}
			if cmd.Flags().Changed("count") {
				params.Count = count
				params = params.Clamp()
			}

			return run(params, logger, mute)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML parameter file")
	cmd.Flags().IntVar(&count, "count", config.Default().Count, "override the star count")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&mute, "mute", false, "disable the ambient soundtrack")
	return cmd
}

func run(params config.Params, logger *log.Logger, mute bool) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Galaxy Generator")

	logger.Info("starting", "points", params.Count, "branches", params.Branches)

	g := game.New(params, logger, mute)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
