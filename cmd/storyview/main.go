// Storyview runs a paged story viewer with coloured placeholder stories.
// Swipe horizontally to page, drag down to dismiss, hold to pause, press K
// to toggle a simulated soft keyboard and Escape to quit.
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/storyview"
	"github.com/spf13/cobra"
)

const windowTitle = "Storyview"

type options struct {
	configPath string
	mode       string
	pages      int
	logLevel   string
}

func main() {
	if err := newCommand().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

func newCommand() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "storyview",
		Short: "Run the story viewer demo",
		Example: `
storyview
storyview --mode scale --pages 8
storyview --config viewer.toml --log-level debug
`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringVar(&o.mode, "mode", "", "transition mode: cube, scale or default")
	cmd.Flags().IntVar(&o.pages, "pages", 0, "number of stories")
	cmd.Flags().StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	return cmd
}

// load reads the config file, if any, and applies flag overrides.
func (o *options) load(cmd *cobra.Command) (storyview.Config, error) {
	cfg := storyview.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = storyview.LoadConfig(o.configPath); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("mode") {
		mode, err := storyview.ParseTransitionMode(o.mode)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = mode
	}
	if cmd.Flags().Changed("pages") {
		cfg.Pages = o.pages
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func run(cfg storyview.Config) error {
	level, _ := storyview.ParseLogLevel(cfg.LogLevel)
	levelVar := &slog.LevelVar{}
	levelVar.Set(level)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar}))

	g := newGame(cfg, logger)
	defer g.container.Dispose()

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(int(cfg.PageWidth), int(cfg.PageHeight))
	logger.Info("starting viewer", "mode", cfg.Mode.String(), "pages", cfg.Pages)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
