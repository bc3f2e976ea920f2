package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/gifrunner/internal/config"
	"github.com/ytget/gifrunner/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.gifrunner"
	AppName = "GIF Runner"
)

// runOptions holds the parsed command line
type runOptions struct {
	pick        bool
	locked      bool
	minInterval time.Duration
	scale       int
}

func main() {
	rootCmd := newRootCommand(run)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI; runFn receives the files and parsed flags
func newRootCommand(runFn func(cmd *cobra.Command, paths []string, opts runOptions) error) *cobra.Command {
	opts := runOptions{}

	rootCmd := &cobra.Command{
		Use:   "gifrunner [FILE.gif ...]",
		Short: fmt.Sprintf("%s v%s shows animated GIFs in borderless overlay windows", AppName, version),
		Long: fmt.Sprintf("%s v%s shows animated GIFs in borderless overlay windows.\n\n", AppName, version) +
			"Files given on the command line are opened directly. Without files, or with\n" +
			"--pick, a file dialog asks for GIFs until it is cancelled. Drag a window to\n" +
			"move it; right-click it to lock it in place or close it.",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.scale != 0 && (opts.scale < config.MinScalePercent || opts.scale > config.MaxScalePercent) {
				return fmt.Errorf("--scale must be between %d and %d", config.MinScalePercent, config.MaxScalePercent)
			}
			if opts.minInterval < 0 {
				return fmt.Errorf("--min-interval must not be negative")
			}
			return runFn(cmd, args, opts)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.pick, "pick", "p", false, "prompt for more GIFs after opening the given files")
	rootCmd.Flags().BoolVarP(&opts.locked, "locked", "l", false, "open windows locked (not draggable)")
	rootCmd.Flags().DurationVar(&opts.minInterval, "min-interval", 0, "minimum time between frames, e.g. 20ms (default from settings)")
	rootCmd.Flags().IntVarP(&opts.scale, "scale", "s", 0, "scale windows by this percentage (default from settings)")

	return rootCmd
}

// overridesFromFlags keeps only the flags the user actually set
func overridesFromFlags(cmd *cobra.Command, opts runOptions) ui.Overrides {
	overrides := ui.Overrides{}
	if cmd.Flags().Changed("min-interval") {
		overrides.MinInterval = opts.minInterval
	}
	if cmd.Flags().Changed("scale") {
		overrides.ScalePercent = opts.scale
	}
	if cmd.Flags().Changed("locked") {
		locked := opts.locked
		overrides.StartLocked = &locked
	}
	return overrides
}

func run(cmd *cobra.Command, paths []string, opts runOptions) error {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIconResource())
	myApp.Settings().SetTheme(ui.NewOverlayTheme())

	settings := config.NewSettings(myApp)
	root := ui.NewApp(myApp, settings, overridesFromFlags(cmd, opts))
	root.Run(paths, opts.pick || len(paths) == 0)
	return nil
}
