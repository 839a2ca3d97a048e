package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/philipparndt/cubecard/internal/app"
	"github.com/philipparndt/cubecard/internal/config"
	"github.com/philipparndt/cubecard/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	width      int
	height     int
	watch      bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "cubecard",
	Short: "3D identity card with a rolling cube",
	Long: `CubeCard shows a cube on a floor grid that rolls one cell per arrow key,
with navigation labels that follow their axis lines as the camera orbits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath, width, height)
		if err != nil {
			return err
		}
		return app.Run(cfg, app.Options{
			ConfigPath: configPath,
			Watch:      watch,
			Verbose:    verbose,
			Logger:     newLogger(verbose),
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cubecard %s (commit %s, built %s)\n",
			version.GetFullVersion(), version.GitCommit, version.BuildDate)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML scene config (defaults are built in)")
	rootCmd.Flags().IntVar(&width, "width", 0, "window width, overrides the config")
	rootCmd.Flags().IntVar(&height, "height", 0, "window height, overrides the config")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the config file when it changes")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log rolls and reloads")
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(path string, width, height int) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
	return cfg, nil
}

func newLogger(verbose bool) *log.Logger {
	var out io.Writer = io.Discard
	if verbose {
		out = os.Stdout
	}
	return log.New(out, "[cubecard] ", log.LstdFlags|log.Lmicroseconds)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
