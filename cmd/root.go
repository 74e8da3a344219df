// Package cmd defines the CLI commands for gizmoget.
package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gizmo-platform/gizmoget/internal/config"
	"github.com/gizmo-platform/gizmoget/internal/release"
)

var (
	verbose bool
	noColor bool
	cfgFile string
)

// rootCmd is the base command for the gizmoget CLI.
var rootCmd = &cobra.Command{
	Use:   "gizmoget",
	Short: "Serve and resolve Gizmo software downloads",
	Long: `Gizmoget powers the Gizmo software download page. It detects a visiting
client's operating system and architecture, resolves the download URL prefix
for the latest published Gizmo release (falling back to the newest release by
publication date), and rewrites the page's download links accordingly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogger()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gizmoget/config.yaml)")
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig reads the config file named by --config, or the default path.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = filepath.Join(config.DefaultConfigDir(), "config.yaml")
	}

	return config.Load(path)
}

// newClient builds a release API client from the config.
func newClient(cfg *config.Config) *release.Client {
	c := release.NewClient(cfg.Owner, cfg.Repo)
	c.APIBase = cfg.APIBase
	c.Logger = slog.Default()

	return c
}
