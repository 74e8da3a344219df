package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gizmo-platform/gizmoget/internal/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the download URL prefix",
	Long: `Resolve determines the URL prefix download links get rewritten against:
the latest-release redirect when the latest release resolves, otherwise a
tag-specific prefix for the newest release by publication date.`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := ui.NewWriter(noColor)

	prefix, ok := newClient(cfg).ResolvePrefix(cmd.Context())
	if !ok {
		// Degraded state, not an error: the page serves unrewritten links.
		out.Warningf("no download prefix resolved for %s/%s; links would be left unrewritten", cfg.Owner, cfg.Repo)

		return nil
	}

	fmt.Println(prefix)

	return nil
}
