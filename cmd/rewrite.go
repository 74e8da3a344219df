package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gizmo-platform/gizmoget/internal/page"
	"github.com/gizmo-platform/gizmoget/internal/ui"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <page.html> [more pages...]",
	Short: "Rewrite download links in static pages",
	Long: `Rewrite resolves the download URL prefix once and prepends it to the href
of every download-link anchor in the given HTML files, in place. When no
prefix can be resolved, the files are left untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := ui.NewWriter(noColor)

	prefix, ok := newClient(cfg).ResolvePrefix(cmd.Context())
	if !ok {
		out.Warningf("no download prefix resolved for %s/%s; pages left untouched", cfg.Owner, cfg.Repo)

		return nil
	}

	for _, path := range args {
		if err := rewriteFile(path, prefix); err != nil {
			return err
		}

		out.Successf("rewrote %s", path)
	}

	return nil
}

func rewriteFile(path, prefix string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("reading page %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := page.Render(&buf, bytes.NewReader(data), "", prefix); err != nil {
		return fmt.Errorf("rewriting page %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // page files are world-readable site content
		return fmt.Errorf("writing page %s: %w", path, err)
	}

	return nil
}
