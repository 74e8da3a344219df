package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "List published releases",
	Long:  `List all releases of the configured project, newest first, with the newest stable release marked as latest.`,
	RunE:  runReleases,
}

func init() {
	rootCmd.AddCommand(releasesCmd)
}

func runReleases(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	releases, err := newClient(cfg).Releases(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing releases: %w", err)
	}

	for i := range releases {
		r := &releases[i]
		fmt.Printf("%-12s %s  %s\n", r.TagName, r.PublishedAt.Format("2006-01-02"), r.DisplayName())
	}

	return nil
}
