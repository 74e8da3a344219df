package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gizmo-platform/gizmoget/internal/fetch"
	"github.com/gizmo-platform/gizmoget/internal/release"
	"github.com/gizmo-platform/gizmoget/internal/ui"
)

var (
	fetchRelease  string
	fetchCacheDir string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <asset-name>",
	Short: "Download a release asset",
	Long: `Fetch downloads a named asset of a release into the local cache and prints
its path. Without --release, the newest stable release is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchRelease, "release", "", "release tag to fetch from (default: latest stable)")
	fetchCmd.Flags().StringVar(&fetchCacheDir, "cache-dir", "", "asset cache directory (default from config)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	assetName := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if fetchCacheDir != "" {
		cfg.CacheDir = fetchCacheDir
	}

	releases, err := newClient(cfg).Releases(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing releases: %w", err)
	}

	rel, err := pickRelease(releases, fetchRelease)
	if err != nil {
		return err
	}

	asset, ok := rel.FindAsset(assetName)
	if !ok {
		return fmt.Errorf("asset %q not found in release %s", assetName, rel.TagName)
	}

	out := ui.NewWriter(noColor)
	out.Infof("fetching %s from %s", asset.Name, rel.DisplayName())

	path, err := fetch.New(slog.Default()).Asset(cmd.Context(), cfg.CacheDir, cfg.Owner, cfg.Repo, rel, asset)
	if err != nil {
		return err
	}

	out.Successf("fetched %s", asset.Name)
	fmt.Println(path)

	return nil
}

// pickRelease selects the release with the given tag, or the one flagged
// latest when tag is empty.
func pickRelease(releases []release.Release, tag string) (*release.Release, error) {
	for i := range releases {
		if tag == "" && releases[i].Latest {
			return &releases[i], nil
		}

		if tag != "" && releases[i].TagName == tag {
			return &releases[i], nil
		}
	}

	if tag == "" {
		return nil, fmt.Errorf("no stable release found")
	}

	return nil, fmt.Errorf("release %q not found", tag)
}
