// Package fetch downloads release assets into a local cache via go-getter.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter/v2"

	"github.com/gizmo-platform/gizmoget/internal/release"
)

// Fetcher downloads release assets over HTTP.
type Fetcher struct {
	client *getter.Client
	logger *slog.Logger
}

// New creates a Fetcher with default configuration.
func New(logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Fetcher{
		client: &getter.Client{
			DisableSymlinks: true,
		},
		logger: logger,
	}
}

// AssetPath returns where an asset of a release lives in the cache:
// cacheDir/owner/repo/release-name/asset-name.
func AssetPath(cacheDir, owner, repo, releaseName, assetName string) string {
	return filepath.Join(cacheDir, owner, repo, releaseName, assetName)
}

// Asset downloads one release asset into the cache and returns its path.
// A previously downloaded copy is reused without touching the network.
func (f *Fetcher) Asset(ctx context.Context, cacheDir, owner, repo string, rel *release.Release, asset *release.Asset) (string, error) {
	dest := AssetPath(cacheDir, owner, repo, rel.Name, asset.Name)

	if info, err := os.Stat(dest); err == nil && !info.IsDir() {
		f.logger.Debug("asset cache hit", "asset", asset.Name, "path", dest)

		return dest, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return "", fmt.Errorf("creating cache dir: %w", err)
	}

	f.logger.Debug("downloading asset", "asset", asset.Name, "url", asset.BrowserDownloadURL)

	req := &getter.Request{
		Src:             asset.BrowserDownloadURL,
		Dst:             dest,
		GetMode:         getter.ModeFile,
		DisableSymlinks: true,
	}

	if _, err := f.client.Get(ctx, req); err != nil {
		return "", fmt.Errorf("fetching %s: %w", asset.Name, err)
	}

	return dest, nil
}
