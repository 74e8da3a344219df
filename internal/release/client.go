// Package release resolves the download URL prefix for Gizmo software
// releases hosted on a GitHub-style release API.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"
)

// DefaultAPIBase is the public GitHub API.
const DefaultAPIBase = "https://api.github.com"

const downloadBase = "https://github.com"

// statusSuccess is the body-level success signal the latest-release check
// requires. The GitHub API does not emit this field, so in practice the
// check falls through to the newest-by-date fallback; the literal contract
// is kept until product intent says otherwise.
const statusSuccess = "success"

// Release describes one published release as returned by the API.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	Prerelease  bool      `json:"prerelease"`
	Draft       bool      `json:"draft"`
	Assets      []Asset   `json:"assets"`

	// Latest marks the newest stable entry. Set by Releases, not by the API.
	Latest bool `json:"-"`
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// DisplayName renders the release name with its state suffix.
func (r *Release) DisplayName() string {
	switch {
	case r.Draft:
		return r.Name + " (draft)"
	case r.Prerelease:
		return r.Name + " (prerelease)"
	case r.Latest:
		return r.Name + " (latest)"
	}

	return r.Name
}

// FindAsset returns the release asset with the given file name.
func (r *Release) FindAsset(name string) (*Asset, bool) {
	for i := range r.Assets {
		if r.Assets[i].Name == name {
			return &r.Assets[i], true
		}
	}

	return nil, false
}

// Client queries the release API for one repository.
type Client struct {
	// APIBase overrides the API endpoint, mainly for tests.
	APIBase string
	// Owner and Repo identify the project whose releases are resolved.
	Owner string
	Repo  string
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// NewClient creates a Client for owner/repo against the public API.
func NewClient(owner, repo string) *Client {
	return &Client{
		APIBase: DefaultAPIBase,
		Owner:   owner,
		Repo:    repo,
	}
}

// ResolvePrefix determines the URL prefix to prepend to every download
// link's target. The latest-release endpoint is checked first; only when it
// yields nothing is the releases list consulted for the newest entry by
// publication date. At most two network calls are made, and failure is never
// an error — ok is false and links stay unrewritten, an accepted degraded
// state.
func (c *Client) ResolvePrefix(ctx context.Context) (prefix string, ok bool) {
	if prefix, ok := c.latestPrefix(ctx); ok {
		return prefix, true
	}

	return c.newestPrefix(ctx)
}

// latestPrefix checks GET /releases/latest. Both the HTTP status and the
// body's success signal must check out for the latest/download prefix to be
// used; any failure means "nothing found".
func (c *Client) latestPrefix(ctx context.Context) (string, bool) {
	var body struct {
		Status string `json:"status"`
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.APIBase, c.Owner, c.Repo)
	if err := c.getJSON(ctx, url, &body); err != nil {
		c.logger().Debug("latest release check failed", "err", err)

		return "", false
	}

	if body.Status != statusSuccess {
		return "", false
	}

	return fmt.Sprintf("%s/%s/%s/releases/latest/download/", downloadBase, c.Owner, c.Repo), true
}

// newestPrefix lists all releases, sorts them newest-first by publication
// timestamp (the API may return them in arbitrary order), and builds a
// tag-specific prefix from the newest entry.
func (c *Client) newestPrefix(ctx context.Context) (string, bool) {
	releases, err := c.fetchReleases(ctx)
	if err != nil {
		c.logger().Debug("releases list fetch failed", "err", err)

		return "", false
	}

	sortNewestFirst(releases)

	if len(releases) == 0 || releases[0].TagName == "" {
		c.logger().Warn("no release tag found", "owner", c.Owner, "repo", c.Repo)

		return "", false
	}

	return fmt.Sprintf("%s/%s/%s/releases/download/%s/", downloadBase, c.Owner, c.Repo, releases[0].TagName), true
}

// Releases lists all releases newest-first, with the newest entry that is
// neither a draft nor a prerelease flagged as latest.
func (c *Client) Releases(ctx context.Context) ([]Release, error) {
	releases, err := c.fetchReleases(ctx)
	if err != nil {
		return nil, err
	}

	sortNewestFirst(releases)

	marked := false
	for i := range releases {
		if !releases[i].Draft && !releases[i].Prerelease {
			releases[i].Latest = true
			marked = true

			break
		}
	}

	if !marked {
		return nil, fmt.Errorf("no stable releases found for %s/%s", c.Owner, c.Repo)
	}

	return releases, nil
}

func (c *Client) fetchReleases(ctx context.Context) ([]Release, error) {
	var releases []Release

	url := fmt.Sprintf("%s/repos/%s/%s/releases", c.APIBase, c.Owner, c.Repo)
	if err := c.getJSON(ctx, url, &releases); err != nil {
		return nil, err
	}

	return releases, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", url, err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s response: %w", url, err)
	}

	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	return http.DefaultClient
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.Default()
}

func sortNewestFirst(releases []Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].PublishedAt.After(releases[j].PublishedAt)
	})
}
