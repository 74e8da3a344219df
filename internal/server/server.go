// Package server serves the download page, running platform detection and
// download-link rewriting once per request.
package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/gizmo-platform/gizmoget/internal/page"
	"github.com/gizmo-platform/gizmoget/internal/platform"
)

// PrefixResolver yields the download URL prefix, best effort. ok is false
// when no prefix could be determined; links are then served unrewritten.
type PrefixResolver interface {
	ResolvePrefix(ctx context.Context) (prefix string, ok bool)
}

// Handler serves the download page. Each request plays the role of one page
// load: detect the client platform from its headers, reveal the matching
// button, resolve the release prefix, and rewrite the download links.
// Detection and resolution share no state; either can degrade independently.
type Handler struct {
	pagePath  string
	supported []string
	resolver  PrefixResolver
	logger    *slog.Logger
}

// New creates a Handler serving the HTML page at pagePath.
func New(pagePath string, supported []string, resolver PrefixResolver, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		pagePath:  pagePath,
		supported: supported,
		resolver:  resolver,
		logger:    logger,
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	label := platform.DetectFrom(platform.FromRequest(r))
	reveal := platform.ChooseElement(label, h.supported)

	prefix, ok := h.resolver.ResolvePrefix(r.Context())
	if !ok {
		h.logger.Debug("no download prefix resolved, serving links unrewritten")
	}

	f, err := os.Open(h.pagePath)
	if err != nil {
		h.logger.Error("opening download page", "path", h.pagePath, "err", err)
		http.Error(w, "download page unavailable", http.StatusInternalServerError)

		return
	}
	defer f.Close() //nolint:errcheck // read-only file

	var buf bytes.Buffer
	if err := page.Render(&buf, f, reveal, prefix); err != nil {
		h.logger.Error("rendering download page", "err", err)
		http.Error(w, "download page unavailable", http.StatusInternalServerError)

		return
	}

	h.logger.Debug("served download page", "platform", label.String(), "reveal", reveal, "prefix", prefix)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("writing response", "err", err)
	}
}
