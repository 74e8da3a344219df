package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizmo-platform/gizmoget/internal/platform"
	"github.com/gizmo-platform/gizmoget/internal/server"
)

type stubResolver struct {
	prefix string
	ok     bool
}

func (s stubResolver) ResolvePrefix(_ context.Context) (string, bool) {
	return s.prefix, s.ok
}

const testPage = `<!DOCTYPE html>
<html><body>
<div id="Windows x64" hidden><a class="download-link" href="gizmo-windows-x64.zip">Windows</a></div>
<div id="Linux x64" hidden><a class="download-link" href="gizmo-linux-x64.zip">Linux</a></div>
<div id="unsupported" hidden><p>Unsupported platform.</p></div>
</body></html>`

func writePage(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(testPage), 0o600))

	return path
}

func get(t *testing.T, h http.Handler, platformHint, userAgent string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if platformHint != "" {
		r.Header.Set("Sec-CH-UA-Platform", platformHint)
	}

	if userAgent != "" {
		r.Header.Set("User-Agent", userAgent)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	return w
}

func TestHandler_WindowsClient(t *testing.T) {
	t.Parallel()

	h := server.New(writePage(t), platform.DefaultSupported(), stubResolver{prefix: "https://example/download/", ok: true}, nil)

	w := get(t, h, `"Windows"`, "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, `<div id="Windows x64">`)
	assert.Contains(t, body, `<div id="Linux x64" hidden="">`)
	assert.Contains(t, body, `href="https://example/download/gizmo-windows-x64.zip"`)
}

func TestHandler_UnsupportedClient(t *testing.T) {
	t.Parallel()

	h := server.New(writePage(t), platform.DefaultSupported(), stubResolver{prefix: "https://example/download/", ok: true}, nil)

	w := get(t, h, `"Android"`, "Mozilla/5.0 (Android 14; arm64)")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, `<div id="unsupported">`)
	assert.Contains(t, body, `<div id="Windows x64" hidden="">`)
	assert.Contains(t, body, `<div id="Linux x64" hidden="">`)
}

func TestHandler_ResolverFailureLeavesLinksUnrewritten(t *testing.T) {
	t.Parallel()

	h := server.New(writePage(t), platform.DefaultSupported(), stubResolver{}, nil)

	w := get(t, h, `"Linux"`, "Mozilla/5.0 (X11; Linux x86_64)")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	// Degraded state: the matching button is still revealed, links keep
	// their original relative targets.
	assert.Contains(t, body, `<div id="Linux x64">`)
	assert.Contains(t, body, `href="gizmo-linux-x64.zip"`)
	assert.Contains(t, body, `href="gizmo-windows-x64.zip"`)
}

func TestHandler_MissingPage(t *testing.T) {
	t.Parallel()

	h := server.New(filepath.Join(t.TempDir(), "gone.html"), platform.DefaultSupported(), stubResolver{}, nil)

	w := get(t, h, "", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
