package platform_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gizmo-platform/gizmoget/internal/platform"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("client hint header", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Sec-CH-UA-Platform", `"Windows"`)
		r.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")

		src := platform.FromRequest(r)
		assert.Equal(t, "Windows", src.Platform())
		assert.Equal(t, platform.Label{OS: "Windows", Arch: "x64"}, platform.DetectFrom(src))
	})

	t.Run("falls back to user-agent", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64)")

		src := platform.FromRequest(r)
		assert.Equal(t, platform.Label{OS: "Linux", Arch: "x64"}, platform.DetectFrom(src))
	})

	t.Run("no headers", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Del("User-Agent")

		src := platform.FromRequest(r)
		assert.Equal(t, platform.Label{OS: "Unknown", Arch: "Unknown"}, platform.DetectFrom(src))
	})
}
