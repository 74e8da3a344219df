package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gizmo-platform/gizmoget/internal/platform"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		platform  string
		userAgent string
		expected  platform.Label
	}{
		{
			name:      "windows wow64",
			platform:  "Win32",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; WOW64)",
			expected:  platform.Label{OS: "Windows", Arch: "x64"},
		},
		{
			name:      "windows win64",
			platform:  "Win32",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
			expected:  platform.Label{OS: "Windows", Arch: "x64"},
		},
		{
			name:      "windows 32-bit",
			platform:  "Win32",
			userAgent: "Mozilla/5.0 (Windows NT 6.1)",
			expected:  platform.Label{OS: "Windows", Arch: "x86"},
		},
		{
			name:      "mac arm64",
			platform:  "MacIntel",
			userAgent: "Mozilla/5.0 (Macintosh; ARM64 Mac OS X)",
			expected:  platform.Label{OS: "macOS", Arch: "arm64"},
		},
		{
			name:      "mac default x64",
			platform:  "MacIntel",
			userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
			expected:  platform.Label{OS: "macOS", Arch: "x64"},
		},
		{
			name:      "linux x86_64",
			platform:  "Linux x86_64",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64)",
			expected:  platform.Label{OS: "Linux", Arch: "x64"},
		},
		{
			name:      "linux default arm64",
			platform:  "Linux armv8l",
			userAgent: "Mozilla/5.0 (X11; Linux armv8l)",
			expected:  platform.Label{OS: "Linux", Arch: "arm64"},
		},
		{
			name:      "android arm64",
			platform:  "Android",
			userAgent: "Mozilla/5.0 (Android 14; arm64)",
			expected:  platform.Label{OS: "Android", Arch: "arm64"},
		},
		{
			name:      "android default",
			platform:  "Android",
			userAgent: "Mozilla/5.0 (Android 14)",
			expected:  platform.Label{OS: "Android", Arch: "x86_64"},
		},
		{
			name:      "iphone arm64",
			platform:  "iPhone",
			userAgent: "Mozilla/5.0 (iPhone; arm64)",
			expected:  platform.Label{OS: "iOS", Arch: "arm64"},
		},
		{
			name:      "ipad default",
			platform:  "iPad",
			userAgent: "Mozilla/5.0 (iPad; CPU OS 17_0)",
			expected:  platform.Label{OS: "iOS", Arch: "x86_64"},
		},
		{
			name:      "case insensitive",
			platform:  "WINDOWS",
			userAgent: "WOW64",
			expected:  platform.Label{OS: "Windows", Arch: "x64"},
		},
		{
			name:      "windows wins over mac when both match",
			platform:  "winmac",
			userAgent: "",
			expected:  platform.Label{OS: "Windows", Arch: "x86"},
		},
		{
			name:      "unrecognized",
			platform:  "SunOS",
			userAgent: "Mozilla/5.0 (SunOS sun4u)",
			expected:  platform.Label{OS: "Unknown", Arch: "Unknown"},
		},
		{
			name:      "empty input",
			platform:  "",
			userAgent: "",
			expected:  platform.Label{OS: "Unknown", Arch: "Unknown"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, platform.Detect(tt.platform, tt.userAgent))
		})
	}
}

func TestLabelString(t *testing.T) {
	t.Parallel()

	l := platform.Label{OS: "Windows", Arch: "x64"}
	assert.Equal(t, "Windows x64", l.String())
}

func TestChooseElement(t *testing.T) {
	t.Parallel()

	supported := platform.DefaultSupported()

	tests := []struct {
		name     string
		label    platform.Label
		expected string
	}{
		{
			name:     "windows x64 supported",
			label:    platform.Label{OS: "Windows", Arch: "x64"},
			expected: "Windows x64",
		},
		{
			name:     "linux x64 supported",
			label:    platform.Label{OS: "Linux", Arch: "x64"},
			expected: "Linux x64",
		},
		{
			name:     "unrecognized platform",
			label:    platform.Label{OS: "Solaris", Arch: "sparc"},
			expected: platform.UnsupportedElement,
		},
		{
			name:     "recognized but unwired",
			label:    platform.Label{OS: "macOS", Arch: "arm64"},
			expected: platform.UnsupportedElement,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, platform.ChooseElement(tt.label, supported))
		})
	}
}
