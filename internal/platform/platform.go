// Package platform maps ambient client environment strings to a normalized
// operating-system/architecture label and picks the download button to show.
package platform

import "strings"

// Operating system names as they appear in page element ids.
const (
	OSWindows = "Windows"
	OSMacOS   = "macOS"
	OSLinux   = "Linux"
	OSAndroid = "Android"
	OSIOS     = "iOS"
	Unknown   = "Unknown"
)

// Architecture names. The Android and iOS branches fall back to "x86_64"
// rather than "x64"; only x64 buttons are wired on the page, so those labels
// route to the unsupported notice.
const (
	ArchX86    = "x86"
	ArchX64    = "x64"
	ArchARM64  = "arm64"
	ArchX86_64 = "x86_64"
)

// Label is the normalized (OS, architecture) pair for a visiting client.
// It is computed once per page load and never persisted.
type Label struct {
	OS   string
	Arch string
}

// String renders the label the way page element ids are formed, e.g.
// "Windows x64".
func (l Label) String() string {
	return l.OS + " " + l.Arch
}

// Detect maps a platform identifier string and a user-agent string to a
// Label. Matching is case-insensitive, first match wins, and every input
// produces a label — unmatched input yields Unknown/Unknown. Detect is a
// pure function of its two inputs.
func Detect(platform, userAgent string) Label {
	p := strings.ToLower(platform)
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(p, "win"):
		if strings.Contains(ua, "wow64") || strings.Contains(ua, "win64") {
			return Label{OS: OSWindows, Arch: ArchX64}
		}

		return Label{OS: OSWindows, Arch: ArchX86}
	case strings.Contains(p, "mac"):
		if strings.Contains(ua, "arm64") {
			return Label{OS: OSMacOS, Arch: ArchARM64}
		}

		return Label{OS: OSMacOS, Arch: ArchX64}
	case strings.Contains(p, "linux"):
		if strings.Contains(ua, "x86_64") {
			return Label{OS: OSLinux, Arch: ArchX64}
		}

		return Label{OS: OSLinux, Arch: ArchARM64}
	case strings.Contains(p, "android"):
		if strings.Contains(ua, "arm64") {
			return Label{OS: OSAndroid, Arch: ArchARM64}
		}

		return Label{OS: OSAndroid, Arch: ArchX86_64}
	case strings.Contains(p, "iphone"), strings.Contains(p, "ipad"):
		if strings.Contains(ua, "arm64") {
			return Label{OS: OSIOS, Arch: ArchARM64}
		}

		return Label{OS: OSIOS, Arch: ArchX86_64}
	default:
		return Label{OS: Unknown, Arch: Unknown}
	}
}

// UnsupportedElement is the id of the notice revealed when the detected
// label has no wired-up download button.
const UnsupportedElement = "unsupported"

// DefaultSupported lists the labels that have a download button on the page.
func DefaultSupported() []string {
	return []string{"Windows x64", "Linux x64"}
}

// ChooseElement returns the id of the single page element to reveal for a
// label. Labels outside the supported set fall through to the unsupported
// notice; exactly one element id is returned per call.
func ChooseElement(l Label, supported []string) string {
	id := l.String()
	for _, s := range supported {
		if s == id {
			return id
		}
	}

	return UnsupportedElement
}
