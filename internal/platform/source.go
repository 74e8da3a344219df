package platform

import (
	"net/http"
	"strings"
)

// Source supplies the two ambient environment strings detection reads.
// Injecting it keeps Detect callers decoupled from where the strings
// actually come from (request headers, CLI flags, tests).
type Source interface {
	Platform() string
	UserAgent() string
}

// Values is a Source backed by explicit strings.
type Values struct {
	PlatformID string
	Agent      string
}

// Platform returns the platform identifier string.
func (v Values) Platform() string { return v.PlatformID }

// UserAgent returns the full user-agent string.
func (v Values) UserAgent() string { return v.Agent }

// FromRequest builds a Source from HTTP request headers. Browsers send the
// platform identifier in Sec-CH-UA-Platform (quoted) and the full user-agent
// in User-Agent. When the client-hint header is absent the user-agent string
// doubles as the platform identifier — detection is substring-based, so the
// OS token inside the user-agent still matches.
func FromRequest(r *http.Request) Source {
	p := strings.Trim(r.Header.Get("Sec-CH-UA-Platform"), `"`)
	ua := r.Header.Get("User-Agent")

	if p == "" {
		p = ua
	}

	return Values{PlatformID: p, Agent: ua}
}

// DetectFrom runs detection against a Source.
func DetectFrom(src Source) Label {
	return Detect(src.Platform(), src.UserAgent())
}
