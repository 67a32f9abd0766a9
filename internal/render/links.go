package render

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// LinkLabel derives a tidy human label for a URL: the eTLD+1 when it can be
// determined, the bare hostname otherwise, and the raw input when parsing
// fails. Used anywhere a template shows a link as text.
func LinkLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return raw
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
