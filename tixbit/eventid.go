package tixbit

import (
	"regexp"
	"strings"
)

// Internal provider prefix, e.g. "provider-36PB9ZN". The public suffix is the
// canonical identifier; upstream sometimes returns the prefixed form.
var reProviderID = regexp.MustCompile(`(?i)^[a-z]{5,}-([a-z0-9]{6,})$`)

// NormalizeEventID strips a known provider prefix from an event identifier and
// returns the canonical public form. Unrecognized inputs come back trimmed but
// otherwise unchanged; applying it twice is a no-op.
func NormalizeEventID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return id
	}
	if m := reProviderID.FindStringSubmatch(id); m != nil {
		return m[1]
	}
	return id
}
