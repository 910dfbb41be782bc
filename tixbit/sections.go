package tixbit

import (
	"math"
	"regexp"
	"strings"
)

// Display group labels, in classification priority order. The classifier is a
// rendering aid built on common venue naming conventions, not a canonical
// taxonomy: sections that match nothing land in "Other".
const (
	GroupFloor      = "Floor"
	GroupLower100s  = "Lower Level (100s)"
	GroupUpper200s  = "Upper Level (200s)"
	Group300Level   = "300 Level"
	Group400Level   = "400 Level"
	GroupFieldLevel = "Field Level"
	GroupLowerLevel = "Lower Level"
	GroupLoge       = "Loge"
	GroupSky        = "Sky"
	GroupTerrace    = "Terrace"
	GroupVista      = "Vista"
	GroupSuites     = "Suites"
	GroupStanding   = "Standing Room"
	GroupSpecial    = "General / Special"
	GroupOther      = "Other"
)

var groupOrder = []string{
	GroupFloor, GroupLower100s, GroupUpper200s, Group300Level, Group400Level,
	GroupFieldLevel, GroupLowerLevel, GroupLoge, GroupSky, GroupTerrace,
	GroupVista, GroupSuites, GroupStanding, GroupSpecial, GroupOther,
}

var (
	reFloor     = regexp.MustCompile(`^(FLOOR|FLR)\d$`)
	re100s      = regexp.MustCompile(`^1\d\d$`)
	re200s      = regexp.MustCompile(`^2\d\d$`)
	re300s      = regexp.MustCompile(`^3\d\d$`)
	re400s      = regexp.MustCompile(`^4\d\d$`)
	reBareDigit  = regexp.MustCompile(`^\d{1,2}$`)
	reLetterTier = regexp.MustCompile(`^[LSTV]\d$`)
)

// SectionGroup is one display bucket of sections, in input order.
type SectionGroup struct {
	Label    string
	Sections []SeatmapSection
}

// GroupSections partitions sections into display groups by naming convention.
// Matching is case-insensitive; each section lands in exactly one group, the
// first rule that fires. Groups come back in a fixed priority order, empty
// groups omitted; within a group, sections keep their input order.
func GroupSections(sections []SeatmapSection) []SectionGroup {
	// Bare 1-2 digit names are ambiguous: at a ballpark they are field
	// sections, at an arena whose chart also carries 100-numbered sections
	// they are a distinct lower tier. Resolved by co-occurrence within the
	// same chart. Unverified against venues (e.g. theaters) that number a
	// genuine lower level 1..30 with no 100s at all.
	bareCount := 0
	has100s := false
	for _, s := range sections {
		name := strings.ToUpper(strings.TrimSpace(s.Name))
		if reBareDigit.MatchString(name) {
			bareCount++
		}
		if re100s.MatchString(name) {
			has100s = true
		}
	}

	buckets := map[string][]SeatmapSection{}
	for _, s := range sections {
		label := classify(s.Name, bareCount, has100s)
		buckets[label] = append(buckets[label], s)
	}

	out := make([]SectionGroup, 0, len(buckets))
	for _, label := range groupOrder {
		if secs, ok := buckets[label]; ok {
			out = append(out, SectionGroup{Label: label, Sections: secs})
		}
	}
	return out
}

func classify(name string, bareCount int, has100s bool) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	switch {
	case reFloor.MatchString(n):
		return GroupFloor
	case re100s.MatchString(n):
		return GroupLower100s
	case re200s.MatchString(n):
		return GroupUpper200s
	case re300s.MatchString(n):
		return Group300Level
	case re400s.MatchString(n):
		return Group400Level
	case reBareDigit.MatchString(n) && bareCount > 1:
		if has100s {
			return GroupFieldLevel
		}
		return GroupLowerLevel
	case reLetterTier.MatchString(n):
		switch n[0] {
		case 'L':
			return GroupLoge
		case 'S':
			return GroupSky
		case 'T':
			return GroupTerrace
		default:
			return GroupVista
		}
	case strings.HasPrefix(n, "STE") || strings.Contains(n, "SUITE"):
		return GroupSuites
	case strings.Contains(n, "STANDING") || n == "SRO" || n == "UPPER":
		return GroupStanding
	case n == "DECK" || n == "ROOF" || n == "GA" || n == "HAT":
		return GroupSpecial
	default:
		return GroupOther
	}
}

// positionTolerance is tuned to the upstream map's coordinate scale; offsets
// within it read as "center" on that axis.
const positionTolerance = 50.0

// DescribePosition renders a section's qualitative on-map position relative
// to the centroid of all sections. The map's vertical axis grows away from
// the performance surface, so a negative vertical offset reads as the near
// side.
func DescribePosition(target SeatmapSection, all []SeatmapSection) string {
	if len(all) == 0 {
		return "position unknown"
	}

	var cx, cy float64
	for _, s := range all {
		cx += s.X
		cy += s.Y
	}
	cx /= float64(len(all))
	cy /= float64(len(all))

	dx := target.X - cx
	dy := target.Y - cy

	var parts []string
	if math.Abs(dy) >= positionTolerance {
		if dy < 0 {
			parts = append(parts, "near side")
		} else {
			parts = append(parts, "far side")
		}
	}
	if math.Abs(dx) >= positionTolerance {
		if dx < 0 {
			parts = append(parts, "left side")
		} else {
			parts = append(parts, "right side")
		}
	}
	if len(parts) == 0 {
		return "center of venue"
	}
	return strings.Join(parts, ", ")
}

// FlattenSections collects every section across zones, zone order first.
func FlattenSections(zones []SeatmapZone) []SeatmapSection {
	var out []SeatmapSection
	for _, z := range zones {
		out = append(out, z.Sections...)
	}
	return out
}
