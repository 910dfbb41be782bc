package tixbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(names ...string) []SeatmapSection {
	out := make([]SeatmapSection, len(names))
	for i, n := range names {
		out[i] = SeatmapSection{ID: n, Name: n}
	}
	return out
}

func groupLabels(groups []SectionGroup) map[string][]string {
	out := map[string][]string{}
	for _, g := range groups {
		for _, s := range g.Sections {
			out[g.Label] = append(out[g.Label], s.Name)
		}
	}
	return out
}

func TestGroupSections_MixedVenue(t *testing.T) {
	groups := GroupSections(named("FLOOR1", "101", "204", "L3", "SUITE5", "XYZ"))

	byLabel := groupLabels(groups)
	assert.Equal(t, []string{"FLOOR1"}, byLabel[GroupFloor])
	assert.Equal(t, []string{"101"}, byLabel[GroupLower100s])
	assert.Equal(t, []string{"204"}, byLabel[GroupUpper200s])
	assert.Equal(t, []string{"L3"}, byLabel[GroupLoge])
	assert.Equal(t, []string{"SUITE5"}, byLabel[GroupSuites])
	assert.Equal(t, []string{"XYZ"}, byLabel[GroupOther])
	assert.Len(t, groups, 6, "six distinct groups, nothing unclassified or double-counted")

	total := 0
	for _, g := range groups {
		total += len(g.Sections)
	}
	assert.Equal(t, 6, total)
}

func TestGroupSections_BareDigitDisambiguation(t *testing.T) {
	// co-occurring with 100s: field sections of a ballpark chart
	byLabel := groupLabels(GroupSections(named("1", "14", "101", "225")))
	assert.Equal(t, []string{"1", "14"}, byLabel[GroupFieldLevel])

	// no 100s in the chart: a plain lower level
	byLabel = groupLabels(GroupSections(named("1", "14", "204")))
	assert.Equal(t, []string{"1", "14"}, byLabel[GroupLowerLevel])

	// a lone bare-digit section does not form a tier by itself
	byLabel = groupLabels(GroupSections(named("7", "204")))
	assert.Equal(t, []string{"7"}, byLabel[GroupOther])
}

func TestGroupSections_PatternRules(t *testing.T) {
	byLabel := groupLabels(GroupSections(named(
		"FLR2", "315", "401", "S1", "T4", "V2", "STE12", "The Suites",
		"STANDING ROOM", "sro", "UPPER", "DECK", "ROOF", "ga", "HAT",
	)))
	assert.Equal(t, []string{"FLR2"}, byLabel[GroupFloor])
	assert.Equal(t, []string{"315"}, byLabel[Group300Level])
	assert.Equal(t, []string{"401"}, byLabel[Group400Level])
	assert.Equal(t, []string{"S1"}, byLabel[GroupSky])
	assert.Equal(t, []string{"T4"}, byLabel[GroupTerrace])
	assert.Equal(t, []string{"V2"}, byLabel[GroupVista])
	assert.Equal(t, []string{"STE12", "The Suites"}, byLabel[GroupSuites])
	assert.Equal(t, []string{"STANDING ROOM", "sro", "UPPER"}, byLabel[GroupStanding])
	assert.Equal(t, []string{"DECK", "ROOF", "ga", "HAT"}, byLabel[GroupSpecial])
}

func TestGroupSections_AllOther(t *testing.T) {
	groups := GroupSections(named("Mezzanine", "Balcony", "Orchestra"))
	require.Len(t, groups, 1)
	assert.Equal(t, GroupOther, groups[0].Label)
	assert.Len(t, groups[0].Sections, 3)

	assert.Empty(t, GroupSections(nil))
}

func TestDescribePosition(t *testing.T) {
	// four sections centered on (100, 100)
	all := []SeatmapSection{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 200, Y: 0},
		{Name: "C", X: 0, Y: 200},
		{Name: "D", X: 200, Y: 200},
	}
	assert.Equal(t, "near side, left side", DescribePosition(all[0], all))
	assert.Equal(t, "near side, right side", DescribePosition(all[1], all))
	assert.Equal(t, "far side, left side", DescribePosition(all[2], all))
	assert.Equal(t, "far side, right side", DescribePosition(all[3], all))

	assert.Equal(t, "center of venue", DescribePosition(SeatmapSection{X: 100, Y: 100}, all))
	assert.Equal(t, "far side", DescribePosition(SeatmapSection{X: 120, Y: 300}, all),
		"within horizontal tolerance, only the vertical descriptor remains")
	assert.Equal(t, "right side", DescribePosition(SeatmapSection{X: 300, Y: 80}, all))

	assert.Equal(t, "position unknown", DescribePosition(SeatmapSection{}, nil))
}
