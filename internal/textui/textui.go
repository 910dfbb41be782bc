package textui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/yourorg/tixbit-go/tixbit"
)

// Human-readable renderings of the canonical model. Everything here is
// presentation only; the shapes come from the tixbit package untouched.

func EventsTable(w io.Writer, events []tixbit.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "no events found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tEVENT\tVENUE\tLOCATION\tPRICE\tAVAIL")
	for _, ev := range events {
		loc := joinNonEmpty(", ", str(ev.VenueCity), str(ev.VenueState))
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			ev.ID, ev.Date, ev.Name, str(ev.VenueName), loc,
			priceRange(ev.Inventory), ev.Inventory.TotalAvailable)
	}
	tw.Flush()
}

func ListingsTable(w io.Writer, listings []tixbit.Listing) {
	if len(listings) == 0 {
		fmt.Fprintln(w, "no listings found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSECTION\tROW\tPRICE\tQTY\tSPLITS\tNOTES")
	for _, l := range listings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t$%.2f\t%d\t%s\t%s\n",
			l.ID, str(l.Section), str(l.Row), l.Price, l.Quantity,
			joinInts(l.Splits), str(l.Notes))
	}
	tw.Flush()
}

// SeatingChart prints the venue chart grouped by section naming convention,
// one group per block, each section annotated with its on-map position.
func SeatingChart(w io.Writer, sm *tixbit.SeatmapResult) {
	header := sm.VenueName
	if sm.ConfigurationName != "" {
		header = joinNonEmpty(" — ", header, sm.ConfigurationName)
	}
	fmt.Fprintf(w, "🏟  %s\n", header)
	if sm.Capacity != nil {
		fmt.Fprintf(w, "capacity: %d\n", *sm.Capacity)
	}

	sections := tixbit.FlattenSections(sm.Zones)
	if len(sections) == 0 {
		fmt.Fprintln(w, "no section map available")
		return
	}
	for _, g := range tixbit.GroupSections(sections) {
		fmt.Fprintf(w, "\n%s %s (%d)\n", groupEmoji(g.Label), g.Label, len(g.Sections))
		for _, s := range g.Sections {
			fmt.Fprintf(w, "  %-8s %s\n", s.Name, tixbit.DescribePosition(s, sections))
		}
	}
}

func groupEmoji(label string) string {
	switch label {
	case tixbit.GroupFloor, tixbit.GroupFieldLevel:
		return "🎤"
	case tixbit.GroupSuites:
		return "🥂"
	case tixbit.GroupStanding:
		return "🧍"
	default:
		return "🎫"
	}
}

func priceRange(inv tixbit.Inventory) string {
	if inv.MinPrice == 0 && inv.MaxPrice == 0 {
		return "-"
	}
	if inv.MinPrice == inv.MaxPrice {
		return fmt.Sprintf("$%.0f", inv.MinPrice)
	}
	return fmt.Sprintf("$%.0f-$%.0f", inv.MinPrice, inv.MaxPrice)
}

func joinInts(vals []int) string {
	if len(vals) == 0 {
		return "-"
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func joinNonEmpty(sep string, vals ...string) string {
	var parts []string
	for _, v := range vals {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
