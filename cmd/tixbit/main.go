package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/yourorg/tixbit-go/internal/config"
	"github.com/yourorg/tixbit-go/internal/textui"
	"github.com/yourorg/tixbit-go/tixbit"
)

const usage = `usage: tixbit <command> [flags]

commands:
  search    search events by text, location and date range
  browse    curated upcoming events, optionally near a location
  listings  ticket listings for one event
  seatmap   venue seating chart for one event
  checkout  build a checkout link for a listing
  url       build the public page URL for an event

configuration (env or .env): TIXBIT_BASE_URL, TIXBIT_API_KEY, TIXBIT_TIMEOUT, TIXBIT_VERBOSE
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	opts := []tixbit.Option{
		tixbit.WithBaseURL(cfg.BaseURL),
		tixbit.WithTimeout(cfg.Timeout),
	}
	if cfg.APIKey != "" {
		opts = append(opts, tixbit.WithAPIKey(cfg.APIKey))
	}
	if cfg.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("logger error: %v", err)
		}
		defer logger.Sync()
		opts = append(opts, tixbit.WithLogger(logger))
	}
	client := tixbit.New(opts...)

	ctx := context.Background()
	switch os.Args[1] {
	case "search":
		runSearch(ctx, client, os.Args[2:])
	case "browse":
		runBrowse(ctx, client, os.Args[2:])
	case "listings":
		runListings(ctx, client, os.Args[2:])
	case "seatmap":
		runSeatmap(ctx, client, os.Args[2:])
	case "checkout":
		runCheckout(client, os.Args[2:])
	case "url":
		runURL(client, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
}

func runSearch(ctx context.Context, client *tixbit.Client, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	var p tixbit.SearchParams
	fs.StringVar(&p.Query, "q", "", "search text")
	fs.StringVar(&p.City, "city", "", "filter by city")
	fs.StringVar(&p.State, "state", "", "filter by state")
	fs.StringVar(&p.Category, "category", "", "filter by category")
	fs.StringVar(&p.StartDate, "start", "", "start date (YYYY-MM-DD)")
	fs.StringVar(&p.EndDate, "end", "", "end date (YYYY-MM-DD)")
	fs.IntVar(&p.Page, "page", 0, "page number")
	fs.IntVar(&p.Size, "size", 0, "page size")
	asJSON := fs.Bool("json", false, "print canonical JSON")
	fs.Parse(args)

	res, err := client.SearchEvents(ctx, p)
	if err != nil {
		fail(err)
	}
	if *asJSON {
		dumpJSON(res)
		return
	}
	textui.EventsTable(os.Stdout, res.Events)
	fmt.Printf("\npage %d/%d, %d total\n", res.Pagination.Page, res.Pagination.TotalPages, res.Pagination.Total)
}

func runBrowse(ctx context.Context, client *tixbit.Client, args []string) {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	var p tixbit.BrowseParams
	fs.IntVar(&p.Size, "size", 0, "max events")
	lat := fs.Float64("lat", 0, "latitude to browse near")
	lng := fs.Float64("lng", 0, "longitude to browse near")
	fs.StringVar(&p.PreferCity, "city", "", "preferred city")
	fs.StringVar(&p.PreferState, "state", "", "preferred state")
	fs.StringVar(&p.CategoryEventType, "type", "", "category event type")
	asJSON := fs.Bool("json", false, "print canonical JSON")
	fs.Parse(args)

	if *lat != 0 || *lng != 0 {
		p.NearLat, p.NearLng = lat, lng
	}
	res, err := client.Browse(ctx, p)
	if err != nil {
		fail(err)
	}
	if *asJSON {
		dumpJSON(res)
		return
	}
	textui.EventsTable(os.Stdout, res.Events)
	fmt.Printf("\n%d total\n", res.Total)
}

func runListings(ctx context.Context, client *tixbit.Client, args []string) {
	fs := flag.NewFlagSet("listings", flag.ExitOnError)
	var p tixbit.ListingsParams
	fs.StringVar(&p.EventID, "event", "", "event id (required)")
	fs.IntVar(&p.Size, "size", 0, "page size")
	fs.IntVar(&p.Page, "page", 0, "page number")
	fs.StringVar(&p.OrderByDirection, "order", "", "price order (asc/desc)")
	asJSON := fs.Bool("json", false, "print canonical JSON")
	fs.Parse(args)

	if p.EventID == "" {
		fs.Usage()
		os.Exit(2)
	}
	res, err := client.Listings(ctx, p)
	if err != nil {
		fail(err)
	}
	if *asJSON {
		dumpJSON(res)
		return
	}
	textui.ListingsTable(os.Stdout, res.Listings)
	fmt.Printf("\n%d total\n", res.Meta.Total)
}

func runSeatmap(ctx context.Context, client *tixbit.Client, args []string) {
	fs := flag.NewFlagSet("seatmap", flag.ExitOnError)
	var p tixbit.SeatmapParams
	fs.StringVar(&p.EventID, "event", "", "event id (required)")
	asJSON := fs.Bool("json", false, "print canonical JSON")
	fs.Parse(args)

	if p.EventID == "" {
		fs.Usage()
		os.Exit(2)
	}
	res, err := client.Seatmap(ctx, p)
	if err != nil {
		fail(err)
	}
	if *asJSON {
		dumpJSON(res)
		return
	}
	textui.SeatingChart(os.Stdout, res)
}

func runCheckout(client *tixbit.Client, args []string) {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	listing := fs.String("listing", "", "listing id (required)")
	qty := fs.Int("quantity", 1, "ticket quantity (clamped to 1-8)")
	asJSON := fs.Bool("json", false, "print canonical JSON")
	fs.Parse(args)

	if *listing == "" {
		fs.Usage()
		os.Exit(2)
	}
	link := client.CheckoutLink(*listing, *qty)
	if *asJSON {
		dumpJSON(link)
		return
	}
	fmt.Println(link.URL)
}

func runURL(client *tixbit.Client, args []string) {
	fs := flag.NewFlagSet("url", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tixbit url <slug-or-id>")
		os.Exit(2)
	}
	fmt.Println(client.EventURL(fs.Arg(0)))
}

func dumpJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
