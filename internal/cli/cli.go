package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/niwakai/exhibition-events/internal/event"
	"github.com/niwakai/exhibition-events/internal/logger"
	"github.com/niwakai/exhibition-events/internal/region"
	"github.com/niwakai/exhibition-events/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagRegion  string
	flagFormat  string
	flagDelay   time.Duration
	flagTimeout time.Duration
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exhibition-events",
		Short: "Scrape regional exhibition announcements into structured events",
		Long: `Fetches the regional announcement listings of the exhibition site and
extracts structured event records (title, dates, prefecture, venue,
organizer, admission fee). Regions are fetched one at a time with a
politeness delay; a failed region is skipped, not fatal.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagRegion, "region", "all", "Region name (e.g. 関東) or 'all'")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().DurationVar(&flagDelay, "delay", scraper.RegionDelay, "Pause between region fetches")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Overall scrape timeout (0 = none)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable development logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		if err := logger.Init(false); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
	}

	ctx := context.Background()
	if flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagTimeout)
		defer cancel()
	}

	sc := scraper.New(scraper.WithDelay(flagDelay))

	var events []*event.Event
	if strings.EqualFold(flagRegion, "all") {
		events = sc.ScrapeAll(ctx)
	} else {
		r, ok := region.Find(flagRegion)
		if !ok {
			return fmt.Errorf("unknown region: %s", flagRegion)
		}
		events = sc.ScrapeRegion(ctx, r.URL, r.Name, r.Prefectures)
	}

	result := &OutputResult{
		ScrapedAt:  time.Now().UTC(),
		Events:     events,
		EventCount: len(events),
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
