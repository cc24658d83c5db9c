package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/niwakai/exhibition-events/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	ScrapedAt  time.Time      `json:"scraped_at"`
	Events     []*event.Event `json:"events"`
	EventCount int            `json:"event_count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text, grouped by region
func writeText(w io.Writer, result *OutputResult) error {
	if result.EventCount == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	byRegion := make(map[string][]*event.Event)
	for _, evt := range result.Events {
		byRegion[evt.SourceRegion] = append(byRegion[evt.SourceRegion], evt)
	}

	regions := make([]string, 0, len(byRegion))
	for name := range byRegion {
		regions = append(regions, name)
	}
	sort.Strings(regions)

	for _, name := range regions {
		events := byRegion[name]
		fmt.Fprintf(w, "\n%s (%d events):\n", name, len(events))
		for _, evt := range events {
			fmt.Fprintf(w, "  %s\n", evt.Title)
			if !evt.StartDate.IsZero() {
				fmt.Fprintf(w, "       Date: %s\n", formatDateRange(evt.StartDate, evt.EndDate))
			}
			if evt.Prefecture != "" {
				fmt.Fprintf(w, "       Prefecture: %s\n", evt.Prefecture)
			}
			if evt.Venue != "" {
				fmt.Fprintf(w, "       Venue: %s\n", evt.Venue)
			}
			if evt.AdmissionFee != "" {
				fmt.Fprintf(w, "       Fee: %s\n", evt.AdmissionFee)
			}
			if evt.ExternalURL != "" {
				fmt.Fprintf(w, "       URL: %s\n", evt.ExternalURL)
			}
		}
	}
	fmt.Fprintf(w, "\nTotal: %d events across %d regions\n", result.EventCount, len(byRegion))

	return nil
}

func formatDateRange(start, end time.Time) string {
	if end.IsZero() {
		return start.Format("2006-01-02")
	}
	return start.Format("2006-01-02") + " - " + end.Format("2006-01-02")
}
