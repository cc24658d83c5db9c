// Package cli implements the command-line interface for exhibition-events.
//
// The cli package provides the Cobra-based CLI for running a full scrape or
// a targeted single-region re-scrape, with text or JSON output. It is a thin
// operator surface over the scraper package; callers embedding the library
// use the scraper package directly.
package cli
