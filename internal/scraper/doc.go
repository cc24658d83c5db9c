// Package scraper fetches regional exhibition listing pages and parses them
// into structured event records.
//
// Fetching is strictly sequential with a fixed pause between regions, by
// design: the source site is a small third-party service and the scrape must
// not look like a crawl. A region that fails to fetch or parse is logged and
// yields no records; it never aborts the remaining regions.
package scraper
