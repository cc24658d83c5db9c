package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/niwakai/exhibition-events/internal/event"
	"github.com/niwakai/exhibition-events/internal/region"
)

// Listing-page structure: one div.event_box per announcement, holding a
// title element, the freeform body text, and an optional detail-page link.
const (
	blockSelector     = "div.event_box"
	titleSelector     = ".event_title"
	contentSelector   = ".event_text"
	permalinkSelector = "a.event_link"
)

var (
	whitespaceRuns = regexp.MustCompile(`[\s　]+`)
	// Decorative glyphs the site prefixes to titles.
	leadingBullets = "●◆◇■□▲△▼▽★☆○◎"
)

// parseEvents extracts one Event per listing block. A block whose title is
// empty after tag stripping is dropped; any other missing element just
// leaves its field empty.
func (s *Scraper) parseEvents(r io.Reader, regionName, sourceURL string, prefectures []string) ([]*event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	events := make([]*event.Event, 0)
	doc.Find(blockSelector).Each(func(_ int, block *goquery.Selection) {
		title := cleanTitle(block.Find(titleSelector).Text())
		if title == "" {
			return
		}

		content := collapseWhitespace(block.Find(contentSelector).Text())

		externalURL := ""
		if href, ok := block.Find(permalinkSelector).First().Attr("href"); ok && href != "" {
			externalURL = resolveURL(href)
		}

		start, end := event.ParseDateRange(content+" "+title, s.now())

		venue := event.MatchVenue(content)
		cityText := venue
		if cityText == "" {
			cityText = content
		}

		events = append(events, &event.Event{
			Title:        title,
			StartDate:    start,
			EndDate:      end,
			Prefecture:   event.MatchPrefecture(title, content, prefectures),
			City:         event.MatchCity(cityText),
			Venue:        venue,
			Organizer:    event.MatchOrganizer(content),
			AdmissionFee: event.MatchFee(content),
			HasSales:     event.HasSalesNotice(content),
			Description:  content,
			ExternalURL:  externalURL,
			SourceRegion: regionName,
			SourceURL:    sourceURL,
		})
	})

	return events, nil
}

// cleanTitle collapses whitespace and strips one leading decorative bullet.
func cleanTitle(raw string) string {
	title := collapseWhitespace(raw)
	runes := []rune(title)
	if len(runes) > 0 && strings.ContainsRune(leadingBullets, runes[0]) {
		title = strings.TrimSpace(string(runes[1:]))
	}
	return title
}

// collapseWhitespace reduces every run of whitespace, full-width space
// included, to a single space.
func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}

// resolveURL absolutizes a permalink href against the site origin.
func resolveURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return region.Site + href
}
