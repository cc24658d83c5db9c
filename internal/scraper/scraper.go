package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/niwakai/exhibition-events/internal/event"
	"github.com/niwakai/exhibition-events/internal/logger"
	"github.com/niwakai/exhibition-events/internal/region"
)

const (
	UserAgent   = "exhibition-events/1.0 (github.com/niwakai/exhibition-events)"
	Timeout     = 30 * time.Second
	RegionDelay = 500 * time.Millisecond
)

// Scraper fetches regional listing pages and parses them into events.
type Scraper struct {
	client     *http.Client
	delay      time.Duration
	now        func() time.Time
	regions    []region.Region
	newBackOff func() backoff.BackOff
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithClient overrides the HTTP client.
func WithClient(c *http.Client) Option {
	return func(s *Scraper) { s.client = c }
}

// WithDelay overrides the pause between region fetches.
func WithDelay(d time.Duration) Option {
	return func(s *Scraper) { s.delay = d }
}

// WithClock pins the time source used for calendar-year inference.
func WithClock(now func() time.Time) Option {
	return func(s *Scraper) { s.now = now }
}

// New creates a Scraper over the full region registry.
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client:     &http.Client{Timeout: Timeout},
		delay:      RegionDelay,
		now:        time.Now,
		regions:    region.All(),
		newBackOff: defaultBackOff,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	return backoff.WithMaxRetries(b, 2)
}

// ScrapeAll walks the region registry in declared order, pausing between
// regions, and returns the concatenated records. A failed region only loses
// its own events. Cancelling the context returns whatever has been
// collected so far.
func (s *Scraper) ScrapeAll(ctx context.Context) []*event.Event {
	all := make([]*event.Event, 0)
	for i, r := range s.regions {
		if i > 0 {
			select {
			case <-time.After(s.delay):
			case <-ctx.Done():
				return all
			}
		}
		all = append(all, s.ScrapeRegion(ctx, r.URL, r.Name, r.Prefectures)...)
	}
	logger.L().Info("scrape_done", zap.Int("regions", len(s.regions)), zap.Int("events", len(all)))
	return all
}

// ScrapeRegion fetches one regional listing page and parses it. Transport
// and parse failures are logged and yield an empty slice; they never
// propagate.
func (s *Scraper) ScrapeRegion(ctx context.Context, url, regionName string, prefectures []string) []*event.Event {
	body, err := s.fetch(ctx, url)
	if err != nil {
		logger.L().Warn("region_fetch_failed",
			zap.String("region", regionName), zap.String("url", url), zap.Error(err))
		return []*event.Event{}
	}
	defer body.Close()

	events, err := s.parseEvents(body, regionName, url, prefectures)
	if err != nil {
		logger.L().Warn("region_parse_failed",
			zap.String("region", regionName), zap.String("url", url), zap.Error(err))
		return []*event.Event{}
	}

	logger.L().Info("region_scraped",
		zap.String("region", regionName), zap.Int("events", len(events)))
	return events
}

// fetch issues one GET with the site-facing headers. Network errors and
// 5xx/429 responses are retried with exponential backoff; other statuses
// are permanent.
func (s *Scraper) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	var body io.ReadCloser

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		req.Header.Set("Accept-Language", "ja,en;q=0.9")

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			statusErr := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}
		body = resp.Body
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(s.newBackOff(), ctx)); err != nil {
		return nil, err
	}
	return body, nil
}
