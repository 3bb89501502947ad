// Package fed retrieves Federal Reserve monetary-policy documents (Beige
// Books, FOMC minutes, FOMC statements) and assembles them into date-indexed
// datasets. The three document types share one parameterized pipeline:
// discover links, fetch bodies concurrently, assemble the table.
package fed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fedtools/pkg/dataset"
	"fedtools/pkg/dates"
	"fedtools/pkg/domain"
	"fedtools/pkg/feeds"
	"fedtools/pkg/httpclient"
	"fedtools/pkg/links"
	"fedtools/pkg/logger"
	"fedtools/pkg/retrieval"
)

// Client runs the retrieval pipeline for one document series. Each Retrieve
// call owns its in-flight buffers, so independent invocations may run
// concurrently.
type Client struct {
	series  Series
	workers int
	verbose bool
	useFeed bool
	http    *httpclient.Client
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithStartYear sets the year link discovery begins at.
func WithStartYear(year int) Option {
	return func(c *Client) { c.series.StartYear = year }
}

// WithHistoricalSplit sets the last year served from the historical archive.
func WithHistoricalSplit(year int) Option {
	return func(c *Client) { c.series.HistoricalSplit = year }
}

// WithWorkers caps the number of concurrently in-flight document fetches.
func WithWorkers(n int) Option {
	return func(c *Client) { c.workers = n }
}

// WithVerbose enables status lines and per-document progress records.
func WithVerbose(verbose bool) Option {
	return func(c *Client) { c.verbose = verbose }
}

// WithUserAgent overrides the spoofed client identity header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) { c.http = httpclient.NewWithUserAgent(userAgent) }
}

// WithFeedDiscovery also discovers recent locations from the series' RSS
// press feed, when the series defines one.
func WithFeedDiscovery(enabled bool) Option {
	return func(c *Client) { c.useFeed = enabled }
}

// WithLogger replaces the default logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client for the given series.
func New(series Series, opts ...Option) (*Client, error) {
	c := &Client{
		series:  series,
		workers: 10,
		http:    httpclient.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.New("fed."+series.Name, c.verbose)
	}

	if series.BaseURL == "" || series.IndexURL == "" {
		return nil, fmt.Errorf("series %q: base and index URLs are required", series.Name)
	}
	if len(series.HrefPatterns) == 0 {
		return nil, fmt.Errorf("series %q: at least one href pattern is required", series.Name)
	}
	if c.workers < 1 {
		return nil, fmt.Errorf("worker count must be at least 1, got %d", c.workers)
	}
	if c.series.StartYear < series.EarliestYear {
		return nil, fmt.Errorf("series %q: start year %d predates earliest supported year %d",
			series.Name, c.series.StartYear, series.EarliestYear)
	}
	return c, nil
}

// Retrieve runs the full pipeline and returns the assembled dataset.
func (c *Client) Retrieve(ctx context.Context) (*dataset.Dataset, error) {
	results, err := c.retrieveAll(ctx)
	if err != nil {
		return nil, err
	}

	dts := make([]dates.Date, len(results))
	bodies := make([]string, len(results))
	for i, r := range results {
		dts[i] = r.Date
		bodies[i] = r.Text
	}
	return dataset.Assemble(c.series.Column, dts, bodies)
}

// RetrieveDocuments runs the pipeline and returns one document per location,
// normalized but not date-deduplicated, for callers archiving into a store.
func (c *Client) RetrieveDocuments(ctx context.Context) ([]domain.Document, error) {
	results, err := c.retrieveAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	docs := make([]domain.Document, len(results))
	for i, r := range results {
		docs[i] = domain.Document{
			Series:      c.series.Name,
			URL:         r.Location,
			Date:        r.Date.Time(),
			DateLabel:   r.Date.String(),
			Text:        dataset.Normalize(r.Text),
			RetrievedAt: now,
		}
	}
	return docs, nil
}

func (c *Client) retrieveAll(ctx context.Context) ([]retrieval.Result, error) {
	c.log.Info("constructing links",
		"series", c.series.Name,
		"start_year", c.series.StartYear,
		"end_year", time.Now().Year())

	locations, err := c.discover(ctx)
	if err != nil {
		return nil, err
	}
	c.log.Info("retrieving documents", "count", len(locations))

	fetcher, err := retrieval.NewFetcher(c.http, c.series.BaseURL, c.series.DateWidth, c.workers, c.log)
	if err != nil {
		return nil, err
	}
	return fetcher.FetchAll(ctx, locations)
}

// discover merges index-page and optional feed discovery, deduplicated.
func (c *Client) discover(ctx context.Context) ([]string, error) {
	discoverer := links.NewDiscoverer(c.http, c.log)
	locations, err := discoverer.Discover(ctx, links.Source{
		IndexURL:        c.series.IndexURL,
		HrefPatterns:    c.series.HrefPatterns,
		HistoricalURL:   c.series.HistoricalURL,
		Labels:          c.series.Labels,
		KeepHistorical:  c.series.KeepHistorical,
		StartYear:       c.series.StartYear,
		HistoricalSplit: c.series.HistoricalSplit,
	})
	if err != nil {
		return nil, err
	}

	if c.useFeed && c.series.FeedURL != "" {
		fromFeed, err := feeds.NewDiscoverer(c.series.FeedPattern).Discover(ctx, c.series.FeedURL)
		if err != nil {
			return nil, err
		}
		c.log.Debug("extracted feed links", "count", len(fromFeed), "url", c.series.FeedURL)

		seen := make(map[string]bool, len(locations))
		for _, loc := range locations {
			seen[loc] = true
		}
		for _, loc := range fromFeed {
			if !seen[loc] {
				seen[loc] = true
				locations = append(locations, loc)
			}
		}
	}
	return locations, nil
}
