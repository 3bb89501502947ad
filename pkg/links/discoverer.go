package links

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
)

// PageFetcher fetches a page body for a URL.
type PageFetcher interface {
	GetBody(ctx context.Context, url string) (string, error)
}

// Source describes where and how one document series publishes its links.
type Source struct {
	// IndexURL is the current-era index page.
	IndexURL string
	// HrefPatterns select current-era anchors by href shape.
	HrefPatterns []*regexp.Regexp
	// HistoricalURL is a format string with a %d year placeholder for the
	// annual archive pages.
	HistoricalURL string
	// Labels select historical-era anchors by link text.
	Labels []*regexp.Regexp
	// KeepHistorical optionally filters historical hrefs; nil keeps all.
	KeepHistorical func(href string) bool
	// StartYear and HistoricalSplit bound the annual archive walk. Archive
	// pages are fetched only when StartYear <= HistoricalSplit.
	StartYear       int
	HistoricalSplit int
}

// Discoverer collects the set of document locations for a series, merging
// current-era and historical-era sources. Any page-fetch failure during
// discovery is fatal; there is no partial discovery fallback.
type Discoverer struct {
	fetcher PageFetcher
	log     *slog.Logger
}

// NewDiscoverer creates a discoverer using the given page fetcher.
func NewDiscoverer(fetcher PageFetcher, log *slog.Logger) *Discoverer {
	if log == nil {
		log = slog.Default()
	}
	return &Discoverer{fetcher: fetcher, log: log}
}

// Discover returns the deduplicated set of document locations for src.
func (d *Discoverer) Discover(ctx context.Context, src Source) ([]string, error) {
	html, err := d.fetcher.GetBody(ctx, src.IndexURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch index page %s: %w", src.IndexURL, err)
	}

	locations, err := ExtractByHrefPattern(html, src.HrefPatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to extract links from index page: %w", err)
	}
	d.log.Debug("extracted current-era links", "count", len(locations), "url", src.IndexURL)

	if src.HistoricalURL != "" && src.StartYear <= src.HistoricalSplit {
		for year := src.StartYear; year <= src.HistoricalSplit; year++ {
			annual, err := d.discoverAnnual(ctx, src, year)
			if err != nil {
				return nil, err
			}
			locations = append(locations, annual...)
		}
	}

	return dedupe(locations), nil
}

// discoverAnnual extracts labeled anchors from one year's archive page.
func (d *Discoverer) discoverAnnual(ctx context.Context, src Source, year int) ([]string, error) {
	annualURL := fmt.Sprintf(src.HistoricalURL, year)
	html, err := d.fetcher.GetBody(ctx, annualURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch archive page %s: %w", annualURL, err)
	}

	var locations []string
	for _, label := range src.Labels {
		found, err := ExtractByLabel(html, label)
		if err != nil {
			return nil, fmt.Errorf("failed to extract labeled links from %s: %w", annualURL, err)
		}
		for _, href := range found {
			if src.KeepHistorical != nil && !src.KeepHistorical(href) {
				continue
			}
			locations = append(locations, href)
		}
	}
	d.log.Debug("extracted historical links", "count", len(locations), "year", year)
	return locations, nil
}

// dedupe removes duplicate locations, preserving first-seen order.
func dedupe(locations []string) []string {
	seen := make(map[string]bool, len(locations))
	unique := make([]string, 0, len(locations))
	for _, loc := range locations {
		if seen[loc] {
			continue
		}
		seen[loc] = true
		unique = append(unique, loc)
	}
	return unique
}
