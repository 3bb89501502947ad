package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"fedtools/pkg/dates"
)

// PageFetcher fetches a page body for a URL.
type PageFetcher interface {
	GetBody(ctx context.Context, url string) (string, error)
}

// Result is one retrieved document: the location it came from, its resolved
// publication date, and its extracted body text.
type Result struct {
	Location string
	Date     dates.Date
	Text     string
}

// Fetcher retrieves document bodies with a capped number of concurrent
// fetches. Output order always matches input order: each unit of work owns
// the output slot addressed by its input index.
type Fetcher struct {
	fetcher   PageFetcher
	base      *url.URL
	dateWidth int
	workers   int
	log       *slog.Logger
}

// NewFetcher creates a fetcher. baseURL resolves relative document locations;
// workers caps the number of in-flight fetches and must be at least 1.
func NewFetcher(fetcher PageFetcher, baseURL string, dateWidth, workers int, log *slog.Logger) (*Fetcher, error) {
	if workers < 1 {
		return nil, fmt.Errorf("worker count must be at least 1, got %d", workers)
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Fetcher{
		fetcher:   fetcher,
		base:      base,
		dateWidth: dateWidth,
		workers:   workers,
		log:       log,
	}, nil
}

// FetchAll retrieves every location and returns results in input order.
//
// Admission is a sliding window: new work is dispatched while fewer than the
// worker cap are outstanding; when the window is full, admission blocks on
// the oldest outstanding unit. The first hard failure cancels the remaining
// work and is returned after all outstanding units have drained.
func (f *Fetcher) FetchAll(ctx context.Context, locations []string) ([]Result, error) {
	results := make([]Result, len(locations))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var firstErr error
	settle := func(done chan error) {
		if err := <-done; err != nil && firstErr == nil {
			firstErr = err
			cancel()
		}
	}

	window := make([]chan error, 0, f.workers)
	for i, loc := range locations {
		if firstErr != nil {
			break
		}
		if len(window) == f.workers {
			settle(window[0])
			window = window[1:]
		}
		done := make(chan error, 1)
		go func(i int, loc string) {
			done <- f.retrieve(ctx, i, loc, results)
		}(i, loc)
		window = append(window, done)
	}
	for _, done := range window {
		settle(done)
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// retrieve fetches one document and fills its output slot.
func (f *Fetcher) retrieve(ctx context.Context, i int, location string, results []Result) error {
	date, err := dates.Resolve(location, f.dateWidth)
	if err != nil {
		return err
	}

	docURL, err := f.resolveURL(location)
	if err != nil {
		return err
	}

	html, err := f.fetcher.GetBody(ctx, docURL)
	if err != nil {
		return fmt.Errorf("failed to fetch document %s: %w", docURL, err)
	}

	text, err := ExtractBody(html)
	if err != nil {
		return fmt.Errorf("failed to extract document %s: %w", docURL, err)
	}

	results[i] = Result{Location: location, Date: date, Text: text}
	f.log.Debug("retrieved document", "url", docURL, "date", date.String())
	return nil
}

// resolveURL resolves a document location against the site base URL. A
// location that already carries a scheme and host is used as-is.
func (f *Fetcher) resolveURL(location string) (string, error) {
	ref, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("invalid document location %q: %w", location, err)
	}
	if ref.IsAbs() && ref.Host != "" {
		return location, nil
	}
	return f.base.ResolveReference(ref).String(), nil
}
