package feeds

import (
	"context"
	"fmt"
	"regexp"

	"github.com/mmcdole/gofeed"
)

// Discoverer extracts document locations from an RSS/Atom press-release feed.
// The Fed announces recent releases on its press feeds before they appear on
// some index pages, so the feed supplements index-page discovery.
type Discoverer struct {
	parser *gofeed.Parser
	keep   *regexp.Regexp
}

// NewDiscoverer creates a feed discoverer that keeps item links matching the
// given pattern; a nil pattern keeps every item link.
func NewDiscoverer(keep *regexp.Regexp) *Discoverer {
	return &Discoverer{
		parser: gofeed.NewParser(),
		keep:   keep,
	}
}

// Discover fetches the feed and returns the matching item links.
func (d *Discoverer) Discover(ctx context.Context, feedURL string) ([]string, error) {
	feed, err := d.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", feedURL, err)
	}
	if feed == nil || len(feed.Items) == 0 {
		return nil, fmt.Errorf("feed %s contains no items", feedURL)
	}

	locations := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		if d.keep != nil && !d.keep.MatchString(item.Link) {
			continue
		}
		locations = append(locations, item.Link)
	}
	return locations, nil
}
