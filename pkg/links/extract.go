package links

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractByHrefPattern returns the targets of all anchors whose href matches
// any of the given patterns, in document order. Current-era index pages use
// stable date-coded filenames, so anchors are selected by URL shape.
func ExtractByHrefPattern(html string, patterns []*regexp.Regexp) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var locations []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}
		for _, pattern := range patterns {
			if pattern.MatchString(href) {
				locations = append(locations, href)
				return
			}
		}
	})
	return locations, nil
}

// ExtractByLabel returns the targets of all anchors whose link text matches
// the given label pattern. Historical archive pages present human-readable
// labels ("HTML", "Statement", "Minutes") instead of a stable URL shape.
func ExtractByLabel(html string, label *regexp.Regexp) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var locations []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if !label.MatchString(strings.TrimSpace(a.Text())) {
			return
		}
		if href, ok := a.Attr("href"); ok && href != "" {
			locations = append(locations, href)
		}
	})
	return locations, nil
}
