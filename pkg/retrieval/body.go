package retrieval

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// ExtractBody returns the document body text: every paragraph-level text
// node, joined with a blank line, with leading and trailing whitespace
// stripped. Pages without paragraph markup (a handful of pre-1996 releases)
// fall back to readability extraction.
func ExtractBody(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		paragraphs = append(paragraphs, strings.TrimSpace(p.Text()))
	})
	if len(paragraphs) > 0 {
		return strings.TrimSpace(strings.Join(paragraphs, "\n\n")), nil
	}

	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract body text: %w", err)
	}
	return strings.TrimSpace(article.TextContent), nil
}
