package fed

import (
	"fmt"
	"regexp"
	"strings"

	"fedtools/pkg/dates"
)

// Series describes one Federal Reserve document type: where its index and
// archive pages live, how its links are recognized in each publishing era,
// and how its publication dates are encoded.
type Series struct {
	Name   string
	Column string

	BaseURL       string
	IndexURL      string
	HistoricalURL string

	HrefPatterns   []*regexp.Regexp
	Labels         []*regexp.Regexp
	KeepHistorical func(href string) bool

	// FeedURL optionally names an RSS press feed carrying recent releases;
	// FeedPattern selects the series' items from it.
	FeedURL     string
	FeedPattern *regexp.Regexp

	DateWidth       int
	EarliestYear    int
	StartYear       int
	HistoricalSplit int
}

const (
	mainSiteURL      = "https://www.federalreserve.gov"
	pressMonetaryURL = mainSiteURL + "/feeds/press_monetary.xml"
)

// BeigeBooks is the regional-economic-conditions report series.
func BeigeBooks() Series {
	return Series{
		Name:          "beigebook",
		Column:        "Beige_Book",
		BaseURL:       mainSiteURL,
		IndexURL:      mainSiteURL + "/monetarypolicy/beige-book-default.htm",
		HistoricalURL: mainSiteURL + "/monetarypolicy/beigebook%d.htm",
		HrefPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^/monetarypolicy/beigebook\d{6}\.htm`),
			regexp.MustCompile(`^/monetarypolicy/beigebook\d{8}\.htm`),
		},
		Labels:          []*regexp.Regexp{regexp.MustCompile(`^HTML`)},
		DateWidth:       dates.WidthMonthly,
		EarliestYear:    1996,
		StartYear:       1996,
		HistoricalSplit: 2022,
	}
}

// FederalReserveMins is the FOMC meeting-minutes series.
func FederalReserveMins() Series {
	return Series{
		Name:          "minutes",
		Column:        "Federal_Reserve_Mins",
		BaseURL:       mainSiteURL,
		IndexURL:      mainSiteURL + "/monetarypolicy/fomccalendars.htm",
		HistoricalURL: mainSiteURL + "/monetarypolicy/fomchistorical%d.htm",
		HrefPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^/monetarypolicy/fomcminutes\d{8}\.htm`),
		},
		Labels: []*regexp.Regexp{
			regexp.MustCompile(`^HTML$`),
			regexp.MustCompile(`^Minutes$`),
		},
		// Archive pages label several document kinds "HTML"; keep only the
		// minutes files.
		KeepHistorical: func(href string) bool {
			return strings.Contains(strings.ToLower(href), "minutes")
		},
		FeedURL:         pressMonetaryURL,
		FeedPattern:     regexp.MustCompile(`fomcminutes\d{8}\.htm`),
		DateWidth:       dates.WidthDaily,
		EarliestYear:    1993,
		StartYear:       1993,
		HistoricalSplit: 2014,
	}
}

// FOMCStatements is the post-meeting policy-statement series.
func FOMCStatements() Series {
	return Series{
		Name:          "statements",
		Column:        "FOMC_Statements",
		BaseURL:       mainSiteURL,
		IndexURL:      mainSiteURL + "/monetarypolicy/fomccalendars.htm",
		HistoricalURL: mainSiteURL + "/monetarypolicy/fomchistorical%d.htm",
		HrefPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^/newsevents/pressreleases/monetary\d{8}a\.htm`),
		},
		Labels:          []*regexp.Regexp{regexp.MustCompile(`^Statement$`)},
		FeedURL:         pressMonetaryURL,
		FeedPattern:     regexp.MustCompile(`monetary\d{8}a\.htm`),
		DateWidth:       dates.WidthDaily,
		EarliestYear:    1994,
		StartYear:       1994,
		HistoricalSplit: 2014,
	}
}

// SeriesByName looks up a built-in series definition.
func SeriesByName(name string) (Series, error) {
	switch strings.ToLower(name) {
	case "beigebook", "beige-book":
		return BeigeBooks(), nil
	case "minutes", "fomc-minutes":
		return FederalReserveMins(), nil
	case "statements", "fomc-statements":
		return FOMCStatements(), nil
	default:
		return Series{}, fmt.Errorf("unknown series %q (want beigebook, minutes or statements)", name)
	}
}
