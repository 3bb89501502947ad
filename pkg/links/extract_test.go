package links

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexPage = `<html><body>
<a href="/monetarypolicy/beigebook202301.htm">January 2023</a>
<a href="/monetarypolicy/beigebook20221130.htm">November 2022</a>
<a href="/monetarypolicy/about.htm">About the Beige Book</a>
<a href="/monetarypolicy/beigebook202306.htm">June 2023</a>
<a>No target</a>
</body></html>`

const archivePage = `<html><body>
<table>
<tr><td><a href="/fomc/beigebook/1996/19961023.htm"> HTML </a></td></tr>
<tr><td><a href="/fomc/beigebook/1996/19961204.pdf">PDF</a></td></tr>
<tr><td><a href="/fomc/minutes/19961105.htm">Minutes</a></td></tr>
<tr><td><a href="/fomc/19961105statement.htm">Statement</a></td></tr>
</table>
</body></html>`

func TestExtractByHrefPattern(t *testing.T) {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`^/monetarypolicy/beigebook\d{6}\.htm`),
		regexp.MustCompile(`^/monetarypolicy/beigebook\d{8}\.htm`),
	}

	locations, err := ExtractByHrefPattern(indexPage, patterns)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/monetarypolicy/beigebook202301.htm",
		"/monetarypolicy/beigebook20221130.htm",
		"/monetarypolicy/beigebook202306.htm",
	}, locations)
}

func TestExtractByHrefPatternNoMatches(t *testing.T) {
	patterns := []*regexp.Regexp{regexp.MustCompile(`^/newsevents/pressreleases/monetary\d{8}a\.htm`)}

	locations, err := ExtractByHrefPattern(indexPage, patterns)
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestExtractByLabel(t *testing.T) {
	locations, err := ExtractByLabel(archivePage, regexp.MustCompile(`^HTML`))
	require.NoError(t, err)
	assert.Equal(t, []string{"/fomc/beigebook/1996/19961023.htm"}, locations)

	locations, err = ExtractByLabel(archivePage, regexp.MustCompile(`^Statement$`))
	require.NoError(t, err)
	assert.Equal(t, []string{"/fomc/19961105statement.htm"}, locations)
}

func TestExtractByLabelTrimsAnchorText(t *testing.T) {
	// The HTML label in archivePage is padded with whitespace.
	locations, err := ExtractByLabel(archivePage, regexp.MustCompile(`^HTML$`))
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}
