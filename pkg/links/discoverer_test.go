package links

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"fedtools/pkg/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArchiveSite(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/index.htm", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body>
			<a href="/docs/report202301.htm">January</a>
			<a href="/docs/report202306.htm">June</a>
			<a href="/docs/report202310.htm">October</a>
			<a href="/docs/other.htm">Other</a>
		</body></html>`)
	})
	mux.HandleFunc("/archive2021.htm", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body>
			<a href="/docs/report202101.htm">HTML</a>
			<a href="/docs/report202101.pdf">PDF</a>
			<a href="/docs/report202106.htm">HTML</a>
		</body></html>`)
	})
	mux.HandleFunc("/archive2022.htm", func(w http.ResponseWriter, _ *http.Request) {
		// Duplicates a current-era link on purpose.
		fmt.Fprint(w, `<html><body>
			<a href="/docs/report202301.htm">HTML</a>
		</body></html>`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testSource(srv *httptest.Server) Source {
	return Source{
		IndexURL:        srv.URL + "/index.htm",
		HrefPatterns:    []*regexp.Regexp{regexp.MustCompile(`^/docs/report\d{6}\.htm`)},
		HistoricalURL:   srv.URL + "/archive%d.htm",
		Labels:          []*regexp.Regexp{regexp.MustCompile(`^HTML$`)},
		StartYear:       2021,
		HistoricalSplit: 2022,
	}
}

func TestDiscoverMergesErasAndDeduplicates(t *testing.T) {
	srv := newArchiveSite(t)
	d := NewDiscoverer(httpclient.New(), nil)

	locations, err := d.Discover(context.Background(), testSource(srv))
	require.NoError(t, err)

	// 3 current + 2 historical from 2021; the 2022 archive entry duplicates
	// a current-era link and must not produce a second row.
	assert.ElementsMatch(t, []string{
		"/docs/report202301.htm",
		"/docs/report202306.htm",
		"/docs/report202310.htm",
		"/docs/report202101.htm",
		"/docs/report202106.htm",
	}, locations)
}

func TestDiscoverSkipsArchiveWhenStartAfterSplit(t *testing.T) {
	srv := newArchiveSite(t)
	d := NewDiscoverer(httpclient.New(), nil)

	src := testSource(srv)
	src.StartYear = 2023
	locations, err := d.Discover(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, locations, 3)
}

func TestDiscoverAppliesHistoricalFilter(t *testing.T) {
	srv := newArchiveSite(t)
	d := NewDiscoverer(httpclient.New(), nil)

	src := testSource(srv)
	src.KeepHistorical = func(href string) bool {
		return strings.Contains(href, "202106")
	}
	locations, err := d.Discover(context.Background(), src)
	require.NoError(t, err)
	assert.NotContains(t, locations, "/docs/report202101.htm")
	assert.Contains(t, locations, "/docs/report202106.htm")
}

func TestDiscoverIndexFetchFailureIsFatal(t *testing.T) {
	srv := newArchiveSite(t)
	d := NewDiscoverer(httpclient.New(), nil)

	src := testSource(srv)
	src.IndexURL = srv.URL + "/missing.htm"
	_, err := d.Discover(context.Background(), src)
	assert.ErrorIs(t, err, httpclient.ErrUnexpectedStatus)
}

func TestDiscoverArchiveFetchFailureIsFatal(t *testing.T) {
	srv := newArchiveSite(t)
	d := NewDiscoverer(httpclient.New(), nil)

	src := testSource(srv)
	src.HistoricalSplit = 2023 // archive2023.htm does not exist
	_, err := d.Discover(context.Background(), src)
	assert.ErrorIs(t, err, httpclient.ErrUnexpectedStatus)
}
