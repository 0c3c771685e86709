// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/papers-skill/pkg/types"
)

const threePapers = `[
  {"paper": {"title": "Paper One Title", "summary": "Summary of paper one about transformers.",
             "authors": [{"name": "Author A"}, {"name": "Author B"}]}},
  {"paper": {"title": "Paper Two Title", "summary": "Second.", "authors": [{"name": "Author C"}]}},
  {"paper": {"title": "Paper Three Title", "summary": "Third.", "authors": []}}
]`

func serve(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts, &calls
}

func testFetcher(ts *httptest.Server) *Fetcher {
	f := NewFetcher(types.CatalogConfig{URL: ts.URL}, nil)
	f.Client = ts.Client()
	return f
}

func TestFetchLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantTitle []string
	}{
		{"truncates to limit", 2, []string{"Paper One Title", "Paper Two Title"}},
		{"limit exceeds available", 10, []string{"Paper One Title", "Paper Two Title", "Paper Three Title"}},
		{"limit of one", 1, []string{"Paper One Title"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, _ := serve(t, http.StatusOK, threePapers)
			papers := testFetcher(ts).Fetch(context.Background(), tt.limit)

			var titles []string
			for _, p := range papers {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.wantTitle, titles)
		})
	}
}

func TestFetchZeroLimitMakesNoCall(t *testing.T) {
	ts, calls := serve(t, http.StatusOK, threePapers)
	f := testFetcher(ts)

	for _, limit := range []int{0, -3} {
		papers := f.Fetch(context.Background(), limit)
		assert.NotNil(t, papers)
		assert.Empty(t, papers)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestFetchMapsFields(t *testing.T) {
	ts, _ := serve(t, http.StatusOK, threePapers)
	papers := testFetcher(ts).Fetch(context.Background(), 5)
	require.Len(t, papers, 3)

	assert.Equal(t, "Summary of paper one about transformers.", papers[0].Summary)
	assert.Equal(t, []string{"Author A", "Author B"}, papers[0].Authors)
	assert.Equal(t, []string{}, papers[2].Authors)
}

func TestFetchMissingFieldsUseDefaults(t *testing.T) {
	ts, _ := serve(t, http.StatusOK, `[{"paper": {}}, {}, {"paper": null}]`)
	papers := testFetcher(ts).Fetch(context.Background(), 5)
	require.Len(t, papers, 3)

	for _, p := range papers {
		assert.Equal(t, types.UntitledPaper, p.Title)
		assert.Equal(t, "", p.Summary)
		assert.Empty(t, p.Authors)
	}
}

func TestFetchTruncatesAuthorsToFive(t *testing.T) {
	var names []string
	for i := 0; i < 8; i++ {
		names = append(names, fmt.Sprintf(`{"name": "Author %d"}`, i))
	}
	body := fmt.Sprintf(`[{"paper": {"title": "Crowded", "authors": [%s]}}]`, strings.Join(names, ","))

	ts, _ := serve(t, http.StatusOK, body)
	papers := testFetcher(ts).Fetch(context.Background(), 1)
	require.Len(t, papers, 1)
	assert.Equal(t, []string{"Author 0", "Author 1", "Author 2", "Author 3", "Author 4"}, papers[0].Authors)
}

func TestFetchFailuresYieldEmpty(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error": "boom"}`},
		{"rate limited", http.StatusTooManyRequests, ``},
		{"malformed JSON", http.StatusOK, `[{"paper": `},
		{"object instead of array", http.StatusOK, `{"paper": {"title": "x"}}`},
		{"empty array", http.StatusOK, `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, _ := serve(t, tt.status, tt.body)
			papers := testFetcher(ts).Fetch(context.Background(), 4)
			assert.NotNil(t, papers)
			assert.Empty(t, papers)
		})
	}
}

func TestFetchTransportErrorIsLogged(t *testing.T) {
	ts, _ := serve(t, http.StatusOK, threePapers)
	url := ts.URL
	ts.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	f := NewFetcher(types.CatalogConfig{URL: url}, zap.New(core))

	papers := f.Fetch(context.Background(), 4)
	assert.Empty(t, papers)
	require.Equal(t, 1, logs.FilterMessage("catalog fetch failed").Len())
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	f := NewFetcher(types.CatalogConfig{URL: ts.URL}, nil)
	f.Client = ts.Client()
	f.Config.Timeout = 20 * time.Millisecond

	start := time.Now()
	papers := f.Fetch(context.Background(), 4)
	assert.Empty(t, papers)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestFetchSendsUserAgent(t *testing.T) {
	var ua string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		fmt.Fprint(w, `[]`)
	}))
	defer ts.Close()

	f := testFetcher(ts)
	f.Fetch(context.Background(), 1)
	assert.Equal(t, defaultUserAgent, ua)
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable([]types.Paper{
		{Title: "Short", Authors: []string{"Solo"}},
		{Title: strings.Repeat("x", 80), Authors: []string{"First", "Second"}},
	}, &buf)

	out := buf.String()
	assert.Contains(t, out, "Short")
	assert.Contains(t, out, "Solo")
	assert.Contains(t, out, "First et al.")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "2 papers")

	buf.Reset()
	FormatTable(nil, &buf)
	assert.Equal(t, "No papers found.\n", buf.String())
}

func TestFormatYAMLAndJSON(t *testing.T) {
	papers := []types.Paper{{Title: "T", Summary: "S", Authors: []string{"A"}}}

	var y bytes.Buffer
	require.NoError(t, FormatYAML(papers, &y))
	assert.Contains(t, y.String(), "title: T")

	var j bytes.Buffer
	require.NoError(t, FormatJSON(papers, &j))
	assert.Contains(t, j.String(), `"title": "T"`)
}
