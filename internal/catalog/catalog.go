// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog reads the daily papers list from the Hugging Face hub and
// maps it to types.Paper. Fetch never fails its caller: every error is logged
// and reported as an empty list, which the dialog treats as "try later".
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/papers-skill/internal/httputil"
	"github.com/pdiddy/papers-skill/pkg/types"
)

// DefaultURL is the Hugging Face daily papers endpoint.
const DefaultURL = "https://huggingface.co/api/daily_papers"

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "papers-skill/0.1"
)

// dailyPaper is one element of the catalog response. Only the nested paper
// object is read; everything else is ignored.
type dailyPaper struct {
	Paper *paperInfo `json:"paper"`
}

type paperInfo struct {
	Title   string       `json:"title"`
	Summary string       `json:"summary"`
	Authors []authorInfo `json:"authors"`
}

type authorInfo struct {
	Name string `json:"name"`
}

// Fetcher retrieves papers from the catalog endpoint.
type Fetcher struct {
	Client *http.Client
	Config types.CatalogConfig
	Logger *zap.Logger
}

// NewFetcher returns a Fetcher with defaults filled in for empty config fields.
func NewFetcher(cfg types.CatalogConfig, logger *zap.Logger) *Fetcher {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		Client: &http.Client{},
		Config: cfg,
		Logger: logger,
	}
}

// Fetch returns at most limit papers in catalog order. A limit of zero or
// less returns an empty list without calling out. Transport, timeout,
// status, and decode errors are logged and yield an empty list.
func (f *Fetcher) Fetch(ctx context.Context, limit int) []types.Paper {
	if limit <= 0 {
		return []types.Paper{}
	}

	papers, err := f.fetch(ctx, limit)
	if err != nil {
		f.Logger.Warn("catalog fetch failed",
			zap.String("url", f.Config.URL),
			zap.Int("limit", limit),
			zap.Error(err))
		return []types.Paper{}
	}
	f.Logger.Debug("catalog fetched", zap.Int("papers", len(papers)))
	return papers
}

func (f *Fetcher) fetch(ctx context.Context, limit int) ([]types.Paper, error) {
	timeout := f.Config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.Config.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.Config.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := httputil.DoWithRetry(ctx, f.Client, req, f.Config.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned HTTP %d", resp.StatusCode)
	}

	var entries []dailyPaper
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing catalog response: %w", err)
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}

	papers := make([]types.Paper, 0, len(entries))
	for _, e := range entries {
		papers = append(papers, toPaper(e))
	}
	return papers, nil
}

// toPaper applies the catalog defaults to one entry.
func toPaper(e dailyPaper) types.Paper {
	if e.Paper == nil {
		return types.NewPaper("", "", nil)
	}
	authors := make([]string, 0, len(e.Paper.Authors))
	for _, a := range e.Paper.Authors {
		authors = append(authors, a.Name)
	}
	return types.NewPaper(e.Paper.Title, e.Paper.Summary, authors)
}
