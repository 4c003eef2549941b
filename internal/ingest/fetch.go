/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package ingest

import (
    "context"
    "errors"
    "fmt"
    "net/http"

    "github.com/rs/zerolog"

    "github.com/dnyanesh57/NC-Dashboard/internal/config"
    "github.com/dnyanesh57/NC-Dashboard/internal/register"
)

// Fetcher pulls the published register CSV over HTTP.
type Fetcher struct {
    url  string
    http *http.Client
    log  zerolog.Logger
}

func NewFetcher(cfg config.Config, log zerolog.Logger) *Fetcher {
    return &Fetcher{
        url:  cfg.RegisterURL,
        http: &http.Client{Timeout: cfg.HTTPTimeout},
        log:  log,
    }
}

// Fetch downloads and parses the configured register URL.
func (f *Fetcher) Fetch(ctx context.Context) (*register.Table, error) {
    if f.url == "" { return nil, errors.New("ingest: empty register URL") }
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
    if err != nil { return nil, err }
    req.Header.Set("Accept", "text/csv")

    resp, err := f.http.Do(req)
    if err != nil { return nil, fmt.Errorf("fetch register: %w", err) }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        return nil, fmt.Errorf("fetch register: status %d from %s", resp.StatusCode, f.url)
    }
    f.log.Debug().Str("url", f.url).Msg("register fetched")
    return ReadCSV(resp.Body)
}
