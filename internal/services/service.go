/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package services

import (
    "context"
    "errors"
    "fmt"
    "io"
    "sync"
    "time"

    "github.com/google/uuid"
    "github.com/rs/zerolog"

    "github.com/dnyanesh57/NC-Dashboard/internal/config"
    "github.com/dnyanesh57/NC-Dashboard/internal/domain"
    "github.com/dnyanesh57/NC-Dashboard/internal/ingest"
    "github.com/dnyanesh57/NC-Dashboard/internal/register"
)

// ErrNoRegister is returned before the first successful load.
var ErrNoRegister = errors.New("no register loaded")

// TableFetcher pulls a raw register from the configured remote source.
type TableFetcher interface {
    Fetch(ctx context.Context) (*register.Table, error)
}

// LoadAuditor persists load-run audit rows. Optional; nil disables auditing.
type LoadAuditor interface {
    StartLoadRun(ctx context.Context, run domain.LoadRun) (int64, error)
    FinishLoadRun(ctx context.Context, id int64, rows int, ok bool, note string) error
    GetLastRun(ctx context.Context) (*domain.LoadRun, error)
}

// Service owns the in-memory register. Loads derive a fresh snapshot off to
// the side and swap it in whole under the lock; readers never observe a
// partially derived table.
type Service struct {
    cfg   config.Config
    log   zerolog.Logger
    fetch TableFetcher
    audit LoadAuditor

    mu       sync.RWMutex
    current  *register.Enriched
    loadID   string
    source   string
    loadedAt time.Time
}

func New(cfg config.Config, log zerolog.Logger, fetch TableFetcher, audit LoadAuditor) *Service {
    return &Service{cfg: cfg, log: log, fetch: fetch, audit: audit}
}

// Current returns the live snapshot.
func (s *Service) Current() (*register.Enriched, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    if s.current == nil { return nil, ErrNoRegister }
    return s.current, nil
}

// Status describes the last successful load.
type Status struct {
    LoadID   string    `json:"load_id"`
    Source   string    `json:"source"`
    Rows     int       `json:"rows"`
    LoadedAt time.Time `json:"loaded_at"`
}

func (s *Service) Status() (Status, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    if s.current == nil { return Status{}, ErrNoRegister }
    return Status{LoadID: s.loadID, Source: s.source, Rows: s.current.Rows(), LoadedAt: s.loadedAt}, nil
}

// LoadFromReader ingests a register CSV stream and swaps it in.
func (s *Service) LoadFromReader(ctx context.Context, r io.Reader, source string) (Status, error) {
    tab, err := ingest.ReadCSV(r)
    if err != nil { return Status{}, err }
    return s.install(ctx, tab, source)
}

// LoadFromFile ingests a register CSV from disk.
func (s *Service) LoadFromFile(ctx context.Context, path string) (Status, error) {
    tab, err := ingest.ReadCSVFile(path)
    if err != nil { return Status{}, err }
    return s.install(ctx, tab, "file:"+path)
}

// Refresh re-downloads the remote register.
func (s *Service) Refresh(ctx context.Context) (Status, error) {
    if s.fetch == nil { return Status{}, errors.New("no register source configured") }
    tab, err := s.fetch.Fetch(ctx)
    if err != nil {
        s.audited(ctx, "", "remote", 0, false, err.Error())
        return Status{}, err
    }
    return s.install(ctx, tab, "remote")
}

// LastRun reads the newest audit row; nil repo means no history.
func (s *Service) LastRun(ctx context.Context) (*domain.LoadRun, error) {
    if s.audit == nil { return nil, nil }
    return s.audit.GetLastRun(ctx)
}

func (s *Service) install(ctx context.Context, tab *register.Table, source string) (Status, error) {
    loadID := uuid.NewString()
    if s.cfg.ColumnAliases != nil { tab = tab.Rename(s.cfg.ColumnAliases) }
    e := register.Enrich(tab)
    if len(e.Columns()) == 0 {
        err := fmt.Errorf("register from %s has no columns", source)
        s.audited(ctx, loadID, source, 0, false, err.Error())
        return Status{}, err
    }

    s.mu.Lock()
    s.current = e
    s.loadID = loadID
    s.source = source
    s.loadedAt = time.Now()
    st := Status{LoadID: s.loadID, Source: s.source, Rows: e.Rows(), LoadedAt: s.loadedAt}
    s.mu.Unlock()

    s.audited(ctx, loadID, source, e.Rows(), true, "")
    s.log.Info().Str("load_id", loadID).Str("source", source).Int("rows", e.Rows()).Msg("register loaded")
    return st, nil
}

// audited writes one start+finish audit pair. Audit failures are logged, not
// propagated: the in-memory register is already live.
func (s *Service) audited(ctx context.Context, loadID, source string, rows int, ok bool, note string) {
    if s.audit == nil { return }
    if loadID == "" { loadID = uuid.NewString() }
    id, err := s.audit.StartLoadRun(ctx, domain.LoadRun{LoadID: loadID, Source: source, StartedAt: time.Now()})
    if err != nil {
        s.log.Warn().Err(err).Msg("load-run audit insert failed")
        return
    }
    if err := s.audit.FinishLoadRun(ctx, id, rows, ok, note); err != nil {
        s.log.Warn().Err(err).Msg("load-run audit update failed")
    }
}
