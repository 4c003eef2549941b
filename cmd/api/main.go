/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package main

import (
    "context"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/dnyanesh57/NC-Dashboard/internal/config"
    httpx "github.com/dnyanesh57/NC-Dashboard/internal/http"
    "github.com/dnyanesh57/NC-Dashboard/internal/ingest"
    "github.com/dnyanesh57/NC-Dashboard/internal/jobs"
    "github.com/dnyanesh57/NC-Dashboard/internal/logger"
    "github.com/dnyanesh57/NC-Dashboard/internal/repo"
    "github.com/dnyanesh57/NC-Dashboard/internal/services"
)

func main() {
    cfg := config.Load()
    log := logger.New(cfg)
    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    // DB is optional: without a DSN the dashboard runs fully in memory and
    // only skips load-run auditing.
    var repository *repo.Repository
    if cfg.DBDSN != "" {
        db := repo.MustOpen(ctx, cfg, log)
        defer db.Close()
        repository = repo.NewRepository(db, log)
    }

    fetcher := ingest.NewFetcher(cfg, log)

    var audit services.LoadAuditor
    if repository != nil { audit = repository }
    svc := services.New(cfg, log, fetcher, audit)

    // Initial load: local file wins when configured, otherwise pull the
    // remote register in the background so startup never blocks on it.
    if cfg.RegisterFile != "" {
        ctx2, cancel2 := context.WithTimeout(ctx, time.Minute); defer cancel2()
        if st, err := svc.LoadFromFile(ctx2, cfg.RegisterFile); err != nil {
            log.Error().Err(err).Str("file", cfg.RegisterFile).Msg("initial file load failed")
        } else {
            log.Info().Str("load_id", st.LoadID).Int("rows", st.Rows).Msg("register loaded from file")
        }
    } else {
        go func() {
            ctx2, cancel2 := context.WithTimeout(ctx, 2*time.Minute); defer cancel2()
            if _, err := svc.Refresh(ctx2); err != nil {
                log.Error().Err(err).Msg("initial remote load failed")
            }
        }()
    }

    // HTTP server (Gin)
    router := httpx.NewRouter(cfg, log, svc)

    // Cron
    cron := jobs.NewCron(cfg, log, svc, repository)
    cron.Start()
    defer cron.Stop()

    // File watcher
    watcher := jobs.NewWatcher(cfg, log, svc)
    if err := watcher.Start(ctx); err != nil {
        log.Error().Err(err).Msg("file watcher failed to start")
    }

    // graceful shutdown
    errCh := make(chan error, 1)
    go func() { errCh <- router.Run(cfg.HTTPAddr) }()

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

    select {
    case <-sigCh:
        log.Info().Msg("shutting down...")
    case err := <-errCh:
        if err != nil { log.Error().Err(err).Msg("http server error") }
    }

    time.Sleep(500 * time.Millisecond)
}
