package jobs

import (
    "context"
    "path/filepath"
    "time"

    "github.com/fsnotify/fsnotify"
    "github.com/rs/zerolog"

    "github.com/dnyanesh57/NC-Dashboard/internal/config"
    "github.com/dnyanesh57/NC-Dashboard/internal/services"
)

type fileService interface {
    LoadFromFile(ctx context.Context, path string) (services.Status, error)
}

// Watcher reloads the register when the configured CSV changes on disk.
// It watches the parent directory because editors and exporters commonly
// replace the file via rename.
type Watcher struct {
    cfg config.Config
    log zerolog.Logger
    svc fileService
}

func NewWatcher(cfg config.Config, log zerolog.Logger, svc fileService) *Watcher {
    return &Watcher{cfg: cfg, log: log, svc: svc}
}

func (w *Watcher) Start(ctx context.Context) error {
    if w.cfg.RegisterFile == "" {
        w.log.Info().Msg("file watcher disabled")
        return nil
    }
    target, err := filepath.Abs(w.cfg.RegisterFile)
    if err != nil { return err }

    watcher, err := fsnotify.NewWatcher()
    if err != nil { return err }
    go func() {
        defer watcher.Close()
        for {
            select {
            case <-ctx.Done():
                return
            case evt := <-watcher.Events:
                if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 { continue }
                name, err := filepath.Abs(evt.Name)
                if err != nil || name != target { continue }
                w.reload(ctx)
            case err := <-watcher.Errors:
                w.log.Error().Err(err).Msg("watcher error")
            }
        }
    }()
    return watcher.Add(filepath.Dir(target))
}

func (w *Watcher) reload(ctx context.Context) {
    ctx, cancel := context.WithTimeout(ctx, time.Minute)
    defer cancel()
    st, err := w.svc.LoadFromFile(ctx, w.cfg.RegisterFile)
    if err != nil {
        w.log.Error().Err(err).Str("file", w.cfg.RegisterFile).Msg("watcher reload failed")
        return
    }
    w.log.Info().Str("load_id", st.LoadID).Int("rows", st.Rows).Msg("watcher reloaded register")
}
