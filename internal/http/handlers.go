/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "context"
    "errors"
    "io"
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/rs/zerolog"

    "github.com/dnyanesh57/NC-Dashboard/internal/config"
    "github.com/dnyanesh57/NC-Dashboard/internal/domain"
    "github.com/dnyanesh57/NC-Dashboard/internal/register"
    "github.com/dnyanesh57/NC-Dashboard/internal/report"
    "github.com/dnyanesh57/NC-Dashboard/internal/services"
    "github.com/dnyanesh57/NC-Dashboard/internal/theme"
)

type service interface {
    Current() (*register.Enriched, error)
    Status() (services.Status, error)
    LoadFromReader(ctx context.Context, r io.Reader, source string) (services.Status, error)
    Refresh(ctx context.Context) (services.Status, error)
    LastRun(ctx context.Context) (*domain.LoadRun, error)
}

type Handlers struct {
    cfg config.Config
    log zerolog.Logger
    svc service
}

func NewHandlers(cfg config.Config, log zerolog.Logger, svc any) *Handlers {
    return &Handlers{cfg: cfg, log: log, svc: svc.(service)}
}

func (h *Handlers) Healthz(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"ok": true})
}

// register returns the live snapshot or replies 503 when nothing is loaded.
func (h *Handlers) register(c *gin.Context) (*register.Enriched, bool) {
    e, err := h.svc.Current()
    if err != nil {
        if errors.Is(err, services.ErrNoRegister) {
            c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
        } else {
            c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        }
        return nil, false
    }
    return e, true
}

func (h *Handlers) Summary(c *gin.Context) {
    e, ok := h.register(c)
    if !ok { return }
    c.JSON(http.StatusOK, gin.H{"summary": report.Summarize(e)})
}

func (h *Handlers) Groups(c *gin.Context) {
    e, ok := h.register(c)
    if !ok { return }
    by := c.Query("by")
    if by == "" { by = register.ColProjectName }
    if !e.Has(by) {
        c.JSON(http.StatusBadRequest, gin.H{"error": "unknown column: " + by})
        return
    }
    c.JSON(http.StatusOK, gin.H{"by": by, "groups": report.GroupBy(e, by)})
}

func (h *Handlers) Daily(c *gin.Context) {
    e, ok := h.register(c)
    if !ok { return }
    c.JSON(http.StatusOK, gin.H{"days": report.DailyFlow(e)})
}

func (h *Handlers) Changed(c *gin.Context) {
    e, ok := h.register(c)
    if !ok { return }
    w, err := report.ParseWindow(c.Query("window"))
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    changed := report.Changed(e, time.Now(), w)
    c.JSON(http.StatusOK, gin.H{
        "count":   changed.Rows(),
        "summary": report.Summarize(changed),
        "rows":    report.Records(changed),
    })
}

func (h *Handlers) ExportCSV(c *gin.Context) {
    e, ok := h.register(c)
    if !ok { return }
    c.Header("Content-Type", "text/csv; charset=utf-8")
    c.Header("Content-Disposition", `attachment; filename="register_enriched.csv"`)
    if err := report.ExportCSV(c.Writer, e); err != nil {
        h.log.Error().Err(err).Msg("csv export failed")
    }
}

func (h *Handlers) Upload(c *gin.Context) {
    fh, err := c.FormFile("file")
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' required"})
        return
    }
    if max := int64(h.cfg.MaxUploadMB) << 20; max > 0 && fh.Size > max {
        c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large"})
        return
    }
    f, err := fh.Open()
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    defer f.Close()

    st, err := h.svc.LoadFromReader(c.Request.Context(), f, "upload:"+fh.Filename)
    if err != nil {
        c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"status": st})
}

func (h *Handlers) RefreshNow(c *gin.Context) {
    // Run in background detached from the HTTP request to avoid context cancellation
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
        defer cancel()
        if _, err := h.svc.Refresh(ctx); err != nil {
            h.log.Error().Err(err).Msg("manual refresh failed")
        }
    }()
    c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

// Theme serves the brand palette plus a stable colour assignment for every
// status present in the live register.
func (h *Handlers) Theme(c *gin.Context) {
    resp := gin.H{
        "status_colors": theme.StatusColors,
        "metric_colors": theme.MetricColors,
    }
    if e, err := h.svc.Current(); err == nil {
        resp["status_map"] = theme.MapFor(e.Column(register.ColStatus))
    }
    c.JSON(http.StatusOK, resp)
}

func (h *Handlers) LastRun(c *gin.Context) {
    run, err := h.svc.LastRun(c.Request.Context())
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    st, stErr := h.svc.Status()
    resp := gin.H{"audit": run}
    if stErr == nil { resp["current"] = st }
    c.JSON(http.StatusOK, resp)
}
