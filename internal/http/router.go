/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "github.com/gin-gonic/gin"
    "github.com/rs/zerolog"

    "github.com/dnyanesh57/NC-Dashboard/internal/config"
)

func NewRouter(cfg config.Config, log zerolog.Logger, svc any) *gin.Engine {
    if cfg.AppEnv != "dev" { gin.SetMode(gin.ReleaseMode) }
    r := gin.New()
    r.Use(gin.Recovery())
    r.Use(func(c *gin.Context) {
        c.Next()
        log.Info().Str("m", c.Request.Method).Str("p", c.FullPath()).Int("s", c.Writer.Status()).Msg("http")
    })

    h := NewHandlers(cfg, log, svc)

    r.GET("/healthz", h.Healthz)
    r.GET("/register/summary", h.Summary)
    r.GET("/register/groups", h.Groups)
    r.GET("/register/daily", h.Daily)
    r.GET("/register/changed", h.Changed)
    r.GET("/register/export.csv", h.ExportCSV)
    r.GET("/register/theme", h.Theme)
    r.POST("/register/upload", h.Upload)
    r.POST("/admin/refresh", h.RefreshNow)
    r.GET("/admin/last-run", h.LastRun)

    return r
}
