/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package config

import (
    "encoding/json"
    "log"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/joho/godotenv"
)

type Config struct {
    AppEnv   string
    TZ       string
    HTTPAddr string
    LogLevel string

    DBDSN string

    RegisterURL  string
    RegisterFile string

    RefreshCron string
    HTTPTimeout time.Duration
    MaxUploadMB int

    ColumnAliasFile string
    ColumnAliases   map[string]string // raw header -> canonical header
}

func getenv(key, def string) string {
    v := os.Getenv(key)
    if v == "" { return def }
    return v
}

func atoi(key string, def int) int {
    v := os.Getenv(key)
    if v == "" { return def }
    i, err := strconv.Atoi(v)
    if err != nil { return def }
    return i
}

func dur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" { return def }
    d, err := time.ParseDuration(v)
    if err != nil { return def }
    return d
}

func Load() Config {
    // .env is a dev convenience; real deployments set the environment.
    _ = godotenv.Load()

    cfg := Config{
        AppEnv:   getenv("APP_ENV", "dev"),
        TZ:       getenv("APP_TZ", "Asia/Kolkata"),
        HTTPAddr: getenv("HTTP_ADDR", ":8080"),
        LogLevel: getenv("LOG_LEVEL", "info"),

        DBDSN: getenv("DB_DSN", ""),

        RegisterURL:  getenv("REGISTER_URL", "https://raw.githubusercontent.com/dnyanesh57/NC-Dashboard/main/SJCPL_LIVE.csv"),
        RegisterFile: getenv("REGISTER_FILE", ""),

        RefreshCron: getenv("REFRESH_CRON", "*/30 * * * *"),
        HTTPTimeout: dur("HTTP_TIMEOUT", 30*time.Second),
        MaxUploadMB: atoi("MAX_UPLOAD_MB", 32),

        ColumnAliasFile: getenv("COLUMN_ALIAS_FILE", ""),
    }

    // set global timezone if available
    if loc, err := time.LoadLocation(cfg.TZ); err == nil {
        time.Local = loc
    } else {
        log.Printf("warning: cannot load TZ %s: %v", cfg.TZ, err)
    }

    // Optional sidecar mapping exporter headers onto the canonical register
    // columns, e.g. {"NC Ref": "Reference ID"}.
    if cfg.ColumnAliasFile != "" {
        if data, err := os.ReadFile(cfg.ColumnAliasFile); err == nil {
            m := map[string]string{}
            if err := json.Unmarshal(data, &m); err == nil {
                out := map[string]string{}
                for k, v := range m {
                    k, v = strings.TrimSpace(k), strings.TrimSpace(v)
                    if k != "" && v != "" { out[k] = v }
                }
                if len(out) > 0 { cfg.ColumnAliases = out }
            } else {
                log.Printf("warning: cannot parse %s: %v", cfg.ColumnAliasFile, err)
            }
        } else {
            log.Printf("warning: cannot read %s: %v", cfg.ColumnAliasFile, err)
        }
    }
    return cfg
}
