package logger

import (
    "os"
    "time"

    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"

    "github.com/dnyanesh57/NC-Dashboard/internal/config"
)

func New(cfg config.Config) zerolog.Logger {
    level, err := zerolog.ParseLevel(cfg.LogLevel)
    if err != nil { level = zerolog.InfoLevel }

    var logger zerolog.Logger
    if cfg.AppEnv == "dev" {
        output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
        logger = zerolog.New(output).With().Timestamp().Logger().Level(level)
    } else {
        zerolog.TimeFieldFormat = time.RFC3339
        logger = zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
    }
    log.Logger = logger
    return logger
}
