package repo

import (
    "context"
    "errors"
    "time"

    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgxpool"
    "github.com/rs/zerolog"

    "github.com/dnyanesh57/NC-Dashboard/internal/config"
    "github.com/dnyanesh57/NC-Dashboard/internal/domain"
)

type DB struct {
    Pool *pgxpool.Pool
    log  zerolog.Logger
}

func MustOpen(ctx context.Context, cfg config.Config, log zerolog.Logger) *DB {
    pool, err := pgxpool.New(ctx, cfg.DBDSN)
    if err != nil { log.Fatal().Err(err).Msg("db connect failed") }
    ctx2, cancel := context.WithTimeout(ctx, 10*time.Second); defer cancel()
    if err := pool.Ping(ctx2); err != nil { log.Fatal().Err(err).Msg("db ping failed") }
    return &DB{Pool: pool, log: log}
}

func (d *DB) Close() { d.Pool.Close() }

type Repository struct {
    db  *DB
    log zerolog.Logger
}

func NewRepository(d *DB, log zerolog.Logger) *Repository { return &Repository{db: d, log: log} }

func (r *Repository) TryAdvisoryLock(ctx context.Context, key int64) (bool, error) {
    var ok bool
    err := r.db.Pool.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", key).Scan(&ok)
    return ok, err
}

func (r *Repository) AdvisoryUnlock(ctx context.Context, key int64) error {
    var ok bool
    err := r.db.Pool.QueryRow(ctx, "SELECT pg_advisory_unlock($1)", key).Scan(&ok)
    if !ok && err == nil { return errors.New("advisory unlock returned false") }
    return err
}

// StartLoadRun records the beginning of a register load and returns its row id.
func (r *Repository) StartLoadRun(ctx context.Context, run domain.LoadRun) (int64, error) {
    const q = `INSERT INTO load_runs(load_id, source, started_at)
        VALUES($1,$2,$3) RETURNING id`
    var id int64
    err := r.db.Pool.QueryRow(ctx, q, run.LoadID, run.Source, run.StartedAt).Scan(&id)
    if err != nil { return 0, err }
    return id, nil
}

func (r *Repository) FinishLoadRun(ctx context.Context, id int64, rows int, ok bool, note string) error {
    const q = `UPDATE load_runs SET rows=$2, ok=$3, note=$4, finished_at=now() WHERE id=$1`
    _, err := r.db.Pool.Exec(ctx, q, id, rows, ok, note)
    return err
}

// GetLastRun returns the most recent load run, or nil when none exist yet.
func (r *Repository) GetLastRun(ctx context.Context) (*domain.LoadRun, error) {
    const q = `SELECT id, load_id, source, rows, ok, note, started_at, finished_at
        FROM load_runs ORDER BY started_at DESC LIMIT 1`
    var run domain.LoadRun
    err := r.db.Pool.QueryRow(ctx, q).Scan(&run.ID, &run.LoadID, &run.Source,
        &run.Rows, &run.OK, &run.Note, &run.StartedAt, &run.FinishedAt)
    if errors.Is(err, pgx.ErrNoRows) { return nil, nil }
    if err != nil { return nil, err }
    return &run, nil
}
