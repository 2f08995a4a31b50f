// Package db manage the sqlite database: connection, migrations, transactions.
package db

//
// mod.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"runtime"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/config"
)

//go:embed "migrations/*.sql"
var embedMigrations embed.FS

const (
	connMaxIdleTime = 30 * time.Second
	connMaxLifetime = 60 * time.Second
	maxIdleConns    = 1
	maxOpenConns    = 10
)

type Database struct {
	db      *sqlx.DB
	connstr string

	queryDuration *prometheus.HistogramVec
}

func NewDatabaseI(i do.Injector) (*Database, error) {
	dbconf := do.MustInvoke[config.DBConfig](i)

	connstr, err := prepareSqliteConnstr(dbconf.Connstr)
	if err != nil {
		return nil, aerr.Wrapf(err, "invalid database connstr")
	}

	return &Database{connstr: connstr}, nil
}

func (r *Database) Connect(ctx context.Context) error {
	logger := log.Ctx(ctx)
	logger.Debug().Msgf("db: connecting to %q", r.connstr)

	var err error

	r.db, err = sqlx.Open("sqlite3", r.connstr)
	if err != nil {
		return aerr.Wrapf(err, "open database failed").WithTag(aerr.StorageError).
			WithMeta("connstr", r.connstr)
	}

	r.db.SetConnMaxIdleTime(connMaxIdleTime)
	r.db.SetConnMaxLifetime(connMaxLifetime)
	r.db.SetMaxIdleConns(maxIdleConns)
	r.db.SetMaxOpenConns(maxOpenConns)

	if err := r.onConnect(ctx, r.db); err != nil {
		return aerr.Wrapf(err, "call startup scripts error").WithTag(aerr.StorageError)
	}

	if err := r.db.PingContext(ctx); err != nil {
		return aerr.Wrapf(err, "ping database failed").WithTag(aerr.StorageError)
	}

	return nil
}

func (r *Database) RegisterMetrics() {
	prometheus.DefaultRegisterer.MustRegister(collectors.NewDBStatsCollector(r.db.DB, "main"))

	r.queryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_query_duration_seconds",
			Help:    "Tracks the latencies for database query.",
			Buckets: []float64{0.1, 0.2, 0.5, 1, 2, 5},
		},
		[]string{"caller"},
	)

	prometheus.DefaultRegisterer.MustRegister(r.queryDuration)
}

// Shutdown close database. Called by samber/do.
func (r *Database) Shutdown(ctx context.Context) error {
	if r.db == nil {
		return nil
	}

	if err := r.db.Close(); err != nil {
		return fmt.Errorf("close db error: %w", err)
	}

	r.db = nil

	logger := log.Ctx(ctx)
	logger.Debug().Msg("db: closed")

	return nil
}

func (r *Database) Migrate(ctx context.Context) error {
	logger := log.Ctx(ctx)

	migdir, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		panic(fmt.Errorf("prepare migration fs failed: %w", err))
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, r.db.DB, migdir)
	if err != nil {
		panic(fmt.Errorf("create goose provider failed: %w", err))
	}

	ver, err := provider.GetDBVersion(ctx)
	if err != nil {
		return aerr.ApplyFor(aerr.ErrDatabase, err, "failed to check current database version")
	}

	logger.Info().Msgf("db: current database version: %d", ver)

	for {
		res, err := provider.UpByOne(ctx)
		if res != nil {
			logger.Debug().Msgf("db: migration: %s", res)
		}

		if errors.Is(err, goose.ErrNoNextVersion) {
			break
		} else if err != nil {
			return aerr.ApplyFor(aerr.ErrDatabase, err, "migrate database up failed")
		}
	}

	ver, err = provider.GetDBVersion(ctx)
	if err != nil {
		return aerr.ApplyFor(aerr.ErrDatabase, err, "failed to check current database version")
	}

	logger.Info().Msgf("db: migrated database version: %d", ver)

	return nil
}

func (r *Database) GetConnection(ctx context.Context) (*sqlx.Conn, error) {
	conn, err := r.db.Connx(ctx)
	if err != nil {
		return nil, aerr.ApplyFor(aerr.ErrDatabase, err, "failed open connection")
	}

	if err := r.onConnect(ctx, conn); err != nil {
		return nil, aerr.ApplyFor(aerr.ErrDatabase, err, "failed run onConnect scripts")
	}

	return conn, nil
}

func (r *Database) CloseConnection(ctx context.Context, conn *sqlx.Conn) {
	if err := r.onClose(ctx, conn); err != nil {
		log.Logger.Error().Err(err).Msg("db: run scripts onClose failed")
	}

	if err := conn.Close(); err != nil {
		log.Logger.Error().Err(err).Msg("db: close connection failed")
	}
}

func (r *Database) Maintenance(ctx context.Context) error {
	logger := log.Ctx(ctx)

	for idx, script := range maintScripts {
		logger.Debug().Msgf("db: run maintenance script[%d]: %q", idx, script)

		if _, err := r.db.ExecContext(ctx, script); err != nil {
			return aerr.ApplyFor(aerr.ErrDatabase, err, "execute maintenance script failed").
				WithMeta("sql", script)
		}
	}

	var numEpisodes, numPodcasts int
	if err := r.db.GetContext(ctx, &numEpisodes, "SELECT count(*) FROM episodes"); err != nil {
		return aerr.ApplyFor(aerr.ErrDatabase, err, "maintenance - count episodes failed")
	}

	if err := r.db.GetContext(ctx, &numPodcasts, "SELECT count(*) FROM podcasts"); err != nil {
		return aerr.ApplyFor(aerr.ErrDatabase, err, "maintenance - count podcasts failed")
	}

	logger.Info().Msgf("db: maintenance finished; podcasts: %d; episodes: %d",
		numPodcasts, numEpisodes)

	return nil
}

func (r *Database) HealthCheck(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return aerr.Wrapf(err, "ping database failed").WithTag(aerr.StorageError)
	}

	return nil
}

func (r *Database) onConnect(ctx context.Context, db sqlx.ExecerContext) error {
	_, err := db.ExecContext(ctx,
		`PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 1000;
		`,
	)
	if err != nil {
		return aerr.ApplyFor(aerr.ErrDatabase, err, "execute onConnect script failed")
	}

	return nil
}

func (r *Database) onClose(ctx context.Context, db sqlx.ExecerContext) error {
	_, err := db.ExecContext(ctx, "PRAGMA optimize")
	if err != nil {
		return aerr.ApplyFor(aerr.ErrDatabase, err, "execute onClose script failed")
	}

	return nil
}

func (r *Database) observeQueryDuration(start time.Time) {
	if r.queryDuration == nil {
		return
	}

	const skipFrames = 3

	rpc := make([]uintptr, 1)
	if n := runtime.Callers(skipFrames, rpc); n < 1 {
		return
	}

	frame, _ := runtime.CallersFrames(rpc).Next()
	if frame.PC == 0 {
		return
	}

	r.queryDuration.WithLabelValues(frame.Function).Observe(time.Since(start).Seconds())
}

//------------------------------------------------------------------------------

func prepareSqliteConnstr(connstr string) (string, error) {
	if connstr == "" {
		return "", aerr.ErrInvalidConf.WithUserMsg("invalid (empty) database connection string")
	}

	if connstr == ":memory:" {
		return ":memory:?_fk=ON", nil
	}

	parsed, err := url.Parse(connstr)
	if err != nil {
		return "", aerr.ApplyFor(aerr.ErrInvalidConf, err, "failed to parse database connection string")
	}

	if parsed.Path == "" && parsed.Opaque == "" {
		return "", aerr.ErrInvalidConf.WithUserMsg("invalid database connection string - missing path")
	}

	query := parsed.Query()
	if !query.Has("_fk") && !query.Has("__foreign_keys") {
		query.Set("_fk", "ON")
	}

	if !query.Has("_journal_mode") {
		query.Set("_journal_mode", "WAL")
	}

	if !query.Has("_synchronous") {
		query.Set("_synchronous", "NORMAL")
	}

	parsed.RawQuery = query.Encode()

	return parsed.String(), err
}

//------------------------------------------------------------------------------

// InConnectionR run `fun` with a database connection carried in ctx.
// Open/close connection. Return `fun` result and error.
func InConnectionR[T any](ctx context.Context, r *Database,
	fun func(ctx context.Context) (T, error),
) (T, error) {
	start := time.Now()
	defer r.observeQueryDuration(start)

	conn, err := r.GetConnection(ctx)
	if err != nil {
		return *new(T), err
	}

	defer r.CloseConnection(ctx, conn)

	return fun(WithCtx(ctx, conn))
}

// InTransaction run `fun` with a transaction carried in ctx; rollback on
// error, commit otherwise.
func InTransaction(ctx context.Context, r *Database, fun func(ctx context.Context) error) error {
	_, err := InTransactionR(ctx, r, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fun(ctx)
	})

	return err
}

// InTransactionR run `fun` in db transaction; return `fun` result and error.
func InTransactionR[T any](ctx context.Context, r *Database,
	fun func(ctx context.Context) (T, error),
) (T, error) {
	start := time.Now()
	defer r.observeQueryDuration(start)

	conn, err := r.GetConnection(ctx)
	if err != nil {
		return *new(T), err
	}

	defer r.CloseConnection(ctx, conn)

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return *new(T), aerr.ApplyFor(aerr.ErrDatabase, err, "begin tx failed")
	}

	res, err := fun(WithCtx(ctx, tx))
	if err != nil {
		if rberr := tx.Rollback(); rberr != nil {
			merr := errors.Join(err, fmt.Errorf("rollback error: %w", rberr))

			return res, aerr.ApplyFor(aerr.ErrDatabase, merr, "execute func in trans and rollback error")
		}

		return res, err
	}

	if err := tx.Commit(); err != nil {
		return res, aerr.ApplyFor(aerr.ErrDatabase, err, "commit tx failed")
	}

	return res, nil
}

//------------------------------------------------------------------------------

var maintScripts = []string{
	"VACUUM;",
	"ANALYZE;",
	"PRAGMA optimize;",
}
