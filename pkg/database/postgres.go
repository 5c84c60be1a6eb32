package database

import (
	"context"
	"fmt"
	"time"

	"celebrity-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
)

// Querier is the subset shared by the pool and a pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PgxIface is satisfied by *pgxpool.Pool and by pgxmock in tests.
type PgxIface interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// InitDB opens the pool and pings it once. In debug mode every statement is
// logged through zap.
func InitDB(ctx context.Context, config utils.DatabaseConfig, appName string, debug bool, log *zap.Logger) (PgxIface, error) {
	connStr := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=%s host=%s port=%s",
		config.User, config.Password, config.Name, config.SSLMode, config.Host, config.Port)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	poolConfig.MaxConns = config.MaxConns
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second
	poolConfig.ConnConfig.RuntimeParams["application_name"] = appName
	if debug {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   queryLogger(log.Named("pgx")),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return pool, nil
}

func queryLogger(log *zap.Logger) tracelog.Logger {
	return tracelog.LoggerFunc(func(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		fields := make([]zap.Field, 0, len(data))
		for k, v := range data {
			fields = append(fields, zap.Any(k, v))
		}
		switch {
		case level <= tracelog.LogLevelError:
			log.Error(msg, fields...)
		case level == tracelog.LogLevelWarn:
			log.Warn(msg, fields...)
		default:
			log.Debug(msg, fields...)
		}
	})
}
