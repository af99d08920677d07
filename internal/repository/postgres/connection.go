package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"pulpit/internal/domain/repositories"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Churches           string
	Speakers           string
	Users              string
	Sermons            string
	SpeakerPreferences string
	SpeakerFollowers   string
	ChurchFollowers    string
	SermonPreferences  string
	FeaturedSermons    string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Churches:           fmt.Sprintf("%schurches", prefix),
		Speakers:           fmt.Sprintf("%sspeakers", prefix),
		Users:              fmt.Sprintf("%susers", prefix),
		Sermons:            fmt.Sprintf("%ssermons", prefix),
		SpeakerPreferences: fmt.Sprintf("%suser_speaker_preferences", prefix),
		SpeakerFollowers:   fmt.Sprintf("%sspeaker_followers", prefix),
		ChurchFollowers:    fmt.Sprintf("%schurch_followers", prefix),
		SermonPreferences:  fmt.Sprintf("%ssermon_preferences", prefix),
		FeaturedSermons:    fmt.Sprintf("%sfeatured_sermons", prefix),
	}
}

// CreateConnectionPool creates a new pgx connection pool.
//
// When the connection goes through a transaction pooler (PgBouncer-style,
// port 6543 on hosted Postgres), prepared statements are not supported and
// pgx's default QueryExecModeCacheStatement fails with "prepared statement
// already exists". QueryExecModeCacheDescribe keeps the extended protocol
// (needed for JSONB encoding of map values) without creating prepared
// statements, so it works on both direct and pooled connections. An
// explicit default_query_exec_mode in the connection string takes
// precedence over this auto-detection.
//
// The fmt.Sprintf table-prefix interpolation used by the repositories is
// safe alongside statement caching: the SQL text is fixed before it is
// sent, so each environment caches its own statements.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for transaction pooler compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the appropriate query executor for the context.
// If a transaction is present in the context, it returns the transaction.
// Otherwise, it returns the provided pool.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
