package corpus

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource describes a table of (id, content) rows to index,
// an alternative to the flat-file documents/ directory for corpora that
// live in a database.
type PostgresSource struct {
	Host       string
	Port       int
	Database   string
	Username   string
	Password   string
	SSLMode    string
	Table      string
	IDColumn   string
	TextColumn string
}

// buildConnectionString constructs a libpq key/value connection string,
// mirroring the teacher's internal/database.buildConnectionString.
func buildConnectionString(cfg PostgresSource) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("host=%s", cfg.Host))
	parts = append(parts, fmt.Sprintf("port=%d", cfg.Port))
	parts = append(parts, fmt.Sprintf("dbname=%s", cfg.Database))

	username := cfg.Username
	if username == "" {
		username = os.Getenv("PGUSER")
	}
	if username == "" {
		username = os.Getenv("USER")
	}
	if username != "" {
		parts = append(parts, fmt.Sprintf("user=%s", username))
	}
	if cfg.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", cfg.Password))
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "prefer"
	}
	parts = append(parts, fmt.Sprintf("sslmode=%s", sslMode))

	return strings.Join(parts, " ")
}

// LoadDocumentsFromPostgres connects to cfg's database and fetches every
// non-null (id, content) row from the configured table, ordered by the
// ID column for reproducible avgdl computation.
func LoadDocumentsFromPostgres(ctx context.Context, cfg PostgresSource) ([]RawDocument, error) {
	poolCfg, err := pgxpool.ParseConfig(buildConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	idCol := pgx.Identifier{cfg.IDColumn}.Sanitize()
	textCol := pgx.Identifier{cfg.TextColumn}.Sanitize()
	table := sanitizeTable(cfg.Table)

	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s WHERE %s IS NOT NULL ORDER BY %s",
		idCol, textCol, table, textCol, idCol,
	)

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}
	defer rows.Close()

	var docs []RawDocument
	for rows.Next() {
		var id, content string
		if err := rows.Scan(&id, &content); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		docs = append(docs, RawDocument{ID: id, Content: content})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}
	return docs, nil
}

// sanitizeTable splits "schema.table" into a pgx.Identifier before
// sanitizing, mirroring the teacher's parseTableIdentifier.
func sanitizeTable(table string) string {
	parts := strings.Split(table, ".")
	return pgx.Identifier(parts).Sanitize()
}
