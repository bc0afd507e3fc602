package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder is the squirrel statement builder configured for PostgreSQL.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Get builds the query and scans exactly one row into dst.
func Get(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, sql, args...)
}

// Select builds the query and scans all rows into dst, which must be a
// pointer to a slice.
func Select(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// Exec builds and runs a statement, returning the number of affected rows.
func Exec(ctx context.Context, q Querier, b squirrel.Sqlizer) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Queue builds a statement and defers it on the session carried by ctx.
// Without a session the statement runs immediately on q.
func Queue(ctx context.Context, q Querier, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if s, ok := SessionFromCtx(ctx); ok {
		s.Queue(sql, args...)
		return nil
	}
	_, err = q.Exec(ctx, sql, args...)
	return err
}
