package cookies

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/assessment/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, c Cookie) error {
	var expires int64
	if !c.Expires.IsZero() {
		expires = c.Expires.Unix()
	}
	path := c.Path
	if path == "" {
		path = "/"
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cookies (host, name, path, domain, value, expires_at, secure, http_only)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(host, name, path) DO UPDATE SET
			domain = excluded.domain,
			value = excluded.value,
			expires_at = excluded.expires_at,
			secure = excluded.secure,
			http_only = excluded.http_only
	`, c.Host, c.Name, path, c.Domain, c.Value, expires, c.Secure, c.HTTPOnly)
	if err != nil {
		return fmt.Errorf("failed to upsert cookie[%s]: %w", c.Name, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, host, name, path string) error {
	if path == "" {
		path = "/"
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies WHERE host = ? AND name = ? AND path = ?`, host, name, path)
	if err != nil {
		return fmt.Errorf("failed to delete cookie[%s]: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, host string) ([]Cookie, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT host, name, path, domain, value, expires_at, secure, http_only
		FROM cookies WHERE host = ? ORDER BY name, path
	`, host)
	if err != nil {
		return nil, fmt.Errorf("failed to list cookies: %w", err)
	}
	defer rows.Close()

	var result []Cookie
	for rows.Next() {
		var (
			c       Cookie
			expires int64
		)
		if err := rows.Scan(&c.Host, &c.Name, &c.Path, &c.Domain, &c.Value, &expires, &c.Secure, &c.HTTPOnly); err != nil {
			return nil, fmt.Errorf("failed to scan cookie row: %w", err)
		}
		if expires > 0 {
			c.Expires = time.Unix(expires, 0).UTC()
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cookie rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, host string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cookies WHERE host = ?`, host); err != nil {
		return fmt.Errorf("failed to clear cookies: %w", err)
	}
	return nil
}

// Batch runs fn inside one transaction when the handle can start one. A
// repository already bound to a transaction runs fn directly.
func (r *SQLiteRepository) Batch(ctx context.Context, fn func(Repository) error) error {
	b, ok := r.db.(dbx.TxBeginner)
	if !ok {
		return fn(r)
	}
	return dbx.WithTx(ctx, b, nil, func(_ context.Context, tx dbx.DBTX) error {
		return fn(NewSQLiteRepository(tx))
	})
}
