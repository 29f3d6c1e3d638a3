package posts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/verifeed/verifeed/internal/common"
	"github.com/verifeed/verifeed/internal/server/models"
)

// SQLiteRepository keeps posts in a local SQLite table. A missing status is
// stored as NULL so it stays distinguishable from an explicit false.
type SQLiteRepository struct {
	db    *sql.DB
	table string
}

func NewSQLiteRepository(db *sql.DB, table string) *SQLiteRepository {
	return &SQLiteRepository{db: db, table: table}
}

func (r *SQLiteRepository) Put(ctx context.Context, post *models.Post) error {
	query := fmt.Sprintf(`INSERT OR REPLACE INTO %s
		(id, user_id, content, image_url, status, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`, r.table)

	var status any
	if post.Status != nil {
		status = *post.Status
	}

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.IdentityID, post.Content, post.ImageURL, status, post.Timestamp)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Post, error) {
	query := fmt.Sprintf(`SELECT id, user_id, content, image_url, status, timestamp FROM %s`, r.table)
	return r.query(ctx, query)
}

func (r *SQLiteRepository) ListByIdentity(ctx context.Context, identityID string) ([]*models.Post, error) {
	query := fmt.Sprintf(`SELECT id, user_id, content, image_url, status, timestamp FROM %s WHERE user_id = ?`, r.table)
	return r.query(ctx, query, identityID)
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]*models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	defer func() { _ = rows.Close() }()

	var out []*models.Post
	for rows.Next() {
		var p models.Post
		var status sql.NullBool
		if err := rows.Scan(&p.ID, &p.IdentityID, &p.Content, &p.ImageURL, &status, &p.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
		}
		if status.Valid {
			p.Status = &status.Bool
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	return out, nil
}
