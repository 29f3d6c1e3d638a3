package identities

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/verifeed/verifeed/internal/common"
	"github.com/verifeed/verifeed/internal/server/models"
)

// SQLiteRepository keeps identities in a local SQLite table, used by
// development stacks that run without AWS access. The schema is created by
// the repository manager on open.
type SQLiteRepository struct {
	db    *sql.DB
	table string
}

func NewSQLiteRepository(db *sql.DB, table string) *SQLiteRepository {
	return &SQLiteRepository{db: db, table: table}
}

func (r *SQLiteRepository) Put(ctx context.Context, identity *models.Identity) error {
	query := fmt.Sprintf(`INSERT OR REPLACE INTO %s
		(id, username, email, password, profile_image_url, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`, r.table)

	_, err := r.db.ExecContext(ctx, query,
		identity.ID, identity.Username, identity.Email,
		identity.Password, identity.ProfileImageURL, identity.Timestamp)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Identity, error) {
	query := fmt.Sprintf(`SELECT id, username, email, password, profile_image_url, timestamp FROM %s`, r.table)
	return r.query(ctx, query)
}

func (r *SQLiteRepository) FindByUsername(ctx context.Context, username string) ([]*models.Identity, error) {
	query := fmt.Sprintf(`SELECT id, username, email, password, profile_image_url, timestamp FROM %s WHERE username = ?`, r.table)
	return r.query(ctx, query, username)
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]*models.Identity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	defer func() { _ = rows.Close() }()

	var out []*models.Identity
	for rows.Next() {
		var i models.Identity
		if err := rows.Scan(&i.ID, &i.Username, &i.Email, &i.Password, &i.ProfileImageURL, &i.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
		}
		out = append(out, &i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	return out, nil
}
