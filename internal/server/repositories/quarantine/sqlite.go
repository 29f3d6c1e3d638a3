package quarantine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/verifeed/verifeed/internal/common"
	"github.com/verifeed/verifeed/internal/server/models"
)

// SQLiteRepository keeps quarantined attempts in a local SQLite table.
type SQLiteRepository struct {
	db    *sql.DB
	table string
}

func NewSQLiteRepository(db *sql.DB, table string) *SQLiteRepository {
	return &SQLiteRepository{db: db, table: table}
}

func (r *SQLiteRepository) Put(ctx context.Context, attempt *models.QuarantinedAttempt) error {
	query := fmt.Sprintf(`INSERT OR REPLACE INTO %s
		(id, username, email, password, timestamp)
		VALUES (?, ?, ?, ?, ?)`, r.table)

	_, err := r.db.ExecContext(ctx, query,
		attempt.ID, attempt.Username, attempt.Email, attempt.Password, attempt.Timestamp)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.QuarantinedAttempt, error) {
	query := fmt.Sprintf(`SELECT id, username, email, password, timestamp FROM %s`, r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	defer func() { _ = rows.Close() }()

	var out []*models.QuarantinedAttempt
	for rows.Next() {
		var q models.QuarantinedAttempt
		if err := rows.Scan(&q.ID, &q.Username, &q.Email, &q.Password, &q.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
		}
		out = append(out, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	return out, nil
}
