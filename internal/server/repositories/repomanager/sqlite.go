package repomanager

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/verifeed/verifeed/internal/server/repositories/identities"
	"github.com/verifeed/verifeed/internal/server/repositories/posts"
	"github.com/verifeed/verifeed/internal/server/repositories/quarantine"
)

type SQLiteManager struct {
	db         *sql.DB
	identities *identities.SQLiteRepository
	quarantine *quarantine.SQLiteRepository
	posts      *posts.SQLiteRepository
}

// NewSQLiteManager opens (or creates) the database file and ensures the
// three tables exist.
func NewSQLiteManager(path string, tables Tables) (*SQLiteManager, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := createSchema(db, tables); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteManager{
		db:         db,
		identities: identities.NewSQLiteRepository(db, tables.Identities),
		quarantine: quarantine.NewSQLiteRepository(db, tables.Quarantine),
		posts:      posts.NewSQLiteRepository(db, tables.Posts),
	}, nil
}

func createSchema(db *sql.DB, tables Tables) error {
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			username TEXT,
			email TEXT,
			password TEXT,
			profile_image_url TEXT,
			timestamp TEXT
		)`, tables.Identities),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			username TEXT,
			email TEXT,
			password TEXT,
			timestamp TEXT
		)`, tables.Quarantine),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			content TEXT,
			image_url TEXT,
			status INTEGER,
			timestamp TEXT
		)`, tables.Posts),
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (m *SQLiteManager) Identities() identities.Repository { return m.identities }
func (m *SQLiteManager) Quarantine() quarantine.Repository { return m.quarantine }
func (m *SQLiteManager) Posts() posts.Repository           { return m.posts }

func (m *SQLiteManager) Close() error {
	return m.db.Close()
}
