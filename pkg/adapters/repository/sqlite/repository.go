package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	sqlite "modernc.org/sqlite"                          // Local SQLite driver
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/pkamnerd/linkdesk/pkg/core/domain"
)

// Open connects to the database at dbURL and returns a shared handle.
// Remote libsql/Turso URLs select the libsql driver, anything else the
// embedded one.
func Open(dbURL string) (*sql.DB, error) {
	driverName := "sqlite"
	if strings.Contains(dbURL, "libsql://") || strings.Contains(dbURL, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

type LinkRepository struct {
	db *sql.DB
}

func NewLinkRepository(dbURL string) (*LinkRepository, error) {
	db, err := Open(dbURL)
	if err != nil {
		return nil, err
	}
	if err := migrateLinks(db); err != nil {
		return nil, err
	}
	return &LinkRepository{db: db}, nil
}

func migrateLinks(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS urls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		short_id TEXT NOT NULL UNIQUE,
		full_url TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		clicks INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_urls_full_url ON urls(full_url);
	`
	_, err := db.Exec(query)
	return err
}

func (r *LinkRepository) Insert(ctx context.Context, link *domain.ShortLink) error {
	// clicks is written too so re-imported records keep their counts;
	// fresh allocations carry zero.
	query := `INSERT INTO urls (short_id, full_url, created_at, clicks) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, link.ShortID, link.FullURL, link.CreatedAt, link.Clicks)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	link.ID = id
	return nil
}

func (r *LinkRepository) GetByShortID(ctx context.Context, shortID string) (*domain.ShortLink, error) {
	query := `SELECT id, short_id, full_url, created_at, clicks FROM urls WHERE short_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, shortID))
}

func (r *LinkRepository) GetByURL(ctx context.Context, fullURL string) (*domain.ShortLink, error) {
	query := `SELECT id, short_id, full_url, created_at, clicks FROM urls WHERE full_url = ? LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, fullURL))
}

func (r *LinkRepository) Delete(ctx context.Context, shortID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM urls WHERE short_id = ?`, shortID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LinkRepository) List(ctx context.Context) ([]domain.ShortLink, error) {
	query := `SELECT id, short_id, full_url, created_at, clicks FROM urls ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []domain.ShortLink{}
	for rows.Next() {
		var link domain.ShortLink
		if err := rows.Scan(&link.ID, &link.ShortID, &link.FullURL, &link.CreatedAt, &link.Clicks); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// Touch bumps the click counter and reads the row back in one statement,
// so concurrent visits to the same id all get counted.
func (r *LinkRepository) Touch(ctx context.Context, shortID string) (*domain.ShortLink, error) {
	query := `UPDATE urls SET clicks = clicks + 1 WHERE short_id = ?
			  RETURNING id, short_id, full_url, created_at, clicks`
	return r.scanOne(r.db.QueryRowContext(ctx, query, shortID))
}

func (r *LinkRepository) Summary(ctx context.Context) (int64, int64, error) {
	var links, clicks int64
	query := `SELECT COUNT(*), COALESCE(SUM(clicks), 0) FROM urls`
	if err := r.db.QueryRowContext(ctx, query).Scan(&links, &clicks); err != nil {
		return 0, 0, err
	}
	return links, clicks, nil
}

func (r *LinkRepository) Dump(ctx context.Context) ([]domain.ShortLink, error) {
	return r.List(ctx)
}

func (r *LinkRepository) scanOne(row *sql.Row) (*domain.ShortLink, error) {
	var link domain.ShortLink
	err := row.Scan(&link.ID, &link.ShortID, &link.FullURL, &link.CreatedAt, &link.Clicks)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	// The libsql driver surfaces constraint failures as plain strings.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
