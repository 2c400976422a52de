package save

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const migrationTable = "schema_migrations"

// SQLiteRepo keeps every save as a revision in a SQLite database. Load and
// Latest return the newest revision.
type SQLiteRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

// OpenSQLite opens or creates the database at path and applies pending
// migrations.
func OpenSQLite(dbPath string) (*SQLiteRepo, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(dbPath) + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	repo := &SQLiteRepo{db: db, now: time.Now}
	if err := repo.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return repo, nil
}

func (r *SQLiteRepo) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// migrate applies each embedded migration at most once.
func (r *SQLiteRepo) migrate() error {
	if _, err := r.db.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
);`, migrationTable)); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		name := path.Base(file)
		var applied int
		if err := r.db.Get(&applied, fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE name = ?", migrationTable), name); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if applied > 0 {
			continue
		}
		content, err := migrationFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		tx, err := r.db.Beginx()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", name, err)
		}
		if _, err := tx.Exec(upSection(string(content))); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", name, err)
		}
		if _, err := tx.Exec(
			fmt.Sprintf("INSERT INTO %s (name, applied_at) VALUES (?, ?)", migrationTable),
			name, r.now().UTC().UnixMilli(),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
	}
	return nil
}

// upSection returns the SQL between the Up and Down markers.
func upSection(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"
	if i := strings.Index(content, up); i >= 0 {
		content = content[i+len(up):]
	}
	if i := strings.Index(content, down); i >= 0 {
		content = content[:i]
	}
	return content
}

type saveRow struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Race    string `db:"race"`
	Class   string `db:"class"`
	Level   int    `db:"level"`
	Payload string `db:"payload"`
	SavedAt int64  `db:"saved_at"`
}

func (row saveRow) summary() Summary {
	return Summary{
		Name:     row.Name,
		Race:     row.Race,
		Class:    row.Class,
		Level:    row.Level,
		Revision: row.ID,
		Saved:    time.UnixMilli(row.SavedAt).UTC(),
	}
}

func (r *SQLiteRepo) Save(ctx context.Context, s Snapshot) error {
	name := strings.TrimSpace(s.Traits.Name)
	if name == "" {
		return fmt.Errorf("save: hero has no name")
	}
	payload, err := Encode(s)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	row := saveRow{
		ID:      uuid.NewString(),
		Name:    name,
		Race:    s.Traits.Race,
		Class:   s.Traits.Class,
		Level:   s.Traits.Level,
		Payload: string(payload),
		SavedAt: r.now().UTC().UnixMilli(),
	}
	_, err = r.db.NamedExecContext(ctx, `
INSERT INTO saves (id, name, race, class, level, payload, saved_at)
VALUES (:id, :name, :race, :class, :level, :payload, :saved_at)`, row)
	if err != nil {
		return fmt.Errorf("insert save %s: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepo) Load(ctx context.Context, name string) (Snapshot, error) {
	return r.one(ctx, `SELECT * FROM saves WHERE name = ? ORDER BY saved_at DESC, rowid DESC LIMIT 1`, strings.TrimSpace(name))
}

func (r *SQLiteRepo) Latest(ctx context.Context) (Snapshot, error) {
	return r.one(ctx, `SELECT * FROM saves ORDER BY saved_at DESC, rowid DESC LIMIT 1`)
}

// LoadRevision loads one specific revision.
func (r *SQLiteRepo) LoadRevision(ctx context.Context, id string) (Snapshot, error) {
	return r.one(ctx, `SELECT * FROM saves WHERE id = ?`, id)
}

func (r *SQLiteRepo) one(ctx context.Context, query string, args ...any) (Snapshot, error) {
	var row saveRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, fmt.Errorf("query save: %w", err)
	}
	s, err := Decode([]byte(row.Payload))
	if err != nil {
		return Snapshot{}, fmt.Errorf("revision %s: %w", row.ID, err)
	}
	return s, nil
}

// List summarizes the newest revision of every hero, newest first.
func (r *SQLiteRepo) List(ctx context.Context) ([]Summary, error) {
	var rows []saveRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT s.* FROM saves s
WHERE s.rowid = (
    SELECT t.rowid FROM saves t WHERE t.name = s.name
    ORDER BY t.saved_at DESC, t.rowid DESC LIMIT 1
)
ORDER BY s.saved_at DESC, s.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	return summaries(rows), nil
}

// Revisions lists every stored revision of a hero, newest first.
func (r *SQLiteRepo) Revisions(ctx context.Context, name string) ([]Summary, error) {
	var rows []saveRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM saves WHERE name = ? ORDER BY saved_at DESC, rowid DESC`, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	return summaries(rows), nil
}

func summaries(rows []saveRow) []Summary {
	out := make([]Summary, len(rows))
	for i, row := range rows {
		out[i] = row.summary()
	}
	return out
}
