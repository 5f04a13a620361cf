package library

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Database is a SQLite-backed Store. All collections live in a single
// key-value table so saving one collection replaces exactly one row.
type Database struct {
	db *sql.DB

	loadStmt *sql.Stmt
	saveStmt *sql.Stmt
}

// NewDatabase opens (or creates) the SQLite database at dbPath, applies schema
// migrations, and prepares the load/save statements.
func NewDatabase(dbPath string) (*Database, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	d := &Database{db: db}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close releases prepared statements and closes the DB.
func (d *Database) Close() error {
	if d.loadStmt != nil {
		d.loadStmt.Close()
	}
	if d.saveStmt != nil {
		d.saveStmt.Close()
	}
	return d.db.Close()
}

// ---------------------------------------------------------------------------
// Schema migration
// ---------------------------------------------------------------------------

const schemaVersion = 1

func applyMigrations(db *sql.DB) error {
	// WAL improves write concurrency.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
            key TEXT PRIMARY KEY,
            value BLOB NOT NULL
        );`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Prepared statements
// ---------------------------------------------------------------------------

func (d *Database) prepareStatements() error {
	var err error
	if d.loadStmt, err = d.db.Prepare(`SELECT value FROM kv WHERE key=?`); err != nil {
		return err
	}
	if d.saveStmt, err = d.db.Prepare(`INSERT INTO kv(key,value) VALUES(?,?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value`); err != nil {
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// Store implementation
// ---------------------------------------------------------------------------

// Load fetches the blob stored under key; ok is false when the key is absent.
func (d *Database) Load(key string) ([]byte, bool, error) {
	var raw []byte
	err := d.loadStmt.QueryRow(key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return raw, true, nil
}

// Save upserts the blob under key.
func (d *Database) Save(key string, raw []byte) error {
	if _, err := d.saveStmt.Exec(key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
