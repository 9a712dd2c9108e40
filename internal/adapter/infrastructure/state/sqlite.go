package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang-netreconcile/internal/port"
	"golang-netreconcile/internal/types"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps every section of the state in its own row so a partial
// write can never mix two passes.
type SQLiteStore struct {
	db *sql.DB
}

var _ port.StateStore = (*SQLiteStore)(nil)

var errNoSection = errors.New("section not found")

// NewSQLiteStore opens or creates the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := path
	if path != ":memory:" {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS sections (
			name TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// sections maps row names to the fields they hold.
func sections(st *types.PersistedState) map[string]any {
	return map[string]any{
		"interfaces":        &st.Interfaces,
		"networks":          &st.Networks,
		"network_addresses": &st.NetworkAddresses,
		"default_route":     &st.DefaultRoute,
		"datapath_ids":      &st.DatapathIDs,
		"updated_at":        &st.UpdatedAt,
	}
}

// Load returns the stored state, empty on a fresh database.
func (s *SQLiteStore) Load(ctx context.Context) (*types.PersistedState, error) {
	st := &types.PersistedState{}
	for name, dst := range sections(st) {
		err := s.get(ctx, name, dst)
		if errors.Is(err, errNoSection) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return st.Normalize(), nil
}

func (s *SQLiteStore) get(ctx context.Context, name string, dst any) error {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM sections WHERE name = ?", name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return errNoSection
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(value, dst)
}

// Save replaces every section in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, st *types.PersistedState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for name, src := range sections(st) {
		value, err := json.Marshal(src)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sections (name, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at
		`, name, value, now)
		if err != nil {
			return fmt.Errorf("failed to store %s: %w", name, err)
		}
	}
	return tx.Commit()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
