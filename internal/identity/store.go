package identity

import (
	"database/sql"
	"fmt"
	"sync"

	"storefront-sync/internal/domain"

	_ "modernc.org/sqlite"
)

// TokenStore persists the guest token between sessions.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
}

// MemoryStore keeps the token for the lifetime of the process only. It is
// the degraded fallback when durable storage is unavailable.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Save(token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

// SQLiteStore is the durable token store, a single-file client profile
// database. Writes are idempotent and last-value-wins.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initializes) the profile database at
// path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS profile (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT value FROM profile WHERE key = 'guest_token'`).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *SQLiteStore) Save(token string) error {
	_, err := s.db.Exec(`
INSERT INTO profile (key, value) VALUES ('guest_token', ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`, token)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
