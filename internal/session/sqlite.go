package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const sqliteTable = "sessions"

const sqliteSchema = `CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	expires_at INTEGER NOT NULL DEFAULT 0
)`

// SQLiteStore keeps sessions in a local SQLite file so `take --resume` can
// continue a terminal run after a restart. expires_at is unix seconds, 0 for never.
type SQLiteStore struct {
	db      *sql.DB
	catalog *Catalog
	ttl     time.Duration
	now     func() time.Time
}

// OpenSQLiteStore opens (and creates if needed) the database at path.
func OpenSQLiteStore(ctx context.Context, path string, catalog *Catalog, ttl time.Duration) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sessions table: %w", err)
	}
	if catalog == nil {
		catalog = NewCatalog()
	}
	return &SQLiteStore{db: db, catalog: catalog, ttl: ttl, now: time.Now}, nil
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *SQLiteStore) builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*Session, error) {
	query, args := s.builder().
		Select("data", "expires_at").
		From(entsql.Table(sqliteTable)).
		Where(entsql.EQ("id", id)).
		Query()

	var (
		data    []byte
		expires int64
	)
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&data, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite get session: %w", err)
	}
	if expires != 0 && s.now().Unix() >= expires {
		return nil, ErrNotFound
	}
	return decode(s.catalog, data)
}

func (s *SQLiteStore) Put(ctx context.Context, sess *Session) error {
	data, err := encode(sess)
	if err != nil {
		return err
	}
	var expires int64
	if s.ttl > 0 {
		expires = s.now().Add(s.ttl).Unix()
	}
	query, args := s.builder().
		Insert(sqliteTable).
		Columns("id", "data", "expires_at").
		Values(sess.ID, data, expires).
		OnConflict(
			entsql.ConflictColumns("id"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqlite put session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	query, args := s.builder().
		Delete(sqliteTable).
		Where(entsql.EQ("id", id)).
		Query()
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("sqlite delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Sweep deletes expired rows and returns how many it removed.
func (s *SQLiteStore) Sweep(ctx context.Context) (int64, error) {
	query, args := s.builder().
		Delete(sqliteTable).
		Where(entsql.And(
			entsql.GT("expires_at", 0),
			entsql.LTE("expires_at", s.now().Unix()),
		)).
		Query()
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("sqlite sweep sessions: %w", err)
	}
	return res.RowsAffected()
}

// RunJanitor sweeps every interval until ctx is done.
func (s *SQLiteStore) RunJanitor(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep(ctx)
		}
	}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
