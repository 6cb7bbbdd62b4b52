// Package sqlite implements the user store on an embedded SQLite database
// (pure Go driver, no cgo). The schema is managed by numbered migrations
// embedded in the binary.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/storage/sqlite/migrations"
	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.UserStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// sqliteTimeLayout is the format CURRENT_TIMESTAMP produces.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store is the SQLite-backed implementation of [ports.UserStore].
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open opens (creating if needed) the database at path and applies pending
// migrations. The special path ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dsn := path
	if path == ":memory:" {
		// One connection only: every new connection to :memory: is a fresh,
		// empty database.
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	} else {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, path: path, logger: logger}

	if err := s.migrate(ctx, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database location given to Open.
func (s *Store) Path() string {
	return s.path
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateUser inserts user. Returns [domain.ErrConflict] if the username is
// already registered.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	var (
		id        int64
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?) RETURNING id, created_at`,
		user.Username, user.PasswordHash,
	).Scan(&id, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("username %q already exists: %w", user.Username, domain.ErrConflict)
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	out := *user
	out.ID = id
	out.CreatedAt = parseTimestamp(createdAt)
	return &out, nil
}

// GetUserByUsername returns the user or [domain.ErrNotFound].
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password, created_at FROM users WHERE username = ?`, username)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return user, nil
}

// ListUsers returns all users ordered by ID.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, password, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*domain.User, error) {
	var (
		u         domain.User
		createdAt string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt); err != nil {
		return nil, err
	}
	u.CreatedAt = parseTimestamp(createdAt)
	return &u, nil
}

// parseTimestamp accepts both the raw CURRENT_TIMESTAMP text and the RFC 3339
// form database/sql produces when the driver returns a time.Time.
func parseTimestamp(v string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, sqliteTimeLayout} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	if sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	// Without extended result codes only the primary code is reported.
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
}

// migrate applies every *.up.sql file whose numeric prefix is above the
// recorded schema version, each in its own transaction.
func (s *Store) migrate(ctx context.Context, fsys fs.FS) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(ctx, version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		s.logger.InfoContext(ctx, "applied migration", slog.String("name", name))
	}

	return nil
}

func (s *Store) apply(ctx context.Context, version int, script string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, script); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}
