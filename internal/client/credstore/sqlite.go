package credstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/client/migrations"
	"github.com/dmitrijs2005/cryptotracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cryptotracker/internal/dbx"
	"github.com/dmitrijs2005/cryptotracker/internal/filex"
	"github.com/dmitrijs2005/cryptotracker/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// MemoryPath selects a MemoryStore in Open.
const MemoryPath = ":memory:"

const opTimeout = 5 * time.Second

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps the credential in the metadata table of a SQLite file.
// Several processes may share the same file; each Get reads the row afresh.
type SQLiteStore struct {
	db     *sql.DB
	repo   metadata.Repository
	logger logging.Logger
}

// RunMigrations applies the embedded client migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed) the database at path and applies
// migrations. Transactions take the write lock when they begin, so a Set
// racing another process waits out busy_timeout instead of failing on lock
// upgrade.
func OpenSQLite(ctx context.Context, path string, logger logging.Logger) (*SQLiteStore, error) {
	abs, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", "file:"+abs+"?_pragma=busy_timeout(5000)&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", abs, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", abs, err)
	}

	return &SQLiteStore{
		db:     db,
		repo:   metadata.NewSQLiteRepository(db),
		logger: logger.With("module", "credstore"),
	}, nil
}

// Open returns the store for path. ":memory:" yields a MemoryStore. When the
// database cannot be opened the failure is logged and Disabled is returned.
func Open(ctx context.Context, path string, logger logging.Logger) Store {
	if path == MemoryPath {
		return NewMemoryStore()
	}

	s, err := OpenSQLite(ctx, path, logger)
	if err != nil {
		logger.Warn(ctx, "credential store unavailable, sessions will not persist", "path", path, "error", err)
		return Disabled{}
	}
	return s
}

func (s *SQLiteStore) Get() (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	value, found, err := s.repo.Get(ctx, Key)
	if err != nil {
		s.logger.Warn(ctx, "read credential", "error", err)
		return "", false
	}
	if !found || value == "" {
		return "", false
	}
	return value, true
}

// Set writes credential unless the file already holds it. Read and write
// happen in one transaction so concurrent processes see either value whole.
// A write that still fails is logged and dropped; the caller's in-memory
// session is unaffected and the next Sync of another process will not see it.
func (s *SQLiteStore) Set(credential string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		current, found, err := repo.Get(ctx, Key)
		if err != nil {
			return err
		}
		if found && current == credential {
			return nil
		}
		return repo.Set(ctx, Key, credential)
	})
	if err != nil {
		s.logger.Warn(ctx, "write credential", "error", err)
	}
}

func (s *SQLiteStore) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, Key); err != nil {
		s.logger.Warn(ctx, "clear credential", "error", err)
	}
}

// Close releases the database handle. The store behaves as empty afterwards.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
