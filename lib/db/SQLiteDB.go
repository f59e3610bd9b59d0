package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/DBC-Works/swiki/lib/db/migrations"
	"github.com/DBC-Works/swiki/lib/exception"
	"github.com/DBC-Works/swiki/lib/models/page"
	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	path  string
	sqlDB *sql.DB
}

// ============== PAGE SET METHODS ==============

func (d SQLiteDB) GetPageSet() (*page.PageSet, error) {
	resultedSQL, args, err := sq.
		Select("value").
		From("key_value").
		Where(sq.Eq{"key": PageSetKey}).
		ToSql()

	if err != nil {
		return nil, err
	}

	var serialized string
	err = d.sqlDB.QueryRow(resultedSQL, args...).Scan(&serialized)
	if errors.Is(err, sql.ErrNoRows) {
		return emptyPageSet(), nil
	}
	if err != nil {
		return nil, exception.NewDatabaseError("error reading page set", err)
	}

	return decodePageSet(serialized)
}

func (d SQLiteDB) SavePageSet(pageSet page.PageSet) error {
	serialized, err := encodePageSet(pageSet)
	if err != nil {
		return err
	}

	resultedSQL, args, err := sq.
		Insert("key_value").
		Columns("key", "value").
		Values(PageSetKey, serialized).
		Suffix(`ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()

	if err != nil {
		return err
	}

	if _, err = d.sqlDB.Exec(resultedSQL, args...); err != nil {
		return exception.NewDatabaseError("error saving page set", err)
	}
	return nil
}

// ============== LIFECYCLE ==============

func (d SQLiteDB) Ping() error {
	return d.sqlDB.Ping()
}

func (d SQLiteDB) Close() error {
	return d.sqlDB.Close()
}

// NewSQLiteDB creates a new SQLiteDB and returns a pointer to it.
func NewSQLiteDB(path string, logger *zap.SugaredLogger) (*SQLiteDB, error) {
	if path == ":memory" {
		path = "file::memory:?cache=shared"
	}

	sqlDb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if strings.Contains(path, ":memory:") {
		sqlDb.SetMaxOpenConns(1)
	}

	if _, err = sqlDb.Exec("PRAGMA journal_mode = WAL"); err != nil {
		sqlDb.Close()
		return nil, err
	}
	if _, err = sqlDb.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		sqlDb.Close()
		return nil, err
	}

	migrationManager := migrations.NewMigrationManager(sqlDb, migrations.DialectSQLite).WithLogger(logger)
	if err := migrationManager.Run(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteDB{
		path:  path,
		sqlDB: sqlDb,
	}, nil
}

var _ DataStore = (*SQLiteDB)(nil)
