package migrations

import (
	"database/sql"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// Migration is one step of the schema. Up runs inside the transaction that records
// the step as applied.
type Migration struct {
	Version     int
	Description string
	Up          func(tx *sql.Tx, dialect Dialect) error
}

type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

func (d Dialect) builder() sq.StatementBuilderType {
	if d == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// MigrationManager brings a database schema up to the newest Migration.
type MigrationManager struct {
	db         *sql.DB
	dialect    Dialect
	migrations []Migration
	logger     *zap.SugaredLogger
}

func NewMigrationManager(db *sql.DB, dialect Dialect) *MigrationManager {
	migrations := GetMigrations()
	slices.SortFunc(migrations, func(a, b Migration) int {
		return a.Version - b.Version
	})
	return &MigrationManager{
		db:         db,
		dialect:    dialect,
		migrations: migrations,
		logger:     zap.NewNop().Sugar(),
	}
}

func (m *MigrationManager) WithLogger(logger *zap.SugaredLogger) *MigrationManager {
	m.logger = logger
	return m
}

// Run applies every migration newer than the recorded schema version.
func (m *MigrationManager) Run() error {
	if _, err := m.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		description TEXT,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	for _, migration := range m.migrations {
		if migration.Version <= currentVersion {
			continue
		}
		m.logger.Infof("Running migration %d: %s", migration.Version, migration.Description)
		if err := m.apply(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}
	}
	return nil
}

func (m *MigrationManager) apply(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := migration.Up(tx, m.dialect); err != nil {
		return err
	}

	_, err = m.dialect.builder().
		Insert("schema_migrations").
		Columns("version", "description", "applied_at").
		Values(migration.Version, migration.Description, time.Now().UTC()).
		RunWith(tx).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to record version: %w", err)
	}
	return tx.Commit()
}

func (m *MigrationManager) GetCurrentVersion() (int, error) {
	var version int
	err := m.dialect.builder().
		Select("COALESCE(MAX(version), 0)").
		From("schema_migrations").
		RunWith(m.db).
		QueryRow().
		Scan(&version)
	return version, err
}
