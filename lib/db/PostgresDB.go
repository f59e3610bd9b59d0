package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/DBC-Works/swiki/lib/db/migrations"
	"github.com/DBC-Works/swiki/lib/exception"
	"github.com/DBC-Works/swiki/lib/models/page"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresDB struct {
	options PostgresOptions
	sqlDB   *sql.DB
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (d PostgresDB) GetPageSet() (*page.PageSet, error) {
	var resultedSQL, args, err = psql.
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

func (d PostgresDB) SavePageSet(pageSet page.PageSet) error {
	serialized, err := encodePageSet(pageSet)
	if err != nil {
		return err
	}

	var resultedSQL, args, sqlErr = psql.
		Insert("key_value").
		Columns("key", "value").
		Values(PageSetKey, serialized).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()

	if sqlErr != nil {
		return sqlErr
	}

	if _, err = d.sqlDB.Exec(resultedSQL, args...); err != nil {
		return exception.NewDatabaseError("error saving page set", err)
	}
	return nil
}

func (d PostgresDB) Ping() error {
	return d.sqlDB.Ping()
}

func (d PostgresDB) Close() error {
	return d.sqlDB.Close()
}

type PostgresOptions struct {
	Username string
	Password string
	Port     int
	Host     string
	Database string
}

func (o PostgresOptions) url() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", o.Username, o.Password, o.Host, o.Port, o.Database)
}

// NewPostgresDB This function creates a new PostgresDB and returns a pointer to it.
func NewPostgresDB(options PostgresOptions, logger *zap.SugaredLogger) (*PostgresDB, error) {
	sqlDb, err := sql.Open("postgres", options.url())
	if err != nil {
		return nil, err
	}

	migrationManager := migrations.NewMigrationManager(sqlDb, migrations.DialectPostgres).WithLogger(logger)
	if err := migrationManager.Run(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresDB{
		options: options,
		sqlDB:   sqlDb,
	}, nil
}

var _ DataStore = (*PostgresDB)(nil)
