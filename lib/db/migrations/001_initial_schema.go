package migrations

import (
	"database/sql"
)

// GetMigrations returns all available migrations
func GetMigrations() []Migration {
	return []Migration{
		migration001InitialSchema(),
	}
}

// migration001InitialSchema creates the key value table the page set is stored in
func migration001InitialSchema() Migration {
	return Migration{
		Version:     1,
		Description: "Initial schema - create key_value table",
		Up: func(tx *sql.Tx, dialect Dialect) error {
			var query string
			switch dialect {
			case DialectPostgres:
				query = `CREATE TABLE IF NOT EXISTS key_value (
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL,
					updated_at TIMESTAMPTZ DEFAULT now()
				)`
			default:
				query = `CREATE TABLE IF NOT EXISTS key_value (
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				)`
			}

			_, err := tx.Exec(query)
			return err
		},
	}
}
