package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// SqlFiles holds the users, birthday_channels and pitching_in_responses schema.
//
//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate brings the birthday bot schema up to date. Already applied
// versions are skipped, so it is safe to call on every start.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate birthday schema: %w", err)
	}

	return nil
}
