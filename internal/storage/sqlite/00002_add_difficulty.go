package sqlite

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAddDifficulty, downAddDifficulty)
}

// upAddDifficulty adds the difficulty column. Databases created before goose
// tracking may already carry the column, and a second ALTER TABLE would fail
// with "duplicate column name", so it is added only when missing.
func upAddDifficulty(ctx context.Context, tx *sql.Tx) error {
	var n int
	row := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pragma_table_info('vocab') WHERE name = 'difficulty'`)
	if err := row.Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx, `ALTER TABLE vocab ADD COLUMN difficulty INTEGER`)
	return err
}

func downAddDifficulty(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `ALTER TABLE vocab DROP COLUMN difficulty`)
	return err
}
