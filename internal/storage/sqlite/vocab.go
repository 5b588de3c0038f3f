package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/D-Wilbur/vocabulary/internal/core"
	"github.com/D-Wilbur/vocabulary/pkg/log"
)

const entryColumns = `id, word, meaning_en, meaning_zh, example, topic, tag, difficulty, created_at`

// VocabRepo is an append-only log of generation events. The same word may
// appear any number of times across (or within) topics; dedup is the
// generation pipeline's concern, not the store's.
type VocabRepo struct {
	db *sql.DB
}

func NewVocabRepo(db *sql.DB) *VocabRepo {
	return &VocabRepo{db: db}
}

// Insert appends every item as a new entry in one transaction, so a failed
// batch leaves the store untouched. id and created_at are assigned here.
func (r *VocabRepo) Insert(ctx context.Context, items []core.VocabItem, topic, tag string, difficulty *int) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO vocab (word, meaning_en, meaning_zh, example, topic, tag, difficulty)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	for _, it := range items {
		_, err := tx.ExecContext(ctx, query,
			it.Word,
			nullString(it.MeaningEN),
			nullString(it.MeaningZH),
			nullString(it.Example),
			nullString(topic),
			nullString(tag),
			nullInt(difficulty),
		)
		if err != nil {
			return fmt.Errorf("failed to insert vocab item %q: %w", it.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit insert: %w", err)
	}

	log.FromCtx(ctx).Debug().Int("count", len(items)).Str("topic", topic).Msg("saved vocab items")
	return nil
}

// SampleRandom returns up to limit entries chosen uniformly at random,
// optionally filtered by difficulty. Fewer matches than limit is not an
// error; neither is an empty result.
func (r *VocabRepo) SampleRandom(ctx context.Context, limit int, difficulty *int) ([]core.StoredEntry, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if difficulty == nil {
		query := `SELECT ` + entryColumns + ` FROM vocab ORDER BY RANDOM() LIMIT ?`
		rows, err = r.db.QueryContext(ctx, query, limit)
	} else {
		query := `SELECT ` + entryColumns + ` FROM vocab WHERE difficulty = ? ORDER BY RANDOM() LIMIT ?`
		rows, err = r.db.QueryContext(ctx, query, *difficulty, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query random entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Recent returns the last limit entries, most recently inserted first.
func (r *VocabRepo) Recent(ctx context.Context, limit int) ([]core.StoredEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM vocab ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ExportAll returns every entry in insertion order.
func (r *VocabRepo) ExportAll(ctx context.Context) ([]core.StoredEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM vocab ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]core.StoredEntry, error) {
	var entries []core.StoredEntry
	for rows.Next() {
		var (
			e          core.StoredEntry
			meaningEN  sql.NullString
			meaningZH  sql.NullString
			example    sql.NullString
			topic      sql.NullString
			tag        sql.NullString
			difficulty sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.Word, &meaningEN, &meaningZH, &example, &topic, &tag, &difficulty, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		e.MeaningEN = meaningEN.String
		e.MeaningZH = meaningZH.String
		e.Example = example.String
		e.Topic = topic.String
		e.Tag = tag.String
		if difficulty.Valid {
			d := int(difficulty.Int64)
			e.Difficulty = &d
		}

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
