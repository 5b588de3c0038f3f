package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D-Wilbur/vocabulary/internal/core"
)

type stubRepo struct {
	entries []core.StoredEntry
}

func (s *stubRepo) Insert(ctx context.Context, items []core.VocabItem, topic, tag string, difficulty *int) error {
	return nil
}

func (s *stubRepo) SampleRandom(ctx context.Context, limit int, difficulty *int) ([]core.StoredEntry, error) {
	return nil, nil
}

func (s *stubRepo) Recent(ctx context.Context, limit int) ([]core.StoredEntry, error) {
	return nil, nil
}

func (s *stubRepo) ExportAll(ctx context.Context) ([]core.StoredEntry, error) {
	return s.entries, nil
}

func TestWriteCSV(t *testing.T) {
	d := 2
	created := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)
	repo := &stubRepo{entries: []core.StoredEntry{
		{
			ID: 1, Word: "checkup", MeaningEN: "a medical examination", MeaningZH: "体检",
			Example: "I scheduled a checkup.", Topic: "doctor visit", Tag: "daily_vocab_2",
			Difficulty: &d, CreatedAt: created,
		},
		{ID: 2, Word: "copay", CreatedAt: created},
	}}

	var buf bytes.Buffer
	n, err := WriteCSV(context.Background(), repo, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"word", "meaning_en", "meaning_zh", "example", "topic", "tag", "difficulty", "created_at"}, records[0])
	assert.Equal(t, []string{"checkup", "a medical examination", "体检", "I scheduled a checkup.", "doctor visit", "daily_vocab_2", "2", "2026-08-24 10:30:00"}, records[1])
	assert.Equal(t, "copay", records[2][0])
	assert.Empty(t, records[2][6], "entries without difficulty export an empty cell")
}

func TestWriteCSVEmptyStore(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteCSV(context.Background(), &stubRepo{}, &buf)
	require.NoError(t, err)
	assert.Zero(t, n)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
