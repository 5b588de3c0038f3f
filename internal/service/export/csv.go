package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/D-Wilbur/vocabulary/internal/core"
	"github.com/D-Wilbur/vocabulary/pkg/log"
)

var csvHeader = []string{
	"word", "meaning_en", "meaning_zh", "example", "topic", "tag", "difficulty", "created_at",
}

// WriteCSV streams every stored entry to w in insertion order, one row per
// entry with the fixed header row.
func WriteCSV(ctx context.Context, repo core.VocabRepository, w io.Writer) (int, error) {
	entries, err := repo.ExportAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load entries for export: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, e := range entries {
		difficulty := ""
		if e.Difficulty != nil {
			difficulty = strconv.Itoa(*e.Difficulty)
		}
		row := []string{
			e.Word,
			e.MeaningEN,
			e.MeaningZH,
			e.Example,
			e.Topic,
			e.Tag,
			difficulty,
			e.CreatedAt.Format(time.DateTime),
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush csv: %w", err)
	}

	log.FromCtx(ctx).Debug().Int("rows", len(entries)).Msg("exported vocab to csv")
	return len(entries), nil
}
