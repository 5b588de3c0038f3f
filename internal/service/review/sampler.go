package review

import (
	"context"
	"fmt"
	"strconv"

	"github.com/D-Wilbur/vocabulary/internal/core"
)

// Sampler serves practice sets out of the item store. It adds nothing
// beyond parameter validation on top of the repository reads.
type Sampler struct {
	repo core.VocabRepository
}

func NewSampler(repo core.VocabRepository) *Sampler {
	return &Sampler{repo: repo}
}

// ParseDifficulty turns a CLI filter value into an optional difficulty:
// "all" (or empty) means no filter, otherwise an integer in 1-5.
func ParseDifficulty(choice string) (*int, error) {
	if choice == "" || choice == "all" {
		return nil, nil
	}
	d, err := strconv.Atoi(choice)
	if err != nil || d < core.DifficultyMin || d > core.DifficultyMax {
		return nil, fmt.Errorf("%w: difficulty filter %q must be all or 1-5", core.ErrInvalidRequest, choice)
	}
	return &d, nil
}

// Random draws up to limit entries, optionally filtered by difficulty. An
// empty result means the store has nothing matching, not an error.
func (s *Sampler) Random(ctx context.Context, limit int, difficulty *int) ([]core.StoredEntry, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	return s.repo.SampleRandom(ctx, limit, difficulty)
}

// Recent lists the newest entries, most recently inserted first.
func (s *Sampler) Recent(ctx context.Context, limit int) ([]core.StoredEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", core.ErrInvalidRequest)
	}
	return s.repo.Recent(ctx, limit)
}

func validateLimit(limit int) error {
	if limit < core.CountMin || limit > core.CountMax {
		return fmt.Errorf("%w: limit %d outside [%d, %d]", core.ErrInvalidRequest, limit, core.CountMin, core.CountMax)
	}
	return nil
}
