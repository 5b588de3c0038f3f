package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/D-Wilbur/vocabulary/internal/core"
	"github.com/D-Wilbur/vocabulary/internal/service/generator"
)

type runOptions struct {
	rounds   int
	save     bool
	saveOnly string
}

// runRounds executes the generation request rounds times against the shared
// session history, so each later round's prompt carries the earlier rounds'
// words as forbidden terms. Saving stays explicit: the whole batch with
// --save, or a subset picked by 1-based index with --save-only.
func runRounds(ctx context.Context, pipeline *generator.Service, req generator.Request, opts runOptions) error {
	if opts.rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1", core.ErrInvalidRequest)
	}
	if opts.saveOnly != "" && opts.rounds > 1 {
		return fmt.Errorf("%w: --save-only selects from one printed batch, use it with a single round", core.ErrInvalidRequest)
	}

	for round := 1; round <= opts.rounds; round++ {
		items, err := pipeline.Generate(ctx, req)
		if err != nil {
			return err
		}

		if opts.rounds > 1 {
			fmt.Printf("Round %d/%d: generated %d items\n\n", round, opts.rounds, len(items))
		} else {
			fmt.Printf("Generated %d items\n\n", len(items))
		}
		printItems(items)

		switch {
		case opts.saveOnly != "":
			picked, err := pickItems(items, opts.saveOnly)
			if err != nil {
				return err
			}
			if err := pipeline.Save(ctx, req, picked); err != nil {
				return err
			}
			fmt.Printf("Saved %d selected items to the vocab store.\n", len(picked))
		case opts.save:
			if err := pipeline.Save(ctx, req, items); err != nil {
				return err
			}
			fmt.Println("Saved the whole batch to the vocab store.")
		}
	}
	return nil
}

// pickItems resolves a comma-separated list of 1-based indexes against a
// printed batch. Duplicates collapse; anything out of range fails instead
// of silently saving the wrong items.
func pickItems(items []core.VocabItem, selection string) ([]core.VocabItem, error) {
	seen := make(map[int]struct{})
	var picked []core.VocabItem

	for _, part := range strings.Split(selection, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an item number", core.ErrInvalidRequest, part)
		}
		if idx < 1 || idx > len(items) {
			return nil, fmt.Errorf("%w: item %d outside 1-%d", core.ErrInvalidRequest, idx, len(items))
		}
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		picked = append(picked, items[idx-1])
	}

	if len(picked) == 0 {
		return nil, fmt.Errorf("%w: no items selected", core.ErrInvalidRequest)
	}
	return picked, nil
}
