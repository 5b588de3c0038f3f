package generator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/D-Wilbur/vocabulary/internal/core"
)

// ParseItems parses a model response expected to be exactly a bare JSON
// array of item objects. Anything else — surrounding prose, markdown
// fences, trailing commentary, bare-string elements — fails with
// core.ErrMalformedOutput. No heuristic repair: the prompt's format
// contract is explicit, and silently stripping fences here would hide
// systematic prompt drift.
func ParseItems(raw string) ([]core.VocabItem, error) {
	dec := json.NewDecoder(strings.NewReader(raw))

	var items []core.VocabItem
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedOutput, err)
	}
	if items == nil { // JSON null decodes without error but is not an array
		return nil, fmt.Errorf("%w: expected a JSON array", core.ErrMalformedOutput)
	}

	// A valid array followed by commentary is still a contract violation.
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content after JSON array", core.ErrMalformedOutput)
	}

	for i := range items {
		items[i].Word = strings.TrimSpace(items[i].Word)
		if items[i].Word == "" {
			return nil, fmt.Errorf("%w: item %d has no word", core.ErrMalformedOutput, i)
		}
	}

	// Duplicates within a batch pass through; merge policy is downstream.
	return items, nil
}
