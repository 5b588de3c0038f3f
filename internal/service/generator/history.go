package generator

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/D-Wilbur/vocabulary/internal/core"
)

// History remembers which surface forms were already produced for a dedup
// context during this process lifetime. It only prevents intra-session
// repeats; cross-session dedup is the store's job. Instances are owned by
// the session and passed into the pipeline explicitly, never global.
type History struct {
	mu   sync.Mutex
	seen map[string]map[string]struct{}
}

func NewHistory() *History {
	return &History{seen: make(map[string]map[string]struct{})}
}

// TopicKey normalizes a free-text topic into a dedup context key.
func TopicKey(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// DifficultyKey is the dedup context for phrasal-verb mode, which tracks
// history per difficulty level rather than per topic.
func DifficultyKey(difficulty int) string {
	return "difficulty:" + strconv.Itoa(difficulty)
}

// Forbidden returns a sorted snapshot of the context's seen words. Safe to
// hand to the request builder; later Absorb calls do not mutate it.
func (h *History) Forbidden(key string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.seen[key]
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Absorb adds each item's word to the context set, trimmed and lower-cased
// so case and whitespace variants collide. Empty words are skipped. Sets
// only ever grow; there is no removal.
func (h *History) Absorb(key string, items []core.VocabItem) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.seen[key]
	if set == nil {
		set = make(map[string]struct{})
		h.seen[key] = set
	}
	for _, it := range items {
		w := strings.ToLower(strings.TrimSpace(it.Word))
		if w != "" {
			set[w] = struct{}{}
		}
	}
}
