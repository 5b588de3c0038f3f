package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/D-Wilbur/vocabulary/internal/core"
)

// Request is a fully specified generation request. Forbidden is filled by
// the pipeline from the history tracker before the prompt is built.
type Request struct {
	Mode       core.Mode
	Topic      string
	Count      int
	Difficulty int
	Forbidden  []string
}

// Validate fails fast on out-of-contract parameters instead of clamping,
// so an ill-specified instruction is never sent to the model.
func (r Request) Validate() error {
	if r.Mode != core.ModeTopical && r.Mode != core.ModePhrasal {
		return fmt.Errorf("%w: unknown mode %q", core.ErrInvalidRequest, r.Mode)
	}
	if r.Count < core.CountMin || r.Count > core.CountMax {
		return fmt.Errorf("%w: count %d outside [%d, %d]", core.ErrInvalidRequest, r.Count, core.CountMin, core.CountMax)
	}
	if r.Difficulty < core.DifficultyMin || r.Difficulty > core.DifficultyMax {
		return fmt.Errorf("%w: difficulty %d outside [%d, %d]", core.ErrInvalidRequest, r.Difficulty, core.DifficultyMin, core.DifficultyMax)
	}
	if r.Mode == core.ModeTopical && strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("%w: topical mode requires a topic", core.ErrInvalidRequest)
	}
	return nil
}

// HistoryKey is the dedup context this request reads from and merges into:
// the normalized topic for topical mode, the difficulty level for phrasal.
func (r Request) HistoryKey() string {
	if r.Mode == core.ModePhrasal {
		return DifficultyKey(r.Difficulty)
	}
	return TopicKey(r.Topic)
}

// Temperature matches the declared randomness per mode.
func (r Request) Temperature() float64 {
	if r.Mode == core.ModePhrasal {
		return 0.7
	}
	return 0.8
}

// StorageTopic is the topic column value used when the batch is saved.
func (r Request) StorageTopic() string {
	if r.Mode == core.ModePhrasal {
		return "phrasal_verbs"
	}
	return r.Topic
}

// StorageTag is the tag column value used when the batch is saved.
func (r Request) StorageTag() string {
	if r.Mode == core.ModePhrasal {
		return fmt.Sprintf("phrasal_%d", r.Difficulty)
	}
	return fmt.Sprintf("daily_vocab_%d", r.Difficulty)
}

// BuildPrompt renders the full instruction. The model has no memory across
// calls, so the rarity rubric is spelled out every time; the random seed
// only nudges the model toward varied sampling and guarantees nothing.
func (r Request) BuildPrompt(forbiddenCap int) string {
	seed := rand.Intn(1_000_000) + 1

	var b strings.Builder

	if r.Mode == core.ModePhrasal {
		fmt.Fprintf(&b, `Generate %d useful English phrasal verbs used in daily life,
with rarity level %d on a 1-5 scale:

1 = very common and basic (used every day)
2 = common but slightly more advanced
3 = moderately uncommon but helpful for fluency
4 = uncommon but expressive, more nuanced
5 = rare, advanced but still practical phrasal verbs
`, r.Count, r.Difficulty)
	} else {
		fmt.Fprintf(&b, `You are an English tutor for a Chinese ESL student in the United States.

Generate %d daily-life English words or short phrases
for the topic "%s", with rarity level %d on a 1-5 scale:

1 = very common, basic, used every day
2 = common but slightly more specific
3 = moderately uncommon but useful
4 = uncommon but natural in real conversations
5 = rare/advanced but practical and expressive
`, r.Count, r.Topic, r.Difficulty)
	}

	if block := forbiddenBlock(r.Forbidden, forbiddenCap); block != "" {
		b.WriteString("\n")
		b.WriteString(block)
	}

	fmt.Fprintf(&b, `
Additional instructions:
- Every time this request is called, you MUST generate a NEW and DIFFERENT
  set of vocabulary, even if the topic and difficulty are the same.
- Use the random seed below to diversify your choice.
- Avoid only the most obvious textbook examples; focus on natural daily language.

Random seed for this generation: %d

Return ONLY valid JSON in this exact format (no explanation, no markdown):

[
  {
    "word": "checkup",
    "meaning_en": "a medical examination to see if you are healthy",
    "meaning_zh": "体检；检查身体",
    "example": "I scheduled a checkup with my doctor for next week."
  }
]
`, seed)

	return b.String()
}

// forbiddenBlock renders the do-not-reuse clause. Entries arrive already
// normalized from the tracker; they are deduplicated as exact strings,
// sorted for determinism, and truncated to cap to bound the prompt size.
func forbiddenBlock(words []string, limit int) string {
	if len(words) == 0 {
		return ""
	}

	set := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := set[w]; ok {
			continue
		}
		set[w] = struct{}{}
		unique = append(unique, w)
	}
	if len(unique) == 0 {
		return ""
	}

	sort.Strings(unique)
	if limit > 0 && len(unique) > limit {
		unique = unique[:limit]
	}

	return fmt.Sprintf(`Important:
- Do NOT include any of these previously generated words or phrases (avoid exact matches):
  %s
- Prefer new vocabulary rather than repeating the same items.
`, strings.Join(unique, ", "))
}
