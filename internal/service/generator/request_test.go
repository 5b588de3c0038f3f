package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D-Wilbur/vocabulary/internal/core"
)

func validRequest() Request {
	return Request{
		Mode:       core.ModeTopical,
		Topic:      "doctor visit",
		Count:      10,
		Difficulty: 2,
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		ok     bool
	}{
		{"valid topical", func(r *Request) {}, true},
		{"valid phrasal without topic", func(r *Request) { r.Mode = core.ModePhrasal; r.Topic = "" }, true},
		{"count below minimum", func(r *Request) { r.Count = 4 }, false},
		{"count above maximum", func(r *Request) { r.Count = 31 }, false},
		{"zero count", func(r *Request) { r.Count = 0 }, false},
		{"difficulty too low", func(r *Request) { r.Difficulty = 0 }, false},
		{"difficulty too high", func(r *Request) { r.Difficulty = 6 }, false},
		{"topical without topic", func(r *Request) { r.Topic = "   " }, false},
		{"unknown mode", func(r *Request) { r.Mode = "quiz" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, core.ErrInvalidRequest))
			}
		})
	}
}

func TestBuildPromptContainsContract(t *testing.T) {
	req := validRequest()
	prompt := req.BuildPrompt(200)

	assert.Contains(t, prompt, `for the topic "doctor visit"`)
	assert.Contains(t, prompt, "Generate 10 daily-life English words")
	assert.Contains(t, prompt, "rarity level 2")
	// The full rubric is spelled out on every call.
	for _, line := range []string{
		"1 = very common, basic, used every day",
		"5 = rare/advanced but practical and expressive",
	} {
		assert.Contains(t, prompt, line)
	}
	assert.Contains(t, prompt, "Random seed for this generation:")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, `"meaning_zh"`)
	assert.NotContains(t, prompt, "Do NOT include", "no forbidden block without forbidden words")
}

func TestBuildPromptPhrasalRubric(t *testing.T) {
	req := Request{Mode: core.ModePhrasal, Count: 8, Difficulty: 4}
	prompt := req.BuildPrompt(200)

	assert.Contains(t, prompt, "Generate 8 useful English phrasal verbs")
	assert.Contains(t, prompt, "5 = rare, advanced but still practical phrasal verbs")
	assert.NotContains(t, prompt, "Chinese ESL student")
}

func TestBuildPromptForbiddenBlock(t *testing.T) {
	req := validRequest()
	req.Forbidden = []string{"waiting room", "checkup", "checkup", "prescription"}
	prompt := req.BuildPrompt(200)

	assert.Contains(t, prompt, "Do NOT include any of these previously generated words")
	// Deduplicated and sorted deterministically.
	assert.Contains(t, prompt, "checkup, prescription, waiting room")
}

func TestForbiddenBlockTruncates(t *testing.T) {
	words := []string{"delta", "alpha", "charlie", "bravo"}
	block := forbiddenBlock(words, 2)

	assert.Contains(t, block, "alpha, bravo")
	assert.NotContains(t, block, "charlie")
	assert.NotContains(t, block, "delta")
}

func TestForbiddenBlockEmpty(t *testing.T) {
	assert.Empty(t, forbiddenBlock(nil, 200))
	assert.Empty(t, forbiddenBlock([]string{"", ""}, 200))
}

func TestBuildPromptSeedVaries(t *testing.T) {
	req := validRequest()

	seeds := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		prompt := req.BuildPrompt(200)
		idx := strings.Index(prompt, "Random seed for this generation: ")
		require.GreaterOrEqual(t, idx, 0)
		line := prompt[idx:]
		line = line[:strings.Index(line, "\n")]
		seeds[line] = struct{}{}
	}
	assert.Greater(t, len(seeds), 1, "seed should vary across calls")
}

func TestStorageTagAndTopic(t *testing.T) {
	topical := validRequest()
	assert.Equal(t, "daily_vocab_2", topical.StorageTag())
	assert.Equal(t, "doctor visit", topical.StorageTopic())

	phrasal := Request{Mode: core.ModePhrasal, Count: 10, Difficulty: 3}
	assert.Equal(t, "phrasal_3", phrasal.StorageTag())
	assert.Equal(t, "phrasal_verbs", phrasal.StorageTopic())
}

func TestTemperaturePerMode(t *testing.T) {
	assert.Equal(t, 0.8, validRequest().Temperature())
	assert.Equal(t, 0.7, Request{Mode: core.ModePhrasal}.Temperature())
}
