package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D-Wilbur/vocabulary/internal/core"
)

func TestHistoryRoundTrip(t *testing.T) {
	h := NewHistory()
	key := TopicKey("Doctor Visit")

	h.Absorb(key, []core.VocabItem{
		{Word: "checkup"},
		{Word: "  Prescription "},
		{Word: "X-Ray"},
	})

	want := []string{"checkup", "prescription", "x-ray"}
	assert.Equal(t, want, h.Forbidden(key))

	// Reading twice without an intervening absorb returns the same set.
	assert.Equal(t, want, h.Forbidden(key))
}

func TestHistoryNormalizationCollisions(t *testing.T) {
	h := NewHistory()
	key := TopicKey("cooking")

	h.Absorb(key, []core.VocabItem{{Word: "Simmer"}})
	h.Absorb(key, []core.VocabItem{{Word: " simmer "}, {Word: "SIMMER"}})

	assert.Equal(t, []string{"simmer"}, h.Forbidden(key))
}

func TestHistorySkipsEmptyWords(t *testing.T) {
	h := NewHistory()
	key := TopicKey("misc")

	h.Absorb(key, []core.VocabItem{{Word: "   "}, {Word: ""}, {Word: "real"}})

	assert.Equal(t, []string{"real"}, h.Forbidden(key))
}

func TestHistoryContextsAreIndependent(t *testing.T) {
	h := NewHistory()

	h.Absorb(TopicKey("cooking"), []core.VocabItem{{Word: "simmer"}})
	h.Absorb(DifficultyKey(3), []core.VocabItem{{Word: "wind down"}})

	assert.Equal(t, []string{"simmer"}, h.Forbidden(TopicKey("cooking")))
	assert.Equal(t, []string{"wind down"}, h.Forbidden(DifficultyKey(3)))
	assert.Empty(t, h.Forbidden(TopicKey("travel")))
}

func TestTopicKeyNormalizes(t *testing.T) {
	assert.Equal(t, TopicKey("doctor visit"), TopicKey("  Doctor Visit  "))
	assert.NotEqual(t, DifficultyKey(1), DifficultyKey(2))
}

func TestHistoryGrowsMonotonically(t *testing.T) {
	h := NewHistory()
	key := DifficultyKey(2)

	h.Absorb(key, []core.VocabItem{{Word: "dress up"}})
	h.Absorb(key, []core.VocabItem{{Word: "wind down"}})

	assert.Equal(t, []string{"dress up", "wind down"}, h.Forbidden(key))
}
