package generator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D-Wilbur/vocabulary/internal/config"
	"github.com/D-Wilbur/vocabulary/internal/core"
	"github.com/D-Wilbur/vocabulary/internal/storage/sqlite"
)

type mockProvider struct {
	calls        int
	lastPrompt   string
	completeFunc func(prompt string) (string, error)
}

func (m *mockProvider) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	return m.completeFunc(prompt)
}

type mockRepo struct {
	inserted []core.VocabItem
	topic    string
	tag      string
}

func (m *mockRepo) Insert(ctx context.Context, items []core.VocabItem, topic, tag string, difficulty *int) error {
	m.inserted = append(m.inserted, items...)
	m.topic = topic
	m.tag = tag
	return nil
}

func (m *mockRepo) SampleRandom(ctx context.Context, limit int, difficulty *int) ([]core.StoredEntry, error) {
	return nil, nil
}

func (m *mockRepo) Recent(ctx context.Context, limit int) ([]core.StoredEntry, error) {
	return nil, nil
}

func (m *mockRepo) ExportAll(ctx context.Context) ([]core.StoredEntry, error) {
	return nil, nil
}

func testAppConfig() *config.AppConfig {
	return &config.AppConfig{ForbiddenCap: 200}
}

func TestGenerateMergesHistoryAfterSuccess(t *testing.T) {
	provider := &mockProvider{completeFunc: func(string) (string, error) {
		return `[{"word":"checkup"},{"word":"copay"}]`, nil
	}}
	history := NewHistory()
	svc := NewService(testAppConfig(), provider, history, &mockRepo{})

	req := Request{Mode: core.ModeTopical, Topic: "doctor visit", Count: 5, Difficulty: 2}
	items, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, []string{"checkup", "copay"}, history.Forbidden(TopicKey("doctor visit")))
}

func TestGenerateFeedsForbiddenIntoPrompt(t *testing.T) {
	provider := &mockProvider{completeFunc: func(string) (string, error) {
		return `[{"word":"stethoscope"}]`, nil
	}}
	history := NewHistory()
	history.Absorb(TopicKey("doctor visit"), []core.VocabItem{{Word: "checkup"}, {Word: "copay"}})

	svc := NewService(testAppConfig(), provider, history, &mockRepo{})
	req := Request{Mode: core.ModeTopical, Topic: "Doctor Visit", Count: 5, Difficulty: 2}

	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, provider.lastPrompt, "checkup, copay")
}

func TestGenerateInvalidRequestSkipsProvider(t *testing.T) {
	provider := &mockProvider{completeFunc: func(string) (string, error) {
		t.Fatal("provider must not be called for an invalid request")
		return "", nil
	}}
	svc := NewService(testAppConfig(), provider, NewHistory(), &mockRepo{})

	_, err := svc.Generate(context.Background(), Request{Mode: core.ModeTopical, Topic: "x", Count: 3, Difficulty: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidRequest))
	assert.Zero(t, provider.calls)
}

func TestGenerateNoPartialMergeOnMalformedOutput(t *testing.T) {
	provider := &mockProvider{completeFunc: func(string) (string, error) {
		return "not json", nil
	}}
	history := NewHistory()
	repo := &mockRepo{}
	svc := NewService(testAppConfig(), provider, history, repo)

	req := Request{Mode: core.ModeTopical, Topic: "doctor visit", Count: 5, Difficulty: 2}
	_, err := svc.Generate(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMalformedOutput))

	assert.Empty(t, history.Forbidden(TopicKey("doctor visit")), "history must stay unchanged")
	assert.Empty(t, repo.inserted, "store must stay unchanged")
}

func TestGenerateNoMergeOnTransportFailure(t *testing.T) {
	provider := &mockProvider{completeFunc: func(string) (string, error) {
		return "", fmt.Errorf("%w: connection refused", core.ErrGenerationUnavailable)
	}}
	history := NewHistory()
	svc := NewService(testAppConfig(), provider, history, &mockRepo{})

	req := Request{Mode: core.ModePhrasal, Count: 10, Difficulty: 3}
	_, err := svc.Generate(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrGenerationUnavailable))
	assert.Empty(t, history.Forbidden(DifficultyKey(3)))
}

func TestGenerateRetriesTransientFailures(t *testing.T) {
	provider := &mockProvider{}
	provider.completeFunc = func(string) (string, error) {
		if provider.calls < 3 {
			return "", fmt.Errorf("%w: http 503", core.ErrGenerationUnavailable)
		}
		return `[{"word":"wind down"}]`, nil
	}

	appCfg := testAppConfig()
	appCfg.GenerationRetries = 2
	svc := NewService(appCfg, provider, NewHistory(), &mockRepo{})

	items, err := svc.Generate(context.Background(), Request{Mode: core.ModePhrasal, Count: 5, Difficulty: 3})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, provider.calls)
}

func TestSaveUsesRequestTopicAndTag(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(testAppConfig(), &mockProvider{}, NewHistory(), repo)

	req := Request{Mode: core.ModePhrasal, Count: 5, Difficulty: 4}
	items := []core.VocabItem{{Word: "wind down"}}
	require.NoError(t, svc.Save(context.Background(), req, items))

	assert.Equal(t, "phrasal_verbs", repo.topic)
	assert.Equal(t, "phrasal_4", repo.tag)
	assert.Len(t, repo.inserted, 1)
}

// End-to-end over a real sqlite store: generate, save, read back.
func TestGenerateAndSaveEndToEnd(t *testing.T) {
	ctx := context.Background()

	db, err := sqlite.NewDB(ctx, filepath.Join(t.TempDir(), "vocab.db"))
	require.NoError(t, err)
	defer db.Close()
	repo := sqlite.NewVocabRepo(db)

	provider := &mockProvider{completeFunc: func(string) (string, error) {
		return `[
			{"word":"waiting room","meaning_en":"the area where patients wait","meaning_zh":"候诊室","example":"The waiting room was crowded."},
			{"word":"prescription","meaning_en":"a doctor's order for medicine","meaning_zh":"处方","example":"The doctor wrote me a prescription."},
			{"word":"checkup","meaning_en":"a medical examination","meaning_zh":"体检","example":"I scheduled a checkup for next week."}
		]`, nil
	}}

	svc := NewService(testAppConfig(), provider, NewHistory(), repo)
	req := Request{Mode: core.ModeTopical, Topic: "doctor visit", Count: 5, Difficulty: 2}

	items, err := svc.Generate(ctx, req)
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.NoError(t, svc.Save(ctx, req, items))

	recent, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	// Items are inserted in batch order, so the array's last item is newest.
	assert.Equal(t, "checkup", recent[0].Word)
	assert.Equal(t, "doctor visit", recent[0].Topic)
	assert.Equal(t, "daily_vocab_2", recent[0].Tag)
	require.NotNil(t, recent[0].Difficulty)
	assert.Equal(t, 2, *recent[0].Difficulty)
	assert.False(t, recent[0].CreatedAt.IsZero())
}
