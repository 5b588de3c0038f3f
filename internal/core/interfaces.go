package core

import "context"

// Provider is a text-generation endpoint. One prompt in, raw text out;
// parsing is the caller's job.
type Provider interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// VocabRepository is the durable item store.
type VocabRepository interface {
	Insert(ctx context.Context, items []VocabItem, topic, tag string, difficulty *int) error
	SampleRandom(ctx context.Context, limit int, difficulty *int) ([]StoredEntry, error)
	Recent(ctx context.Context, limit int) ([]StoredEntry, error)
	ExportAll(ctx context.Context) ([]StoredEntry, error)
}
