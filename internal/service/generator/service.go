package generator

import (
	"context"

	"github.com/D-Wilbur/vocabulary/internal/config"
	"github.com/D-Wilbur/vocabulary/internal/core"
	"github.com/D-Wilbur/vocabulary/pkg/log"
	"github.com/D-Wilbur/vocabulary/pkg/retry"
)

// Service runs the generation pipeline: the tracker supplies forbidden
// terms, the request builder composes the instruction, the provider
// executes it, and the parser produces structured items. History is merged
// only after the whole batch validates, so any failure leaves both the
// tracker and the store untouched.
type Service struct {
	provider     core.Provider
	history      *History
	repo         core.VocabRepository
	forbiddenCap int
	retrier      *retry.Retrier
}

func NewService(appCfg *config.AppConfig, provider core.Provider, history *History, repo core.VocabRepository) *Service {
	s := &Service{
		provider:     provider,
		history:      history,
		repo:         repo,
		forbiddenCap: appCfg.ForbiddenCap,
	}
	if appCfg.GenerationRetries > 0 {
		cfg := retry.NewDefaultConfig()
		cfg.MaxRetries = appCfg.GenerationRetries
		s.retrier = retry.NewRetrier(cfg)
	}
	return s
}

// Generate produces one validated batch. Items are not persisted here;
// saving is a separate, explicit step.
func (s *Service) Generate(ctx context.Context, req Request) ([]core.VocabItem, error) {
	logger := log.FromCtx(ctx)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := req.HistoryKey()
	req.Forbidden = s.history.Forbidden(key)

	prompt := req.BuildPrompt(s.forbiddenCap)
	if n, err := promptTokens(prompt); err == nil {
		logger.Debug().Int("tokens", n).Int("forbidden", len(req.Forbidden)).Msg("built generation prompt")
	}

	raw, err := s.complete(ctx, prompt, req.Temperature())
	if err != nil {
		return nil, err
	}

	items, err := ParseItems(raw)
	if err != nil {
		return nil, err
	}

	// Full batch validated; only now does it enter the session history.
	s.history.Absorb(key, items)

	logger.Info().Int("count", len(items)).Str("context", key).Msg("generated vocab items")
	return items, nil
}

// complete calls the provider, optionally under a bounded retry for
// transient transport failures. The retry happens strictly before parsing,
// so a retried call can never cause a partial merge.
func (s *Service) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	if s.retrier == nil {
		return s.provider.Complete(ctx, prompt, temperature)
	}

	var raw string
	err := s.retrier.Do(ctx, func() error {
		var err error
		raw, err = s.provider.Complete(ctx, prompt, temperature)
		return err
	})
	return raw, err
}

// Save persists a generated batch under the request's topic and tag. This
// is the explicit confirmation step; generation alone never writes.
func (s *Service) Save(ctx context.Context, req Request, items []core.VocabItem) error {
	difficulty := req.Difficulty
	return s.repo.Insert(ctx, items, req.StorageTopic(), req.StorageTag(), &difficulty)
}
