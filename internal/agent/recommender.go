package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"

	"library-ai-gateway/internal/agent/deps"
	"library-ai-gateway/internal/agent/response"
	"library-ai-gateway/internal/model"
)

// Result provenance tags. Callers must inspect Source, not the HTTP status,
// to learn whether the AI path succeeded.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

const (
	// fallbackCount is how many candidates the deterministic path returns.
	fallbackCount = 3
	// fallbackScore is the fixed score attached to fallback items.
	fallbackScore = 0.7
)

// Result is a recommendation list plus where it came from.
type Result struct {
	Items  []model.RecommendationItem
	Source string
}

// Recommender runs the invoke-sanitize-parse pipeline with bounded retries
// and substitutes a deterministic result when every attempt fails. It holds
// no per-request state and is safe for concurrent use.
type Recommender struct {
	llm        deps.LLMClient
	attempts   uint
	retryDelay time.Duration
	log        zerolog.Logger
}

// NewRecommender creates a Recommender. attempts is the total number of
// model calls made before falling back; delay is the fixed pause between
// them.
func NewRecommender(llm deps.LLMClient, attempts uint, delay time.Duration, log zerolog.Logger) *Recommender {
	if attempts == 0 {
		attempts = 1
	}
	return &Recommender{llm: llm, attempts: attempts, retryDelay: delay, log: log}
}

// Recommend sends prompt to the model and parses the reply into a
// recommendation list. Transport and parse failures are retried uniformly
// with a fixed delay; once attempts are exhausted the first candidates are
// returned instead, tagged SourceFallback. Recommend never fails.
func (r *Recommender) Recommend(ctx context.Context, prompt string, temperature float64, candidates []model.Book) *Result {
	var items []model.RecommendationItem

	err := retry.Do(
		func() error {
			raw, err := r.llm.ChatStream(ctx, []model.ChatMessage{{Role: model.RoleUser, Content: prompt}}, temperature)
			if err != nil {
				return err
			}
			parsed, err := response.Parse(raw)
			if err != nil {
				return err
			}
			items = parsed
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			r.log.Warn().
				Uint("attempt", n+1).
				Uint("max", r.attempts).
				Err(err).
				Msg("推薦生成失敗，重試中")
		}),
	)
	if err != nil {
		r.log.Warn().Err(err).Msg("AI 生成失敗，使用 Fallback 推薦機制")
		return &Result{Items: Fallback(candidates, fallbackCount), Source: SourceFallback}
	}

	r.log.Info().Int("count", len(items)).Msg("推薦生成成功")
	return &Result{Items: items, Source: SourceAI}
}

// Fallback builds a deterministic recommendation list from the first count
// candidates. It always succeeds for well-formed input and never returns
// nil, so the JSON response encodes an array even when empty.
func Fallback(candidates []model.Book, count int) []model.RecommendationItem {
	if count > len(candidates) {
		count = len(candidates)
	}
	items := make([]model.RecommendationItem, 0, count)
	for _, book := range candidates[:count] {
		items = append(items, model.RecommendationItem{
			BookID: book.ID,
			Reason: fmt.Sprintf("推薦閱讀《%s》by %s", book.Title, book.Author),
			Score:  fallbackScore,
		})
	}
	return items
}
