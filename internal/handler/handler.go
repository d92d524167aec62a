// Package handler exposes the gateway's HTTP surface: health, two
// recommendation endpoints, and chat. Handlers hold their dependencies
// explicitly so tests can swap in stub clients.
package handler

import (
	"github.com/rs/zerolog"

	"library-ai-gateway/internal/agent"
	"library-ai-gateway/internal/agent/deps"
	"library-ai-gateway/internal/agent/prompt"
	"library-ai-gateway/internal/config"
)

// Handler carries the shared dependencies of all endpoints.
type Handler struct {
	cfg     *config.Config
	llm     deps.LLMClient
	models  deps.ModelLister
	rec     *agent.Recommender
	builder *prompt.Builder
	log     zerolog.Logger
}

// New wires a Handler. llm and models are usually the same OllamaClient;
// they are separate parameters so tests can stub one without the other.
func New(cfg *config.Config, llm deps.LLMClient, models deps.ModelLister, rec *agent.Recommender, log zerolog.Logger) *Handler {
	return &Handler{
		cfg:     cfg,
		llm:     llm,
		models:  models,
		rec:     rec,
		builder: prompt.NewBuilder(),
		log:     log,
	}
}
