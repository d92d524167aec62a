package agent

import (
	"context"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"

	"library-ai-gateway/internal/agent/deps"
	"library-ai-gateway/internal/model"
)

// OllamaConfig holds connection settings for the inference endpoint. The
// endpoint speaks the OpenAI-compatible API that Ollama exposes under /v1,
// so the same client works against local Ollama, Ollama Cloud, or any
// compatible server.
type OllamaConfig struct {
	BaseURL string
	APIKey  string // optional bearer token for hosted endpoints
	Model   string
	Sink    deps.StreamSink // optional, receives streamed fragments
	Logger  zerolog.Logger
}

// OllamaClient implements deps.LLMClient and deps.ModelLister.
type OllamaClient struct {
	client openai.Client
	model  string
	sink   deps.StreamSink
	log    zerolog.Logger
}

// NewOllamaClient creates a client for cfg.BaseURL.
func NewOllamaClient(cfg OllamaConfig) *OllamaClient {
	opts := []option.RequestOption{
		option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/") + "/v1"),
		// Retrying is the Recommender's job; the SDK must not add its own.
		option.WithMaxRetries(0),
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
		cfg.Logger.Info().Str("url", cfg.BaseURL).Msg("使用 API Key 連接雲端 Ollama")
	} else {
		cfg.Logger.Info().Str("url", cfg.BaseURL).Msg("連接本地 Ollama")
	}

	return &OllamaClient{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		sink:   cfg.Sink,
		log:    cfg.Logger,
	}
}

// Chat performs a one-shot completion and returns the full reply text.
func (c *OllamaClient) Chat(ctx context.Context, messages []model.ChatMessage, temperature float64) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, c.params(messages, temperature))
	if err != nil {
		return "", &TransportError{Op: "chat completion", Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &TransportError{Op: "chat completion", Err: errEmptyReply}
	}
	return completion.Choices[0].Message.Content, nil
}

// ChatStream performs a streamed completion. Fragments are concatenated in
// arrival order; each one is also handed to the sink as it arrives. On any
// stream error the partial content is discarded.
func (c *OllamaClient) ChatStream(ctx context.Context, messages []model.ChatMessage, temperature float64) (string, error) {
	stream := c.client.Chat.Completions.NewStreaming(ctx, c.params(messages, temperature))
	defer stream.Close()

	var full strings.Builder
	fragments := 0
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		fragment := chunk.Choices[0].Delta.Content
		if fragment == "" {
			continue
		}
		full.WriteString(fragment)
		fragments++
		if c.sink != nil {
			c.sink.Fragment(fragment)
		}
	}
	if err := stream.Err(); err != nil {
		return "", &TransportError{Op: "chat stream", Err: err}
	}

	c.log.Debug().
		Int("fragments", fragments).
		Int("chars", full.Len()).
		Msg("Ollama 生成完成")
	return full.String(), nil
}

// ListModels returns how many models the endpoint serves.
func (c *OllamaClient) ListModels(ctx context.Context) (int, error) {
	page, err := c.client.Models.List(ctx)
	if err != nil {
		return 0, &TransportError{Op: "list models", Err: err}
	}
	return len(page.Data), nil
}

func (c *OllamaClient) params(messages []model.ChatMessage, temperature float64) openai.ChatCompletionNewParams {
	converted := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case model.RoleSystem:
			converted = append(converted, openai.SystemMessage(m.Content))
		case model.RoleAssistant:
			converted = append(converted, openai.AssistantMessage(m.Content))
		default:
			converted = append(converted, openai.UserMessage(m.Content))
		}
	}
	return openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    converted,
		Temperature: openai.Float(temperature),
	}
}
