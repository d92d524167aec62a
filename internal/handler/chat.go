package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/unicode/norm"

	"library-ai-gateway/internal/agent/validation"
	"library-ai-gateway/internal/model"
)

const (
	// chatTimeout bounds a single upstream chat call. The pipeline itself
	// has no timeout; this is the caller-side deadline.
	chatTimeout = 60 * time.Second
	// maxHistoryMessages bounds the conversation window sent upstream:
	// 5 exchange rounds of user + assistant.
	maxHistoryMessages = 10
	// chatTemperature is fixed for the chat endpoint.
	chatTemperature = 0.7
)

// ChatRequest is the body of POST /chat. Context, when present, is a
// JSON-encoded ChatContext string produced by the library backend.
type ChatRequest struct {
	Message string              `json:"message"`
	History []model.ChatMessage `json:"history"`
	Context string              `json:"context"`
}

// ChatResponse is the body of POST /chat replies, success or not.
type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Chat handles POST /chat. There is no fallback text generator: upstream
// failures surface as non-200 responses with a human-readable message.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ChatResponse{Success: false, Message: "訊息不能為空"})
		return
	}

	// Normalize before anything looks at the text.
	req.Message = norm.NFC.String(req.Message)
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, ChatResponse{Success: false, Message: "訊息不能為空"})
		return
	}

	h.log.Info().
		Int("history", len(req.History)).
		Bool("context", req.Context != "").
		Msg("收到聊天請求")

	messages := h.chatMessages(req)

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()

	reply, err := h.llm.Chat(ctx, messages, chatTemperature)
	if err != nil {
		h.log.Error().Err(err).Msg("聊天回應生成失敗")
		if errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusServiceUnavailable, ChatResponse{
				Success: false,
				Message: "抱歉，AI 服務回應逾時。請稍後再試。",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ChatResponse{
			Success: false,
			Message: "抱歉，AI 服務暫時無法使用。請稍後再試或聯絡圖書館管理員。",
		})
		return
	}

	h.log.Info().Int("chars", len(reply)).Msg("聊天回應生成成功")
	c.JSON(http.StatusOK, ChatResponse{Success: true, Message: reply})
}

// chatMessages assembles the upstream message list: system prompt, the last
// five exchange rounds of history, then the user message.
func (h *Handler) chatMessages(req ChatRequest) []model.ChatMessage {
	messages := []model.ChatMessage{
		{Role: model.RoleSystem, Content: h.builder.BuildSystemPrompt(h.parseContext(req.Context))},
	}

	history := req.History
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	for _, msg := range history {
		role := msg.Role
		if role == "" {
			role = model.RoleUser
		}
		messages = append(messages, model.ChatMessage{Role: role, Content: msg.Content})
	}

	return append(messages, model.ChatMessage{Role: model.RoleUser, Content: req.Message})
}

// parseContext decodes and validates the context payload. Anything wrong
// with it degrades silently to a nil context (base prompt); context
// problems are never surfaced to the caller.
func (h *Handler) parseContext(raw string) *model.ChatContext {
	if raw == "" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		h.log.Warn().Err(err).Msg("context 解析失敗，使用預設 prompt")
		return nil
	}
	if ok, reason := validation.Context(decoded); !ok {
		h.log.Warn().Str("reason", reason).Msg("context 驗證失敗，使用預設 prompt")
		return nil
	}

	var ctx model.ChatContext
	if err := json.Unmarshal([]byte(raw), &ctx); err != nil {
		h.log.Warn().Err(err).Msg("context 轉換失敗，使用預設 prompt")
		return nil
	}
	return &ctx
}
