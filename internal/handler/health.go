package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of a successful health check.
type HealthResponse struct {
	Status          string `json:"status"`
	Model           string `json:"model"`
	OllamaURL       string `json:"ollama_url"`
	UsingAPIKey     bool   `json:"using_api_key"`
	AvailableModels int    `json:"available_models"`
}

// Health verifies connectivity to the inference endpoint by listing its
// models. Unreachable endpoint means 503.
func (h *Handler) Health(c *gin.Context) {
	count, err := h.models.ListModels(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("健康檢查失敗")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:          "healthy",
		Model:           h.cfg.Model,
		OllamaURL:       h.cfg.OllamaURL,
		UsingAPIKey:     h.cfg.UsingAPIKey(),
		AvailableModels: count,
	})
}
