package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-ai-gateway/internal/model"
)

// Sampling temperatures, tuned per endpoint: related-book prompts get a
// slightly colder model for tighter matches.
const (
	personalTemperature = 0.7
	relatedTemperature  = 0.6
)

// PersonalRequest asks for recommendations from a user's borrow history.
type PersonalRequest struct {
	UserProfile struct {
		BorrowHistory []struct {
			Title string `json:"title"`
		} `json:"borrow_history"`
	} `json:"user_profile"`
	AvailableBooks []model.Book `json:"available_books"`
}

// RelatedRequest asks for books related to the one being viewed.
type RelatedRequest struct {
	CurrentBook  model.Book   `json:"current_book"`
	RelatedBooks []model.Book `json:"related_books"`
}

// RecommendationResponse is shared by both recommendation endpoints. The
// status is always 200 once a result exists; Source says whether the AI
// path succeeded or the deterministic fallback was used.
type RecommendationResponse struct {
	Success         bool                       `json:"success"`
	Recommendations []model.RecommendationItem `json:"recommendations"`
	Source          string                     `json:"source"`
}

// PersonalRecommendations handles POST /generate-personal-recommendations.
func (h *Handler) PersonalRecommendations(c *gin.Context) {
	var req PersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "請求格式錯誤"})
		return
	}

	titles := make([]string, 0, len(req.UserProfile.BorrowHistory))
	for _, entry := range req.UserProfile.BorrowHistory {
		titles = append(titles, entry.Title)
	}

	reqID := uuid.NewString()
	h.log.Info().
		Str("request_id", reqID).
		Int("history", len(titles)).
		Int("candidates", len(req.AvailableBooks)).
		Msg("收到個人化推薦請求")

	p := h.builder.Personal(titles, req.AvailableBooks)
	result := h.rec.Recommend(c.Request.Context(), p, personalTemperature, req.AvailableBooks)

	h.log.Info().
		Str("request_id", reqID).
		Str("source", result.Source).
		Int("count", len(result.Items)).
		Msg("推薦請求完成")
	c.JSON(http.StatusOK, RecommendationResponse{
		Success:         true,
		Recommendations: result.Items,
		Source:          result.Source,
	})
}

// RelatedRecommendations handles POST /generate-related-recommendations.
func (h *Handler) RelatedRecommendations(c *gin.Context) {
	var req RelatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "請求格式錯誤"})
		return
	}

	reqID := uuid.NewString()
	h.log.Info().
		Str("request_id", reqID).
		Str("current", req.CurrentBook.Title).
		Int("candidates", len(req.RelatedBooks)).
		Msg("收到相關推薦請求")

	p := h.builder.Related(req.CurrentBook, req.RelatedBooks)
	result := h.rec.Recommend(c.Request.Context(), p, relatedTemperature, req.RelatedBooks)

	h.log.Info().
		Str("request_id", reqID).
		Str("source", result.Source).
		Int("count", len(result.Items)).
		Msg("推薦請求完成")
	c.JSON(http.StatusOK, RecommendationResponse{
		Success:         true,
		Recommendations: result.Items,
		Source:          result.Source,
	})
}
