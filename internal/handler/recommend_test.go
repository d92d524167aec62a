package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalRecommendationsFallback(t *testing.T) {
	// Model down on every attempt: the endpoint still answers 200 with a
	// deterministic list, tagged as fallback.
	llm := &stubLLM{err: errors.New("connection refused")}
	body := `{
		"user_profile": {"borrow_history": [{"title": "深度學習"}]},
		"available_books": [{"id": "001", "title": "T1", "author": "A1"}]
	}`
	w := postJSON(newTestRouter(llm, &stubLister{}), "/generate-personal-recommendations", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "fallback", resp.Source)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "001", resp.Recommendations[0].BookID)
	assert.Equal(t, 0.7, resp.Recommendations[0].Score)
	assert.Contains(t, resp.Recommendations[0].Reason, "T1")
	assert.Equal(t, 2, llm.calls, "both attempts must be used before falling back")
}

func TestPersonalRecommendationsAISuccess(t *testing.T) {
	llm := &stubLLM{reply: "```json\n[{\"book_id\":\"002\",\"reason\":\"同類主題\",\"score\":0.85}]\n```"}
	body := `{
		"user_profile": {"borrow_history": [{"title": "深度學習"}, {"title": "演算法"}]},
		"available_books": [
			{"id": "001", "title": "T1", "author": "A1"},
			{"id": "002", "title": "T2", "author": "A2"}
		]
	}`
	w := postJSON(newTestRouter(llm, &stubLister{}), "/generate-personal-recommendations", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "ai", resp.Source)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "002", resp.Recommendations[0].BookID)
	assert.Equal(t, 1, llm.calls, "a clean reply must not trigger a retry")

	// The prompt carries the history and every candidate.
	promptText := llm.messages[len(llm.messages)-1].Content
	assert.Contains(t, promptText, "深度學習, 演算法")
	assert.Contains(t, promptText, "001: T1 by A1")
	assert.Contains(t, promptText, "002: T2 by A2")
}

func TestRelatedRecommendations(t *testing.T) {
	llm := &stubLLM{reply: `[{"book_id":"003","reason":"同作者","score":0.8}]`}
	body := `{
		"current_book": {"id": "001", "title": "深度學習", "author": "張三"},
		"related_books": [{"id": "003", "title": "機器學習", "author": "張三"}]
	}`
	w := postJSON(newTestRouter(llm, &stubLister{}), "/generate-related-recommendations", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ai", resp.Source)
	assert.Equal(t, "003", resp.Recommendations[0].BookID)

	promptText := llm.messages[len(llm.messages)-1].Content
	assert.Contains(t, promptText, "For readers who liked: 深度學習 by 張三")
}

func TestRelatedRecommendationsFallbackEmptyCandidates(t *testing.T) {
	llm := &stubLLM{err: errors.New("boom")}
	body := `{"current_book": {"id": "001", "title": "T", "author": "A"}, "related_books": []}`
	w := postJSON(newTestRouter(llm, &stubLister{}), "/generate-related-recommendations", body)

	require.Equal(t, http.StatusOK, w.Code)
	// The recommendations field must encode as an array, not null.
	assert.Contains(t, w.Body.String(), `"recommendations":[]`)
}

func TestRecommendationsMalformedBody(t *testing.T) {
	llm := &stubLLM{reply: "x"}
	w := postJSON(newTestRouter(llm, &stubLister{}), "/generate-personal-recommendations", `{`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, llm.calls)
}
