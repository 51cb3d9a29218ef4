package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moodgarden/backend/internal/ai"
)

type AIHandler struct {
	client ai.Client
}

func NewAIHandler(client ai.Client) *AIHandler {
	return &AIHandler{client: client}
}

type CoachRequest struct {
	Mood    string       `json:"mood"`
	Message string       `json:"message"`
	History []ai.Message `json:"history"`
}

type SummarizeRequest struct {
	Title   string       `json:"title"`
	Mood    string       `json:"mood"`
	History []ai.Message `json:"history"`
}

func (h *AIHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"pong": true})
}

func (h *AIHandler) Coach(w http.ResponseWriter, r *http.Request) {
	var req CoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Mood == "" {
		req.Mood = "neutral"
	}

	text, err := h.client.Coach(r.Context(), req.Mood, req.Message, req.History)
	if err != nil {
		writeServiceError(w, "handlers.Coach", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (h *AIHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		req.Title = "Untitled Session"
	}
	if req.Mood == "" {
		req.Mood = "neutral"
	}

	summary, err := h.client.Summarize(r.Context(), req.Title, req.Mood, req.History)
	if err != nil {
		writeServiceError(w, "handlers.Summarize", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}
