package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moodgarden/backend/internal/api/middleware"
	"github.com/moodgarden/backend/internal/domain"
	"github.com/moodgarden/backend/internal/service"
)

type FlowerHandler struct {
	flowerService *service.FlowerService
}

func NewFlowerHandler(flowerService *service.FlowerService) *FlowerHandler {
	return &FlowerHandler{flowerService: flowerService}
}

type SaveFlowerRequest struct {
	Mood    string `json:"mood"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Summary string `json:"summary"`
}

type SaveFlowerResponse struct {
	Success bool           `json:"success"`
	Flower  *domain.Flower `json:"flower"`
	Message string         `json:"message"`
}

func (h *FlowerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	flowers, err := h.flowerService.ListByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "handlers.ListFlowers", err)
		return
	}

	writeJSON(w, http.StatusOK, flowers)
}

func (h *FlowerHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	var req SaveFlowerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	flower, err := h.flowerService.Create(r.Context(), userID, service.CreateFlowerInput{
		Mood:    domain.Mood(req.Mood),
		Title:   req.Title,
		Content: req.Content,
		Summary: req.Summary,
	})
	if err != nil {
		writeServiceError(w, "handlers.SaveFlower", err)
		return
	}

	writeJSON(w, http.StatusCreated, SaveFlowerResponse{
		Success: true,
		Flower:  flower,
		Message: "Flower saved successfully",
	})
}
