package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ironlady/leadbot/internal/infra/http/middleware"
	"github.com/ironlady/leadbot/internal/usecase"
)

type ChatHandler struct {
	Chat *usecase.ChatService
}

func NewChatHandler(chat *usecase.ChatService) *ChatHandler {
	return &ChatHandler{Chat: chat}
}

// HandleInit starts a session. No conversation record exists until the
// visitor actually sends something.
func (h *ChatHandler) HandleInit(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.Chat.InitSession())
}

func (h *ChatHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	input.UserAgent = r.UserAgent()
	input.IPAddress = getClientIP(r)

	output, err := h.Chat.SendMessage(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordChatMessage()
	writeData(w, http.StatusOK, output)
}

func (h *ChatHandler) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	conv, err := h.Chat.GetConversation(r.Context(), sessionID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeData(w, http.StatusOK, map[string]any{
		"messages":            conv.Messages,
		"userProfile":         conv.UserProfile,
		"recommendedPrograms": conv.RecommendedPrograms,
		"metadata":            conv.Metadata,
	})
}

func (h *ChatHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	var update usecase.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	profile, err := h.Chat.UpdateProfile(r.Context(), sessionID, update)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeData(w, http.StatusOK, map[string]any{"userProfile": profile})
}

func (h *ChatHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	programs, err := h.Chat.Recommendations(r.Context(), sessionID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordRecommendation()
	writeData(w, http.StatusOK, map[string]any{"recommendations": programs})
}

// HandleDelete is hit by sendBeacon at tab close. The client cannot read
// the response, so this is 204 no matter what happened underneath.
func (h *ChatHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	h.Chat.EndSession(r.Context(), sessionID)
	w.WriteHeader(http.StatusNoContent)
}
