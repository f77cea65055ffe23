package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/ironlady/leadbot/internal/entity"
	"github.com/ironlady/leadbot/internal/usecase"
)

// memoryConversations is an in-memory ConversationRepository for handler
// tests: real service wiring, no database.
type memoryConversations struct {
	store   map[string]*entity.Conversation
	findErr error
}

func newMemoryConversations() *memoryConversations {
	return &memoryConversations{store: map[string]*entity.Conversation{}}
}

func (m *memoryConversations) Find(ctx context.Context, sessionID string) (*entity.Conversation, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	conv, ok := m.store[sessionID]
	if !ok {
		return nil, entity.ErrConversationNotFound
	}
	return conv, nil
}

func (m *memoryConversations) Save(ctx context.Context, c *entity.Conversation) error {
	m.store[c.SessionID] = c
	return nil
}

func (m *memoryConversations) Delete(ctx context.Context, sessionID string) error {
	delete(m.store, sessionID)
	return nil
}

type staticCompleter struct {
	reply string
	err   error
}

func (s staticCompleter) Complete(ctx context.Context, profile entity.UserProfile, history []entity.Message) (string, error) {
	return s.reply, s.err
}

func newChatRouter(repo *memoryConversations, completer usecase.ChatCompleter) chi.Router {
	service := usecase.NewChatService(repo, completer, "Welcome!")
	h := NewChatHandler(service)

	r := chi.NewRouter()
	r.Post("/api/chat/init", h.HandleInit)
	r.Post("/api/chat/message", h.HandleMessage)
	r.Get("/api/chat/conversation/{sessionId}", h.HandleGetConversation)
	r.Put("/api/chat/profile/{sessionId}", h.HandleUpdateProfile)
	r.Get("/api/chat/recommendations/{sessionId}", h.HandleRecommendations)
	r.Post("/api/chat/delete/{sessionId}", h.HandleDelete)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleInit(t *testing.T) {
	router := newChatRouter(newMemoryConversations(), staticCompleter{reply: "hi"})

	req := httptest.NewRequest(http.MethodPost, "/api/chat/init", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Contains(t, data["sessionId"], "session_")
	assert.Equal(t, "Welcome!", data["message"])
}

func TestHandleMessage(t *testing.T) {
	repo := newMemoryConversations()
	router := newChatRouter(repo, staticCompleter{reply: "Nice to meet you!"})

	payload := `{"sessionId":"session_1_abc","message":"I have 10 years of experience"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(payload))
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Nice to meet you!", data["message"])

	saved := repo.store["session_1_abc"]
	assert.NotNil(t, saved)
	assert.Equal(t, "10 years", saved.UserProfile.Experience)
	assert.Equal(t, "test-agent", saved.Metadata.UserAgent)
}

func TestHandleMessageInvalidJSON(t *testing.T) {
	router := newChatRouter(newMemoryConversations(), staticCompleter{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMessageMissingFields(t *testing.T) {
	router := newChatRouter(newMemoryConversations(), staticCompleter{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(`{"message":"hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestHandleGetConversationNotFound(t *testing.T) {
	router := newChatRouter(newMemoryConversations(), staticCompleter{})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/conversation/session_missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetConversation(t *testing.T) {
	repo := newMemoryConversations()
	conv := entity.NewConversation("session_2_def", "", "")
	conv.Append(entity.RoleUser, "hello")
	repo.store[conv.SessionID] = conv

	router := newChatRouter(repo, staticCompleter{})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/conversation/session_2_def", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Len(t, data["messages"], 1)
	assert.Contains(t, data, "userProfile")
	assert.Contains(t, data, "metadata")
}

func TestHandleRecommendations(t *testing.T) {
	repo := newMemoryConversations()
	conv := entity.NewConversation("session_3_ghi", "", "")
	conv.UserProfile.Experience = "3 years"
	repo.store[conv.SessionID] = conv

	router := newChatRouter(repo, staticCompleter{})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/recommendations/session_3_ghi", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	recs := data["recommendations"].([]any)
	assert.Len(t, recs, 2)
	first := recs[0].(map[string]any)
	assert.Equal(t, "masterclass", first["id"])
}

func TestHandleDeleteAlways204(t *testing.T) {
	repo := newMemoryConversations()
	conv := entity.NewConversation("session_4_jkl", "", "")
	repo.store[conv.SessionID] = conv

	router := newChatRouter(repo, staticCompleter{})

	// Existing session.
	req := httptest.NewRequest(http.MethodPost, "/api/chat/delete/session_4_jkl", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.store)

	// Unknown session still answers 204: sendBeacon cannot retry.
	req = httptest.NewRequest(http.MethodPost, "/api/chat/delete/never_existed", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandleMessageLLMFailure(t *testing.T) {
	repo := newMemoryConversations()
	router := newChatRouter(repo, staticCompleter{err: errors.New("groq down")})

	payload := `{"sessionId":"session_5_mno","message":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Degraded, not broken: the visitor gets an apology and a 200.
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Contains(t, data["message"], "I'm sorry")
}
