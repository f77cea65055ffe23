package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ironlady/leadbot/internal/infra/http/middleware"
	"github.com/ironlady/leadbot/internal/usecase"
)

type LeadHandler struct {
	Leads       *usecase.LeadService
	rateLimiter *RateLimiter
}

func NewLeadHandler(leads *usecase.LeadService) *LeadHandler {
	return &LeadHandler{
		Leads:       leads,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.Leads.Create(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordLeadCaptured()
	writeJSON(w, http.StatusCreated, apiResponse{
		Success: true,
		Message: "Lead created successfully",
		Data:    output,
	})
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	output, err := h.Leads.List(r.Context(), status, limit, page)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeData(w, http.StatusOK, output)
}

func (h *LeadHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Leads.Stats(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeData(w, http.StatusOK, stats)
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Leads.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeData(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.Leads.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Lead updated successfully",
		Data:    lead,
	})
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Leads.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Lead deleted successfully",
	})
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
