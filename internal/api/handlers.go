package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"wanderly.app/trip-planner/internal/catalog"
	"wanderly.app/trip-planner/internal/core"
	"wanderly.app/trip-planner/internal/store"
)

type APIHandler struct {
	store       *store.Store
	sessions    *SessionRegistry
	recentLimit int
	log         *zap.SugaredLogger
}

func NewAPIHandler(db *store.Store, sessions *SessionRegistry, recentLimit int, log *zap.SugaredLogger) *APIHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &APIHandler{store: db, sessions: sessions, recentLimit: recentLimit, log: log}
}

type SessionResponse struct {
	ID string `json:"id"`
	core.Snapshot
	Recent []store.Conversation `json:"recent"`
}

func (h *APIHandler) sessionResponse(id string, planner *core.PlannerService) SessionResponse {
	return SessionResponse{
		ID:       id,
		Snapshot: planner.Snapshot(),
		Recent:   planner.RecentConversations(h.recentLimit),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// lookupSession writes a 404 and returns false when the session is unknown.
func (h *APIHandler) lookupSession(w http.ResponseWriter, r *http.Request) (string, *core.PlannerService, bool) {
	id := chi.URLParam(r, "sessionID")
	planner, ok := h.sessions.Get(id)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return id, nil, false
	}
	return id, planner, true
}

func itineraryIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "Itinerary index must be a number", http.StatusBadRequest)
		return 0, false
	}
	return index, true
}

func (h *APIHandler) TrendingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"queries": catalog.TrendingQueries})
}

func (h *APIHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.GetUser())
}

func (h *APIHandler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	var user store.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if user.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if err := h.store.SaveUser(user); err != nil {
		h.log.Errorf("Error saving user profile: %v", err)
		http.Error(w, "Failed to save profile", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *APIHandler) ListConversationsHandler(w http.ResponseWriter, r *http.Request) {
	convs := h.store.GetConversations()
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		if limit > 0 && len(convs) > limit {
			convs = convs[:limit]
		}
	}
	writeJSON(w, http.StatusOK, convs)
}

func (h *APIHandler) ListPlansHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.GetPlans())
}

type CreateSessionRequest struct {
	Query string `json:"query,omitempty"`
}

func (h *APIHandler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	id, planner := h.sessions.Create()
	if req.Query != "" {
		planner.Begin(req.Query)
	}
	h.log.Debugf("Created planning session %s", id)
	writeJSON(w, http.StatusCreated, h.sessionResponse(id, planner))
}

func (h *APIHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, planner, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.sessionResponse(id, planner))
}

func (h *APIHandler) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, planner, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	// Reset cancels anything still scheduled for the session.
	planner.Reset()
	h.sessions.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

type PostMessageRequest struct {
	Content string `json:"content"`
}

type PostMessageResponse struct {
	Accepted bool            `json:"accepted"`
	Session  SessionResponse `json:"session"`
}

func (h *APIHandler) PostMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, planner, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	accepted := planner.Submit(req.Content)
	status := http.StatusAccepted
	if !accepted {
		status = http.StatusOK
	}
	writeJSON(w, status, PostMessageResponse{Accepted: accepted, Session: h.sessionResponse(id, planner)})
}

func (h *APIHandler) ResetSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, planner, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	planner.Reset()
	writeJSON(w, http.StatusOK, h.sessionResponse(id, planner))
}

type ResumeRequest struct {
	ConversationID string `json:"conversation_id"`
}

func (h *APIHandler) ResumeSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, planner, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	var req ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := planner.Resume(req.ConversationID); err != nil {
		if errors.Is(err, core.ErrConversationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.log.Errorf("Error resuming conversation %s in session %s: %v", req.ConversationID, id, err)
		http.Error(w, "Failed to resume conversation", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionResponse(id, planner))
}

func (h *APIHandler) DismissFinalizedHandler(w http.ResponseWriter, r *http.Request) {
	id, planner, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	planner.DismissFinalized()
	writeJSON(w, http.StatusOK, h.sessionResponse(id, planner))
}

type EnhanceRequest struct {
	Text string `json:"text"`
}

func (h *APIHandler) EnhanceHandler(w http.ResponseWriter, r *http.Request) {
	id, planner, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	index, ok := itineraryIndex(w, r)
	if !ok {
		return
	}
	var req EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := planner.Enhance(index, req.Text); err != nil {
		if errors.Is(err, core.ErrItineraryOutOfRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Errorf("Error enhancing itinerary %d in session %s: %v", index, id, err)
		http.Error(w, "Failed to enhance itinerary", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusAccepted, h.sessionResponse(id, planner))
}

type FinalizeResponse struct {
	Conversation *store.Conversation `json:"conversation"`
	Session      SessionResponse     `json:"session"`
}

func (h *APIHandler) FinalizeHandler(w http.ResponseWriter, r *http.Request) {
	id, planner, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	index, ok := itineraryIndex(w, r)
	if !ok {
		return
	}

	conv, err := planner.Finalize(index)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrItineraryOutOfRange):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, core.ErrPersistence):
			http.Error(w, "Your plan could not be saved. Please try again.", http.StatusServiceUnavailable)
		default:
			h.log.Errorf("Error finalizing itinerary %d in session %s: %v", index, id, err)
			http.Error(w, "Failed to finalize itinerary", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, FinalizeResponse{Conversation: conv, Session: h.sessionResponse(id, planner)})
}
