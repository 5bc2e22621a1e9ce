package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/agent"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/analytics"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/donation"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/models"
)

type Handler struct {
	pipeline  *agent.Pipeline
	donations *donation.Service
	sink      analytics.Sink
	logger    *zap.Logger
}

func NewHandler(pipeline *agent.Pipeline, donations *donation.Service, sink analytics.Sink, logger *zap.Logger) *Handler {
	return &Handler{
		pipeline:  pipeline,
		donations: donations,
		sink:      sink,
		logger:    logger,
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// record dispatches an analytics write after the response is committed.
// Failures are logged and never surfaced.
func (h *Handler) record(interaction models.Interaction) {
	go func() {
		interaction.ID = uuid.New().String()
		interaction.CreatedAt = time.Now()
		if err := h.sink.Record(interaction); err != nil {
			h.logger.Error("Failed to record interaction", zap.Error(err))
		}
	}()
}

type ProcessRequest struct {
	Message  string `json:"message"`
	UserID   string `json:"user_id"`
	Source   string `json:"source"`
	Language string `json:"language"`
}

func (h *Handler) ProcessHandler(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "Message cannot be empty", http.StatusBadRequest)
		return
	}

	if req.UserID == "" {
		req.UserID = "anonymous"
	}
	if req.Source == "" {
		req.Source = string(models.SourceWebsite)
	}
	if req.Language == "" {
		req.Language = h.pipeline.PivotLanguage()
	}

	start := time.Now()
	result := h.pipeline.Process(r.Context(), models.Message{
		Text:     req.Message,
		Language: req.Language,
		UserID:   req.UserID,
		Source:   models.Source(req.Source),
	})
	result.ResponseTimeMS = float64(time.Since(start).Microseconds()) / 1000.0

	h.respondJSON(w, http.StatusOK, result)

	h.record(models.Interaction{
		UserID:         req.UserID,
		MessageType:    req.Source,
		ResponseTimeMS: result.ResponseTimeMS,
		Escalated:      result.Escalated,
		FAQMatched:     result.FAQMatched,
		Language:       req.Language,
	})
}

type TranslateRequest struct {
	Message        string `json:"message"`
	TargetLanguage string `json:"target_language"`
}

type TranslateResponse struct {
	Original       string `json:"original"`
	Translated     string `json:"translated"`
	TargetLanguage string `json:"target_language"`
}

func (h *Handler) TranslateHandler(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Message) == "" || req.TargetLanguage == "" {
		http.Error(w, "Message and target_language are required", http.StatusBadRequest)
		return
	}

	translated := h.pipeline.Translator().Translate(r.Context(), req.Message, req.TargetLanguage)
	h.respondJSON(w, http.StatusOK, TranslateResponse{
		Original:       req.Message,
		Translated:     translated,
		TargetLanguage: req.TargetLanguage,
	})
}

type PrayerRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Urgency string `json:"urgency"`
}

type PrayerResponse struct {
	Message   string               `json:"message"`
	Routing   models.PrayerRouting `json:"routing"`
	NextSteps string               `json:"next_steps"`
}

func (h *Handler) PrayerHandler(w http.ResponseWriter, r *http.Request) {
	var req PrayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "Message cannot be empty", http.StatusBadRequest)
		return
	}

	if req.UserID == "" {
		req.UserID = "anonymous"
	}

	routing := h.pipeline.PrayerRouter().Route(r.Context(), req.Message)

	nextSteps := "Our prayer ministry team will be in touch within 24 hours"
	if routing.IsUrgent {
		nextSteps = "Urgent prayer request - ministry team notified immediately"
	}

	h.respondJSON(w, http.StatusOK, PrayerResponse{
		Message:   "Prayer request received and routed",
		Routing:   routing,
		NextSteps: nextSteps,
	})

	h.record(models.Interaction{
		UserID:      req.UserID,
		MessageType: string(models.SourcePrayer),
		Escalated:   routing.IsUrgent,
		Language:    h.pipeline.PivotLanguage(),
	})
}

type FAQRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

type FAQResponse struct {
	Answer   *string `json:"answer"`
	Matched  bool    `json:"matched"`
	Language string  `json:"language"`
}

func (h *Handler) FAQHandler(w http.ResponseWriter, r *http.Request) {
	var req FAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "Message cannot be empty", http.StatusBadRequest)
		return
	}

	pivot := h.pipeline.PivotLanguage()
	if req.Language == "" {
		req.Language = pivot
	}

	question := req.Message
	if req.Language != pivot {
		question = h.pipeline.Translator().Translate(r.Context(), question, pivot)
	}

	answer, matched := h.pipeline.FAQ().Answer(question)
	if !matched {
		h.respondJSON(w, http.StatusOK, FAQResponse{Answer: nil, Matched: false, Language: req.Language})
		return
	}

	if req.Language != pivot {
		answer = h.pipeline.Translator().Translate(r.Context(), answer, req.Language)
	}

	h.respondJSON(w, http.StatusOK, FAQResponse{Answer: &answer, Matched: true, Language: req.Language})
}

func (h *Handler) InboundHealthHandler(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "inbound_communications",
		"features": []string{
			"escalation_detection",
			"faq_processing",
			"multilingual",
			"prayer_routing",
		},
	})
}

func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"service":     "Ministry AI Hub",
		"version":     "1.0.0",
		"description": "AI-powered ministry communication hub",
		"systems": map[string]string{
			"inbound":  "Message processing, FAQ, escalation detection",
			"donation": "Thank you messages, impact stories, recurring giving",
		},
		"endpoints": map[string]string{
			"inbound":            "/api/v1/inbound",
			"donation_thank_you": "/api/v1/donation/thank-you",
			"donation_impact":    "/api/v1/donation/impact-story",
			"donation_recurring": "/api/v1/donation/recurring-giving",
			"donation_qa":        "/api/v1/donation/question",
		},
	})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"systems": map[string]string{
			"inbound_agents":  "operational",
			"donation_agents": "operational",
		},
	})
}
