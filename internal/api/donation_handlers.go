package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type ThankYouRequest struct {
	DonorName string `json:"donor_name"`
	Amount    string `json:"amount"`
	Email     string `json:"email,omitempty"`
}

func (h *Handler) ThankYouHandler(w http.ResponseWriter, r *http.Request) {
	var req ThankYouRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.DonorName) == "" || strings.TrimSpace(req.Amount) == "" {
		http.Error(w, "donor_name and amount are required", http.StatusBadRequest)
		return
	}

	start := time.Now()
	message := h.donations.ThankYou(r.Context(), req.DonorName, req.Amount)

	h.respondJSON(w, http.StatusOK, map[string]any{
		"message":          message,
		"donor_name":       req.DonorName,
		"amount":           req.Amount,
		"response_time_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

type ImpactStoryRequest struct {
	Category     string `json:"category,omitempty"`
	DonorSegment string `json:"donor_segment,omitempty"`
}

func (h *Handler) ImpactStoryHandler(w http.ResponseWriter, r *http.Request) {
	var req ImpactStoryRequest
	if r.Body != http.NoBody {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	start := time.Now()
	story := h.donations.ImpactStoryFor(r.Context(), req.Category)

	h.respondJSON(w, http.StatusOK, map[string]any{
		"story":            story,
		"category":         req.Category,
		"response_time_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

type RecurringGivingRequest struct {
	DonorName     string `json:"donor_name,omitempty"`
	CurrentAmount string `json:"current_amount,omitempty"`
}

func (h *Handler) RecurringGivingHandler(w http.ResponseWriter, r *http.Request) {
	var req RecurringGivingRequest
	if r.Body != http.NoBody {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	start := time.Now()
	message := h.donations.RecurringGiving(r.Context(), req.DonorName)

	h.respondJSON(w, http.StatusOK, map[string]any{
		"message":          message,
		"donor_name":       req.DonorName,
		"response_time_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

type DonationQuestionRequest struct {
	Question     string `json:"question"`
	DonorContext string `json:"donor_context,omitempty"`
}

func (h *Handler) DonationQuestionHandler(w http.ResponseWriter, r *http.Request) {
	var req DonationQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		http.Error(w, "Question cannot be empty", http.StatusBadRequest)
		return
	}

	start := time.Now()
	answer := h.donations.AnswerQuestion(r.Context(), req.Question)

	h.respondJSON(w, http.StatusOK, map[string]any{
		"question":         req.Question,
		"answer":           answer,
		"response_time_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

func (h *Handler) DonationHealthHandler(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "donation_agents",
		"endpoints": []string{
			"/donation/thank-you",
			"/donation/impact-story",
			"/donation/recurring-giving",
			"/donation/question",
		},
	})
}
