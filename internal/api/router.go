package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling
	r.Use(corsMiddleware)

	r.Get("/", h.RootHandler)
	r.Get("/health", h.HealthHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/inbound", func(r chi.Router) {
			r.Get("/", h.InboundHealthHandler)
			r.Post("/process", h.ProcessHandler)
			r.Post("/translate", h.TranslateHandler)
			r.Post("/prayer", h.PrayerHandler)
			r.Post("/faq", h.FAQHandler)
		})

		r.Route("/donation", func(r chi.Router) {
			r.Get("/health", h.DonationHealthHandler)
			r.Post("/thank-you", h.ThankYouHandler)
			r.Post("/impact-story", h.ImpactStoryHandler)
			r.Post("/recurring-giving", h.RecurringGivingHandler)
			r.Post("/question", h.DonationQuestionHandler)
		})
	})

	return r
}

// corsMiddleware mirrors the hub's permissive CORS policy: the API is served
// to a browser frontend on a different origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
