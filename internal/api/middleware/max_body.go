package middleware

import (
	"net/http"

	"github.com/ilomad/portfolio-assistant/internal/api"
)

// MaxBodyBytes caps the request body at limit bytes. Chat messages are
// short; anything near the cap is abuse, not conversation.
func MaxBodyBytes(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit <= 0 || r.Body == nil {
				next.ServeHTTP(w, r)
				return
			}

			// Reject early when the declared length already exceeds the cap.
			if r.ContentLength > limit {
				api.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
