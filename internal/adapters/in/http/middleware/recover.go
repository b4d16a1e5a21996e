// internal/adapters/in/http/middleware/recover.go
package middleware

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				// keep the root cause in the Cloud Run logs
				log.Printf("[recover] PANIC: %v\n%s", rec, string(debug.Stack()))

				// always answer here; never let Cloud Run synthesize a 503
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":  "internal server error",
					"detail": fmt.Sprint(rec),
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
