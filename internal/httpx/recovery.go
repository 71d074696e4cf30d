package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns handler panics into 500 responses. If the
// handler already started writing a body there is nothing useful left to
// send, so it only logs.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			log.Printf("panic recovered: request_id=%s error=%v stack=%s",
				RequestIDFrom(r), v, debug.Stack())

			if rec, ok := w.(*statusRecorder); ok && rec.wrote {
				return
			}
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred", nil)
		}()
		next.ServeHTTP(w, r)
	})
}
