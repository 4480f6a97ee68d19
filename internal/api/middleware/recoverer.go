package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/booking-api/internal/api/shared"
	"github.com/phrazzld/booking-api/internal/platform/logger"
)

// MsgInternalServerError is the envelope message for recovered panics.
const MsgInternalServerError = "Internal server error"

// Recoverer turns a panic in a handler into a 500 failure envelope.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContextOrDefault(r.Context(), nil).Error("panic recovered",
				slog.Any("panic", rec),
				slog.String("trace_id", shared.GetTraceID(r.Context())),
				slog.String("stack", string(debug.Stack())))
			shared.RespondWithFailure(w, r, http.StatusInternalServerError, MsgInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
