package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/booking-api/internal/platform/logger"
	"github.com/phrazzld/booking-api/internal/redact"
)

// Envelope is the body of every API response. Success responses carry
// Data; failures carry Message. StatusCode is omitted on plain 200 success.
type Envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode,omitempty"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
}

// RespondWithJSON writes v as JSON with the given status code.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondWithData writes a success envelope.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any) {
	env := Envelope{Success: true, Data: data}
	if status != http.StatusOK {
		env.StatusCode = status
	}
	RespondWithJSON(w, r, status, env)
}

// RespondWithFailure writes a failure envelope carrying message.
func RespondWithFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	log := logger.FromContextOrDefault(r.Context(), nil)
	log.Debug("sending error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, Envelope{Success: false, StatusCode: status, Message: message})
}

// RespondWithErrorAndLog writes a failure envelope with userMessage and logs
// the redacted err. 5xx responses log at error level, everything else at
// debug.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	attrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.FromContextOrDefault(r.Context(), nil).LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithJSON(w, r, status, Envelope{Success: false, StatusCode: status, Message: userMessage})
}
