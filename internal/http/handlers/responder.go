package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/game-deals-service/internal/http/middleware"
	"github.com/preston-bernstein/game-deals-service/internal/http/requestutil"
	"github.com/preston-bernstein/game-deals-service/internal/logging"
	"github.com/preston-bernstein/game-deals-service/internal/render"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeHTML renders the page into a buffer first so a template failure can still
// produce a clean error response.
func writeHTML(w http.ResponseWriter, r *http.Request, status int, page render.Page, logger *slog.Logger) {
	var buf bytes.Buffer
	if err := render.HTML(&buf, page); err != nil {
		logging.Error(loggerFromContext(r, logger), "failed to render page", err)
		writeError(w, r, http.StatusInternalServerError, "failed to render page", logger)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil && logger != nil {
		logger.Warn("failed to write page", "err", err)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
