package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"reel_hook_generator/generator"
)

const (
	healthMessage       = "AI Viral Reel Hook Generator API is running"
	generateFailMessage = "Failed to generate hooks. Please try again."
	invalidBodyMessage  = "Invalid request body"
	// ISO-8601 in UTC with millisecond precision.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type healthResp struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleGenerateHooks(w http.ResponseWriter, r *http.Request) {
	var req generator.Request
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.generations.WithLabelValues(outcomeInvalid).Inc()
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	ctx := r.Context()
	if timeout := s.cfg.LLM.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := s.genAgent.Generate(ctx, req)
	switch {
	case err == nil:
		s.metrics.observeCompletion(time.Since(start))
		s.metrics.generations.WithLabelValues(outcomeOK).Inc()
		s.log.WithContext(ctx).Info("generated hooks",
			slog.Int("count", len(res.Hooks)),
			slog.String("topic", truncate(res.Topic, 50)),
		)
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, generator.ErrMissingField):
		s.metrics.generations.WithLabelValues(outcomeInvalid).Inc()
		writeError(w, http.StatusBadRequest, "Topic and platform are required")
	case errors.Is(err, generator.ErrTopicLength):
		s.metrics.generations.WithLabelValues(outcomeInvalid).Inc()
		writeError(w, http.StatusBadRequest, "Topic must be between 3 and 500 characters")
	case errors.Is(err, generator.ErrNoHooks):
		s.metrics.observeCompletion(time.Since(start))
		s.metrics.generations.WithLabelValues(outcomeEmpty).Inc()
		s.log.LogError(ctx, err, "error generating hooks")
		writeError(w, http.StatusInternalServerError, generateFailMessage)
	default:
		s.metrics.observeCompletion(time.Since(start))
		s.metrics.generations.WithLabelValues(outcomeUpstream).Inc()
		s.log.LogError(ctx, err, "error generating hooks")
		writeError(w, http.StatusInternalServerError, generateFailMessage)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResp{
		Status:    "ok",
		Message:   healthMessage,
		Timestamp: s.now().UTC().Format(timestampLayout),
	})
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.landing)
}

// --- Helpers ---

type apiError struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiError{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// truncate shortens s to n characters for log lines.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
