// Package server exposes the planning service over HTTP: a JSON plan
// endpoint, a Server-Sent Events streaming variant, and a health check.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/voyageai/voyageai/logging"
	"github.com/voyageai/voyageai/service"
	"github.com/voyageai/voyageai/telemetry"
)

// PlanRequest is the body of both plan endpoints.
type PlanRequest struct {
	Prompt string `json:"prompt"`
}

type errorBody struct {
	Error string `json:"error"`
}

// DBPinger reports relational database liveness. *dbsession.Session
// satisfies it.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the plan API backed by a TravelService. db is optional;
// when set, /health reports its reachability.
type Handler struct {
	svc     *service.TravelService
	db      DBPinger
	logger  logging.Logger
	appName string
}

// NewHandler builds a Handler. db and logger may be nil.
func NewHandler(svc *service.TravelService, db DBPinger, logger logging.Logger, appName string) *Handler {
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}
	return &Handler{svc: svc, db: db, logger: logger, appName: appName}
}

// health reports liveness. An unreachable database degrades the status
// but never fails the check: the planning path has no database
// dependency.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{
		"status":  "ok",
		"service": h.appName,
	}
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			body["status"] = "degraded"
			body["database"] = "unreachable"
		} else {
			body["database"] = "ok"
		}
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePlanRequest(w, r)
	if !ok {
		return
	}

	ctx, span := telemetry.StartRequestSpan(r.Context(), RequestID(r.Context()))
	defer span.End()

	payload, err := h.svc.Plan(ctx, req.Prompt)
	if err != nil {
		h.logger.Error("Plan failed", map[string]interface{}{
			"request_id": RequestID(r.Context()),
			"error":      err.Error(),
		})
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "plan generation failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// createPlanStream streams planning progress as SSE. Every event is a
// JSON object on a `data:` line; the stream always terminates with a
// literal `data: [DONE]` record.
func (h *Handler) createPlanStream(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePlanRequest(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "streaming unsupported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	ctx, span := telemetry.StartRequestSpan(r.Context(), RequestID(r.Context()))
	defer span.End()

	writeEvent := func(ev service.Event) error {
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	if err := h.svc.PlanStream(ctx, req.Prompt, writeEvent); err != nil {
		// Client likely went away mid-stream; nothing useful to send.
		h.logger.Warn("Plan stream aborted", map[string]interface{}{
			"request_id": RequestID(r.Context()),
			"error":      err.Error(),
		})
		return
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}

func (h *Handler) decodePlanRequest(w http.ResponseWriter, r *http.Request) (PlanRequest, bool) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return req, false
	}
	if req.Prompt == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "prompt is required"})
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
