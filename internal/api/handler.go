package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mergington-activities/internal/activities"
	"mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
)

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	store     *activities.Store
	logger    logger.Logger
	errors    *errors.Handler
	obs       *observability.Observability
	staticDir string
	indexPath string
}

type Config struct {
	StaticDir string
	IndexPath string
}

func NewHandler(store *activities.Store, log logger.Logger, obs *observability.Observability, cfg Config) *Handler {
	return &Handler{
		store:     store,
		logger:    log.WithFields(map[string]interface{}{"component": "api"}),
		errors:    errors.NewHandler(log),
		obs:       obs,
		staticDir: cfg.StaticDir,
		indexPath: cfg.IndexPath,
	}
}

// RegisterRoutes attaches all routes to the provided mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.instrument("/", h.handleRoot))
	mux.HandleFunc("GET /activities", h.instrument("/activities", h.handleListActivities))
	mux.HandleFunc("POST /activities/{name}/signup", h.instrument("/activities/{name}/signup", h.handleSignup))
	mux.HandleFunc("DELETE /activities/{name}/unregister", h.instrument("/activities/{name}/unregister", h.handleUnregister))
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
}

// handleRoot forwards to the static signup page.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.indexPath, http.StatusTemporaryRedirect)
}

// handleListActivities returns the full registry as a name-to-record map.
func (h *Handler) handleListActivities(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.List())
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		h.errors.Write(w, r, errors.NewMissingEmailError())
		return
	}

	if err := h.store.Signup(name, email); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageBody{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		h.errors.Write(w, r, errors.NewMissingEmailError())
		return
	}

	if err := h.store.Unregister(name, email); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageBody{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// handleHealth returns 204 No Content for liveness checks.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

type messageBody struct {
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response encoding failed", map[string]interface{}{"error": err})
	}
}
