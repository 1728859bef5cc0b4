package transport

import (
	"net/http"

	"task-manager-crud/internal/middleware"
	"task-manager-crud/internal/service"

	"github.com/go-chi/chi/v5"
)

// MessageResponse is a single-message payload
type MessageResponse struct {
	Message string `json:"message"`
}

// SystemHandler serves the endpoints that sit outside the resource CRUD
type SystemHandler struct {
	services    *service.Services
	pingMessage string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(services *service.Services, pingMessage string) *SystemHandler {
	return &SystemHandler{
		services:    services,
		pingMessage: pingMessage,
	}
}

// RegisterRoutes registers the health, ping, demo and stats routes
func (h *SystemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/api/ping", h.Ping)
	r.Get("/api/demo", h.Demo)
	r.Get("/api/stats", h.Stats)
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SystemHandler) Ping(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, MessageResponse{Message: h.pingMessage})
}

func (h *SystemHandler) Demo(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Hello from the Go server"})
}

// Stats reports how many values each resource currently holds
func (h *SystemHandler) Stats(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.services.Stats(r.Context()))
}
