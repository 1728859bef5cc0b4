package transport

import (
	"errors"
	"net/http"

	"task-manager-crud/internal/middleware"
	"task-manager-crud/internal/service"
	"task-manager-crud/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DeleteResponse confirms a removal
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ResourceHandler handles HTTP requests for one resource kind
type ResourceHandler[T any] struct {
	service  service.ResourceService[T]
	resource service.Resource
	logger   *zap.Logger
}

// NewResourceHandler creates a new ResourceHandler
func NewResourceHandler[T any](svc service.ResourceService[T], logger *zap.Logger) *ResourceHandler[T] {
	resource := svc.Resource()
	return &ResourceHandler[T]{
		service:  svc,
		resource: resource,
		logger:   logger.With(zap.String("resource", resource.Plural)),
	}
}

// RegisterRoutes mounts the handler under /api/<plural>
func (h *ResourceHandler[T]) RegisterRoutes(r chi.Router) {
	r.Route("/api/"+h.resource.Plural, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/<plural>
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("List failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch "+h.resource.Plural)
		return
	}
	if items == nil {
		items = []T{}
	}

	middleware.RespondWithJSON(w, http.StatusOK, items)
}

// Get handles GET /api/<plural>/{id}
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err, "Failed to fetch "+h.resource.Singular, zap.String("id", id))
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, item)
}

// Create handles POST /api/<plural>
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := validation.DecodeFields(r.Body)
	if err != nil {
		h.respondError(w, err, "Failed to create "+h.resource.Singular)
		return
	}

	item, err := h.service.Create(r.Context(), fields)
	if err != nil {
		h.respondError(w, err, "Failed to create "+h.resource.Singular)
		return
	}

	h.logger.Info("Created")
	middleware.RespondWithJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/<plural>/{id}
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fields, err := validation.DecodeFields(r.Body)
	if err != nil {
		h.respondError(w, err, "Failed to update "+h.resource.Singular, zap.String("id", id))
		return
	}

	item, err := h.service.Update(r.Context(), id, fields)
	if err != nil {
		h.respondError(w, err, "Failed to update "+h.resource.Singular, zap.String("id", id))
		return
	}

	h.logger.Info("Updated", zap.String("id", id))
	middleware.RespondWithJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/<plural>/{id}
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, err, "Failed to delete "+h.resource.Singular, zap.String("id", id))
		return
	}

	h.logger.Info("Deleted", zap.String("id", id))
	middleware.RespondWithJSON(w, http.StatusOK, DeleteResponse{
		Message: h.resource.Title + " deleted successfully",
		ID:      id,
	})
}

// respondError maps service and validation errors to status codes. Anything
// unrecognised is logged here and answered with the generic failure message.
func (h *ResourceHandler[T]) respondError(w http.ResponseWriter, err error, failure string, fields ...zap.Field) {
	var fieldErr *validation.FieldError

	switch {
	case errors.As(err, &fieldErr):
		h.logger.Debug("Validation failed", append(fields, zap.String("field", fieldErr.Field), zap.Error(err))...)
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, fieldErr.Message, map[string]any{"field": fieldErr.Field})
	case errors.Is(err, validation.ErrInvalidBody):
		h.logger.Debug("Invalid request body", fields...)
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
	case errors.Is(err, service.ErrNotFound):
		h.logger.Debug("Not found", fields...)
		middleware.RespondWithError(w, http.StatusNotFound, h.resource.Title+" not found")
	default:
		h.logger.Error(failure, append(fields, zap.Error(err))...)
		middleware.RespondWithError(w, http.StatusInternalServerError, failure)
	}
}
