package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/booking-api/internal/api/middleware"
	"github.com/phrazzld/booking-api/internal/api/shared"
	"github.com/phrazzld/booking-api/internal/platform/logger"
	"github.com/phrazzld/booking-api/internal/service"
)

// ServiceHandler serves the /api/service endpoints.
type ServiceHandler struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(catalog service.CatalogService, logger *slog.Logger) *ServiceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServiceHandler{
		catalog: catalog,
		logger:  logger.With(slog.String("component", "service_handler")),
	}
}

// List handles GET /api/service/list?page=&limit=.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryPositiveInt(r, "page", 0)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	limit, err := queryPositiveInt(r, "limit", service.MaxPageLimit)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	list, err := h.catalog.List(r.Context(), page, limit)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, list)
}

// Get handles GET /api/service/{id}.
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	svc, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, svc)
}

// Create handles POST /api/service.
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequestFormat, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.ValidationMessage(err), err)
		return
	}

	svc, err := h.catalog.Create(r.Context(), req.Params())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, svc)
}

// Update handles PUT /api/service/{id}.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateServiceRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequestFormat, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.ValidationMessage(err), err)
		return
	}

	svc, err := h.catalog.Update(r.Context(), id, req.Patch())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, svc)
}

// Delete handles DELETE /api/service/{id}.
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	svc, err := h.catalog.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	userID, _ := middleware.GetUserID(r)
	logger.FromContextOrDefault(r.Context(), h.logger).Debug("service delete requested",
		slog.String("service_id", id.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("is_removed", svc.IsRemoved))
	shared.RespondWithData(w, r, http.StatusOK, svc)
}
