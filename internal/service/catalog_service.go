package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/phrazzld/booking-api/internal/domain"
	"github.com/phrazzld/booking-api/internal/platform/logger"
	"github.com/phrazzld/booking-api/internal/store"
)

// Paging defaults and bounds for CatalogService.List.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxPageLimit = 100
)

// Client-facing catalog messages.
const (
	MsgServiceNotFound     = "Service not found"
	MsgServiceUpdateFailed = "Service update failed"
	MsgServiceDeleteFailed = "Service delete failed"
	MsgInvalidPage         = "page must be a positive integer"
	MsgInvalidLimit        = "limit must be a positive integer no greater than 100"
	MsgPageOutOfRange      = "page is out of range"
)

// ServiceList is one page of appointment services.
type ServiceList struct {
	Services   []*domain.AppointmentService `json:"services"`
	Total      int                          `json:"total"`
	Page       int                          `json:"page"`
	Limit      int                          `json:"limit"`
	TotalPages int                          `json:"totalPages"`
}

// CatalogService manages the appointment services a shop offers.
type CatalogService interface {
	// Get returns a service that is not soft-deleted.
	Get(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error)

	// List returns a page of services, newest first. Zero page or limit
	// select DefaultPage and DefaultLimit.
	List(ctx context.Context, page, limit int) (*ServiceList, error)

	// Create adds a new service.
	Create(ctx context.Context, params domain.NewAppointmentServiceParams) (*domain.AppointmentService, error)

	// Update applies patch to a service that is not soft-deleted.
	Update(ctx context.Context, id uuid.UUID, patch domain.AppointmentServicePatch) (*domain.AppointmentService, error)

	// Delete soft-deletes a service. Deleting twice succeeds.
	Delete(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error)
}

type catalogServiceImpl struct {
	services       store.AppointmentServiceStore
	includeRemoved bool
	logger         *slog.Logger
}

// NewCatalogService creates a CatalogService. includeRemoved controls
// whether List pages and counts soft-deleted rows.
func NewCatalogService(
	services store.AppointmentServiceStore,
	includeRemoved bool,
	logger *slog.Logger,
) (CatalogService, error) {
	if services == nil {
		return nil, nilDependency("services")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		services:       services,
		includeRemoved: includeRemoved,
		logger:         logger.With(slog.String("component", "catalog_service")),
	}, nil
}

// Get implements CatalogService.Get.
func (s *catalogServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrServiceNotFound) {
			return nil, domain.NewError(domain.KindNotFound, MsgServiceNotFound, err)
		}
		return nil, s.storeFailure(ctx, "get", id, err)
	}
	return svc, nil
}

// List implements CatalogService.List.
func (s *catalogServiceImpl) List(ctx context.Context, page, limit int) (*ServiceList, error) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if page < 0 {
		return nil, domain.BadRequest(MsgInvalidPage)
	}
	if limit < 0 || limit > MaxPageLimit {
		return nil, domain.BadRequest(MsgInvalidLimit)
	}
	// (page-1)*limit must fit in an int.
	if page > math.MaxInt/limit {
		return nil, domain.BadRequest(MsgPageOutOfRange)
	}

	rows, total, err := s.services.List(ctx, store.ListParams{
		Limit:          limit,
		Offset:         (page - 1) * limit,
		IncludeRemoved: s.includeRemoved,
	})
	if err != nil {
		return nil, s.storeFailure(ctx, "list", uuid.Nil, err)
	}
	if rows == nil {
		rows = []*domain.AppointmentService{}
	}

	return &ServiceList{
		Services:   rows,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// Create implements CatalogService.Create.
func (s *catalogServiceImpl) Create(
	ctx context.Context,
	params domain.NewAppointmentServiceParams,
) (*domain.AppointmentService, error) {
	svc, err := domain.NewAppointmentService(params)
	if err != nil {
		return nil, domain.NewError(domain.KindBadRequest, validationMessage(err), err)
	}

	if err := s.services.Create(ctx, svc); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, domain.NewError(domain.KindBadRequest, "Invalid service", err)
		}
		return nil, s.storeFailure(ctx, "create", svc.ID, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("service created",
		slog.String("service_id", svc.ID.String()))
	return svc, nil
}

// Update implements CatalogService.Update.
func (s *catalogServiceImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.AppointmentServicePatch,
) (*domain.AppointmentService, error) {
	if err := patch.Validate(); err != nil {
		return nil, domain.NewError(domain.KindBadRequest, validationMessage(err), err)
	}

	if patch.IsEmpty() {
		logger.FromContextOrDefault(ctx, s.logger).Debug("empty service patch, touching updated_at only",
			slog.String("service_id", id.String()))
	}

	svc, err := s.services.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrServiceNotFound) {
			return nil, domain.NewError(domain.KindNotFound, MsgServiceUpdateFailed, err)
		}
		return nil, s.storeFailure(ctx, "update", id, err)
	}
	return svc, nil
}

// Delete implements CatalogService.Delete.
func (s *catalogServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error) {
	svc, err := s.services.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrServiceNotFound) {
			return nil, domain.NewError(domain.KindNotFound, MsgServiceDeleteFailed, err)
		}
		return nil, s.storeFailure(ctx, "delete", id, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("service removed",
		slog.String("service_id", id.String()))
	return svc, nil
}

func (s *catalogServiceImpl) storeFailure(ctx context.Context, op string, id uuid.UUID, err error) error {
	attrs := []any{slog.String("operation", op), slog.String("error", err.Error())}
	if id != uuid.Nil {
		attrs = append(attrs, slog.String("service_id", id.String()))
	}
	logger.FromContextOrDefault(ctx, s.logger).Error("service store failure", attrs...)
	return domain.Unknown("Failed to "+op+" service", err)
}

// validationMessage picks the client message for a domain validation error.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return "name is required"
	case errors.Is(err, domain.ErrInvalidPrice):
		return "price must be a positive integer"
	default:
		return "showTime must be a positive integer"
	}
}
