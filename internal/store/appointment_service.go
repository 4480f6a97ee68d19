package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/booking-api/internal/domain"
)

// ListParams selects a page of appointment services.
type ListParams struct {
	Limit  int
	Offset int
	// IncludeRemoved makes both the page and the total cover soft-deleted rows.
	IncludeRemoved bool
}

// AppointmentServiceStore defines the interface for appointment service persistence.
type AppointmentServiceStore interface {
	// Create stores a new record.
	Create(ctx context.Context, svc *domain.AppointmentService) error

	// GetByID returns a record that is not soft-deleted.
	// Returns ErrServiceNotFound otherwise.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error)

	// Update applies patch to a non-removed record, refreshes updated_at and
	// returns the stored row. Returns ErrServiceNotFound if no row matched.
	Update(ctx context.Context, id uuid.UUID, patch domain.AppointmentServicePatch) (*domain.AppointmentService, error)

	// SoftDelete marks a record removed and returns it. Deleting an already
	// removed record succeeds; ErrServiceNotFound means the id is unknown.
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error)

	// List returns one page ordered newest first and the total row count.
	List(ctx context.Context, params ListParams) ([]*domain.AppointmentService, int, error)

	// DeleteAll physically removes every record. Only the seed command uses it.
	DeleteAll(ctx context.Context) error

	// WithTx returns an AppointmentServiceStore bound to tx.
	WithTx(tx *sql.Tx) AppointmentServiceStore
}
