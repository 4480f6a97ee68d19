package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentService is a bookable service offered by a shop, such as a
// haircut or a massage. Rows are never physically deleted: IsRemoved marks
// a soft-deleted record.
type AppointmentService struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Price       int        `json:"price"`
	ShowTime    *int       `json:"showTime"`
	Order       int        `json:"order"`
	IsRemoved   bool       `json:"isRemove"`
	IsPublic    bool       `json:"isPublic"`
	ShopID      *uuid.UUID `json:"shopId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewAppointmentServiceParams holds the caller-supplied fields of a new record.
// Nil pointers take the column defaults (order 0, public).
type NewAppointmentServiceParams struct {
	Name        string
	Description *string
	Price       int
	ShowTime    *int
	Order       *int
	IsPublic    *bool
	ShopID      *uuid.UUID
}

// NewAppointmentService builds a new, not-removed record from params.
// Returns an error wrapping ErrValidation if params are invalid.
func NewAppointmentService(params NewAppointmentServiceParams) (*AppointmentService, error) {
	now := time.Now().UTC()
	svc := &AppointmentService{
		ID:          uuid.New(),
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		ShowTime:    params.ShowTime,
		IsPublic:    true,
		ShopID:      params.ShopID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if params.Order != nil {
		svc.Order = *params.Order
	}
	if params.IsPublic != nil {
		svc.IsPublic = *params.IsPublic
	}

	if err := svc.Validate(); err != nil {
		return nil, err
	}
	return svc, nil
}

// Validate checks the invariants of a record.
func (s *AppointmentService) Validate() error {
	if s.ID == uuid.Nil {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidID)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyName)
	}
	if s.Price <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidPrice)
	}
	if s.ShowTime != nil && *s.ShowTime <= 0 {
		return fmt.Errorf("%w: show time must be positive", ErrValidation)
	}
	return nil
}

// AppointmentServicePatch is a partial update. Only non-nil fields change.
type AppointmentServicePatch struct {
	Name        *string
	Description *string
	Price       *int
	ShowTime    *int
	Order       *int
	IsPublic    *bool
	ShopID      *uuid.UUID
}

// IsEmpty reports whether the patch changes no field.
func (p AppointmentServicePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.ShowTime == nil && p.Order == nil && p.IsPublic == nil && p.ShopID == nil
}

// Validate checks the fields the patch sets.
func (p AppointmentServicePatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyName)
	}
	if p.Price != nil && *p.Price <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidPrice)
	}
	if p.ShowTime != nil && *p.ShowTime <= 0 {
		return fmt.Errorf("%w: show time must be positive", ErrValidation)
	}
	return nil
}
