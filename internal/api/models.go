package api

import (
	"github.com/google/uuid"
	"github.com/phrazzld/booking-api/internal/domain"
)

// RegisterRequest is the body of POST /api/user/register. Presence and the
// password policy are checked by the auth service so that its messages
// reach the client unchanged.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login. The refresh token travels
// only in the cookie.
type AuthResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// TokenResponse is returned by refresh.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateServiceRequest is the body of POST /api/service.
type CreateServiceRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description *string `json:"description"`
	Price       *int    `json:"price"       validate:"required,gt=0"`
	ShowTime    *int    `json:"showTime"    validate:"omitempty,gt=0"`
	Order       *int    `json:"order"`
	IsPublic    *bool   `json:"isPublic"`
	ShopID      *string `json:"shopId"      validate:"omitempty,uuid"`
}

// Params converts a validated request into domain parameters.
func (req CreateServiceRequest) Params() domain.NewAppointmentServiceParams {
	params := domain.NewAppointmentServiceParams{
		Name:        req.Name,
		Description: req.Description,
		ShowTime:    req.ShowTime,
		Order:       req.Order,
		IsPublic:    req.IsPublic,
		ShopID:      parseOptionalUUID(req.ShopID),
	}
	if req.Price != nil {
		params.Price = *req.Price
	}
	return params
}

// UpdateServiceRequest is the body of PUT /api/service/{id}. Absent fields
// are left unchanged.
type UpdateServiceRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Price       *int    `json:"price"       validate:"omitempty,gt=0"`
	ShowTime    *int    `json:"showTime"    validate:"omitempty,gt=0"`
	Order       *int    `json:"order"`
	IsPublic    *bool   `json:"isPublic"`
	ShopID      *string `json:"shopId"      validate:"omitempty,uuid"`
}

// Patch converts a validated request into a domain patch.
func (req UpdateServiceRequest) Patch() domain.AppointmentServicePatch {
	return domain.AppointmentServicePatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ShowTime:    req.ShowTime,
		Order:       req.Order,
		IsPublic:    req.IsPublic,
		ShopID:      parseOptionalUUID(req.ShopID),
	}
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
