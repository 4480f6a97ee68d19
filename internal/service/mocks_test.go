package service_test

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/booking-api/internal/domain"
	"github.com/phrazzld/booking-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// failingServiceStore is a testify mock of store.AppointmentServiceStore
// for expectation-driven failure cases.
type failingServiceStore struct {
	mock.Mock
}

var _ store.AppointmentServiceStore = (*failingServiceStore)(nil)

func (m *failingServiceStore) Create(ctx context.Context, svc *domain.AppointmentService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *failingServiceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppointmentService), args.Error(1)
}

func (m *failingServiceStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.AppointmentServicePatch,
) (*domain.AppointmentService, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppointmentService), args.Error(1)
}

func (m *failingServiceStore) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppointmentService), args.Error(1)
}

func (m *failingServiceStore) List(
	ctx context.Context,
	params store.ListParams,
) ([]*domain.AppointmentService, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.AppointmentService), args.Int(1), args.Error(2)
}

func (m *failingServiceStore) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *failingServiceStore) WithTx(*sql.Tx) store.AppointmentServiceStore {
	return m
}
