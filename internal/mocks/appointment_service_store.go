package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/booking-api/internal/domain"
	"github.com/phrazzld/booking-api/internal/store"
)

// MockAppointmentServiceStore implements store.AppointmentServiceStore with
// an in-memory table. Function fields override individual methods.
type MockAppointmentServiceStore struct {
	CreateFn     func(ctx context.Context, svc *domain.AppointmentService) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error)
	UpdateFn     func(ctx context.Context, id uuid.UUID, patch domain.AppointmentServicePatch) (*domain.AppointmentService, error)
	SoftDeleteFn func(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error)
	ListFn       func(ctx context.Context, params store.ListParams) ([]*domain.AppointmentService, int, error)
	DeleteAllFn  func(ctx context.Context) error

	// LastListParams records the most recent List call.
	LastListParams store.ListParams

	mu   sync.Mutex
	rows map[uuid.UUID]*domain.AppointmentService
}

var _ store.AppointmentServiceStore = (*MockAppointmentServiceStore)(nil)

// NewMockAppointmentServiceStore creates an empty in-memory store.
func NewMockAppointmentServiceStore() *MockAppointmentServiceStore {
	return &MockAppointmentServiceStore{rows: make(map[uuid.UUID]*domain.AppointmentService)}
}

// Put stores a copy of svc as-is, removed or not.
func (m *MockAppointmentServiceStore) Put(svc *domain.AppointmentService) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *svc
	m.rows[svc.ID] = &row
}

// Create implements store.AppointmentServiceStore.
func (m *MockAppointmentServiceStore) Create(ctx context.Context, svc *domain.AppointmentService) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, svc)
	}
	if err := svc.Validate(); err != nil {
		return err
	}
	m.Put(svc)
	return nil
}

// GetByID implements store.AppointmentServiceStore.
func (m *MockAppointmentServiceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || row.IsRemoved {
		return nil, store.ErrServiceNotFound
	}
	found := *row
	return &found, nil
}

// Update implements store.AppointmentServiceStore.
func (m *MockAppointmentServiceStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.AppointmentServicePatch,
) (*domain.AppointmentService, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || row.IsRemoved {
		return nil, store.ErrServiceNotFound
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.Description != nil {
		row.Description = patch.Description
	}
	if patch.Price != nil {
		row.Price = *patch.Price
	}
	if patch.ShowTime != nil {
		row.ShowTime = patch.ShowTime
	}
	if patch.Order != nil {
		row.Order = *patch.Order
	}
	if patch.IsPublic != nil {
		row.IsPublic = *patch.IsPublic
	}
	if patch.ShopID != nil {
		row.ShopID = patch.ShopID
	}
	row.UpdatedAt = time.Now().UTC()
	updated := *row
	return &updated, nil
}

// SoftDelete implements store.AppointmentServiceStore.
func (m *MockAppointmentServiceStore) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error) {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, store.ErrServiceNotFound
	}
	if !row.IsRemoved {
		row.IsRemoved = true
		row.UpdatedAt = time.Now().UTC()
	}
	removed := *row
	return &removed, nil
}

// List implements store.AppointmentServiceStore, newest first.
func (m *MockAppointmentServiceStore) List(
	ctx context.Context,
	params store.ListParams,
) ([]*domain.AppointmentService, int, error) {
	m.mu.Lock()
	m.LastListParams = params
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*domain.AppointmentService, 0, len(m.rows))
	for _, row := range m.rows {
		if row.IsRemoved && !params.IncludeRemoved {
			continue
		}
		r := *row
		all = append(all, &r)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() > all[j].ID.String()
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	start := min(max(params.Offset, 0), total)
	end := min(start+max(params.Limit, 0), total)
	return all[start:end], total, nil
}

// DeleteAll implements store.AppointmentServiceStore.
func (m *MockAppointmentServiceStore) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = make(map[uuid.UUID]*domain.AppointmentService)
	return nil
}

// WithTx implements store.AppointmentServiceStore. The mock ignores transactions.
func (m *MockAppointmentServiceStore) WithTx(*sql.Tx) store.AppointmentServiceStore {
	return m
}
