package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/phrazzld/booking-api/internal/domain"
	"github.com/phrazzld/booking-api/internal/platform/postgres"
	"github.com/phrazzld/booking-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceRowColumns = []string{
	"id", "name", "description", "price", "show_time", "sort_order",
	"is_removed", "is_public", "shop_id", "created_at", "updated_at",
}

func serviceRow(rows *sqlmock.Rows, id uuid.UUID, name string, removed bool, createdAt time.Time) *sqlmock.Rows {
	return rows.AddRow(id.String(), name, nil, 40, int64(45), 1, removed, true, nil, createdAt, createdAt)
}

func TestAppointmentServiceStore_Create(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	desc := "Hot towel and straight razor"
	svc, err := domain.NewAppointmentService(domain.NewAppointmentServiceParams{
		Name:        "Hot Towel Shave",
		Description: &desc,
		Price:       45,
	})
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO appointment_services")).
		WithArgs(svc.ID, "Hot Towel Shave", desc, 45, nil, 0, false, true, nil,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Create(context.Background(), svc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentServiceStore_CreateInvalid(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	err := s.Create(context.Background(), &domain.AppointmentService{ID: uuid.New(), Name: "Nothing", Price: 0})

	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentServiceStore_CreateCheckViolation(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	svc, err := domain.NewAppointmentService(domain.NewAppointmentServiceParams{Name: "Manicure", Price: 20})
	require.NoError(t, err)
	mock.ExpectExec("INSERT INTO appointment_services").
		WillReturnError(newPgError(pgerrcode.CheckViolation))

	err = s.Create(context.Background(), svc)

	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestAppointmentServiceStore_GetByIDExcludesRemoved(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	id := uuid.New()
	shopID := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM appointment_services WHERE id = $1 AND is_removed = FALSE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(serviceRowColumns).
			AddRow(id.String(), "Pedicure", "Feet first", 30, nil, 2, false, false, shopID.String(), now, now))

	svc, err := s.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, svc.ID)
	assert.Equal(t, "Feet first", *svc.Description)
	assert.Nil(t, svc.ShowTime)
	assert.Equal(t, 2, svc.Order)
	assert.False(t, svc.IsPublic)
	require.NotNil(t, svc.ShopID)
	assert.Equal(t, shopID, *svc.ShopID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentServiceStore_GetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	mock.ExpectQuery("FROM appointment_services").WillReturnRows(sqlmock.NewRows(serviceRowColumns))

	_, err := s.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, store.ErrServiceNotFound)
}

func TestAppointmentServiceStore_UpdateSetsOnlyPatchedFields(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	id := uuid.New()
	price := 55
	name := "Deluxe Shave"
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE appointment_services SET name = $1, price = $2, updated_at = $3 WHERE id = $4 AND is_removed = FALSE RETURNING")).
		WithArgs(name, price, sqlmock.AnyArg(), id).
		WillReturnRows(serviceRow(sqlmock.NewRows(serviceRowColumns), id, name, false, now))

	svc, err := s.Update(context.Background(), id, domain.AppointmentServicePatch{Name: &name, Price: &price})

	require.NoError(t, err)
	assert.Equal(t, name, svc.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentServiceStore_UpdateEmptyPatchTouchesUpdatedAt(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE appointment_services SET updated_at = $1 WHERE id = $2 AND is_removed = FALSE")).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnRows(serviceRow(sqlmock.NewRows(serviceRowColumns), id, "Manicure", false, time.Now()))

	_, err := s.Update(context.Background(), id, domain.AppointmentServicePatch{})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentServiceStore_UpdateNotFound(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	mock.ExpectQuery("UPDATE appointment_services").WillReturnError(sql.ErrNoRows)

	price := 10
	_, err := s.Update(context.Background(), uuid.New(), domain.AppointmentServicePatch{Price: &price})

	assert.ErrorIs(t, err, store.ErrServiceNotFound)
}

func TestAppointmentServiceStore_UpdateInvalidPatch(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	price := -1
	_, err := s.Update(context.Background(), uuid.New(), domain.AppointmentServicePatch{Price: &price})

	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentServiceStore_SoftDelete(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SET is_removed = TRUE")).
		WithArgs(id, sqlmock.AnyArg()).
		WillReturnRows(serviceRow(sqlmock.NewRows(serviceRowColumns), id, "Manicure", true, time.Now()))

	svc, err := s.SoftDelete(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, svc.IsRemoved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentServiceStore_SoftDeleteUnknownID(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	mock.ExpectQuery("SET is_removed = TRUE").WillReturnRows(sqlmock.NewRows(serviceRowColumns))

	_, err := s.SoftDelete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, store.ErrServiceNotFound)
}

func TestAppointmentServiceStore_List(t *testing.T) {
	now := time.Now().UTC()
	first, second := uuid.New(), uuid.New()

	tests := []struct {
		name           string
		includeRemoved bool
		countQuery     string
		pageQuery      string
	}{
		{
			name:           "include removed",
			includeRemoved: true,
			countQuery:     "SELECT COUNT(*) FROM appointment_services",
			pageQuery:      "FROM appointment_services ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2",
		},
		{
			name:           "exclude removed",
			includeRemoved: false,
			countQuery:     "SELECT COUNT(*) FROM appointment_services WHERE is_removed = FALSE",
			pageQuery:      "FROM appointment_services WHERE is_removed = FALSE ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			s := postgres.NewPostgresAppointmentServiceStore(db, nil)

			mock.ExpectQuery(regexp.QuoteMeta(tt.countQuery) + "$").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
			rows := sqlmock.NewRows(serviceRowColumns)
			serviceRow(rows, first, "Newest", false, now)
			serviceRow(rows, second, "Older", tt.includeRemoved, now.Add(-time.Minute))
			mock.ExpectQuery(regexp.QuoteMeta(tt.pageQuery)).
				WithArgs(5, 5).
				WillReturnRows(rows)

			services, total, err := s.List(context.Background(), store.ListParams{
				Limit: 5, Offset: 5, IncludeRemoved: tt.includeRemoved,
			})

			require.NoError(t, err)
			assert.Equal(t, 12, total)
			require.Len(t, services, 2)
			assert.Equal(t, first, services[0].ID)
			assert.Equal(t, second, services[1].ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAppointmentServiceStore_ListCountError(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	dbErr := errors.New("relation does not exist")
	mock.ExpectQuery("SELECT COUNT").WillReturnError(dbErr)

	_, _, err := s.List(context.Background(), store.ListParams{Limit: 10})

	assert.ErrorIs(t, err, dbErr)
}

func TestAppointmentServiceStore_ListEmpty(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresAppointmentServiceStore(db, nil)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("ORDER BY created_at DESC").WillReturnRows(sqlmock.NewRows(serviceRowColumns))

	services, total, err := s.List(context.Background(), store.ListParams{Limit: 10, IncludeRemoved: true})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, services)
	assert.Empty(t, services)
}
