package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/booking-api/internal/domain"
	"github.com/phrazzld/booking-api/internal/mocks"
	"github.com/phrazzld/booking-api/internal/platform/logger"
	"github.com/phrazzld/booking-api/internal/store"
)

func newTestSeeder(t *testing.T) (*seeder, sqlmock.Sqlmock, *mocks.MockUserStore, *mocks.MockAppointmentServiceStore) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log, _ := logger.NewTestLogger(t)
	users := mocks.NewMockUserStore()
	services := mocks.NewMockAppointmentServiceStore()
	return &seeder{
		db:       db,
		users:    users,
		services: services,
		logger:   log,
		rng:      rand.New(rand.NewPCG(1, 2)),
	}, mock, users, services
}

func TestSeeder_Run(t *testing.T) {
	s, mock, users, services := newTestSeeder(t)
	stale := &domain.AppointmentService{ID: uuid.New(), Name: "stale", Price: 1}
	services.Put(stale)
	require.NoError(t, users.Create(context.Background(), domain.NewUser("old@example.com", "Password1!", "Old")))

	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, s.run(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Len(t, users.Users, seedUserCount)
	assert.NotContains(t, users.Users, "old@example.com")
	u3, ok := users.Users["user3@example.com"]
	require.True(t, ok)
	assert.Equal(t, "User 3", u3.Name)
	assert.Equal(t, "hashed:Password3!", u3.HashedPassword)
	assert.True(t, domain.ValidatePassword("Password3!"))

	list, total, err := services.List(context.Background(), store.ListParams{Limit: 100, IncludeRemoved: true})
	require.NoError(t, err)
	assert.Equal(t, len(seedServiceNames), total)

	shops := map[uuid.UUID]int{}
	for _, svc := range list {
		assert.NotEqual(t, "stale", svc.Name)
		assert.GreaterOrEqual(t, svc.Price, 20)
		assert.Less(t, svc.Price, 120)
		assert.Contains(t, seedShowTimes, *svc.ShowTime)
		assert.GreaterOrEqual(t, svc.Order, 1)
		assert.LessOrEqual(t, svc.Order, len(seedServiceNames))
		require.NotNil(t, svc.ShopID)
		shops[*svc.ShopID]++
	}
	assert.Len(t, shops, 2)
	for _, n := range shops {
		assert.Equal(t, len(seedServiceNames)/2, n)
	}
}

func TestSeeder_SkipsDuplicateUsers(t *testing.T) {
	s, mock, users, _ := newTestSeeder(t)
	users.CreateFn = func(_ context.Context, u *domain.User) error {
		if u.Email == "user2@example.com" {
			return store.ErrEmailExists
		}
		if u.Email == "user4@example.com" {
			return errors.New("connection reset")
		}
		return nil
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	assert.NoError(t, s.run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_ClearFailureRollsBack(t *testing.T) {
	s, mock, _, services := newTestSeeder(t)
	services.DeleteAllFn = func(context.Context) error { return errors.New("permission denied") }

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := s.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear data")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_ServiceFailureStops(t *testing.T) {
	s, mock, _, services := newTestSeeder(t)
	calls := 0
	services.CreateFn = func(context.Context, *domain.AppointmentService) error {
		calls++
		return errors.New("insert failed")
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := s.run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "appointment_service", storeErr.Entity)
	assert.Equal(t, "seed", storeErr.Operation)
	assert.Contains(t, err.Error(), "insert failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}
