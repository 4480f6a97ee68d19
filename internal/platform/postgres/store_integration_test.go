//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/phrazzld/booking-api/internal/domain"
	"github.com/phrazzld/booking-api/internal/platform/postgres"
	"github.com/phrazzld/booking-api/internal/store"
	"github.com/phrazzld/booking-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewPostgresUserStore(tx, bcrypt.MinCost, nil)

		user := domain.NewUser("integration@example.com", "Password1!", "Integration")
		require.NoError(t, users.Create(ctx, user))

		byEmail, err := users.GetByEmail(ctx, "integration@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(byEmail.HashedPassword), []byte("Password1!")))

		byID, err := users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Integration", byID.Name)

		dup := domain.NewUser("integration@example.com", "Password1!", "Other")
		assert.ErrorIs(t, users.Create(ctx, dup), store.ErrEmailExists)

		_, err = users.GetByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestAppointmentServiceStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		services := postgres.NewPostgresAppointmentServiceStore(tx, nil)
		require.NoError(t, services.DeleteAll(ctx))

		base := time.Now().UTC().Add(-time.Hour)
		created := make([]*domain.AppointmentService, 0, 3)
		for i := 0; i < 3; i++ {
			svc, err := domain.NewAppointmentService(domain.NewAppointmentServiceParams{
				Name:  fmt.Sprintf("service-%d", i),
				Price: 10 + i,
			})
			require.NoError(t, err)
			svc.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			svc.UpdatedAt = svc.CreatedAt
			require.NoError(t, services.Create(ctx, svc))
			created = append(created, svc)
		}

		page, total, err := services.List(ctx, store.ListParams{Limit: 2, Offset: 0})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, page, 2)
		assert.Equal(t, "service-2", page[0].Name)
		assert.Equal(t, "service-1", page[1].Name)

		newPrice := 99
		updated, err := services.Update(ctx, created[0].ID, domain.AppointmentServicePatch{Price: &newPrice})
		require.NoError(t, err)
		assert.Equal(t, 99, updated.Price)
		assert.Equal(t, "service-0", updated.Name)
		assert.True(t, updated.UpdatedAt.After(created[0].UpdatedAt))

		removed, err := services.SoftDelete(ctx, created[0].ID)
		require.NoError(t, err)
		assert.True(t, removed.IsRemoved)

		_, err = services.SoftDelete(ctx, created[0].ID)
		assert.NoError(t, err)

		_, err = services.GetByID(ctx, created[0].ID)
		assert.ErrorIs(t, err, store.ErrServiceNotFound)

		_, err = services.Update(ctx, created[0].ID, domain.AppointmentServicePatch{Price: &newPrice})
		assert.ErrorIs(t, err, store.ErrServiceNotFound)

		_, visible, err := services.List(ctx, store.ListParams{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, visible)

		_, all, err := services.List(ctx, store.ListParams{Limit: 10, IncludeRemoved: true})
		require.NoError(t, err)
		assert.Equal(t, 3, all)
	})
}
