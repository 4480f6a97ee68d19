package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/phrazzld/booking-api/internal/domain"
	"github.com/phrazzld/booking-api/internal/platform/postgres"
	"github.com/phrazzld/booking-api/internal/store"
)

// seedUserCount is the number of demo accounts the seed command creates.
const seedUserCount = 10

var seedServiceNames = []string{
	"Classic Haircut",
	"Beard Trim & Shape",
	"Hot Towel Shave",
	"Hair Coloring",
	"Manicure",
	"Pedicure",
	"Relaxing Facial",
	"Deep Tissue Massage",
	"Swedish Massage",
	"Aromatherapy Session",
}

var seedShowTimes = []int{30, 45, 60, 90}

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with demo users and services",
		Long: `Delete every user and appointment service, then create ten demo
users (user1@example.com / Password1! ...) and ten services split across
two shops.`,
		RunE: runSeed,
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := openDatabase(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	s := &seeder{
		db:       db,
		users:    postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, log),
		services: postgres.NewPostgresAppointmentServiceStore(db, log),
		logger:   log,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	return s.run(cmd.Context())
}

// seeder clears and repopulates the database with demo data.
type seeder struct {
	db       store.TxBeginner
	users    store.UserStore
	services store.AppointmentServiceStore
	logger   *slog.Logger
	rng      *rand.Rand
}

func (s *seeder) run(ctx context.Context) error {
	s.logger.Info("clearing existing data")
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.services.WithTx(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return s.users.WithTx(tx).DeleteAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	s.seedUsers(ctx)

	if err := s.seedServices(ctx); err != nil {
		return err
	}

	s.logger.Info("seeding complete")
	return nil
}

// seedUsers creates the demo accounts. Existing emails are skipped and other
// failures are logged without aborting the batch.
func (s *seeder) seedUsers(ctx context.Context) {
	for i := 1; i <= seedUserCount; i++ {
		email := fmt.Sprintf("user%d@example.com", i)
		user := domain.NewUser(email, fmt.Sprintf("Password%d!", i), fmt.Sprintf("User %d", i))

		if err := s.users.Create(ctx, user); err != nil {
			if store.IsDuplicateError(err) {
				s.logger.Info("user already exists, skipping", slog.Int("index", i))
				continue
			}
			s.logger.Error("failed to create user",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			continue
		}
		s.logger.Info("created user", slog.Int("index", i), slog.String("user_id", user.ID.String()))
	}
}

// seedServices creates one service per name, the first half in one shop
// and the rest in another.
func (s *seeder) seedServices(ctx context.Context) error {
	shops := [2]uuid.UUID{uuid.New(), uuid.New()}
	half := len(seedServiceNames) / 2

	for i, name := range seedServiceNames {
		shop := shops[0]
		if i >= half {
			shop = shops[1]
		}
		description := fmt.Sprintf("A wonderful %s experience provided by our top professionals.",
			strings.ToLower(name))
		showTime := seedShowTimes[s.rng.IntN(len(seedShowTimes))]
		order := i + 1

		svc, err := domain.NewAppointmentService(domain.NewAppointmentServiceParams{
			Name:        name,
			Description: &description,
			Price:       s.rng.IntN(100) + 20,
			ShowTime:    &showTime,
			Order:       &order,
			ShopID:      &shop,
		})
		if err != nil {
			return fmt.Errorf("failed to build service %q: %w", name, err)
		}
		if err := s.services.Create(ctx, svc); err != nil {
			return store.NewStoreError("appointment_service", "seed", fmt.Sprintf("failed to create service %q", name), err)
		}
		s.logger.Info("created service", slog.String("name", name))
	}
	return nil
}
