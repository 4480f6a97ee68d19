package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/booking-api/internal/domain"
	"github.com/phrazzld/booking-api/internal/platform/logger"
	"github.com/phrazzld/booking-api/internal/store"
)

// PostgresAppointmentServiceStore implements store.AppointmentServiceStore
// on the appointment_services table.
type PostgresAppointmentServiceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAppointmentServiceStore creates the store. A nil logger uses slog.Default().
func NewPostgresAppointmentServiceStore(db store.DBTX, logger *slog.Logger) *PostgresAppointmentServiceStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAppointmentServiceStore{
		db:     db,
		logger: logger.With(slog.String("component", "appointment_service_store")),
	}
}

var _ store.AppointmentServiceStore = (*PostgresAppointmentServiceStore)(nil)

// WithTx implements store.AppointmentServiceStore.WithTx.
func (s *PostgresAppointmentServiceStore) WithTx(tx *sql.Tx) store.AppointmentServiceStore {
	return &PostgresAppointmentServiceStore{db: tx, logger: s.logger}
}

const serviceColumns = `id, name, description, price, show_time, sort_order,
	is_removed, is_public, shop_id, created_at, updated_at`

func scanAppointmentService(row interface{ Scan(...any) error }) (*domain.AppointmentService, error) {
	var (
		svc         domain.AppointmentService
		description sql.NullString
		showTime    sql.NullInt64
		shopID      uuid.NullUUID
	)
	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&description,
		&svc.Price,
		&showTime,
		&svc.Order,
		&svc.IsRemoved,
		&svc.IsPublic,
		&shopID,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		svc.Description = &description.String
	}
	if showTime.Valid {
		v := int(showTime.Int64)
		svc.ShowTime = &v
	}
	if shopID.Valid {
		svc.ShopID = &shopID.UUID
	}
	return &svc, nil
}

// Create implements store.AppointmentServiceStore.Create.
func (s *PostgresAppointmentServiceStore) Create(ctx context.Context, svc *domain.AppointmentService) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := svc.Validate(); err != nil {
		log.Warn("appointment service validation failed during create",
			slog.String("error", err.Error()),
			slog.String("service_id", svc.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO appointment_services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(ctx, query,
		svc.ID,
		svc.Name,
		svc.Description,
		svc.Price,
		svc.ShowTime,
		svc.Order,
		svc.IsRemoved,
		svc.IsPublic,
		svc.ShopID,
		svc.CreatedAt,
		svc.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create appointment service",
			slog.String("error", err.Error()),
			slog.String("service_id", svc.ID.String()))
		return MapError(err)
	}

	log.Info("appointment service created", slog.String("service_id", svc.ID.String()))
	return nil
}

// GetByID implements store.AppointmentServiceStore.GetByID.
func (s *PostgresAppointmentServiceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + serviceColumns + ` FROM appointment_services WHERE id = $1 AND is_removed = FALSE`
	svc, err := scanAppointmentService(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("appointment service not found", slog.String("service_id", id.String()))
			return nil, store.ErrServiceNotFound
		}
		log.Error("failed to get appointment service",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return nil, MapError(err)
	}
	return svc, nil
}

// Update implements store.AppointmentServiceStore.Update.
// Only the fields set in patch are written; updated_at always changes.
func (s *PostgresAppointmentServiceStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.AppointmentServicePatch,
) (*domain.AppointmentService, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Price != nil {
		set("price", *patch.Price)
	}
	if patch.ShowTime != nil {
		set("show_time", *patch.ShowTime)
	}
	if patch.Order != nil {
		set("sort_order", *patch.Order)
	}
	if patch.IsPublic != nil {
		set("is_public", *patch.IsPublic)
	}
	if patch.ShopID != nil {
		set("shop_id", *patch.ShopID)
	}
	set("updated_at", time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE appointment_services SET %s WHERE id = $%d AND is_removed = FALSE RETURNING %s`,
		strings.Join(sets, ", "), len(args), serviceColumns,
	)

	svc, err := scanAppointmentService(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no current appointment service to update", slog.String("service_id", id.String()))
			return nil, store.ErrServiceNotFound
		}
		log.Error("failed to update appointment service",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return nil, MapError(err)
	}

	log.Info("appointment service updated", slog.String("service_id", id.String()))
	return svc, nil
}

// SoftDelete implements store.AppointmentServiceStore.SoftDelete.
// A row that is already removed keeps its updated_at.
func (s *PostgresAppointmentServiceStore) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.AppointmentService, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE appointment_services
		SET is_removed = TRUE,
			updated_at = CASE WHEN is_removed THEN updated_at ELSE $2 END
		WHERE id = $1
		RETURNING ` + serviceColumns

	svc, err := scanAppointmentService(s.db.QueryRowContext(ctx, query, id, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrServiceNotFound
		}
		log.Error("failed to soft-delete appointment service",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return nil, MapError(err)
	}

	log.Info("appointment service removed", slog.String("service_id", id.String()))
	return svc, nil
}

// List implements store.AppointmentServiceStore.List.
func (s *PostgresAppointmentServiceStore) List(
	ctx context.Context,
	params store.ListParams,
) ([]*domain.AppointmentService, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where := ` WHERE is_removed = FALSE`
	if params.IncludeRemoved {
		where = ""
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointment_services`+where).Scan(&total); err != nil {
		log.Error("failed to count appointment services", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	query := `SELECT ` + serviceColumns + ` FROM appointment_services` + where +
		` ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := s.db.QueryContext(ctx, query, params.Limit, params.Offset)
	if err != nil {
		log.Error("failed to list appointment services", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	services := make([]*domain.AppointmentService, 0, params.Limit)
	for rows.Next() {
		svc, err := scanAppointmentService(rows)
		if err != nil {
			log.Error("failed to scan appointment service", slog.String("error", err.Error()))
			return nil, 0, err
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating appointment services", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	log.Debug("listed appointment services",
		slog.Int("count", len(services)),
		slog.Int("total", total),
		slog.Bool("include_removed", params.IncludeRemoved))
	return services, total, nil
}

// DeleteAll implements store.AppointmentServiceStore.DeleteAll.
func (s *PostgresAppointmentServiceStore) DeleteAll(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM appointment_services`)
	if err != nil {
		log.Error("failed to delete appointment services", slog.String("error", err.Error()))
		return MapError(err)
	}
	if n, err := result.RowsAffected(); err == nil {
		log.Info("deleted all appointment services", slog.Int64("count", n))
	}
	return nil
}
