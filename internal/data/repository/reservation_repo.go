package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationFilter struct {
	UserID *uuid.UUID
	TripID *uuid.UUID
	Status *entity.ReservationStatus
	Limit  int
	Offset int
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindAll(ctx context.Context, filter ReservationFilter) ([]*entity.Reservation, error)
	Count(ctx context.Context, filter ReservationFilter) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus, canceledBy *uuid.UUID, updatedAt time.Time) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationSelect = `
	SELECT r.id, r.user_id, r.trip_id, r.status, r.number_of_tickets, r.canceled_by,
	       r.created_at, r.updated_at, cu.role, t.name, t.price, u.name
	FROM reservations r
	JOIN trips t ON t.id = r.trip_id
	JOIN users u ON u.id = r.user_id
	LEFT JOIN users cu ON cu.id = r.canceled_by
`

const reservationWhere = `
	WHERE ($1::uuid IS NULL OR r.user_id = $1)
	  AND ($2::uuid IS NULL OR r.trip_id = $2)
	  AND ($3::text IS NULL OR r.status = $3)
`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var res entity.Reservation
	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.TripID,
		&res.Status,
		&res.NumberOfTickets,
		&res.CanceledBy,
		&res.CreatedAt,
		&res.UpdatedAt,
		&res.CanceledByRole,
		&res.TripName,
		&res.TripPrice,
		&res.UserName,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, user_id, trip_id, status, number_of_tickets, canceled_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		reservation.ID,
		reservation.UserID,
		reservation.TripID,
		string(reservation.Status),
		reservation.NumberOfTickets,
		reservation.CanceledBy,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", reservation.UserID.String()),
			zap.String("trip_id", reservation.TripID.String()),
		)
		return fmt.Errorf("create reservation: %w", err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return r.findOne(ctx, reservationSelect+` WHERE r.id = $1`, id)
}

// FindByIDForUpdate locks the reservation row until the surrounding transaction ends.
func (r *reservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return r.findOne(ctx, reservationSelect+` WHERE r.id = $1 FOR UPDATE OF r`, id)
}

func (r *reservationRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.Reservation, error) {
	res, err := scanReservation(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID", zap.Error(err), zap.String("reservation_id", id.String()))
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return res, nil
}

func statusArg(status *entity.ReservationStatus) *string {
	if status == nil {
		return nil
	}
	s := string(*status)
	return &s
}

func (r *reservationRepository) FindAll(ctx context.Context, filter ReservationFilter) ([]*entity.Reservation, error) {
	query := reservationSelect + reservationWhere + `
		ORDER BY r.created_at DESC
		LIMIT $4 OFFSET $5
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query,
		filter.UserID,
		filter.TripID,
		statusArg(filter.Status),
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		r.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

func (r *reservationRepository) Count(ctx context.Context, filter ReservationFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations r` + reservationWhere

	var count int64
	err := database.Conn(ctx, r.db).QueryRow(ctx, query,
		filter.UserID,
		filter.TripID,
		statusArg(filter.Status),
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}

	return count, nil
}

// UpdateStatus sets the status. A recorded canceler is never overwritten or cleared.
func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus, canceledBy *uuid.UUID, updatedAt time.Time) error {
	query := `
		UPDATE reservations
		SET status = $2, canceled_by = COALESCE(canceled_by, $3), updated_at = $4
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id, string(status), canceledBy, updatedAt)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update status of reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	return nil
}
