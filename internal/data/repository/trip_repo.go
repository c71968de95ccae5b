package repository

import (
	"context"
	"errors"
	"fmt"

	"umrah-booking/internal/data/entity"
	"umrah-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TripFilter struct {
	IsActive *bool
	Search   string
	Limit    int
	Offset   int
}

type TripRepository interface {
	// CRUD Trip
	Create(ctx context.Context, trip *entity.Trip) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	FindByName(ctx context.Context, name string) (*entity.Trip, error)
	FindAll(ctx context.Context, filter TripFilter) ([]*entity.Trip, error)
	Count(ctx context.Context, filter TripFilter) (int64, error)
	Update(ctx context.Context, trip *entity.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error

	// trip_hotels pivot
	SyncHotels(ctx context.Context, tripID uuid.UUID, hotels []entity.TripHotel) error
	FindHotels(ctx context.Context, tripID uuid.UUID) ([]entity.TripHotelDetail, error)
	DeleteHotels(ctx context.Context, tripID uuid.UUID) error
}

type tripRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTripRepository(db database.PgxIface, log *zap.Logger) TripRepository {
	return &tripRepository{
		db:  db,
		log: log.With(zap.String("repository", "trip")),
	}
}

const tripColumns = `id, name, price, is_active, start_date, end_date, description, created_at, updated_at`

func scanTrip(row pgx.Row) (*entity.Trip, error) {
	var t entity.Trip
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Price,
		&t.IsActive,
		&t.StartDate,
		&t.EndDate,
		&t.Description,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		trip.ID,
		trip.Name,
		trip.Price,
		trip.IsActive,
		trip.StartDate,
		trip.EndDate,
		trip.Description,
		trip.CreatedAt,
		trip.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create trip", zap.Error(err), zap.String("name", trip.Name))
		return fmt.Errorf("create trip %s: %w", trip.Name, wrapDuplicate(err))
	}

	return nil
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip, err := scanTrip(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find trip by ID", zap.Error(err), zap.String("trip_id", id.String()))
		return nil, fmt.Errorf("find trip by ID %s: %w", id.String(), err)
	}

	return trip, nil
}

func (r *tripRepository) FindByName(ctx context.Context, name string) (*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE LOWER(name) = LOWER($1)`

	trip, err := scanTrip(database.Conn(ctx, r.db).QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find trip by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find trip by name %s: %w", name, err)
	}

	return trip, nil
}

func (r *tripRepository) FindAll(ctx context.Context, filter TripFilter) ([]*entity.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE ($1::boolean IS NULL OR is_active = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		ORDER BY start_date ASC, name ASC
		LIMIT $3 OFFSET $4
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, filter.IsActive, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		r.log.Error("Failed to list trips", zap.Error(err))
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	var trips []*entity.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			r.log.Error("Failed to scan trip row", zap.Error(err))
			return nil, fmt.Errorf("scan trip row: %w", err)
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

func (r *tripRepository) Count(ctx context.Context, filter TripFilter) (int64, error) {
	query := `
		SELECT COUNT(*) FROM trips
		WHERE ($1::boolean IS NULL OR is_active = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
	`

	var count int64
	if err := database.Conn(ctx, r.db).QueryRow(ctx, query, filter.IsActive, filter.Search).Scan(&count); err != nil {
		r.log.Error("Failed to count trips", zap.Error(err))
		return 0, fmt.Errorf("count trips: %w", err)
	}

	return count, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	query := `
		UPDATE trips
		SET name = $2, price = $3, is_active = $4, start_date = $5, end_date = $6,
		    description = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		trip.ID,
		trip.Name,
		trip.Price,
		trip.IsActive,
		trip.StartDate,
		trip.EndDate,
		trip.Description,
		trip.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update trip", zap.Error(err), zap.String("trip_id", trip.ID.String()))
		return fmt.Errorf("update trip %s: %w", trip.ID.String(), wrapDuplicate(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trip %s not found", trip.ID.String())
	}

	return nil
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM trips WHERE id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete trip", zap.Error(err), zap.String("trip_id", id.String()))
		return fmt.Errorf("delete trip %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trip %s not found", id.String())
	}

	r.log.Info("Trip deleted", zap.String("trip_id", id.String()))
	return nil
}

// SyncHotels replaces every pivot row of the trip. Run it inside a transaction.
func (r *tripRepository) SyncHotels(ctx context.Context, tripID uuid.UUID, hotels []entity.TripHotel) error {
	if err := r.DeleteHotels(ctx, tripID); err != nil {
		return err
	}

	if len(hotels) == 0 {
		return nil
	}

	query := `INSERT INTO trip_hotels (trip_id, hotel_id, number_of_nights, description) VALUES `
	args := make([]any, 0, len(hotels)*4)

	for i, h := range hotels {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
		args = append(args, tripID, h.HotelID, h.NumberOfNights, h.Description)
	}

	if _, err := database.Conn(ctx, r.db).Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to insert trip hotels",
			zap.Error(err),
			zap.String("trip_id", tripID.String()),
			zap.Int("count", len(hotels)),
		)
		return fmt.Errorf("insert hotels of trip %s: %w", tripID.String(), err)
	}

	return nil
}

func (r *tripRepository) DeleteHotels(ctx context.Context, tripID uuid.UUID) error {
	query := `DELETE FROM trip_hotels WHERE trip_id = $1`

	if _, err := database.Conn(ctx, r.db).Exec(ctx, query, tripID); err != nil {
		r.log.Error("Failed to clear trip hotels", zap.Error(err), zap.String("trip_id", tripID.String()))
		return fmt.Errorf("clear hotels of trip %s: %w", tripID.String(), err)
	}

	return nil
}

func (r *tripRepository) FindHotels(ctx context.Context, tripID uuid.UUID) ([]entity.TripHotelDetail, error) {
	query := `
		SELECT th.trip_id, th.hotel_id, th.number_of_nights, th.description,
		       h.name, h.stars, c.name
		FROM trip_hotels th
		JOIN hotels h ON h.id = th.hotel_id
		JOIN cities c ON c.id = h.city_id
		WHERE th.trip_id = $1
		ORDER BY h.name
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, tripID)
	if err != nil {
		r.log.Error("Failed to find trip hotels", zap.Error(err), zap.String("trip_id", tripID.String()))
		return nil, fmt.Errorf("find hotels of trip %s: %w", tripID.String(), err)
	}
	defer rows.Close()

	var details []entity.TripHotelDetail
	for rows.Next() {
		var d entity.TripHotelDetail
		err := rows.Scan(
			&d.TripID,
			&d.HotelID,
			&d.NumberOfNights,
			&d.Description,
			&d.HotelName,
			&d.Stars,
			&d.CityName,
		)
		if err != nil {
			r.log.Error("Failed to scan trip hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan trip hotel row: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}
