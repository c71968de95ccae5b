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

type HotelFilter struct {
	CityID *uuid.UUID
	Search string
	Limit  int
	Offset int
}

type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Hotel, error)
	FindAll(ctx context.Context, filter HotelFilter) ([]*entity.Hotel, error)
	Count(ctx context.Context, filter HotelFilter) (int64, error)
	Update(ctx context.Context, hotel *entity.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Relations
	IsReferencedByTrip(ctx context.Context, id uuid.UUID) (bool, error)
	SyncFacilities(ctx context.Context, hotelID uuid.UUID, facilityIDs []uuid.UUID) error
}

type hotelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHotelRepository(db database.PgxIface, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

const hotelSelect = `
	SELECT h.id, h.city_id, h.name, h.address, h.stars, h.description,
	       h.created_at, h.updated_at, c.name
	FROM hotels h
	JOIN cities c ON c.id = h.city_id
`

func scanHotel(row pgx.Row) (*entity.Hotel, error) {
	var h entity.Hotel
	err := row.Scan(
		&h.ID,
		&h.CityID,
		&h.Name,
		&h.Address,
		&h.Stars,
		&h.Description,
		&h.CreatedAt,
		&h.UpdatedAt,
		&h.CityName,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		INSERT INTO hotels (id, city_id, name, address, stars, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		hotel.ID,
		hotel.CityID,
		hotel.Name,
		hotel.Address,
		hotel.Stars,
		hotel.Description,
		hotel.CreatedAt,
		hotel.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create hotel", zap.Error(err), zap.String("name", hotel.Name))
		return fmt.Errorf("create hotel %s: %w", hotel.Name, wrapDuplicate(err))
	}

	return nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	hotel, err := scanHotel(database.Conn(ctx, r.db).QueryRow(ctx, hotelSelect+` WHERE h.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel by ID", zap.Error(err), zap.String("hotel_id", id.String()))
		return nil, fmt.Errorf("find hotel by ID %s: %w", id.String(), err)
	}

	return hotel, nil
}

func (r *hotelRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Hotel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, hotelSelect+` WHERE h.id = ANY($1) ORDER BY h.name`, ids)
}

func (r *hotelRepository) FindAll(ctx context.Context, filter HotelFilter) ([]*entity.Hotel, error) {
	query := hotelSelect + `
		WHERE ($1::uuid IS NULL OR h.city_id = $1)
		  AND ($2 = '' OR h.name ILIKE '%' || $2 || '%')
		ORDER BY h.name
		LIMIT $3 OFFSET $4
	`
	return r.list(ctx, query, filter.CityID, filter.Search, filter.Limit, filter.Offset)
}

func (r *hotelRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Hotel, error) {
	rows, err := database.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list hotels", zap.Error(err))
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	return hotels, rows.Err()
}

func (r *hotelRepository) Count(ctx context.Context, filter HotelFilter) (int64, error) {
	query := `
		SELECT COUNT(*) FROM hotels h
		WHERE ($1::uuid IS NULL OR h.city_id = $1)
		  AND ($2 = '' OR h.name ILIKE '%' || $2 || '%')
	`

	var count int64
	if err := database.Conn(ctx, r.db).QueryRow(ctx, query, filter.CityID, filter.Search).Scan(&count); err != nil {
		r.log.Error("Failed to count hotels", zap.Error(err))
		return 0, fmt.Errorf("count hotels: %w", err)
	}

	return count, nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		UPDATE hotels
		SET city_id = $2, name = $3, address = $4, stars = $5, description = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		hotel.ID,
		hotel.CityID,
		hotel.Name,
		hotel.Address,
		hotel.Stars,
		hotel.Description,
		hotel.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update hotel", zap.Error(err), zap.String("hotel_id", hotel.ID.String()))
		return fmt.Errorf("update hotel %s: %w", hotel.ID.String(), wrapDuplicate(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", hotel.ID.String())
	}

	return nil
}

func (r *hotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM hotels WHERE id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete hotel", zap.Error(err), zap.String("hotel_id", id.String()))
		return fmt.Errorf("delete hotel %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", id.String())
	}

	r.log.Info("Hotel deleted", zap.String("hotel_id", id.String()))
	return nil
}

func (r *hotelRepository) IsReferencedByTrip(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM trip_hotels WHERE hotel_id = $1)`

	var exists bool
	if err := database.Conn(ctx, r.db).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check hotel trips", zap.Error(err), zap.String("hotel_id", id.String()))
		return false, fmt.Errorf("check trips of hotel %s: %w", id.String(), err)
	}

	return exists, nil
}

// SyncFacilities replaces the hotel's facility set. Run it inside a transaction.
func (r *hotelRepository) SyncFacilities(ctx context.Context, hotelID uuid.UUID, facilityIDs []uuid.UUID) error {
	conn := database.Conn(ctx, r.db)

	if _, err := conn.Exec(ctx, `DELETE FROM hotel_facilities WHERE hotel_id = $1`, hotelID); err != nil {
		r.log.Error("Failed to clear hotel facilities", zap.Error(err), zap.String("hotel_id", hotelID.String()))
		return fmt.Errorf("clear facilities of hotel %s: %w", hotelID.String(), err)
	}

	if len(facilityIDs) == 0 {
		return nil
	}

	query := `INSERT INTO hotel_facilities (hotel_id, facility_id, created_at) VALUES `
	args := make([]any, 0, len(facilityIDs)*3)
	now := time.Now()

	for i, facilityID := range facilityIDs {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, hotelID, facilityID, now)
	}

	if _, err := conn.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to insert hotel facilities",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
			zap.Int("count", len(facilityIDs)),
		)
		return fmt.Errorf("insert facilities of hotel %s: %w", hotelID.String(), err)
	}

	return nil
}
