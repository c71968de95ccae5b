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

type CityRepository interface {
	Create(ctx context.Context, city *entity.City) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error)
	FindByName(ctx context.Context, name string) (*entity.City, error)
	FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.City, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, city *entity.City) error
	Delete(ctx context.Context, id uuid.UUID) error
	HasHotels(ctx context.Context, id uuid.UUID) (bool, error)
}

type cityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCityRepository(db database.PgxIface, log *zap.Logger) CityRepository {
	return &cityRepository{
		db:  db,
		log: log.With(zap.String("repository", "city")),
	}
}

func (r *cityRepository) Create(ctx context.Context, city *entity.City) error {
	query := `INSERT INTO cities (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query, city.ID, city.Name, city.CreatedAt, city.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create city", zap.Error(err), zap.String("name", city.Name))
		return fmt.Errorf("create city %s: %w", city.Name, wrapDuplicate(err))
	}

	return nil
}

func (r *cityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	query := `SELECT id, name, created_at, updated_at FROM cities WHERE id = $1`

	var city entity.City
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, id).Scan(&city.ID, &city.Name, &city.CreatedAt, &city.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find city by ID", zap.Error(err), zap.String("city_id", id.String()))
		return nil, fmt.Errorf("find city by ID %s: %w", id.String(), err)
	}

	return &city, nil
}

func (r *cityRepository) FindByName(ctx context.Context, name string) (*entity.City, error) {
	query := `SELECT id, name, created_at, updated_at FROM cities WHERE LOWER(name) = LOWER($1)`

	var city entity.City
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, name).Scan(&city.ID, &city.Name, &city.CreatedAt, &city.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find city by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find city by name %s: %w", name, err)
	}

	return &city, nil
}

func (r *cityRepository) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.City, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM cities
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, search, limit, offset)
	if err != nil {
		r.log.Error("Failed to list cities", zap.Error(err))
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var cities []*entity.City
	for rows.Next() {
		var city entity.City
		if err := rows.Scan(&city.ID, &city.Name, &city.CreatedAt, &city.UpdatedAt); err != nil {
			r.log.Error("Failed to scan city row", zap.Error(err))
			return nil, fmt.Errorf("scan city row: %w", err)
		}
		cities = append(cities, &city)
	}

	return cities, rows.Err()
}

func (r *cityRepository) Count(ctx context.Context, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM cities WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`

	var count int64
	if err := database.Conn(ctx, r.db).QueryRow(ctx, query, search).Scan(&count); err != nil {
		r.log.Error("Failed to count cities", zap.Error(err))
		return 0, fmt.Errorf("count cities: %w", err)
	}

	return count, nil
}

func (r *cityRepository) Update(ctx context.Context, city *entity.City) error {
	query := `UPDATE cities SET name = $2, updated_at = $3 WHERE id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, city.ID, city.Name, city.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update city", zap.Error(err), zap.String("city_id", city.ID.String()))
		return fmt.Errorf("update city %s: %w", city.ID.String(), wrapDuplicate(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("city %s not found", city.ID.String())
	}

	return nil
}

func (r *cityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cities WHERE id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete city", zap.Error(err), zap.String("city_id", id.String()))
		return fmt.Errorf("delete city %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("city %s not found", id.String())
	}

	r.log.Info("City deleted", zap.String("city_id", id.String()))
	return nil
}

func (r *cityRepository) HasHotels(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM hotels WHERE city_id = $1)`

	var exists bool
	if err := database.Conn(ctx, r.db).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check city hotels", zap.Error(err), zap.String("city_id", id.String()))
		return false, fmt.Errorf("check hotels of city %s: %w", id.String(), err)
	}

	return exists, nil
}
