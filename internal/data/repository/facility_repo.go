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

type FacilityRepository interface {
	Create(ctx context.Context, facility *entity.Facility) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error)
	FindByName(ctx context.Context, name string) (*entity.Facility, error)
	FindAll(ctx context.Context) ([]*entity.Facility, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Facility, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Facility, error)
	Update(ctx context.Context, facility *entity.Facility) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type facilityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFacilityRepository(db database.PgxIface, log *zap.Logger) FacilityRepository {
	return &facilityRepository{
		db:  db,
		log: log.With(zap.String("repository", "facility")),
	}
}

func (r *facilityRepository) Create(ctx context.Context, facility *entity.Facility) error {
	query := `INSERT INTO facilities (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query, facility.ID, facility.Name, facility.CreatedAt, facility.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create facility", zap.Error(err), zap.String("name", facility.Name))
		return fmt.Errorf("create facility %s: %w", facility.Name, wrapDuplicate(err))
	}

	return nil
}

func (r *facilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error) {
	query := `SELECT id, name, created_at, updated_at FROM facilities WHERE id = $1`

	var f entity.Facility
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find facility by ID", zap.Error(err), zap.String("facility_id", id.String()))
		return nil, fmt.Errorf("find facility by ID %s: %w", id.String(), err)
	}

	return &f, nil
}

func (r *facilityRepository) FindByName(ctx context.Context, name string) (*entity.Facility, error) {
	query := `SELECT id, name, created_at, updated_at FROM facilities WHERE LOWER(name) = LOWER($1)`

	var f entity.Facility
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, name).Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find facility by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find facility by name %s: %w", name, err)
	}

	return &f, nil
}

func (r *facilityRepository) FindAll(ctx context.Context) ([]*entity.Facility, error) {
	return r.list(ctx, `SELECT id, name, created_at, updated_at FROM facilities ORDER BY name`)
}

func (r *facilityRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Facility, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, `SELECT id, name, created_at, updated_at FROM facilities WHERE id = ANY($1) ORDER BY name`, ids)
}

func (r *facilityRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Facility, error) {
	query := `
		SELECT f.id, f.name, f.created_at, f.updated_at
		FROM facilities f
		JOIN hotel_facilities hf ON hf.facility_id = f.id
		WHERE hf.hotel_id = $1
		ORDER BY f.name
	`
	return r.list(ctx, query, hotelID)
}

func (r *facilityRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Facility, error) {
	rows, err := database.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list facilities", zap.Error(err))
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer rows.Close()

	var facilities []*entity.Facility
	for rows.Next() {
		var f entity.Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			r.log.Error("Failed to scan facility row", zap.Error(err))
			return nil, fmt.Errorf("scan facility row: %w", err)
		}
		facilities = append(facilities, &f)
	}

	return facilities, rows.Err()
}

func (r *facilityRepository) Update(ctx context.Context, facility *entity.Facility) error {
	query := `UPDATE facilities SET name = $2, updated_at = $3 WHERE id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, facility.ID, facility.Name, facility.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update facility", zap.Error(err), zap.String("facility_id", facility.ID.String()))
		return fmt.Errorf("update facility %s: %w", facility.ID.String(), wrapDuplicate(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("facility %s not found", facility.ID.String())
	}

	return nil
}

// Delete removes the facility; hotel_facilities rows go with it through ON DELETE CASCADE.
func (r *facilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM facilities WHERE id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete facility", zap.Error(err), zap.String("facility_id", id.String()))
		return fmt.Errorf("delete facility %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("facility %s not found", id.String())
	}

	return nil
}
