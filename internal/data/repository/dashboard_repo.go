package repository

import (
	"context"
	"fmt"

	"umrah-booking/internal/data/entity"
	"umrah-booking/pkg/database"

	"go.uber.org/zap"
)

type DashboardRepository interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

type dashboardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDashboardRepository(db database.PgxIface, log *zap.Logger) DashboardRepository {
	return &dashboardRepository{
		db:  db,
		log: log.With(zap.String("repository", "dashboard")),
	}
}

func (r *dashboardRepository) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	conn := database.Conn(ctx, r.db)

	counters := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE role = 'user' AND deleted_at IS NULL),
			(SELECT COUNT(*) FROM users WHERE role IN ('admin', 'super_admin') AND deleted_at IS NULL),
			(SELECT COUNT(*) FROM cities),
			(SELECT COUNT(*) FROM hotels),
			(SELECT COUNT(*) FROM trips),
			(SELECT COUNT(*) FROM trips WHERE is_active = TRUE),
			(SELECT COALESCE(SUM(r.number_of_tickets), 0) FROM reservations r WHERE r.status = 'confirmed'),
			(SELECT COALESCE(SUM(r.number_of_tickets * t.price), 0)::float8
			   FROM reservations r JOIN trips t ON t.id = r.trip_id
			  WHERE r.status = 'confirmed')
	`

	stats := entity.DashboardStats{
		ReservationsByState: map[entity.ReservationStatus]int64{
			entity.ReservationPending:    0,
			entity.ReservationConfirmed:  0,
			entity.ReservationInProgress: 0,
			entity.ReservationCanceled:   0,
		},
	}

	err := conn.QueryRow(ctx, counters).Scan(
		&stats.Users,
		&stats.Admins,
		&stats.Cities,
		&stats.Hotels,
		&stats.Trips,
		&stats.ActiveTrips,
		&stats.ConfirmedTickets,
		&stats.ConfirmedRevenue,
	)
	if err != nil {
		r.log.Error("Failed to load dashboard counters", zap.Error(err))
		return nil, fmt.Errorf("load dashboard counters: %w", err)
	}

	rows, err := conn.Query(ctx, `SELECT status, COUNT(*) FROM reservations GROUP BY status`)
	if err != nil {
		r.log.Error("Failed to load reservation breakdown", zap.Error(err))
		return nil, fmt.Errorf("load reservation breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			r.log.Error("Failed to scan reservation breakdown", zap.Error(err))
			return nil, fmt.Errorf("scan reservation breakdown: %w", err)
		}
		stats.ReservationsByState[entity.ReservationStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reservation breakdown: %w", err)
	}

	return &stats, nil
}
