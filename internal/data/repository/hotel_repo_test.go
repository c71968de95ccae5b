package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func TestHotelSyncFacilitiesBatchInsert(t *testing.T) {
	mock := newMock(t)
	repo := NewHotelRepository(mock, zap.NewNop())

	hotelID := uuid.New()
	f1, f2 := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hotel_facilities WHERE hotel_id = $1`)).
		WithArgs(hotelID).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO hotel_facilities (hotel_id, facility_id, created_at) VALUES ($1, $2, $3), ($4, $5, $6)`)).
		WithArgs(hotelID, f1, pgxmock.AnyArg(), hotelID, f2, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	if err := repo.SyncFacilities(context.Background(), hotelID, []uuid.UUID{f1, f2}); err != nil {
		t.Fatalf("SyncFacilities: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHotelSyncFacilitiesClearOnly(t *testing.T) {
	mock := newMock(t)
	repo := NewHotelRepository(mock, zap.NewNop())
	hotelID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hotel_facilities WHERE hotel_id = $1`)).
		WithArgs(hotelID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	if err := repo.SyncFacilities(context.Background(), hotelID, nil); err != nil {
		t.Fatalf("SyncFacilities: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
