package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"umrah-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func TestReservationUpdateStatusKeepsExistingCanceler(t *testing.T) {
	mock := newMock(t)
	repo := NewReservationRepository(mock, zap.NewNop())

	id, admin := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`canceled_by = COALESCE(canceled_by, $3)`)).
		WithArgs(id, "canceled", &admin, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := repo.UpdateStatus(context.Background(), id, entity.ReservationCanceled, &admin, now); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationUpdateStatusMissingRow(t *testing.T) {
	mock := newMock(t)
	repo := NewReservationRepository(mock, zap.NewNop())

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservations`)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := repo.UpdateStatus(context.Background(), uuid.New(), entity.ReservationConfirmed, nil, time.Now()); err == nil {
		t.Fatalf("expected an error when no row is updated")
	}
}
