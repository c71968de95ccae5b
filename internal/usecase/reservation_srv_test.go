package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type reservationFixture struct {
	svc          ReservationService
	reservations *fakeReservationRepo
	trips        *fakeTripRepo
	customer     Actor
	admin        Actor
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()

	f := &reservationFixture{
		reservations: newFakeReservationRepo(),
		trips:        newFakeTripRepo(),
		customer:     Actor{ID: uuid.New(), Role: entity.RoleUser},
		admin:        Actor{ID: uuid.New(), Role: entity.RoleAdmin},
	}
	f.reservations.roles[f.customer.ID] = entity.RoleUser
	f.reservations.roles[f.admin.ID] = entity.RoleAdmin

	repo := &repository.Repository{
		Tx:          &fakeTx{},
		Reservation: f.reservations,
		Trip:        f.trips,
	}
	f.svc = NewReservationService(repo, zap.NewNop())
	return f
}

func (f *reservationFixture) seed(owner uuid.UUID, status entity.ReservationStatus) *entity.Reservation {
	res := &entity.Reservation{
		BaseNoDelete:    entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:          owner,
		TripID:          uuid.New(),
		Status:          status,
		NumberOfTickets: 2,
	}
	f.reservations.reservations[res.ID] = res
	return res
}

func TestUserCancelsOnceThenEditsAreRejected(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()
	res := f.seed(f.customer.ID, entity.ReservationPending)

	cancel := &request.UpdateReservationRequest{Status: string(entity.ReservationCanceled)}
	got, err := f.svc.UpdateStatus(ctx, f.customer, res.ID.String(), cancel)
	if err != nil {
		t.Fatalf("self cancel: %v", err)
	}
	if got.Status != entity.ReservationCanceled || got.CanceledBy == nil || *got.CanceledBy != f.customer.ID.String() {
		t.Fatalf("expected canceled by the customer, got %+v", got)
	}

	if _, err := f.svc.UpdateStatus(ctx, f.customer, res.ID.String(), cancel); !errors.Is(err, ErrReservationNotPending) {
		t.Fatalf("second cancel should be rejected, got %v", err)
	}

	confirm := &request.UpdateReservationRequest{Status: string(entity.ReservationConfirmed)}
	if _, err := f.svc.UpdateStatus(ctx, f.admin, res.ID.String(), confirm); !errors.Is(err, ErrAdminUserCanceled) {
		t.Fatalf("admin must not revive a user-canceled reservation, got %v", err)
	}
}

func TestUserStrategy(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	stranger := Actor{ID: uuid.New(), Role: entity.RoleUser}
	res := f.seed(f.customer.ID, entity.ReservationPending)

	if _, err := f.svc.Get(ctx, stranger, res.ID.String()); !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("other users' reservations must look missing, got %v", err)
	}

	confirm := &request.UpdateReservationRequest{Status: string(entity.ReservationConfirmed)}
	if _, err := f.svc.UpdateStatus(ctx, f.customer, res.ID.String(), confirm); !errors.Is(err, ErrUserCanOnlyCancel) {
		t.Fatalf("users may only cancel, got %v", err)
	}

	f.seed(stranger.ID, entity.ReservationPending)
	list, err := f.svc.List(ctx, f.customer, &request.ReservationFilterRequest{
		PaginatedRequest: request.NewPaginatedRequest("", ""),
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].ID != res.ID.String() {
		t.Fatalf("users should only list their own reservations, got %+v", list.Items)
	}
}

func TestAdminStrategy(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	t.Run("stamps itself when canceling", func(t *testing.T) {
		res := f.seed(f.customer.ID, entity.ReservationPending)

		got, err := f.svc.UpdateStatus(ctx, f.admin, res.ID.String(), &request.UpdateReservationRequest{Status: "canceled"})
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if got.CanceledBy == nil || *got.CanceledBy != f.admin.ID.String() {
			t.Fatalf("expected admin as canceler, got %+v", got.CanceledBy)
		}

		// an admin-canceled reservation stays editable and keeps its canceler
		got, err = f.svc.UpdateStatus(ctx, f.admin, res.ID.String(), &request.UpdateReservationRequest{Status: "confirmed"})
		if err != nil {
			t.Fatalf("re-confirm: %v", err)
		}
		if got.Status != entity.ReservationConfirmed || got.CanceledBy == nil {
			t.Fatalf("canceled_by must never be cleared, got %+v", got)
		}
	})

	t.Run("moves confirmed to in progress", func(t *testing.T) {
		res := f.seed(f.customer.ID, entity.ReservationConfirmed)

		got, err := f.svc.UpdateStatus(ctx, f.admin, res.ID.String(), &request.UpdateReservationRequest{Status: "in_progress"})
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if got.Status != entity.ReservationInProgress || got.CanceledBy != nil {
			t.Fatalf("unexpected reservation %+v", got)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		res := f.seed(f.customer.ID, entity.ReservationPending)

		_, err := f.svc.UpdateStatus(ctx, f.admin, res.ID.String(), &request.UpdateReservationRequest{Status: "refunded"})
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected unknown status, got %v", err)
		}
	})
}

func TestReservationCreate(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	open := &entity.Trip{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Name:         "Open",
		Price:        1000,
		IsActive:     true,
		StartDate:    time.Now().AddDate(0, 2, 0),
		EndDate:      time.Now().AddDate(0, 2, 9),
	}
	closed := &entity.Trip{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Name:         "Closed",
		IsActive:     false,
		StartDate:    time.Now().AddDate(0, 2, 0),
		EndDate:      time.Now().AddDate(0, 2, 9),
	}
	f.trips.trips[open.ID] = open
	f.trips.trips[closed.ID] = closed

	got, err := f.svc.Create(ctx, f.customer, &request.CreateReservationRequest{TripID: open.ID.String(), NumberOfTickets: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Status != entity.ReservationPending || got.NumberOfTickets != 3 {
		t.Fatalf("unexpected reservation %+v", got)
	}

	_, err = f.svc.Create(ctx, f.customer, &request.CreateReservationRequest{TripID: closed.ID.String(), NumberOfTickets: 1})
	if !errors.Is(err, ErrTripNotBookable) {
		t.Fatalf("inactive trip should not be bookable, got %v", err)
	}
}
