package usecase

import (
	"context"
	"errors"
	"testing"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestHotelDelete(t *testing.T) {
	used, free := newHotel("Used"), newHotel("Free")

	hotels := newFakeHotelRepo(used, free)
	hotels.referenced[used.ID] = true
	images := &fakeImageRepo{}
	store := newFakeStorage()

	repo := &repository.Repository{Tx: &fakeTx{}, Hotel: hotels, Image: images}
	log := zap.NewNop()
	svc := NewHotelService(repo, NewMediaManager(repo, store, log), log)

	seedImage(images, store, entity.ImageableHotel, used.ID, "hotels/used.jpg")
	seedImage(images, store, entity.ImageableHotel, free.ID, "hotels/free-1.jpg")
	seedImage(images, store, entity.ImageableHotel, free.ID, "hotels/free-2.jpg")

	if err := svc.Delete(context.Background(), used.ID.String()); !errors.Is(err, ErrHotelInUse) {
		t.Fatalf("expected referenced hotel to be protected, got %v", err)
	}
	if _, ok := hotels.hotels[used.ID]; !ok {
		t.Fatalf("referenced hotel must remain")
	}
	if len(images.images) != 3 || store.files["hotels/used.jpg"] == "" {
		t.Fatalf("a refused delete must leave images and files alone, got %d rows %v", len(images.images), store.files)
	}

	if err := svc.Delete(context.Background(), free.ID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := hotels.hotels[free.ID]; ok {
		t.Fatalf("hotel should be deleted")
	}
	if len(images.images) != 1 {
		t.Fatalf("only the used hotel's image should remain, got %d", len(images.images))
	}
	if len(store.files) != 1 {
		t.Fatalf("stored files of the deleted hotel should be removed, got %v", store.files)
	}

	if err := svc.Delete(context.Background(), "not-a-uuid"); !errors.Is(err, ErrHotelNotFound) {
		t.Fatalf("expected not found for malformed id, got %v", err)
	}
}

func TestHotelUpdateCollapsesRepeatedFacilities(t *testing.T) {
	hotel := newHotel("Hilton Makkah")
	hotels := newFakeHotelRepo(hotel)
	facilities := newFakeFacilityRepo(hotels, "Wifi", "Shuttle")
	images := &fakeImageRepo{}
	store := newFakeStorage()

	repo := &repository.Repository{Tx: &fakeTx{}, Hotel: hotels, Facility: facilities, Image: images}
	log := zap.NewNop()
	svc := NewHotelService(repo, NewMediaManager(repo, store, log), log)
	seedImage(images, store, entity.ImageableHotel, hotel.ID, "hotels/front.jpg")

	ids := facilities.ids()
	req := &request.HotelUpdateRequest{
		FacilityIDs: []string{ids[0].String(), ids[0].String(), ids[1].String()},
	}

	resp, err := svc.Update(context.Background(), hotel.ID.String(), req, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := hotels.facilities[hotel.ID]; len(got) != 2 {
		t.Fatalf("expected two linked facilities, got %v", got)
	}
	if len(resp.Facilities) != 2 {
		t.Fatalf("expected two facilities in response, got %+v", resp.Facilities)
	}

	req.FacilityIDs = []string{uuid.NewString()}
	if _, err := svc.Update(context.Background(), hotel.ID.String(), req, nil); !errors.Is(err, ErrFacilityNotFound) {
		t.Fatalf("expected unknown facility to be rejected, got %v", err)
	}
}
