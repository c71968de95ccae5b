package usecase

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/storage"

	"github.com/google/uuid"
)

// ==================== TRANSACTION & STORAGE ====================

type fakeTx struct {
	calls int
}

func (t *fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fakeStorage struct {
	files map[string]string
	seq   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: map[string]string{}}
}

func (s *fakeStorage) Save(_ context.Context, folder string, file storage.Upload) (string, error) {
	data, err := io.ReadAll(file.Content)
	if err != nil {
		return "", err
	}
	s.seq++
	path := fmt.Sprintf("%s/%d-%s", folder, s.seq, file.Filename)
	s.files[path] = string(data)
	return path, nil
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) URL(path string) string {
	return "https://cdn.test/" + path
}

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.sent = append(m.sent, to+"|"+subject+"|"+body)
	return nil
}

// ==================== IMAGES ====================

type fakeImageRepo struct {
	images []*entity.Image
}

func (r *fakeImageRepo) CreateBatch(_ context.Context, images []*entity.Image) error {
	r.images = append(r.images, images...)
	return nil
}

func (r *fakeImageRepo) FindByOwner(_ context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) ([]*entity.Image, error) {
	var out []*entity.Image
	for _, img := range r.images {
		if img.ImageableType == ownerType && img.ImageableID == ownerID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *fakeImageRepo) FindLatestByOwner(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) (*entity.Image, error) {
	images, _ := r.FindByOwner(ctx, ownerType, ownerID)
	if len(images) == 0 {
		return nil, nil
	}
	return images[len(images)-1], nil
}

func (r *fakeImageRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Image, error) {
	var out []*entity.Image
	for _, img := range r.images {
		if slices.Contains(ids, img.ID) {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *fakeImageRepo) CountByOwner(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) (int64, error) {
	images, _ := r.FindByOwner(ctx, ownerType, ownerID)
	return int64(len(images)), nil
}

func (r *fakeImageRepo) DeleteByIDs(_ context.Context, ids []uuid.UUID) error {
	r.images = slices.DeleteFunc(r.images, func(img *entity.Image) bool {
		return slices.Contains(ids, img.ID)
	})
	return nil
}

func (r *fakeImageRepo) DeleteByOwner(_ context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) error {
	r.images = slices.DeleteFunc(r.images, func(img *entity.Image) bool {
		return img.ImageableType == ownerType && img.ImageableID == ownerID
	})
	return nil
}

// seedImage adds a row and its stored file.
func seedImage(repo *fakeImageRepo, store *fakeStorage, ownerType entity.ImageableType, ownerID uuid.UUID, path string) *entity.Image {
	img := &entity.Image{
		BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		ImageableID:   ownerID,
		ImageableType: ownerType,
		Path:          path,
	}
	repo.images = append(repo.images, img)
	store.files[path] = "seed"
	return img
}

// ==================== HOTELS ====================

type fakeHotelRepo struct {
	hotels     map[uuid.UUID]*entity.Hotel
	referenced map[uuid.UUID]bool
	facilities map[uuid.UUID][]uuid.UUID
}

func newFakeHotelRepo(hotels ...*entity.Hotel) *fakeHotelRepo {
	r := &fakeHotelRepo{
		hotels:     map[uuid.UUID]*entity.Hotel{},
		referenced: map[uuid.UUID]bool{},
		facilities: map[uuid.UUID][]uuid.UUID{},
	}
	for _, h := range hotels {
		r.hotels[h.ID] = h
	}
	return r
}

func (r *fakeHotelRepo) Create(_ context.Context, hotel *entity.Hotel) error {
	r.hotels[hotel.ID] = hotel
	return nil
}

func (r *fakeHotelRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Hotel, error) {
	return r.hotels[id], nil
}

func (r *fakeHotelRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Hotel, error) {
	var out []*entity.Hotel
	for _, id := range ids {
		if h, ok := r.hotels[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHotelRepo) FindAll(context.Context, repository.HotelFilter) ([]*entity.Hotel, error) {
	var out []*entity.Hotel
	for _, h := range r.hotels {
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHotelRepo) Count(context.Context, repository.HotelFilter) (int64, error) {
	return int64(len(r.hotels)), nil
}

func (r *fakeHotelRepo) Update(_ context.Context, hotel *entity.Hotel) error {
	r.hotels[hotel.ID] = hotel
	return nil
}

func (r *fakeHotelRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.hotels, id)
	return nil
}

func (r *fakeHotelRepo) IsReferencedByTrip(_ context.Context, id uuid.UUID) (bool, error) {
	return r.referenced[id], nil
}

func (r *fakeHotelRepo) SyncFacilities(_ context.Context, hotelID uuid.UUID, facilityIDs []uuid.UUID) error {
	if len(facilityIDs) == 0 {
		delete(r.facilities, hotelID)
		return nil
	}
	r.facilities[hotelID] = facilityIDs
	return nil
}

type fakeFacilityRepo struct {
	facilities map[uuid.UUID]*entity.Facility
	hotels     *fakeHotelRepo
}

func newFakeFacilityRepo(hotels *fakeHotelRepo, names ...string) *fakeFacilityRepo {
	r := &fakeFacilityRepo{facilities: map[uuid.UUID]*entity.Facility{}, hotels: hotels}
	for _, name := range names {
		f := &entity.Facility{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Name: name}
		r.facilities[f.ID] = f
	}
	return r
}

func (r *fakeFacilityRepo) Create(_ context.Context, facility *entity.Facility) error {
	r.facilities[facility.ID] = facility
	return nil
}

func (r *fakeFacilityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Facility, error) {
	return r.facilities[id], nil
}

func (r *fakeFacilityRepo) FindByName(_ context.Context, name string) (*entity.Facility, error) {
	for _, f := range r.facilities {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, nil
}

func (r *fakeFacilityRepo) FindAll(context.Context) ([]*entity.Facility, error) {
	var out []*entity.Facility
	for _, f := range r.facilities {
		out = append(out, f)
	}
	return out, nil
}

// FindByIDs matches the SQL IN semantics: a repeated id yields one row.
func (r *fakeFacilityRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Facility, error) {
	var out []*entity.Facility
	for _, f := range r.facilities {
		if slices.Contains(ids, f.ID) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFacilityRepo) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Facility, error) {
	return r.FindByIDs(ctx, r.hotels.facilities[hotelID])
}

func (r *fakeFacilityRepo) Update(_ context.Context, facility *entity.Facility) error {
	r.facilities[facility.ID] = facility
	return nil
}

func (r *fakeFacilityRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.facilities, id)
	return nil
}

// ids returns every facility id, in no particular order.
func (r *fakeFacilityRepo) ids() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(r.facilities))
	for id := range r.facilities {
		out = append(out, id)
	}
	return out
}

// ==================== HERO IMAGES ====================

type fakeHeroImageRepo struct {
	heroes map[uuid.UUID]*entity.HeroImage
}

func newFakeHeroImageRepo(heroes ...*entity.HeroImage) *fakeHeroImageRepo {
	r := &fakeHeroImageRepo{heroes: map[uuid.UUID]*entity.HeroImage{}}
	for _, h := range heroes {
		r.heroes[h.ID] = h
	}
	return r
}

func (r *fakeHeroImageRepo) Create(_ context.Context, hero *entity.HeroImage) error {
	r.heroes[hero.ID] = hero
	return nil
}

func (r *fakeHeroImageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.HeroImage, error) {
	return r.heroes[id], nil
}

func (r *fakeHeroImageRepo) FindAll(_ context.Context, activeOnly bool) ([]*entity.HeroImage, error) {
	var out []*entity.HeroImage
	for _, h := range r.heroes {
		if activeOnly && !h.IsActive {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHeroImageRepo) Update(_ context.Context, hero *entity.HeroImage) error {
	r.heroes[hero.ID] = hero
	return nil
}

func (r *fakeHeroImageRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.heroes, id)
	return nil
}

// ==================== TRIPS ====================

type fakeTripRepo struct {
	trips  map[uuid.UUID]*entity.Trip
	hotels map[uuid.UUID][]entity.TripHotel
}

func newFakeTripRepo(trips ...*entity.Trip) *fakeTripRepo {
	r := &fakeTripRepo{
		trips:  map[uuid.UUID]*entity.Trip{},
		hotels: map[uuid.UUID][]entity.TripHotel{},
	}
	for _, t := range trips {
		r.trips[t.ID] = t
	}
	return r
}

func (r *fakeTripRepo) Create(_ context.Context, trip *entity.Trip) error {
	r.trips[trip.ID] = trip
	return nil
}

func (r *fakeTripRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Trip, error) {
	return r.trips[id], nil
}

func (r *fakeTripRepo) FindByName(_ context.Context, name string) (*entity.Trip, error) {
	for _, t := range r.trips {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTripRepo) FindAll(_ context.Context, filter repository.TripFilter) ([]*entity.Trip, error) {
	var out []*entity.Trip
	for _, t := range r.trips {
		if filter.IsActive != nil && t.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTripRepo) Count(ctx context.Context, filter repository.TripFilter) (int64, error) {
	trips, _ := r.FindAll(ctx, filter)
	return int64(len(trips)), nil
}

func (r *fakeTripRepo) Update(_ context.Context, trip *entity.Trip) error {
	r.trips[trip.ID] = trip
	return nil
}

func (r *fakeTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.trips, id)
	return nil
}

func (r *fakeTripRepo) SyncHotels(_ context.Context, tripID uuid.UUID, hotels []entity.TripHotel) error {
	rows := make([]entity.TripHotel, 0, len(hotels))
	for _, h := range hotels {
		h.TripID = tripID
		rows = append(rows, h)
	}
	r.hotels[tripID] = rows
	return nil
}

func (r *fakeTripRepo) FindHotels(_ context.Context, tripID uuid.UUID) ([]entity.TripHotelDetail, error) {
	var out []entity.TripHotelDetail
	for _, h := range r.hotels[tripID] {
		out = append(out, entity.TripHotelDetail{TripHotel: h})
	}
	return out, nil
}

func (r *fakeTripRepo) DeleteHotels(_ context.Context, tripID uuid.UUID) error {
	delete(r.hotels, tripID)
	return nil
}

// ==================== RESERVATIONS ====================

type fakeReservationRepo struct {
	reservations map[uuid.UUID]*entity.Reservation
	roles        map[uuid.UUID]entity.UserRole
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		reservations: map[uuid.UUID]*entity.Reservation{},
		roles:        map[uuid.UUID]entity.UserRole{},
	}
}

func (r *fakeReservationRepo) load(id uuid.UUID) *entity.Reservation {
	res, ok := r.reservations[id]
	if !ok {
		return nil
	}
	cp := *res
	if cp.CanceledBy != nil {
		if role, ok := r.roles[*cp.CanceledBy]; ok {
			cp.CanceledByRole = &role
		}
	}
	return &cp
}

func (r *fakeReservationRepo) Create(_ context.Context, res *entity.Reservation) error {
	cp := *res
	r.reservations[res.ID] = &cp
	return nil
}

func (r *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return r.load(id), nil
}

func (r *fakeReservationRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return r.load(id), nil
}

func (r *fakeReservationRepo) FindAll(_ context.Context, filter repository.ReservationFilter) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for id, res := range r.reservations {
		if filter.UserID != nil && res.UserID != *filter.UserID {
			continue
		}
		out = append(out, r.load(id))
	}
	return out, nil
}

func (r *fakeReservationRepo) Count(ctx context.Context, filter repository.ReservationFilter) (int64, error) {
	all, _ := r.FindAll(ctx, filter)
	return int64(len(all)), nil
}

func (r *fakeReservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.ReservationStatus, canceledBy *uuid.UUID, updatedAt time.Time) error {
	res := r.reservations[id]
	res.Status = status
	if res.CanceledBy == nil {
		res.CanceledBy = canceledBy
	}
	res.UpdatedAt = updatedAt
	return nil
}

// ==================== USERS & SESSIONS ====================

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAllByRole(_ context.Context, role entity.UserRole, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	users, _ := r.FindAllByRole(ctx, role, 0, 0)
	return int64(len(users)), nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.users[id].PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type fakeSessionRepo struct {
	sessions []*entity.Session
	revoked  []string
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	for _, s := range r.sessions {
		if s.Token.String() == token && s.RevokedAt == nil {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	r.revoked = append(r.revoked, token)
	return nil
}

func (r *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	for _, s := range r.sessions {
		if s.UserID == userID {
			r.revoked = append(r.revoked, s.Token.String())
		}
	}
	return nil
}

func (r *fakeSessionRepo) RevokeOtherSessions(_ context.Context, userID uuid.UUID, keepToken string) error {
	for _, s := range r.sessions {
		if s.UserID == userID && s.Token.String() != keepToken {
			r.revoked = append(r.revoked, s.Token.String())
		}
	}
	return nil
}

func (r *fakeSessionRepo) CleanExpiredSessions(context.Context) (int64, error) {
	return 0, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func (r *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return r.profiles[userID], nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, profile *entity.Profile) error {
	if r.profiles == nil {
		r.profiles = map[uuid.UUID]*entity.Profile{}
	}
	r.profiles[profile.UserID] = profile
	return nil
}

type fakeVerificationRepo struct {
	byUser map[uuid.UUID]*entity.Verification
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{byUser: map[uuid.UUID]*entity.Verification{}}
}

func (r *fakeVerificationRepo) Create(_ context.Context, v *entity.Verification) error {
	r.byUser[v.UserID] = v
	return nil
}

func (r *fakeVerificationRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Verification, error) {
	return r.byUser[userID], nil
}

func (r *fakeVerificationRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	delete(r.byUser, userID)
	return nil
}

func (r *fakeVerificationRepo) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}

// ==================== DASHBOARD ====================

type fakeDashboardRepo struct {
	calls int
	stats entity.DashboardStats
}

func (r *fakeDashboardRepo) Stats(context.Context) (*entity.DashboardStats, error) {
	r.calls++
	stats := r.stats
	return &stats, nil
}
