package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/internal/dto/request"
	"umrah-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type userFixture struct {
	svc      UserService
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	codes    *fakeVerificationRepo
	mail     *fakeMailer
	user     *entity.User
}

func newUserFixture(t *testing.T, others ...*entity.User) *userFixture {
	t.Helper()

	hash, err := utils.HashPassword("secret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Name:         "Aisyah",
		Email:        "aisyah@example.com",
		PasswordHash: hash,
		Role:         entity.RoleUser,
		IsVerified:   true,
	}

	f := &userFixture{
		users:    newFakeUserRepo(append(others, user)...),
		sessions: &fakeSessionRepo{},
		codes:    newFakeVerificationRepo(),
		mail:     &fakeMailer{},
		user:     user,
	}
	repo := &repository.Repository{
		Tx:           &fakeTx{},
		User:         f.users,
		Session:      f.sessions,
		Profile:      &fakeProfileRepo{},
		Verification: f.codes,
	}
	config := &utils.Config{OTP: utils.OTPConfig{ExpiryMinutes: 5, Length: 6}}
	log := zap.NewNop()
	f.svc = NewUserService(repo, newCodeIssuer(repo, f.mail, config, log), log)
	return f
}

func TestUpdateProfileEmailNeedsVerification(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	email := "  New@Example.com "
	phone := "081234567890"
	resp, pending, err := f.svc.UpdateProfile(ctx, f.user.ID, &request.UpdateProfileRequest{Email: &email, Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if !pending {
		t.Fatalf("email change should be pending")
	}
	if resp.Email != "aisyah@example.com" || f.users.users[f.user.ID].Email != "aisyah@example.com" {
		t.Fatalf("email must not change before verification, got %s", resp.Email)
	}
	if resp.Phone == nil || *resp.Phone != phone {
		t.Fatalf("other fields apply immediately, got %+v", resp)
	}

	if len(f.mail.sent) != 1 || !strings.HasPrefix(f.mail.sent[0], "new@example.com|") {
		t.Fatalf("code should be mailed to the new address, got %v", f.mail.sent)
	}
	v := f.codes.byUser[f.user.ID]
	if v == nil || v.NewContact == nil || *v.NewContact != "new@example.com" {
		t.Fatalf("pending contact not recorded: %+v", v)
	}

	if _, err := f.svc.VerifyContact(ctx, f.user.ID, &request.VerifyContactRequest{Code: "000000x"}); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected invalid code, got %v", err)
	}

	resp, err = f.svc.VerifyContact(ctx, f.user.ID, &request.VerifyContactRequest{Code: v.Code})
	if err != nil {
		t.Fatalf("VerifyContact: %v", err)
	}
	if resp.Email != "new@example.com" || f.users.users[f.user.ID].Email != "new@example.com" {
		t.Fatalf("email should switch after verification, got %s", resp.Email)
	}
	if _, ok := f.codes.byUser[f.user.ID]; ok {
		t.Fatalf("code should be consumed")
	}
}

func TestUpdateProfileSameEmailIsNotPending(t *testing.T) {
	f := newUserFixture(t)

	email := "AISYAH@example.com"
	_, pending, err := f.svc.UpdateProfile(context.Background(), f.user.ID, &request.UpdateProfileRequest{Email: &email})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if pending || len(f.mail.sent) != 0 {
		t.Fatalf("unchanged email should not issue a code")
	}
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	other := &entity.User{Base: entity.Base{ID: uuid.New()}, Email: "taken@example.com", Role: entity.RoleUser}
	f := newUserFixture(t, other)

	email := "Taken@Example.com"
	_, _, err := f.svc.UpdateProfile(context.Background(), f.user.ID, &request.UpdateProfileRequest{Email: &email})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected email taken, got %v", err)
	}
	if len(f.mail.sent) != 0 || len(f.codes.byUser) != 0 {
		t.Fatalf("no code should be issued for a taken email")
	}
}

func TestVerifyContactWithoutPendingChange(t *testing.T) {
	f := newUserFixture(t)
	f.codes.byUser[f.user.ID] = &entity.Verification{
		UserID:    f.user.ID,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	_, err := f.svc.VerifyContact(context.Background(), f.user.ID, &request.VerifyContactRequest{Code: "123456"})
	if !errors.Is(err, ErrNoPendingContact) {
		t.Fatalf("expected no pending contact, got %v", err)
	}
	if f.users.users[f.user.ID].Email != "aisyah@example.com" {
		t.Fatalf("email must be untouched")
	}
}

func TestChangePasswordRevokesOtherSessions(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	current, other := uuid.New(), uuid.New()
	f.sessions.sessions = []*entity.Session{
		{UserID: f.user.ID, Token: current},
		{UserID: f.user.ID, Token: other},
		{UserID: uuid.New(), Token: uuid.New()},
	}

	err := f.svc.ChangePassword(ctx, f.user.ID, current.String(), &request.ChangePasswordRequest{
		CurrentPassword: "wrong-pass",
		NewPassword:     "brand-new-pass",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected wrong password, got %v", err)
	}

	err = f.svc.ChangePassword(ctx, f.user.ID, current.String(), &request.ChangePasswordRequest{
		CurrentPassword: "secret-pass",
		NewPassword:     "secret-pass",
	})
	if !errors.Is(err, ErrSamePassword) {
		t.Fatalf("expected same password, got %v", err)
	}
	if len(f.sessions.revoked) != 0 {
		t.Fatalf("refused changes must not revoke sessions")
	}

	err = f.svc.ChangePassword(ctx, f.user.ID, current.String(), &request.ChangePasswordRequest{
		CurrentPassword: "secret-pass",
		NewPassword:     "brand-new-pass",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if !utils.CheckPasswordHash("brand-new-pass", f.users.users[f.user.ID].PasswordHash) {
		t.Fatalf("password hash not updated")
	}
	if !slices.Equal(f.sessions.revoked, []string{other.String()}) {
		t.Fatalf("only the other session of the user should be revoked, got %v", f.sessions.revoked)
	}
}
