package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/internal/dto/request"
	"umrah-booking/pkg/utils"

	"go.uber.org/zap"
)

type authFixture struct {
	svc      AuthService
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	codes    *fakeVerificationRepo
	mail     *fakeMailer
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		users:    newFakeUserRepo(),
		sessions: &fakeSessionRepo{},
		codes:    newFakeVerificationRepo(),
		mail:     &fakeMailer{},
	}
	repo := &repository.Repository{
		Tx:           &fakeTx{},
		User:         f.users,
		Session:      f.sessions,
		Profile:      &fakeProfileRepo{},
		Verification: f.codes,
	}
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
		OTP:     utils.OTPConfig{ExpiryMinutes: 5, Length: 6},
	}
	log := zap.NewNop()
	f.svc = NewAuthService(repo, newCodeIssuer(repo, f.mail, config, log), config, log)
	return f
}

func (f *authFixture) register(t *testing.T, email string) *entity.User {
	t.Helper()

	_, err := f.svc.Register(context.Background(), &request.RegisterRequest{
		Name:                 "Aisyah",
		Email:                email,
		Password:             "secret-pass",
		PasswordConfirmation: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, _ := f.users.FindByEmail(context.Background(), strings.ToLower(email))
	if user == nil {
		t.Fatalf("user %s not stored", email)
	}
	return user
}

func TestRegisterThenVerify(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	client := ClientInfo{UserAgent: "test-agent", IPAddress: "10.0.0.1"}

	user := f.register(t, "Aisyah@Example.com")
	if user.Email != "aisyah@example.com" || user.IsVerified || user.Role != entity.RoleUser {
		t.Fatalf("unexpected stored user %+v", user)
	}
	if len(f.mail.sent) != 1 {
		t.Fatalf("expected one verification mail, got %d", len(f.mail.sent))
	}

	_, err := f.svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "secret-pass"}, client)
	if !errors.Is(err, ErrAccountNotVerified) {
		t.Fatalf("unverified login should be refused, got %v", err)
	}

	_, err = f.svc.VerifyAccount(ctx, &request.VerifyAccountRequest{Email: user.Email, Code: "000000x"}, client)
	if !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected invalid code, got %v", err)
	}

	code := f.codes.byUser[user.ID].Code
	resp, err := f.svc.VerifyAccount(ctx, &request.VerifyAccountRequest{Email: user.Email, Code: code}, client)
	if err != nil {
		t.Fatalf("VerifyAccount: %v", err)
	}
	if resp.Token == "" || !resp.User.IsVerified {
		t.Fatalf("expected a session for the verified user, got %+v", resp)
	}
	if _, ok := f.codes.byUser[user.ID]; ok {
		t.Fatalf("code should be consumed")
	}
	if len(f.sessions.sessions) != 1 || *f.sessions.sessions[0].UserAgent != "test-agent" {
		t.Fatalf("session should record the client")
	}

	if _, err := f.svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "wrong-pass"}, client); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := f.svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "secret-pass"}, client); err != nil {
		t.Fatalf("Login: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "dup@example.com")

	_, err := f.svc.Register(context.Background(), &request.RegisterRequest{
		Name:                 "Other",
		Email:                "DUP@example.com",
		Password:             "secret-pass",
		PasswordConfirmation: "secret-pass",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected email taken, got %v", err)
	}
}

func TestExpiredCodeIsRejected(t *testing.T) {
	f := newAuthFixture(t)
	user := f.register(t, "late@example.com")

	v := f.codes.byUser[user.ID]
	v.ExpiresAt = time.Now().Add(-time.Minute)

	_, err := f.svc.VerifyAccount(context.Background(), &request.VerifyAccountRequest{Email: user.Email, Code: v.Code}, ClientInfo{})
	if !errors.Is(err, ErrCodeExpired) {
		t.Fatalf("expected expired code, got %v", err)
	}
}

func TestForgetPasswordFlow(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := f.register(t, "reset@example.com")

	if err := f.svc.ForgetPassword(ctx, &request.EmailRequest{Email: "nobody@example.com"}); err != nil {
		t.Fatalf("unknown emails must succeed silently, got %v", err)
	}

	if err := f.svc.ForgetPassword(ctx, &request.EmailRequest{Email: user.Email}); err != nil {
		t.Fatalf("ForgetPassword: %v", err)
	}
	code := f.codes.byUser[user.ID].Code

	err := f.svc.VerifyResetPassword(ctx, &request.VerifyResetPasswordRequest{
		Email:                user.Email,
		Code:                 code,
		Password:             "brand-new-pass",
		PasswordConfirmation: "brand-new-pass",
	})
	if err != nil {
		t.Fatalf("VerifyResetPassword: %v", err)
	}
	if !utils.CheckPasswordHash("brand-new-pass", f.users.users[user.ID].PasswordHash) {
		t.Fatalf("password was not updated")
	}
	if _, ok := f.codes.byUser[user.ID]; ok {
		t.Fatalf("reset code should be consumed")
	}
}
