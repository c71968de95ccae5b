package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/mailer"
	"umrah-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// codeIssuer owns the one-active-code-per-user verification flow shared by auth and profile.
type codeIssuer struct {
	repo   *repository.Repository
	mailer mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func newCodeIssuer(repo *repository.Repository, m mailer.Mailer, config *utils.Config, log *zap.Logger) *codeIssuer {
	return &codeIssuer{
		repo:   repo,
		mailer: m,
		config: config,
		log:    log.With(zap.String("service", "verification")),
	}
}

// issue replaces any previous code of the user and mails the new one to sendTo.
// newContact is recorded when the code confirms a contact change.
func (c *codeIssuer) issue(ctx context.Context, user *entity.User, sendTo string, newContact *string, subject string) error {
	code, err := utils.GenerateOTP(c.config.OTP.Length)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	now := time.Now()
	v := &entity.Verification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:     user.ID,
		Code:       code,
		NewContact: newContact,
		ExpiresAt:  now.Add(time.Duration(c.config.OTP.ExpiryMinutes) * time.Minute),
	}

	err = c.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := c.repo.Verification.DeleteByUserID(ctx, user.ID); err != nil {
			return err
		}
		return c.repo.Verification.Create(ctx, v)
	})
	if err != nil {
		c.log.Error("Failed to store verification code", zap.Error(err), zap.String("user_id", user.ID.String()))
		return err
	}

	body := fmt.Sprintf("Hello %s,\n\nYour verification code is %s. It expires in %d minutes.\n",
		user.Name, code, c.config.OTP.ExpiryMinutes)

	if err := c.mailer.Send(ctx, sendTo, subject, body); err != nil {
		return err
	}

	c.log.Info("Verification code issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", v.ExpiresAt),
	)
	return nil
}

// check returns the active verification when code matches and has not expired.
func (c *codeIssuer) check(ctx context.Context, userID uuid.UUID, code string) (*entity.Verification, error) {
	v, err := c.repo.Verification.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrInvalidCode
	}

	if subtle.ConstantTimeCompare([]byte(v.Code), []byte(code)) != 1 {
		return nil, ErrInvalidCode
	}

	if v.IsExpired(time.Now()) {
		return nil, ErrCodeExpired
	}

	return v, nil
}

// consume deletes the user's code once it has been used.
func (c *codeIssuer) consume(ctx context.Context, userID uuid.UUID) error {
	return c.repo.Verification.DeleteByUserID(ctx, userID)
}
