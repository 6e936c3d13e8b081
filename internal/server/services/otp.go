// Package services contains server-side business logic. This file implements
// OTPService, which issues time-based one-time codes delivered by email and
// verifies submitted codes against the outstanding-record table.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/akuznecov/lockbox/internal/common"
	"github.com/akuznecov/lockbox/internal/server/config"
	"github.com/akuznecov/lockbox/internal/server/mail"
	"github.com/akuznecov/lockbox/internal/server/models"
	otprepo "github.com/akuznecov/lockbox/internal/server/repositories/otp"
)

// OTPService provides the OTP authenticator operations:
// - Issue: derive the current code from the shared secret and email it
// - Verify: consume a submitted code
//
// Codes are a deterministic function of the shared secret and the time
// window, not of the recipient, so two issues inside the same window yield
// the same code.
type OTPService struct {
	repo   otprepo.Repository
	sender mail.Sender
	secret string
	period time.Duration
	now    func() time.Time
}

// NewOTPService constructs an OTPService using the repository, the mail
// sender and server config.
func NewOTPService(repo otprepo.Repository, sender mail.Sender, cfg *config.Config) *OTPService {
	return &OTPService{
		repo:   repo,
		sender: sender,
		secret: cfg.TOTPSecret,
		period: cfg.OTPPeriod,
		now:    time.Now,
	}
}

// Issue generates the current 6-digit TOTP code, stores a record for email
// (overwriting any prior record for that email) and hands the code to the
// mail sender. The record stays stored even when delivery fails, so the
// recipient can still verify a code that arrived late.
func (s *OTPService) Issue(ctx context.Context, email string) error {
	if email == "" {
		return common.ErrEmailRequired
	}
	if !strings.Contains(email, "@") {
		return common.ErrInvalidEmail
	}
	if s.secret == "" {
		return common.ErrOTPNotConfigured
	}

	issuedAt := s.now()
	code, err := totp.GenerateCodeCustom(s.secret, issuedAt, totp.ValidateOpts{
		Period:    uint(s.period.Seconds()),
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrOTPNotConfigured, err)
	}

	rec := &models.OTPRecord{
		ID:      uuid.New(),
		Email:   email,
		Code:    code,
		Expires: issuedAt.Add(s.period),
	}
	if err := s.repo.Put(ctx, rec); err != nil {
		return fmt.Errorf("store otp record: %w", err)
	}

	if err := s.sender.Send(ctx, code, email); err != nil {
		return fmt.Errorf("%w: %v", common.ErrDeliveryFailed, err)
	}
	return nil
}

// Verify checks code against outstanding records, consuming the first
// unexpired match. Expired records encountered during the scan are removed.
// The code format is validated before the table is touched.
func (s *OTPService) Verify(ctx context.Context, code string) error {
	if code == "" {
		return common.ErrOTPRequired
	}
	if !isSixDigits(code) {
		return common.ErrInvalidOTPFormat
	}

	if _, err := s.repo.Consume(ctx, code, s.now()); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidOrExpired
		}
		return fmt.Errorf("consume otp record: %w", err)
	}
	return nil
}

// RunSweeper removes expired records every interval until ctx is cancelled.
// Verification already drops expired records lazily; the sweeper keeps the
// table from accumulating records for recipients who never verify.
func (s *OTPService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.repo.SweepExpired(ctx, s.now())
		}
	}
}

func isSixDigits(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
