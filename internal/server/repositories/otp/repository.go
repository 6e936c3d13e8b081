// Package otp contains storage for outstanding one-time-password records.
package otp

import (
	"context"
	"time"

	"github.com/akuznecov/lockbox/internal/server/models"
)

// Repository stores outstanding OTP records keyed by recipient email.
//
// Implementations must serialize Put, Consume and SweepExpired so that
// concurrent issue/verify requests never lose updates or observe torn state.
type Repository interface {
	// Put stores rec, overwriting any prior record for the same email.
	Put(ctx context.Context, rec *models.OTPRecord) error

	// Consume removes and returns the first unexpired record whose code
	// equals code. Records found expired during the scan are removed as a
	// side effect. When no record matches, common.ErrorNotFound is returned.
	Consume(ctx context.Context, code string, now time.Time) (*models.OTPRecord, error)

	// SweepExpired removes every record past its expiry and reports how
	// many were removed.
	SweepExpired(ctx context.Context, now time.Time) int
}
