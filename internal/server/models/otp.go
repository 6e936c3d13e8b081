package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPRecord associates a recipient email with an outstanding one-time code.
// A record is removed on first successful verification, lazily on expiry,
// or when a new code is issued for the same email. The ID only correlates
// log lines; verification matches on the code value.
type OTPRecord struct {
	ID      uuid.UUID
	Email   string
	Code    string
	Expires time.Time
}

// Expired reports whether the record is past its expiry at the given instant.
// A record expiring exactly at now is still valid.
func (r *OTPRecord) Expired(now time.Time) bool {
	return now.After(r.Expires)
}
