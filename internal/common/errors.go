// Package common defines shared constants and sentinel errors used across
// client and server layers of lockbox. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Crypto gateway path validation errors, checked in this order.
	ErrNoFilePath   = errors.New("no file path provided")
	ErrFileNotFound = errors.New("file does not exist")
	ErrNotAFile     = errors.New("path must be a file, not a directory")

	// ErrInvalidCiphertext is returned when an artifact fails authentication:
	// wrong key, corrupted payload, or not a token at all.
	ErrInvalidCiphertext = errors.New("invalid encryption key or corrupted file")

	// OTP validation errors.
	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrOTPRequired      = errors.New("otp is required")
	ErrInvalidOTPFormat = errors.New("invalid otp format")
	ErrInvalidOrExpired = errors.New("invalid or expired otp")

	// Per-process configuration and delivery errors.
	ErrOTPNotConfigured = errors.New("otp configuration error")
	ErrDeliveryFailed   = errors.New("failed to send otp")

	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
)
