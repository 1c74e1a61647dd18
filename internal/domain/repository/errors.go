// Package repository defines the persistence contracts of the domain layer.
package repository

import "vaxtrack/internal/errors"

// Sentinel errors returned by repository implementations. Use cases translate
// these into domain errors; they never cross the delivery boundary directly.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrChildNotFound        = errors.New("child not found")
	ErrRecordNotFound       = errors.New("vaccine record not found")
	ErrDriveNotFound        = errors.New("vaccine drive not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
