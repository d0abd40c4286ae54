package services

import (
	"errors"
)

// Sentinel errors returned by write-path services; handlers map these to
// HTTP status codes.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyExists     = errors.New("already exists")
	ErrBadgeRequiresCred = errors.New("verified badge requires credential-level verification")
	ErrSelfVouch         = errors.New("cannot vouch for your own listing")
	ErrSelfReferral      = errors.New("cannot apply your own referral code")
	ErrCodeAlreadyUsed   = errors.New("referral code already applied for this account")
	ErrInvalidCredential = errors.New("invalid email or password")
)
