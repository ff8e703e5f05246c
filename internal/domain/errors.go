package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidRequest      = errors.New("invalid design request")
	ErrQuotaExceeded       = errors.New("quota exceeded")
	ErrUploadFailed        = errors.New("asset upload failed")
	ErrGenerationFailed    = errors.New("generation failed")
	ErrIdentityUnavailable = errors.New("identity unavailable")
)
