package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrStoreNotInitialized = errors.New("store not initialized")
	ErrParseID             = errors.New("failed to parse id")
)
