package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")

	ErrLayerNotFound = errors.New("layer not found")

	ErrCoordinatesOutOfRange = errors.New("lng/lat out of range")
)
