package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")

	ErrPackageNotFound = errors.New("package not found")
	ErrGuideNotFound   = errors.New("guide not found")

	ErrTripNotFound     = errors.New("trip not found")
	ErrTripAlreadyAdded = errors.New("trip already added")
	ErrTripFieldLocked  = errors.New("field is locked for packaged trips")
	ErrInvalidTripDates = errors.New("end date is before start date")

	ErrQuizSessionNotFound = errors.New("quiz session not found")
)
