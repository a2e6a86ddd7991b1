package errors

import "net/http"

var (
	ErrToiletNotFound = New(
		"TOILET_NOT_FOUND",
		"Toilet not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidToiletID = New(
		"INVALID_TOILET_ID",
		"Invalid toilet ID",
		http.StatusBadRequest,
	)

	ErrInvalidRating = New(
		"INVALID_RATING",
		"Rating must be 0 or 1",
		http.StatusBadRequest,
	)

	ErrCommentTooLong = New(
		"COMMENT_TOO_LONG",
		"Comment must be 200 characters or less",
		http.StatusBadRequest,
	)

	ErrAlreadyReviewed = New(
		"ALREADY_REVIEWED",
		"Already reviewed this toilet",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
