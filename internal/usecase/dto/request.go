package dto

// NearbyRequest - запрос на поиск ближайших туалетов.
// Lat/Lng парсятся хендлером из query-параметров; отсутствие или
// нечисловые значения отклоняются до вызова use case.
type NearbyRequest struct {
	Lat        float64  `json:"lat" validate:"min=-90,max=90"`
	Lng        float64  `json:"lng" validate:"min=-180,max=180"`
	Radius     int      `json:"radius" validate:"omitempty,min=1"`
	Limit      int      `json:"limit" validate:"omitempty,min=1"`
	VenueTypes []string `json:"venue_types,omitempty" validate:"omitempty,dive,oneof=station mall department_store convenience_store park street"`
}

// CreateReviewRequest - запрос на создание отзыва
type CreateReviewRequest struct {
	Fingerprint string  `json:"fingerprint" validate:"required,max=128"`
	Rating      *int    `json:"rating" validate:"required,min=0,max=1"`
	Comment     *string `json:"comment,omitempty" validate:"omitempty,max=200"`
}
