package dto

import "github.com/dokopoo/toilet-service/internal/domain"

// NearbyResponse - результат поиска ближайших туалетов
type NearbyResponse struct {
	Results    []*domain.Candidate `json:"results"`
	RadiusUsed int                 `json:"radius_used"`
	Expanded   bool                `json:"expanded"`
}

// ToiletDetailResponse - туалет с последними отзывами
type ToiletDetailResponse struct {
	Toilet  *domain.Toilet   `json:"toilet"`
	Reviews []*domain.Review `json:"reviews"`
}

// ReviewsResponse - список отзывов о туалете
type ReviewsResponse struct {
	Reviews []*domain.Review `json:"reviews"`
}

// IngestResult - итог загрузки данных из OSM
type IngestResult struct {
	Fetched  int `json:"fetched"`
	Upserted int `json:"upserted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}
