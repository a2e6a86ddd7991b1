package domain

import "time"

// Статусы туалета
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Типы заведений, в которых находится туалет
const (
	VenueStation          = "station"
	VenueMall             = "mall"
	VenueDepartmentStore  = "department_store"
	VenueConvenienceStore = "convenience_store"
	VenuePark             = "park"
	VenueStreet           = "street"
)

// ValidVenueType проверяет, что тип заведения известен
func ValidVenueType(venueType string) bool {
	switch venueType {
	case VenueStation, VenueMall, VenueDepartmentStore,
		VenueConvenienceStore, VenuePark, VenueStreet:
		return true
	}
	return false
}

// Toilet представляет общественный туалет
type Toilet struct {
	ID          int64   `json:"id" db:"id"`
	OSMId       *int64  `json:"osm_id,omitempty" db:"osm_id"`
	Name        *string `json:"name,omitempty" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	Latitude    float64 `json:"latitude" db:"latitude"`
	Longitude   float64 `json:"longitude" db:"longitude"`

	// Удобства
	IsFree          bool `json:"is_free" db:"is_free"`
	IsAccessible    bool `json:"is_accessible" db:"is_accessible"`
	HasBabyChange   bool `json:"has_baby_change" db:"has_baby_change"`
	IsGenderNeutral bool `json:"is_gender_neutral" db:"is_gender_neutral"`
	IsIndoor        bool `json:"is_indoor" db:"is_indoor"`

	// Адресные данные (могут быть дополнены через reverse geocoding)
	VenueType    string  `json:"venue_type" db:"venue_type"`
	BuildingName *string `json:"building_name,omitempty" db:"building_name"`
	Address      *string `json:"address,omitempty" db:"address"`
	FloorLevel   *string `json:"floor_level,omitempty" db:"floor_level"`
	OpeningHours *string `json:"opening_hours,omitempty" db:"opening_hours"`
	Status       string  `json:"status" db:"status"`

	// Сигналы качества
	QualityScore       *float64 `json:"quality_score,omitempty" db:"quality_score"`
	PositivePercentage *int     `json:"positive_percentage,omitempty" db:"positive_percentage"`
	ReviewCount        int      `json:"review_count" db:"review_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasAddressInfo проверяет, что адресные данные уже полные.
// Обогащение пропускается только когда есть и название здания, и адрес.
func (t *Toilet) HasAddressInfo() bool {
	return t.BuildingName != nil && *t.BuildingName != "" &&
		t.Address != nil && *t.Address != ""
}

// Candidate - туалет с вычисленными для одного поискового запроса полями.
// Существует только в рамках запроса, не персистится.
type Candidate struct {
	Toilet

	// Distance - сырое геодезическое расстояние от провайдера, метры
	Distance float64 `json:"-" db:"distance_m"`

	DistanceM   int     `json:"distance_m"`
	WalkTimeMin int     `json:"walk_time_min"`
	RankScore   float64 `json:"rank_score"`
}

// Statistics - статистика по загруженным данным
type Statistics struct {
	ToiletCount     int64     `json:"toilet_count"`
	OpenToiletCount int64     `json:"open_toilet_count"`
	ReviewCount     int64     `json:"review_count"`
	AvgQualityScore float64   `json:"avg_quality_score"`
	UpdatedAt       time.Time `json:"updated_at"`
}
