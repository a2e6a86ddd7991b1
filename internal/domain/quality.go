package domain

import "math"

// Бонусы к базовой оценке по типу заведения
var venueTypeBonus = map[string]float64{
	VenueStation:          2.0,
	VenueMall:             2.5,
	VenueDepartmentStore:  2.5,
	VenueConvenienceStore: 1.0,
	VenuePark:             0.5,
	VenueStreet:           0.0,
}

// CalculateQualityScore вычисляет оценку качества 0-10 по метаданным туалета.
// Вызывается один раз при загрузке данных, когда отзывов ещё нет.
// Чистая функция без I/O.
func CalculateQualityScore(t *Toilet) float64 {
	score := 5.0

	// Крытые туалеты обычно лучше обслуживаются
	if t.IsIndoor {
		score += 2.0
	}

	score += venueTypeBonus[t.VenueType]

	// Доступная среда - признак ухоженного места
	if t.IsAccessible {
		score += 1.0
	}
	if t.HasBabyChange {
		score += 0.5
	}

	if t.IsFree {
		score += 0.5
	}

	return math.Min(score, 10.0)
}
