package domain

import "math"

const (
	// Расстояние, на котором дистанционная составляющая обнуляется, метры
	distanceFalloffM = 500.0

	// Скорость пешехода, метров в минуту
	walkingPaceMPerMin = 80.0

	// Минимум отзывов, после которого пользовательские оценки
	// начинают влиять на ранжирование
	minReviewsForUserQuality = 5

	// Количество отзывов, при котором пользовательские оценки
	// полностью вытесняют метаданные
	fullTrustReviewCount = 10.0

	// Фиксированные веса итоговой оценки: 40% расстояние, 60% качество
	distanceWeight = 0.4
	qualityWeight  = 0.6

	// Оценка качества по умолчанию, когда метаданные отсутствуют
	defaultQualityScore = 5.0
)

// RankScore вычисляет итоговую оценку для ранжирования: смесь близости
// и качества. Пока отзывов мало, качество берётся из метаданных;
// по мере накопления отзывов пользовательские оценки вытесняют их.
func RankScore(distanceM float64, qualityScore *float64, positivePercentage *int, reviewCount int) float64 {
	distanceScore := math.Max(0, 1-distanceM/distanceFalloffM)

	quality := defaultQualityScore
	if qualityScore != nil {
		quality = *qualityScore
	}
	metaQuality := quality / 10

	if reviewCount < minReviewsForUserQuality {
		return distanceWeight*distanceScore + qualityWeight*metaQuality
	}

	positive := 0
	if positivePercentage != nil {
		positive = *positivePercentage
	}
	userQuality := float64(positive) / 100
	reviewWeight := math.Min(float64(reviewCount)/fullTrustReviewCount, 1)
	qualityNorm := metaQuality*(1-reviewWeight) + userQuality*reviewWeight

	return distanceWeight*distanceScore + qualityWeight*qualityNorm
}

// WalkTimeMin оценивает время пешком в минутах, минимум 1 минута
func WalkTimeMin(distanceM int) int {
	minutes := int(math.Round(float64(distanceM) / walkingPaceMPerMin))
	if minutes < 1 {
		return 1
	}
	return minutes
}
