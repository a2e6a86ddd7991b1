package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dokopoo/toilet-service/internal/domain"
)

func TestCalculateQualityScore(t *testing.T) {
	t.Run("bare street toilet gets base score", func(t *testing.T) {
		toilet := &domain.Toilet{VenueType: domain.VenueStreet}

		score := domain.CalculateQualityScore(toilet)

		assert.InDelta(t, 5.0, score, 0.001)
	})

	t.Run("indoor adds two points", func(t *testing.T) {
		toilet := &domain.Toilet{
			VenueType: domain.VenueStreet,
			IsIndoor:  true,
		}

		score := domain.CalculateQualityScore(toilet)

		assert.InDelta(t, 7.0, score, 0.001)
	})

	t.Run("venue type bonuses", func(t *testing.T) {
		cases := []struct {
			venueType string
			expected  float64
		}{
			{domain.VenueStation, 7.0},
			{domain.VenueMall, 7.5},
			{domain.VenueDepartmentStore, 7.5},
			{domain.VenueConvenienceStore, 6.0},
			{domain.VenuePark, 5.5},
			{domain.VenueStreet, 5.0},
		}

		for _, tc := range cases {
			toilet := &domain.Toilet{VenueType: tc.venueType}
			assert.InDelta(t, tc.expected, domain.CalculateQualityScore(toilet), 0.001,
				"venue type %s", tc.venueType)
		}
	})

	t.Run("amenity bonuses stack", func(t *testing.T) {
		toilet := &domain.Toilet{
			VenueType:     domain.VenueConvenienceStore,
			IsIndoor:      true,
			IsAccessible:  true,
			HasBabyChange: true,
			IsFree:        true,
		}

		// 5.0 + 2.0 + 1.0 + 1.0 + 0.5 + 0.5
		score := domain.CalculateQualityScore(toilet)

		assert.InDelta(t, 10.0, score, 0.001)
	})

	t.Run("score is clamped at ten", func(t *testing.T) {
		toilet := &domain.Toilet{
			VenueType:     domain.VenueMall,
			IsIndoor:      true,
			IsAccessible:  true,
			HasBabyChange: true,
			IsFree:        true,
		}

		// Сырая сумма 11.5, но шкала заканчивается на 10
		score := domain.CalculateQualityScore(toilet)

		assert.InDelta(t, 10.0, score, 0.001)
	})

	t.Run("unknown venue type gets no bonus", func(t *testing.T) {
		toilet := &domain.Toilet{VenueType: "spaceship"}

		score := domain.CalculateQualityScore(toilet)

		assert.InDelta(t, 5.0, score, 0.001)
	})
}

func TestValidVenueType(t *testing.T) {
	assert.True(t, domain.ValidVenueType(domain.VenueStation))
	assert.True(t, domain.ValidVenueType(domain.VenueStreet))
	assert.False(t, domain.ValidVenueType(""))
	assert.False(t, domain.ValidVenueType("spaceship"))
}
