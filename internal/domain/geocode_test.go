package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dokopoo/toilet-service/internal/domain"
)

func TestReversePlaceBuildingName(t *testing.T) {
	t.Run("place name wins over tags", func(t *testing.T) {
		place := &domain.ReversePlace{
			Name: "Tokyo Metro Ginza Station",
			Address: domain.ReverseAddress{
				Building: "underground concourse",
				Amenity:  "subway",
			},
		}

		assert.Equal(t, "Tokyo Metro Ginza Station", place.BuildingName())
	})

	t.Run("falls through building, amenity, shop, leisure", func(t *testing.T) {
		place := &domain.ReversePlace{
			Address: domain.ReverseAddress{
				Shop:    "FamilyMart",
				Leisure: "park",
			},
		}

		assert.Equal(t, "FamilyMart", place.BuildingName())
	})

	t.Run("nothing known", func(t *testing.T) {
		place := &domain.ReversePlace{}

		assert.Equal(t, "", place.BuildingName())
	})
}

func TestReversePlaceStreetAddress(t *testing.T) {
	t.Run("joins available components", func(t *testing.T) {
		place := &domain.ReversePlace{
			Address: domain.ReverseAddress{
				HouseNumber: "3-38-1",
				Road:        "Shinjuku-dori",
				Suburb:      "Shinjuku",
				City:        "Tokyo",
			},
		}

		assert.Equal(t, "3-38-1, Shinjuku-dori, Shinjuku, Tokyo", place.StreetAddress())
	})

	t.Run("neighbourhood preferred over suburb, city over town", func(t *testing.T) {
		place := &domain.ReversePlace{
			Address: domain.ReverseAddress{
				Neighbourhood: "Kabukicho",
				Suburb:        "Shinjuku",
				City:          "Tokyo",
				Town:          "Mitaka",
			},
		}

		assert.Equal(t, "Kabukicho, Tokyo", place.StreetAddress())
	})

	t.Run("missing components are skipped without dangling commas", func(t *testing.T) {
		place := &domain.ReversePlace{
			Address: domain.ReverseAddress{
				Road: "Meiji-dori",
			},
		}

		assert.Equal(t, "Meiji-dori", place.StreetAddress())
	})

	t.Run("empty address yields empty string", func(t *testing.T) {
		place := &domain.ReversePlace{}

		assert.Equal(t, "", place.StreetAddress())
	})
}
