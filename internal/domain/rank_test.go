package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dokopoo/toilet-service/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestRankScore(t *testing.T) {
	t.Run("few reviews use metadata quality only", func(t *testing.T) {
		// 0.4*(1-250/500) + 0.6*(8/10) = 0.2 + 0.48
		score := domain.RankScore(250, floatPtr(8.0), intPtr(100), 4)

		assert.InDelta(t, 0.68, score, 0.0001)
	})

	t.Run("five reviews start blending user quality", func(t *testing.T) {
		// reviewWeight = 5/10 = 0.5; qualityNorm = 0.8*0.5 + 1.0*0.5 = 0.9
		score := domain.RankScore(250, floatPtr(8.0), intPtr(100), 5)

		assert.InDelta(t, 0.74, score, 0.0001)
	})

	t.Run("ten reviews fully trust user quality", func(t *testing.T) {
		score := domain.RankScore(250, floatPtr(8.0), intPtr(100), 10)

		assert.InDelta(t, 0.80, score, 0.0001)
	})

	t.Run("review weight is capped beyond ten reviews", func(t *testing.T) {
		atTen := domain.RankScore(250, floatPtr(8.0), intPtr(100), 10)
		beyond := domain.RankScore(250, floatPtr(8.0), intPtr(100), 15)

		assert.InDelta(t, atTen, beyond, 0.0001)
	})

	t.Run("bad reviews drag the score down", func(t *testing.T) {
		// qualityNorm = 0.8*0.5 + 0.0*0.5 = 0.4
		score := domain.RankScore(250, floatPtr(8.0), intPtr(0), 5)

		assert.InDelta(t, 0.44, score, 0.0001)
	})

	t.Run("distance component is floored at zero beyond falloff", func(t *testing.T) {
		score := domain.RankScore(800, floatPtr(8.0), nil, 0)

		assert.InDelta(t, 0.48, score, 0.0001)
	})

	t.Run("missing quality score defaults to the middle of the scale", func(t *testing.T) {
		score := domain.RankScore(0, nil, nil, 0)

		// 0.4*1 + 0.6*0.5
		assert.InDelta(t, 0.70, score, 0.0001)
	})

	t.Run("missing positive percentage counts as zero", func(t *testing.T) {
		score := domain.RankScore(250, floatPtr(8.0), nil, 10)

		assert.InDelta(t, 0.20, score, 0.0001)
	})

	t.Run("closer toilet wins with equal quality", func(t *testing.T) {
		near := domain.RankScore(100, floatPtr(7.0), nil, 0)
		far := domain.RankScore(400, floatPtr(7.0), nil, 0)

		assert.Greater(t, near, far)
	})
}

func TestWalkTimeMin(t *testing.T) {
	cases := []struct {
		distanceM int
		expected  int
	}{
		{0, 1},
		{20, 1},
		{80, 1},
		{120, 2},
		{400, 5},
		{2000, 25},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, domain.WalkTimeMin(tc.distanceM),
			"distance %d", tc.distanceM)
	}
}

func TestToiletHasAddressInfo(t *testing.T) {
	name := "Shinjuku Station"
	addr := "3-38-1, Shinjuku, Tokyo"
	empty := ""

	t.Run("both fields present", func(t *testing.T) {
		toilet := &domain.Toilet{BuildingName: &name, Address: &addr}
		assert.True(t, toilet.HasAddressInfo())
	})

	t.Run("missing address", func(t *testing.T) {
		toilet := &domain.Toilet{BuildingName: &name}
		assert.False(t, toilet.HasAddressInfo())
	})

	t.Run("empty strings do not count", func(t *testing.T) {
		toilet := &domain.Toilet{BuildingName: &name, Address: &empty}
		assert.False(t, toilet.HasAddressInfo())
	})
}
