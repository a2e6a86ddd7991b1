package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
	"github.com/dokopoo/toilet-service/internal/pkg/errors"
	"github.com/dokopoo/toilet-service/internal/repository/postgres"
	"github.com/dokopoo/toilet-service/internal/repository/postgres/testhelpers"
)

// ToiletRepositoryTestSuite тестирует все методы ToiletRepository
type ToiletRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	db     *postgres.DB
	repo   repository.ToiletRepository
	ctx    context.Context
}

// SetupSuite выполняется один раз перед всеми тестами
func (s *ToiletRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.db = postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)

	err := s.db.InitSchema(s.ctx)
	s.Require().NoError(err, "Failed to init schema")

	s.repo = postgres.NewToiletRepository(s.db)
}

// SetupTest очищает данные перед каждым тестом
func (s *ToiletRepositoryTestSuite) SetupTest() {
	err := s.testDB.Cleanup(s.ctx)
	s.Require().NoError(err)
}

// TearDownSuite выполняется один раз после всех тестов
func (s *ToiletRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// seedToilet вставляет туалет и возвращает присвоенный id
func (s *ToiletRepositoryTestSuite) seedToilet(osmID int64, lat, lng float64, mutate func(*domain.Toilet)) int64 {
	quality := 7.0
	toilet := &domain.Toilet{
		OSMId:        &osmID,
		Latitude:     lat,
		Longitude:    lng,
		IsFree:       true,
		VenueType:    domain.VenueStreet,
		Status:       domain.StatusOpen,
		QualityScore: &quality,
	}
	if mutate != nil {
		mutate(toilet)
	}

	err := s.repo.Upsert(s.ctx, toilet)
	s.Require().NoError(err)

	var id int64
	err = s.testDB.DB.Get(&id, "SELECT id FROM toilets WHERE osm_id = $1", osmID)
	s.Require().NoError(err)
	return id
}

func (s *ToiletRepositoryTestSuite) TestUpsertAndGetByID() {
	name := "Shinjuku Station East Exit"
	id := s.seedToilet(1001, 35.6895, 139.6917, func(t *domain.Toilet) {
		t.Name = &name
		t.VenueType = domain.VenueStation
		t.IsIndoor = true
	})

	toilet, err := s.repo.GetByID(s.ctx, id)

	s.NoError(err)
	s.Equal(id, toilet.ID)
	s.Require().NotNil(toilet.Name)
	s.Equal(name, *toilet.Name)
	s.Equal(domain.VenueStation, toilet.VenueType)
	s.True(toilet.IsIndoor)
	s.Equal(domain.StatusOpen, toilet.Status)
	s.Require().NotNil(toilet.QualityScore)
	s.InDelta(7.0, *toilet.QualityScore, 0.001)
}

func (s *ToiletRepositoryTestSuite) TestUpsertIsIdempotentByOSMID() {
	first := "Old Name"
	second := "New Name"

	id1 := s.seedToilet(1002, 35.6895, 139.6917, func(t *domain.Toilet) { t.Name = &first })
	id2 := s.seedToilet(1002, 35.6895, 139.6917, func(t *domain.Toilet) { t.Name = &second })

	s.Equal(id1, id2, "repeated upsert must hit the same row")

	var count int
	err := s.testDB.DB.Get(&count, "SELECT COUNT(*) FROM toilets WHERE osm_id = 1002")
	s.NoError(err)
	s.Equal(1, count)

	toilet, err := s.repo.GetByID(s.ctx, id1)
	s.NoError(err)
	s.Equal(second, *toilet.Name)
}

func (s *ToiletRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(s.ctx, 999999)

	s.ErrorIs(err, errors.ErrToiletNotFound)
}

func (s *ToiletRepositoryTestSuite) TestFindNearby() {
	// Точка отсчёта - Shinjuku. 0.004 градуса широты - примерно 440 м
	near := s.seedToilet(2001, 35.6895, 139.6917, nil)
	mid := s.seedToilet(2002, 35.6935, 139.6917, nil)
	far := s.seedToilet(2003, 35.6795, 139.6917, nil)
	s.seedToilet(2004, 35.6895, 139.6917, func(t *domain.Toilet) {
		t.Status = domain.StatusClosed
	})

	s.Run("small radius returns only close open toilets", func() {
		candidates, err := s.repo.FindNearby(s.ctx, 35.6895, 139.6917, 500, nil)

		s.NoError(err)
		s.Require().Len(candidates, 2)
		// Сортировка по возрастанию расстояния
		s.Equal(near, candidates[0].ID)
		s.Equal(mid, candidates[1].ID)
		s.Less(candidates[0].Distance, candidates[1].Distance)
		s.Less(candidates[0].Distance, 50.0)
	})

	s.Run("larger radius includes distant toilets", func() {
		candidates, err := s.repo.FindNearby(s.ctx, 35.6895, 139.6917, 2000, nil)

		s.NoError(err)
		s.Require().Len(candidates, 3)
		s.Equal(far, candidates[2].ID)
		s.Greater(candidates[2].Distance, 1000.0)
	})

	s.Run("closed toilets are never returned", func() {
		candidates, err := s.repo.FindNearby(s.ctx, 35.6895, 139.6917, 2000, nil)

		s.NoError(err)
		for _, c := range candidates {
			s.Equal(domain.StatusOpen, c.Status)
		}
	})

	s.Run("venue type filter", func() {
		station := s.seedToilet(2005, 35.6890, 139.6917, func(t *domain.Toilet) {
			t.VenueType = domain.VenueStation
		})

		candidates, err := s.repo.FindNearby(s.ctx, 35.6895, 139.6917, 2000,
			[]string{domain.VenueStation})

		s.NoError(err)
		s.Require().Len(candidates, 1)
		s.Equal(station, candidates[0].ID)
	})

	s.Run("empty area yields empty result", func() {
		candidates, err := s.repo.FindNearby(s.ctx, 34.0, 135.0, 2000, nil)

		s.NoError(err)
		s.Empty(candidates)
	})
}

func (s *ToiletRepositoryTestSuite) TestUpdateCachedAddress() {
	id := s.seedToilet(3001, 35.6895, 139.6917, nil)

	building := "Lumine Est"
	address := "3-38-1, Shinjuku, Tokyo"
	err := s.repo.UpdateCachedAddress(s.ctx, id, &building, &address)
	s.NoError(err)

	toilet, err := s.repo.GetByID(s.ctx, id)
	s.NoError(err)
	s.Equal(building, *toilet.BuildingName)
	s.Equal(address, *toilet.Address)

	// Повторная запись не затирает уже известные значения
	other := "Some Other Building"
	err = s.repo.UpdateCachedAddress(s.ctx, id, &other, nil)
	s.NoError(err)

	toilet, err = s.repo.GetByID(s.ctx, id)
	s.NoError(err)
	s.Equal(building, *toilet.BuildingName)
	s.Equal(address, *toilet.Address)
}

func (s *ToiletRepositoryTestSuite) TestRecalculateReviewAggregates() {
	id := s.seedToilet(4001, 35.6895, 139.6917, nil)

	_, err := s.testDB.DB.Exec(`
		INSERT INTO reviews (toilet_id, fingerprint, rating) VALUES
		($1, 'fp-1', 1), ($1, 'fp-2', 1), ($1, 'fp-3', 0)`, id)
	s.Require().NoError(err)

	err = s.repo.RecalculateReviewAggregates(s.ctx, id)
	s.NoError(err)

	toilet, err := s.repo.GetByID(s.ctx, id)
	s.NoError(err)
	s.Equal(3, toilet.ReviewCount)
	s.Require().NotNil(toilet.PositivePercentage)
	s.Equal(67, *toilet.PositivePercentage)
}

func (s *ToiletRepositoryTestSuite) TestRecalculateWithoutReviews() {
	id := s.seedToilet(4002, 35.6895, 139.6917, nil)

	err := s.repo.RecalculateReviewAggregates(s.ctx, id)
	s.NoError(err)

	toilet, err := s.repo.GetByID(s.ctx, id)
	s.NoError(err)
	s.Zero(toilet.ReviewCount)
	s.Require().NotNil(toilet.PositivePercentage)
	s.Zero(*toilet.PositivePercentage)
}

func TestToiletRepositorySuite(t *testing.T) {
	suite.Run(t, new(ToiletRepositoryTestSuite))
}
