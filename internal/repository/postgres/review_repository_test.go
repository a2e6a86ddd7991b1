package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
	"github.com/dokopoo/toilet-service/internal/repository/postgres"
	"github.com/dokopoo/toilet-service/internal/repository/postgres/testhelpers"
)

// ReviewRepositoryTestSuite тестирует все методы ReviewRepository
type ReviewRepositoryTestSuite struct {
	suite.Suite
	testDB   *testhelpers.TestDB
	db       *postgres.DB
	repo     repository.ReviewRepository
	ctx      context.Context
	toiletID int64
}

func (s *ReviewRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.db = postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)

	err := s.db.InitSchema(s.ctx)
	s.Require().NoError(err, "Failed to init schema")

	s.repo = postgres.NewReviewRepository(s.db)
}

func (s *ReviewRepositoryTestSuite) SetupTest() {
	err := s.testDB.Cleanup(s.ctx)
	s.Require().NoError(err)

	// Каждому тесту нужен туалет для FK
	err = s.testDB.DB.QueryRow(`
		INSERT INTO toilets (osm_id, latitude, longitude, geom, venue_type, status)
		VALUES (5001, 35.6895, 139.6917,
			ST_SetSRID(ST_MakePoint(139.6917, 35.6895), 4326), 'street', 'open')
		RETURNING id`).Scan(&s.toiletID)
	s.Require().NoError(err)
}

func (s *ReviewRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *ReviewRepositoryTestSuite) TestCreate() {
	comment := "clean and well lit"
	review := &domain.Review{
		ToiletID:    s.toiletID,
		Fingerprint: "device-1",
		Rating:      1,
		Comment:     &comment,
	}

	created, err := s.repo.Create(s.ctx, review)

	s.NoError(err)
	s.NotZero(created.ID)
	s.WithinDuration(time.Now(), created.CreatedAt, 5*time.Second)
	s.Equal(1, created.Rating)
	s.Equal(comment, *created.Comment)
}

func (s *ReviewRepositoryTestSuite) TestExistsByFingerprint() {
	exists, err := s.repo.ExistsByFingerprint(s.ctx, s.toiletID, "device-1")
	s.NoError(err)
	s.False(exists)

	_, err = s.repo.Create(s.ctx, &domain.Review{
		ToiletID:    s.toiletID,
		Fingerprint: "device-1",
		Rating:      0,
	})
	s.Require().NoError(err)

	exists, err = s.repo.ExistsByFingerprint(s.ctx, s.toiletID, "device-1")
	s.NoError(err)
	s.True(exists)

	// Другой девайс - отзыва ещё нет
	exists, err = s.repo.ExistsByFingerprint(s.ctx, s.toiletID, "device-2")
	s.NoError(err)
	s.False(exists)
}

func (s *ReviewRepositoryTestSuite) TestDuplicateFingerprintRejectedByConstraint() {
	_, err := s.repo.Create(s.ctx, &domain.Review{
		ToiletID:    s.toiletID,
		Fingerprint: "device-1",
		Rating:      1,
	})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, &domain.Review{
		ToiletID:    s.toiletID,
		Fingerprint: "device-1",
		Rating:      0,
	})
	s.Error(err, "unique(fingerprint, toilet_id) must reject the duplicate")
}

func (s *ReviewRepositoryTestSuite) TestListByToilet() {
	for i, fp := range []string{"device-1", "device-2", "device-3"} {
		_, err := s.testDB.DB.Exec(`
			INSERT INTO reviews (toilet_id, fingerprint, rating, created_at)
			VALUES ($1, $2, 1, NOW() - make_interval(mins => $3))`,
			s.toiletID, fp, 10-i)
		s.Require().NoError(err)
	}

	s.Run("ordered newest first", func() {
		reviews, err := s.repo.ListByToilet(s.ctx, s.toiletID, 10)

		s.NoError(err)
		s.Require().Len(reviews, 3)
		s.Equal("device-3", reviews[0].Fingerprint)
		s.Equal("device-1", reviews[2].Fingerprint)
	})

	s.Run("limit is respected", func() {
		reviews, err := s.repo.ListByToilet(s.ctx, s.toiletID, 2)

		s.NoError(err)
		s.Len(reviews, 2)
	})

	s.Run("no reviews yields empty result", func() {
		reviews, err := s.repo.ListByToilet(s.ctx, 999999, 10)

		s.NoError(err)
		s.Empty(reviews)
	})
}

func TestReviewRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReviewRepositoryTestSuite))
}
