package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
	"github.com/dokopoo/toilet-service/internal/pkg/errors"
)

// Максимум кандидатов, возвращаемых пространственным запросом
const LimitNearbyToilets = 20

const toiletColumns = `
	id, osm_id, name, description, latitude, longitude,
	is_free, is_accessible, has_baby_change, is_gender_neutral,
	is_indoor, venue_type, building_name, address, floor_level,
	opening_hours, status, quality_score, positive_percentage, review_count,
	created_at, updated_at`

type toiletRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewToiletRepository(db *DB) repository.ToiletRepository {
	return &toiletRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *toiletRepository) FindNearby(
	ctx context.Context,
	lat, lng float64,
	radiusM int,
	venueTypes []string,
) ([]*domain.Candidate, error) {
	query := `
		WITH point AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geom
		)
		SELECT ` + toiletColumns + `,
			ST_Distance(t.geom::geography, point.geom) AS distance_m
		FROM toilets t, point
		WHERE t.status = 'open'
		  AND ST_DWithin(t.geom::geography, point.geom, $3)
	`

	args := []interface{}{lng, lat, radiusM}
	argIdx := 4

	if len(venueTypes) > 0 {
		query += fmt.Sprintf(" AND t.venue_type = ANY($%d)", argIdx)
		args = append(args, pq.Array(venueTypes))
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY distance_m LIMIT $%d", argIdx)
	args = append(args, LimitNearbyToilets)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to find nearby toilets",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Int("radius_m", radiusM),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var candidates []*domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := scanToilet(rows, &c.Toilet, &c.Distance); err != nil {
			r.logger.Error("Failed to scan toilet", zap.Error(err))
			continue
		}
		candidates = append(candidates, &c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate nearby toilets", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return candidates, nil
}

func (r *toiletRepository) GetByID(ctx context.Context, id int64) (*domain.Toilet, error) {
	query := `SELECT ` + toiletColumns + ` FROM toilets t WHERE id = $1`

	var t domain.Toilet
	err := scanToilet(r.db.QueryRowContext(ctx, query, id), &t, nil)
	if err == sql.ErrNoRows {
		return nil, errors.ErrToiletNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get toilet by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &t, nil
}

func (r *toiletRepository) Upsert(ctx context.Context, t *domain.Toilet) error {
	query := `
		INSERT INTO toilets (osm_id, name, description, latitude, longitude, geom,
			is_free, is_accessible, has_baby_change, is_gender_neutral,
			is_indoor, venue_type, building_name, address, floor_level,
			opening_hours, status, quality_score)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326),
			$8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (osm_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			geom = EXCLUDED.geom,
			is_free = EXCLUDED.is_free,
			is_accessible = EXCLUDED.is_accessible,
			has_baby_change = EXCLUDED.has_baby_change,
			is_gender_neutral = EXCLUDED.is_gender_neutral,
			is_indoor = EXCLUDED.is_indoor,
			venue_type = EXCLUDED.venue_type,
			building_name = EXCLUDED.building_name,
			address = EXCLUDED.address,
			floor_level = EXCLUDED.floor_level,
			opening_hours = EXCLUDED.opening_hours,
			quality_score = EXCLUDED.quality_score,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		t.OSMId, t.Name, t.Description, t.Latitude, t.Longitude,
		t.Longitude, t.Latitude,
		t.IsFree, t.IsAccessible, t.HasBabyChange, t.IsGenderNeutral,
		t.IsIndoor, t.VenueType, t.BuildingName, t.Address, t.FloorLevel,
		t.OpeningHours, t.Status, t.QualityScore,
	)
	if err != nil {
		r.logger.Error("Failed to upsert toilet",
			zap.Int64p("osm_id", t.OSMId),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// UpdateCachedAddress дописывает адресные колонки, найденные через reverse
// geocoding. COALESCE оставляет существующие значения: конкурентные записи
// для одного туалета безопасны (последняя запись затирает только NULL).
func (r *toiletRepository) UpdateCachedAddress(ctx context.Context, id int64, buildingName, address *string) error {
	query := `
		UPDATE toilets SET
			building_name = COALESCE(building_name, $1),
			address = COALESCE(address, $2),
			updated_at = NOW()
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, buildingName, address, id)
	if err != nil {
		r.logger.Error("Failed to update cached address",
			zap.Int64("id", id),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *toiletRepository) RecalculateReviewAggregates(ctx context.Context, id int64) error {
	query := `
		UPDATE toilets SET
			review_count = (SELECT COUNT(*) FROM reviews WHERE toilet_id = $1),
			positive_percentage = COALESCE((SELECT ROUND(AVG(rating) * 100)::int FROM reviews WHERE toilet_id = $1), 0),
			updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to recalculate review aggregates",
			zap.Int64("id", id),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// scanToilet читает колонки toiletColumns (+опционально distance_m) в структуру
func scanToilet(row interface{ Scan(...interface{}) error }, t *domain.Toilet, distance *float64) error {
	dest := []interface{}{
		&t.ID, &t.OSMId, &t.Name, &t.Description, &t.Latitude, &t.Longitude,
		&t.IsFree, &t.IsAccessible, &t.HasBabyChange, &t.IsGenderNeutral,
		&t.IsIndoor, &t.VenueType, &t.BuildingName, &t.Address, &t.FloorLevel,
		&t.OpeningHours, &t.Status, &t.QualityScore, &t.PositivePercentage, &t.ReviewCount,
		&t.CreatedAt, &t.UpdatedAt,
	}
	if distance != nil {
		dest = append(dest, distance)
	}
	return row.Scan(dest...)
}
