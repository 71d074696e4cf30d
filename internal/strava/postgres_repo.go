package strava

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) List(ctx context.Context, sportType string, limit, offset int) ([]Activity, int, error) {
	var total int
	const countSQL = `
	SELECT COUNT(*) FROM worldly_strava
	WHERE ($1 = '' OR sport_type = $1)`
	if err := r.db.QueryRow(ctx, countSQL, sportType).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
	SELECT id, strava_id, COALESCE(name, ''), COALESCE(sport_type, ''),
	       distance, moving_time, elapsed_time, total_elevation_gain,
	       start_date, average_speed, calories, COALESCE(description, '')
	FROM worldly_strava
	WHERE ($1 = '' OR sport_type = $1)
	ORDER BY start_date DESC
	LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, sportType, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(
			&a.ID, &a.StravaID, &a.Name, &a.SportType,
			&a.DistanceM, &a.MovingTimeS, &a.ElapsedTimeS, &a.ElevationGain,
			&a.StartDate, &a.AverageSpeed, &a.Calories, &a.Description,
		); err != nil {
			return nil, 0, err
		}
		activities = append(activities, a)
	}
	return activities, total, rows.Err()
}
