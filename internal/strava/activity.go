package strava

import (
	"context"
	"time"
)

// Activity is one row of worldly_strava, synced from the Strava API by an
// external pull job. This package is read-only; OAuth and ingestion live
// outside the server.
type Activity struct {
	ID            int64     `json:"id"`
	StravaID      int64     `json:"strava_id"`
	Name          string    `json:"name"`
	SportType     string    `json:"sport_type,omitempty"`
	DistanceM     *float64  `json:"distance_m,omitempty"`
	MovingTimeS   *int      `json:"moving_time_s,omitempty"`
	ElapsedTimeS  *int      `json:"elapsed_time_s,omitempty"`
	ElevationGain *float64  `json:"total_elevation_gain,omitempty"`
	StartDate     time.Time `json:"start_date"`
	AverageSpeed  *float64  `json:"average_speed,omitempty"`
	Calories      *float64  `json:"calories,omitempty"`
	Description   string    `json:"description,omitempty"`
}

// Repository defines the contract for activity storage.
type Repository interface {
	List(ctx context.Context, sportType string, limit, offset int) ([]Activity, int, error)
}
