package geo

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

func (r *PostgresRepo) ListCountries(ctx context.Context) ([]Country, error) {
	const query = `
	SELECT iso_alpha_2, iso_alpha_3, name, centroid_lat, centroid_lng
	FROM worldly_countries
	ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []Country
	for rows.Next() {
		var c Country
		if err := rows.Scan(&c.Alpha2, &c.Alpha3, &c.Name, &c.Lat, &c.Lng); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}
