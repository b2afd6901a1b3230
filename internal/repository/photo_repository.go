package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/runcrewhq/crew-directory/internal/domain"
)

// PhotoRepository serves crew profile photos ordered by position.
type PhotoRepository interface {
	ListByCrew(ctx context.Context, crewID string) ([]domain.CrewPhoto, error)
}

type photoRepository struct {
	pool *pgxpool.Pool
}

// NewPhotoRepository returns a Postgres-backed implementation.
func NewPhotoRepository(pool *pgxpool.Pool) PhotoRepository {
	return &photoRepository{pool: pool}
}

func (r *photoRepository) ListByCrew(ctx context.Context, crewID string) ([]domain.CrewPhoto, error) {
	const query = `
        SELECT id, crew_id, url, caption, position, created_at
        FROM crew_photos WHERE crew_id=$1 ORDER BY position ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, crewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []domain.CrewPhoto
	for rows.Next() {
		var photo domain.CrewPhoto
		if err := rows.Scan(
			&photo.ID,
			&photo.CrewID,
			&photo.URL,
			&photo.Caption,
			&photo.Position,
			&photo.CreatedAt,
		); err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}
	return photos, rows.Err()
}
