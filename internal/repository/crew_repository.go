package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/runcrewhq/crew-directory/internal/domain"
)

// CrewRepository encapsulates crew persistence. Not-found is signaled with
// pgx.ErrNoRows, distinct from transport errors.
type CrewRepository interface {
	Create(ctx context.Context, crew *domain.Crew) error
	Update(ctx context.Context, crew *domain.Crew) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Crew, error)
	List(ctx context.Context) ([]domain.Crew, error)
}

type crewRepository struct {
	pool *pgxpool.Pool
}

// NewCrewRepository returns a Postgres-backed implementation.
func NewCrewRepository(pool *pgxpool.Pool) CrewRepository {
	return &crewRepository{pool: pool}
}

func (r *crewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	const query = `
        INSERT INTO crews (name, description, instagram, logo_url, founded_on, latitude, longitude)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		crew.Name,
		crew.Description,
		crew.Instagram,
		crew.LogoURL,
		crew.FoundedOn,
		crew.Latitude,
		crew.Longitude,
	).Scan(&crew.ID, &crew.CreatedAt, &crew.UpdatedAt)
}

func (r *crewRepository) Update(ctx context.Context, crew *domain.Crew) error {
	const query = `
        UPDATE crews SET name=$1, description=$2, instagram=$3, logo_url=$4,
            founded_on=$5, latitude=$6, longitude=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		crew.Name,
		crew.Description,
		crew.Instagram,
		crew.LogoURL,
		crew.FoundedOn,
		crew.Latitude,
		crew.Longitude,
		crew.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *crewRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM crews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *crewRepository) GetByID(ctx context.Context, id string) (*domain.Crew, error) {
	const query = `
        SELECT id, name, description, instagram, logo_url, founded_on, latitude, longitude, created_at, updated_at
        FROM crews WHERE id=$1`

	var crew domain.Crew
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&crew.ID,
		&crew.Name,
		&crew.Description,
		&crew.Instagram,
		&crew.LogoURL,
		&crew.FoundedOn,
		&crew.Latitude,
		&crew.Longitude,
		&crew.CreatedAt,
		&crew.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &crew, nil
}

func (r *crewRepository) List(ctx context.Context) ([]domain.Crew, error) {
	const query = `
        SELECT id, name, description, instagram, logo_url, founded_on, latitude, longitude, created_at, updated_at
        FROM crews ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crews []domain.Crew
	for rows.Next() {
		var crew domain.Crew
		if err := rows.Scan(
			&crew.ID,
			&crew.Name,
			&crew.Description,
			&crew.Instagram,
			&crew.LogoURL,
			&crew.FoundedOn,
			&crew.Latitude,
			&crew.Longitude,
			&crew.CreatedAt,
			&crew.UpdatedAt,
		); err != nil {
			return nil, err
		}
		crews = append(crews, crew)
	}
	return crews, rows.Err()
}
