package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/runcrewhq/crew-directory/internal/domain"
)

// EditRequestRepository encapsulates edit request persistence. Listings are
// ordered newest first.
type EditRequestRepository interface {
	Create(ctx context.Context, request *domain.EditRequest) error
	GetByID(ctx context.Context, id string) (*domain.EditRequest, error)
	ListByCrew(ctx context.Context, crewID string) ([]domain.EditRequest, error)
	ListByStatus(ctx context.Context, status domain.EditRequestStatus) ([]domain.EditRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.EditRequestStatus) error
	Delete(ctx context.Context, id string) error
}

type editRequestRepository struct {
	pool *pgxpool.Pool
}

// NewEditRequestRepository instantiates repository.
func NewEditRequestRepository(pool *pgxpool.Pool) EditRequestRepository {
	return &editRequestRepository{pool: pool}
}

func (r *editRequestRepository) Create(ctx context.Context, request *domain.EditRequest) error {
	const query = `
        INSERT INTO edit_requests (id, crew_id, status, changes)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		request.ID,
		request.CrewID,
		request.Status,
		request.Changes,
	).Scan(&request.CreatedAt)
}

func (r *editRequestRepository) GetByID(ctx context.Context, id string) (*domain.EditRequest, error) {
	const query = `
        SELECT id, crew_id, status, changes, created_at, decided_at
        FROM edit_requests WHERE id=$1`

	var request domain.EditRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.CrewID,
		&request.Status,
		&request.Changes,
		&request.CreatedAt,
		&request.DecidedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *editRequestRepository) ListByCrew(ctx context.Context, crewID string) ([]domain.EditRequest, error) {
	const query = `
        SELECT id, crew_id, status, changes, created_at, decided_at
        FROM edit_requests WHERE crew_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, crewID)
}

func (r *editRequestRepository) ListByStatus(ctx context.Context, status domain.EditRequestStatus) ([]domain.EditRequest, error) {
	const query = `
        SELECT id, crew_id, status, changes, created_at, decided_at
        FROM edit_requests WHERE status=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, status)
}

func (r *editRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.EditRequestStatus) error {
	const query = `
        UPDATE edit_requests SET status=$1, decided_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *editRequestRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM edit_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *editRequestRepository) list(ctx context.Context, query string, arg any) ([]domain.EditRequest, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.EditRequest
	for rows.Next() {
		var request domain.EditRequest
		if err := rows.Scan(
			&request.ID,
			&request.CrewID,
			&request.Status,
			&request.Changes,
			&request.CreatedAt,
			&request.DecidedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
