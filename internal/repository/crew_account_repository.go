package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/runcrewhq/crew-directory/internal/domain"
)

// CrewAccountRepository defines persistence access for crew login accounts.
type CrewAccountRepository interface {
	Create(ctx context.Context, account *domain.CrewAccount) error
	GetByID(ctx context.Context, id string) (*domain.CrewAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.CrewAccount, error)
}

type crewAccountRepository struct {
	pool *pgxpool.Pool
}

// NewCrewAccountRepository returns a Postgres-backed implementation.
func NewCrewAccountRepository(pool *pgxpool.Pool) CrewAccountRepository {
	return &crewAccountRepository{pool: pool}
}

func (r *crewAccountRepository) Create(ctx context.Context, account *domain.CrewAccount) error {
	const query = `
        INSERT INTO crew_accounts (crew_id, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		account.CrewID,
		account.Email,
		account.PasswordHash,
	).Scan(&account.ID, &account.CreatedAt)
}

func (r *crewAccountRepository) GetByID(ctx context.Context, id string) (*domain.CrewAccount, error) {
	const query = `
        SELECT id, crew_id, email, password_hash, created_at
        FROM crew_accounts WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *crewAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.CrewAccount, error) {
	const query = `
        SELECT id, crew_id, email, password_hash, created_at
        FROM crew_accounts WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *crewAccountRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.CrewAccount, error) {
	var account domain.CrewAccount
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.CrewID,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}
