package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minseop-dev/userboard/internal/domain/entity"
	"github.com/minseop-dev/userboard/internal/domain/repository"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, email, nickname, address, certification_code, status, last_login_at`

func (r *AccountRepository) Save(ctx context.Context, a *entity.Account) (*entity.Account, error) {
	if a.ID == "" {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO accounts (email, nickname, address, certification_code, status, last_login_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, a.Email, a.Nickname, a.Address, a.CertificationCode, a.Status, a.LastLoginAt)
		if err := row.Scan(&a.ID); err != nil {
			return nil, err
		}
		return a, nil
	}

	_, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET email = $1, nickname = $2, address = $3, certification_code = $4, status = $5, last_login_at = $6
		WHERE id = $7
	`, a.Email, a.Nickname, a.Address, a.CertificationCode, a.Status, a.LastLoginAt, a.ID)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1
	`, id)
	return scanAccount(row)
}

func (r *AccountRepository) FindByEmailAndStatus(ctx context.Context, email string, status entity.AccountStatus) (*entity.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE email = $1 AND status = $2
	`, email, status)
	return scanAccount(row)
}

func (r *AccountRepository) FindByIDAndStatus(ctx context.Context, id string, status entity.AccountStatus) (*entity.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1 AND status = $2
	`, id, status)
	return scanAccount(row)
}

// scanAccount maps pgx.ErrNoRows to (nil, nil); absence is not an error at
// the repository level.
func scanAccount(row pgx.Row) (*entity.Account, error) {
	a := &entity.Account{}
	if err := row.Scan(&a.ID, &a.Email, &a.Nickname, &a.Address,
		&a.CertificationCode, &a.Status, &a.LastLoginAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
