package repository

import (
	"context"

	"github.com/minseop-dev/userboard/internal/domain/entity"
)

// AccountRepository defines the persistence port for accounts.
// Finders return (nil, nil) when no record matches; callers decide whether
// absence is an error.
type AccountRepository interface {
	// Save upserts the account and assigns an ID on first save.
	Save(ctx context.Context, a *entity.Account) (*entity.Account, error)
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	FindByEmailAndStatus(ctx context.Context, email string, status entity.AccountStatus) (*entity.Account, error)
	FindByIDAndStatus(ctx context.Context, id string, status entity.AccountStatus) (*entity.Account, error)
}
