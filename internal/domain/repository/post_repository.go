package repository

import (
	"context"

	"github.com/minseop-dev/userboard/internal/domain/entity"
)

// PostRepository defines the persistence port for posts.
type PostRepository interface {
	// Save upserts the post and assigns an ID on first save.
	Save(ctx context.Context, p *entity.Post) (*entity.Post, error)
	FindByID(ctx context.Context, id string) (*entity.Post, error)
}
