package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minseop-dev/userboard/internal/domain/entity"
	"github.com/minseop-dev/userboard/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Save(ctx context.Context, p *entity.Post) (*entity.Post, error) {
	if p.ID == "" {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO posts (content, created_at, modified_at, writer_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, p.Content, p.CreatedAt, p.ModifiedAt, p.Writer.ID)
		if err := row.Scan(&p.ID); err != nil {
			return nil, err
		}
		return p, nil
	}

	_, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET content = $1, modified_at = $2
		WHERE id = $3
	`, p.Content, p.ModifiedAt, p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindByID loads a post together with a snapshot of its writer.
func (r *PostRepository) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.content, p.created_at, p.modified_at,
		       a.id, a.email, a.nickname, a.address, a.certification_code, a.status, a.last_login_at
		FROM posts p
		JOIN accounts a ON a.id = p.writer_id
		WHERE p.id = $1
	`, id)

	p := &entity.Post{Writer: &entity.Account{}}
	w := p.Writer
	if err := row.Scan(&p.ID, &p.Content, &p.CreatedAt, &p.ModifiedAt,
		&w.ID, &w.Email, &w.Nickname, &w.Address, &w.CertificationCode, &w.Status, &w.LastLoginAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
