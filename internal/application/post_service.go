package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/minseop-dev/userboard/internal/domain/apperrors"
	"github.com/minseop-dev/userboard/internal/domain/entity"
	"github.com/minseop-dev/userboard/internal/domain/port"
	repo "github.com/minseop-dev/userboard/internal/domain/repository"
)

// PostService orchestrates post creation and update. Creation requires the
// writer to be an ACTIVE account at that moment; later status changes do
// not invalidate existing posts.
type PostService struct {
	Posts    repo.PostRepository
	Accounts repo.AccountRepository
	Clock    port.Clock
	Logger   *logrus.Logger
}

func NewPostService(posts repo.PostRepository, accounts repo.AccountRepository, clock port.Clock, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Accounts: accounts, Clock: clock, Logger: logger}
}

type PostCreateInput struct {
	Content  string
	WriterID string
}

// GetByID looks up a post.
func (s *PostService) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	p, err := s.Posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFound("posts", "id", id)
	}
	return p, nil
}

// Create builds and persists a post. The writer must resolve through the
// active-filtered lookup; a missing or PENDING account is NotFound and no
// post is persisted.
func (s *PostService) Create(ctx context.Context, in PostCreateInput) (*entity.Post, error) {
	writer, err := s.Accounts.FindByIDAndStatus(ctx, in.WriterID, entity.AccountActive)
	if err != nil {
		return nil, err
	}
	if writer == nil {
		return nil, apperrors.NewNotFound("accounts", "id,status", in.WriterID+","+string(entity.AccountActive))
	}
	p := entity.NewPost(in.Content, writer, s.Clock.NowMillis())
	p, err = s.Posts.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "writer_id": writer.ID}).Info("post created")
	}
	return p, nil
}

// Update overwrites the content and stamps the modification time. The
// writer's status is not re-validated.
func (s *PostService) Update(ctx context.Context, id, content string) (*entity.Post, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.UpdateContent(content, s.Clock.NowMillis())
	return s.Posts.Save(ctx, p)
}
