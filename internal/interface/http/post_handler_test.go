package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseop-dev/userboard/internal/application"
	"github.com/minseop-dev/userboard/internal/domain/entity"
)

type stubPostRepo struct {
	mu     sync.Mutex
	nextID int
	items  []entity.Post
}

func (r *stubPostRepo) Save(_ context.Context, p *entity.Post) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		r.nextID++
		p.ID = fmt.Sprintf("%d", r.nextID)
		r.items = append(r.items, *p)
	} else {
		for i := range r.items {
			if r.items[i].ID == p.ID {
				r.items[i] = *p
			}
		}
	}
	out := *p
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			out := r.items[i]
			return &out, nil
		}
	}
	return nil, nil
}

func newPostRouter(t *testing.T) (*gin.Engine, *stubAccountRepo, *stubPostRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accounts := &stubAccountRepo{}
	posts := &stubPostRepo{}
	svc := application.NewPostService(posts, accounts, stubClock{millis: 42}, nil)
	h := NewPostHandler(svc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/posts", h.Create)
	api.GET("/posts/:id", h.GetByID)
	api.PUT("/posts/:id", h.Update)
	return r, accounts, posts
}

func seedActive(t *testing.T, repo *stubAccountRepo, email string) *entity.Account {
	t.Helper()
	a := entity.NewAccount(email, "writer", "Seoul", "code")
	a.Status = entity.AccountActive
	saved, err := repo.Save(context.Background(), a)
	require.NoError(t, err)
	return saved
}

func TestPostHandler_Create(t *testing.T) {
	r, accounts, _ := newPostRouter(t)
	writer := seedActive(t, accounts, "w@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/posts", map[string]string{
		"content":   "hi",
		"writer_id": writer.ID,
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "hi", data["content"])
	assert.Equal(t, float64(42), data["created_at"])
	assert.Nil(t, data["modified_at"])
	writerData := data["writer"].(map[string]any)
	assert.Equal(t, writer.ID, writerData["id"])
}

func TestPostHandler_Create_pendingWriter(t *testing.T) {
	r, accounts, posts := newPostRouter(t)
	pending := entity.NewAccount("p@x.com", "pending", "Daejeon", "code")
	_, err := accounts.Save(context.Background(), pending)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/posts", map[string]string{
		"content":   "hi",
		"writer_id": pending.ID,
	}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, posts.items)
}

func TestPostHandler_Update(t *testing.T) {
	r, accounts, _ := newPostRouter(t)
	writer := seedActive(t, accounts, "w@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/posts", map[string]string{
		"content":   "hi",
		"writer_id": writer.ID,
	}, nil)
	id := dataField(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPut, "/api/posts/"+id, map[string]string{
		"content": "new content",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "new content", data["content"])
	assert.Equal(t, float64(42), data["modified_at"])
}

func TestPostHandler_GetByID_notFound(t *testing.T) {
	r, _, _ := newPostRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/posts/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
