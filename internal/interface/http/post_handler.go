package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/minseop-dev/userboard/internal/application"
	"github.com/minseop-dev/userboard/internal/domain/apperrors"
	"github.com/minseop-dev/userboard/internal/domain/entity"
	"github.com/minseop-dev/userboard/pkg/response"
	"github.com/minseop-dev/userboard/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Content  string `json:"content" binding:"required"`
	WriterID string `json:"writer_id" binding:"required"`
}

type updatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

type postResponse struct {
	ID         string          `json:"id"`
	Content    string          `json:"content"`
	CreatedAt  int64           `json:"created_at"`
	ModifiedAt *int64          `json:"modified_at"`
	Writer     accountResponse `json:"writer"`
}

func toPostResponse(p *entity.Post) postResponse {
	return postResponse{
		ID:         p.ID,
		Content:    p.Content,
		CreatedAt:  p.CreatedAt,
		ModifiedAt: p.ModifiedAt,
		Writer:     toAccountResponse(p.Writer),
	}
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), application.PostCreateInput{
		Content:  req.Content,
		WriterID: req.WriterID,
	})
	if err != nil {
		h.fail(c, err, "failed to create post")
		return
	}
	response.Success(c, http.StatusCreated, toPostResponse(p), "post created")
}

func (h *PostHandler) GetByID(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch post")
		return
	}
	response.Success(c, http.StatusOK, toPostResponse(p), "post")
}

func (h *PostHandler) Update(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		h.fail(c, err, "failed to update post")
		return
	}
	response.Success(c, http.StatusOK, toPostResponse(p), "post updated")
}

func (h *PostHandler) fail(c *gin.Context, err error, msg string) {
	if apperrors.IsNotFound(err) {
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
		return
	}
	if h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	response.Error[any](c, http.StatusInternalServerError, msg, nil)
}
