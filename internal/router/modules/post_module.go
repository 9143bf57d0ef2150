package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minseop-dev/userboard/internal/container"
	handlers "github.com/minseop-dev/userboard/internal/interface/http"
	"github.com/minseop-dev/userboard/internal/interface/middleware"
)

// PostModule wires post HTTP handlers into routes under /api.
type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/posts", writeLimiter, m.Handler.Create)
	rg.GET("/posts/:id", m.Handler.GetByID)
	rg.PUT("/posts/:id", writeLimiter, m.Handler.Update)
}
