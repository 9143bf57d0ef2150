package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minseop-dev/userboard/internal/container"
	handlers "github.com/minseop-dev/userboard/internal/interface/http"
	"github.com/minseop-dev/userboard/internal/interface/middleware"
)

// AccountModule wires account HTTP handlers into routes under /api.
// POST   /api/accounts                  create (rate limited per IP)
// GET    /api/accounts/:id              public projection
// GET    /api/accounts/:id/verify       email certification link target
// GET    /api/accounts/me               owner projection by EMAIL header
// PUT    /api/accounts/me               profile update by EMAIL header
type AccountModule struct {
	Handler *handlers.AccountHandler
}

func NewAccountModule(h *handlers.AccountHandler) *AccountModule {
	return &AccountModule{Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/accounts", createLimiter, m.Handler.Create)
	rg.GET("/accounts/me", m.Handler.MyInfo)
	rg.PUT("/accounts/me", m.Handler.UpdateMyInfo)
	rg.GET("/accounts/:id", m.Handler.GetByID)
	rg.GET("/accounts/:id/verify", m.Handler.Verify)
}
