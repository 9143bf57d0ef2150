package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minseop-dev/userboard/pkg/response"
)

type HealthHandler struct {
	Pool *pgxpool.Pool
}

func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{Pool: pool}
}

// Check reports liveness plus database reachability.
func (h *HealthHandler) Check(c *gin.Context) {
	dbOK := true
	if h.Pool != nil {
		if err := h.Pool.Ping(c.Request.Context()); err != nil {
			dbOK = false
		}
	}
	if !dbOK {
		response.Error[any](c, http.StatusServiceUnavailable, "database unreachable", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"db": true}, "health")
}
