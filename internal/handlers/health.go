package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hiratake/task-room-api/internal/timeutil"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// Health reports service liveness and uptime in seconds.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": timeutil.Now().String(),
		"version":   Version,
		"uptime":    int(time.Since(h.startedAt).Seconds()),
	})
}
