package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping() error
}

// HealthController serves the liveness endpoint.
type HealthController struct {
	db      Pinger
	version string
}

func NewHealthController(db Pinger, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

func (ctrl *HealthController) Status(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if err := ctrl.db.Ping(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":  status,
		"version": ctrl.version,
	})
}
