package v1

import (
	"net/http"
	"time"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r gin.IRoutes, healthUC usecase.HealthUsecase) {
	if healthUC == nil {
		healthUC = usecase.NewHealthUsecase(nil)
	}
	h := &HealthHandler{healthUC: healthUC}
	r.GET("/health", h.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Reports the database and Redis status.
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := h.healthUC.Check(c.Request.Context())
	if status["status"] != "ok" {
		response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
		return
	}
	response.Success(c, http.StatusOK, "System operational", status)
}

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}
