package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/regiondist/catalog-backend/internal/adapters/repository"
	"github.com/regiondist/catalog-backend/utils"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	Dashboard repository.DashboardRepository
}

func NewDashboardHandler(dashboard repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	stats, err := h.Dashboard.GetStats(ctx)
	if err != nil {
		logrus.Errorf("failed to compute dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch dashboard stats"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", stats))
}
