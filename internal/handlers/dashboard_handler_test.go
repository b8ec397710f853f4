package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/regiondist/catalog-backend/internal/adapters/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepo struct {
	stats repository.DashboardStats
	err   error
}

func (s *stubDashboardRepo) GetStats(context.Context) (repository.DashboardStats, error) {
	return s.stats, s.err
}

func TestDashboardGetStats(t *testing.T) {
	stats := repository.DashboardStats{
		ContactGrowth: repository.GrowthPercent(0, 5),
		ProductGrowth: repository.GrowthPercent(10, 5),
	}
	stats.Products.Total = 12
	stats.Products.Active = 10
	stats.Products.Inactive = 2

	h := NewDashboardHandler(&stubDashboardRepo{stats: stats})
	r := gin.New()
	r.GET("/api/admin/dashboard", h.GetStats)

	w := performJSON(t, r, http.MethodGet, "/api/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "+100%", data["contactGrowth"])
	assert.Equal(t, "-50.0%", data["productGrowth"])
	assert.Equal(t, float64(12), data["products"].(map[string]interface{})["total"])
}

func TestDashboardGetStatsFailure(t *testing.T) {
	h := NewDashboardHandler(&stubDashboardRepo{err: errors.New("aggregation failed")})
	r := gin.New()
	r.GET("/api/admin/dashboard", h.GetStats)

	w := performJSON(t, r, http.MethodGet, "/api/admin/dashboard", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
