package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/httperror"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterStatsRoutes registers the routes for statistics with the
// RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/dashboard", httputil.OptionsGet)
	r.GET("/dashboard", GetDashboard)
}

// @Summary		Dashboard statistics
// @Description	Returns the caller's statistics for the current month, computed from the ledger on every request
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	models.DashboardStats
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/stats/dashboard [get]
func GetDashboard(c *gin.Context) {
	stats, err := models.ComputeDashboard(models.DB, requestUserID(c), time.Now())
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, stats)
}
