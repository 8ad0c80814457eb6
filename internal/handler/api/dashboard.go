package api

import (
	"net/http"
	"strconv"

	resdto "lng-loading/internal/handler/dto/response"
	"lng-loading/internal/handler/httperr"
	"lng-loading/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Dashboard stats
// @Description Daily and weekly booking rollups
// @Tags dashboard
// @Produce json
// @Success 200 {object} resdto.DashboardStatsResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardStats(stats))
}

// @Summary Today's schedule
// @Description All reservations loading today, ordered by start time
// @Tags dashboard
// @Produce json
// @Success 200 {array} resdto.TodayScheduleItemResponse
// @Router /dashboard/today-schedule [get]
func (h *DashboardHandler) TodaySchedule(c *gin.Context) {
	items, err := h.q.TodaySchedule(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTodaySchedule(items))
}

// @Summary Recent activity
// @Description Latest reservations rendered as an activity feed
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of items (default 10, max 50)"
// @Success 200 {array} resdto.ActivityItemResponse
// @Failure 400 {object} map[string]string
// @Router /dashboard/recent-activity [get]
func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	var limit int32
	if raw, ok := c.GetQuery("limit"); ok {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = int32(v)
	}

	items, err := h.q.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivityItems(items))
}
