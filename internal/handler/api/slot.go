package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "lng-loading/internal/handler/dto/request"
	resdto "lng-loading/internal/handler/dto/response"
	"lng-loading/internal/handler/httperr"
	"lng-loading/internal/observability/metrics"
	"lng-loading/internal/usecase/commands"
	"lng-loading/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	cmds commands.SlotCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary Create loading slot
// @Description Open a new loading slot on an active station
// @Tags slots
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSlotRequest true "Create slot request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		metrics.IncSlotCreated(metrics.ResultError)
		switch {
		case errors.Is(err, commands.ErrStationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Station not found", nil)
		case errors.Is(err, commands.ErrStationInactive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Station is not active", nil)
		case errors.Is(err, commands.ErrSlotOverlap):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot overlaps an existing slot", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	metrics.IncSlotCreated(metrics.ResultSuccess)
	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

// @Summary Get loading slot
// @Description Get a loading slot by ID
// @Tags slots
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrSlotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary List loading slots
// @Description List loading slots with optional filters
// @Tags slots
// @Produce json
// @Param station_id query string false "Filter by station"
// @Param date_from query string false "Earliest slot date (YYYY-MM-DD)"
// @Param date_to query string false "Latest slot date (YYYY-MM-DD)"
// @Param status query string false "Filter by status" Enums(available, reserved, completed, cancelled)
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	filter, err := h.buildListFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary List available slots
// @Description List bookable slots, optionally narrowed by station, date and minimum volume
// @Tags slots
// @Produce json
// @Param station_id query string false "Filter by station"
// @Param date query string false "Exact slot date (YYYY-MM-DD)"
// @Param min_volume query number false "Minimum slot capacity in m3"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /slots/available [get]
func (h *SlotHandler) ListAvailable(c *gin.Context) {
	var filter queries.AvailableSlotFilter
	var err error

	if filter.StationID, err = parseUUIDQuery(c, "station_id"); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid station_id", nil)
		return
	}
	if filter.Date, err = parseDateQuery(c, "date"); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	if filter.MinVolume, err = parseFloatQuery(c, "min_volume"); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid min_volume", nil)
		return
	}

	views, err := h.q.ListAvailable(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Update loading slot
// @Description Reschedule a slot or flip its status between available and cancelled
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param request body reqdto.UpdateSlotRequest true "Update slot request"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /slots/{id} [put]
func (h *SlotHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
		return
	}

	var req reqdto.UpdateSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, commands.ErrSlotOverlap):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot overlaps an existing slot", nil)
		case errors.Is(err, commands.ErrSlotStatusLocked):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot status is managed by its reservation", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

func (h *SlotHandler) buildListFilter(c *gin.Context) (queries.SlotFilter, error) {
	var filter queries.SlotFilter
	var err error

	if filter.StationID, err = parseUUIDQuery(c, "station_id"); err != nil {
		return filter, err
	}
	if filter.DateFrom, err = parseDateQuery(c, "date_from"); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseDateQuery(c, "date_to"); err != nil {
		return filter, err
	}
	if raw, ok := c.GetQuery("status"); ok && raw != "" {
		filter.Status = &raw
	}
	filter.Limit, filter.Offset = parsePagination(c)
	return filter, nil
}

func parseUUIDQuery(c *gin.Context, key string) (*uuid.UUID, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func parseFloatQuery(c *gin.Context, key string) (*float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
