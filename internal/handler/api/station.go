package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "lng-loading/internal/handler/dto/request"
	resdto "lng-loading/internal/handler/dto/response"
	"lng-loading/internal/handler/httperr"
	"lng-loading/internal/usecase/commands"
	"lng-loading/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StationHandler struct {
	cmds commands.StationCommands
	q    queries.StationQueries
}

func NewStationHandler(cmds commands.StationCommands, q queries.StationQueries) *StationHandler {
	return &StationHandler{cmds: cmds, q: q}
}

// @Summary Create station
// @Description Register a new loading station
// @Tags stations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateStationRequest true "Create station request"
// @Success 201 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /stations [post]
func (h *StationHandler) Create(c *gin.Context) {
	var req reqdto.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateStationName):
			httperr.AbortWithError(c, http.StatusConflict, err, "Station name already exists", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStationView(view))
}

// @Summary Get station
// @Description Get a station by ID
// @Tags stations
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stations/{id} [get]
func (h *StationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid station ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrStationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Station not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStationView(view))
}

// @Summary List stations
// @Description List stations, optionally filtered by active flag
// @Tags stations
// @Produce json
// @Param is_active query bool false "Filter by active flag"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.StationResponse
// @Router /stations [get]
func (h *StationHandler) List(c *gin.Context) {
	isActive, err := parseBoolQuery(c, "is_active")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid is_active flag", nil)
		return
	}
	limit, offset := parsePagination(c)

	views, err := h.q.List(c.Request.Context(), isActive, limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStationViews(views))
}

// @Summary Update station
// @Description Update station fields by ID
// @Tags stations
// @Accept json
// @Produce json
// @Param id path string true "Station ID"
// @Param request body reqdto.UpdateStationRequest true "Update station request"
// @Success 200 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /stations/{id} [put]
func (h *StationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid station ID format", nil)
		return
	}

	var req reqdto.UpdateStationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Station not found", nil)
		case errors.Is(err, commands.ErrDuplicateStationName):
			httperr.AbortWithError(c, http.StatusConflict, err, "Station name already exists", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromStationView(view))
}

func parseBoolQuery(c *gin.Context, key string) (*bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func parsePagination(c *gin.Context) (limit, offset int32) {
	if raw, ok := c.GetQuery("limit"); ok {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
			limit = int32(v)
		}
	}
	if raw, ok := c.GetQuery("offset"); ok {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v > 0 {
			offset = int32(v)
		}
	}
	return limit, offset
}
