package api

import (
	"errors"
	"net/http"

	reqdto "lng-loading/internal/handler/dto/request"
	resdto "lng-loading/internal/handler/dto/response"
	"lng-loading/internal/handler/httperr"
	"lng-loading/internal/observability/metrics"
	"lng-loading/internal/usecase/commands"
	"lng-loading/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book an available loading slot for a customer
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Create reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		metrics.IncReservationCreated(metrics.ResultError)
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, commands.ErrSlotNotAvailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is not available", nil)
		case errors.Is(err, commands.ErrDuplicateReservation):
			httperr.AbortWithError(c, http.StatusConflict, err, "Customer already has a reservation for this slot", nil)
		case errors.Is(err, commands.ErrVolumeExceedsCapacity):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Requested volume exceeds slot capacity", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	metrics.IncReservationCreated(metrics.ResultSuccess)
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get a reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description List reservations with optional filters and text search
// @Tags reservations
// @Produce json
// @Param customer_id query string false "Filter by customer"
// @Param station_id query string false "Filter by station"
// @Param status query string false "Filter by status" Enums(pending, confirmed, in_progress, completed, cancelled)
// @Param date_from query string false "Earliest slot date (YYYY-MM-DD)"
// @Param date_to query string false "Latest slot date (YYYY-MM-DD)"
// @Param search query string false "Match against license plate or driver name"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Update reservation
// @Description Update reservation details or move it along its status lifecycle
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Update reservation request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	var req reqdto.UpdateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrInvalidStatusTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Invalid status transition", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	if req.Status != nil {
		metrics.IncReservationTransition(view.Status)
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations by customer
// @Description List a customer's reservations, newest first
// @Tags reservations
// @Produce json
// @Param id path string true "Customer ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /reservations/by-customer/{id} [get]
func (h *ReservationHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer ID format", nil)
		return
	}

	limit, offset := parsePagination(c)
	views, err := h.q.ListByCustomer(c.Request.Context(), customerID, limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) buildListFilter(c *gin.Context) (queries.ReservationFilter, error) {
	var filter queries.ReservationFilter
	var err error

	if filter.CustomerID, err = parseUUIDQuery(c, "customer_id"); err != nil {
		return filter, err
	}
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
	if raw, ok := c.GetQuery("search"); ok && raw != "" {
		filter.Search = &raw
	}
	filter.Limit, filter.Offset = parsePagination(c)
	return filter, nil
}
