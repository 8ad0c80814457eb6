package api

import (
	"errors"
	"net/http"

	reqdto "lng-loading/internal/handler/dto/request"
	resdto "lng-loading/internal/handler/dto/response"
	"lng-loading/internal/handler/httperr"
	"lng-loading/internal/usecase/commands"
	"lng-loading/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Create customer
// @Description Register a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateCustomerEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Customer email already exists", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCustomerView(view))
}

// @Summary Get customer
// @Description Get a customer with their reservation history
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerDetailView(view))
}

// @Summary List customers
// @Description List customers, optionally filtered by contract type
// @Tags customers
// @Produce json
// @Param contract_type query string false "Filter by contract type" Enums(spot, contract)
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.CustomerResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var contractType *string
	if raw, ok := c.GetQuery("contract_type"); ok && raw != "" {
		contractType = &raw
	}
	limit, offset := parsePagination(c)

	views, err := h.q.List(c.Request.Context(), contractType, limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerViews(views))
}

// @Summary Update customer
// @Description Update customer fields by ID
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Update customer request"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer ID format", nil)
		return
	}

	var req reqdto.UpdateCustomerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, commands.ErrDuplicateCustomerEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Customer email already exists", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Delete customer
// @Description Delete a customer without reservations
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer ID format", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, commands.ErrCustomerHasReservations):
			httperr.AbortWithError(c, http.StatusConflict, err, "Customer still has reservations", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
