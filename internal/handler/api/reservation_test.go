//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lng-loading/internal/handler/api"
	reqdto "lng-loading/internal/handler/dto/request"
	"lng-loading/internal/usecase/commands"
	"lng-loading/internal/usecase/queries"
	"lng-loading/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeReservationCommands struct {
	create func(req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	update func(id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error)
}

func (f *fakeReservationCommands) Create(_ context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	return f.create(req)
}

func (f *fakeReservationCommands) Update(_ context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error) {
	return f.update(id, req)
}

type fakeReservationQueries struct {
	getByID func(id uuid.UUID) (*queries.ReservationView, error)
	list    func(filter queries.ReservationFilter) ([]*queries.ReservationView, error)
}

func (f *fakeReservationQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return f.getByID(id)
}

func (f *fakeReservationQueries) List(_ context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	return f.list(filter)
}

func (f *fakeReservationQueries) ListByCustomer(_ context.Context, _ uuid.UUID, _, _ int32) ([]*queries.ReservationView, error) {
	return nil, nil
}

func newReservationRouter(cmds commands.ReservationCommands, q queries.ReservationQueries) *gin.Engine {
	h := api.NewReservationHandler(cmds, q)
	engine := gin.New()
	engine.POST("/api/reservations", h.Create)
	engine.GET("/api/reservations", h.List)
	engine.GET("/api/reservations/:id", h.Get)
	engine.PUT("/api/reservations/:id", h.Update)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestReservationHandlerCreate(t *testing.T) {
	t.Run("returns 201 with the created reservation", func(t *testing.T) {
		view := builder.NewReservationBuilder().BuildView()
		cmds := &fakeReservationCommands{
			create: func(reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
				return view, nil
			},
		}
		engine := newReservationRouter(cmds, &fakeReservationQueries{})

		rec := doJSON(t, engine, http.MethodPost, "/api/reservations",
			builder.NewReservationBuilder().BuildCreateRequestDTO())

		require.Equal(t, http.StatusCreated, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, view.ID.String(), body["id"])
		assert.Equal(t, "pending", body["status"])
		assert.Equal(t, view.TruckLicensePlate, body["truck_license_plate"])
	})

	t.Run("returns 400 when required fields are missing", func(t *testing.T) {
		engine := newReservationRouter(&fakeReservationCommands{}, &fakeReservationQueries{})

		rec := doJSON(t, engine, http.MethodPost, "/api/reservations", map[string]any{
			"slot_id": uuid.New().String(),
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps command errors to status codes", func(t *testing.T) {
		cases := []struct {
			name     string
			err      error
			expected int
		}{
			{name: "slot not found", err: commands.ErrSlotNotFound, expected: http.StatusNotFound},
			{name: "customer not found", err: commands.ErrCustomerNotFound, expected: http.StatusNotFound},
			{name: "slot not available", err: commands.ErrSlotNotAvailable, expected: http.StatusConflict},
			{name: "duplicate reservation", err: commands.ErrDuplicateReservation, expected: http.StatusConflict},
			{name: "volume exceeds capacity", err: commands.ErrVolumeExceedsCapacity, expected: http.StatusUnprocessableEntity},
			{name: "domain validation", err: commands.ErrDomainValidation, expected: http.StatusUnprocessableEntity},
			{name: "database failure", err: commands.ErrDatabaseOperationFailed, expected: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cmds := &fakeReservationCommands{
					create: func(reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
						return nil, tc.err
					},
				}
				engine := newReservationRouter(cmds, &fakeReservationQueries{})

				rec := doJSON(t, engine, http.MethodPost, "/api/reservations",
					builder.NewReservationBuilder().BuildCreateRequestDTO())
				assert.Equal(t, tc.expected, rec.Code)
			})
		}
	})
}

func TestReservationHandlerGet(t *testing.T) {
	t.Run("returns 200 with the reservation", func(t *testing.T) {
		view := builder.NewReservationBuilder().BuildView()
		q := &fakeReservationQueries{
			getByID: func(uuid.UUID) (*queries.ReservationView, error) { return view, nil },
		}
		engine := newReservationRouter(&fakeReservationCommands{}, q)

		rec := doJSON(t, engine, http.MethodGet, "/api/reservations/"+view.ID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("returns 400 for a malformed id", func(t *testing.T) {
		engine := newReservationRouter(&fakeReservationCommands{}, &fakeReservationQueries{})

		rec := doJSON(t, engine, http.MethodGet, "/api/reservations/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		q := &fakeReservationQueries{
			getByID: func(uuid.UUID) (*queries.ReservationView, error) {
				return nil, queries.ErrReservationNotFound
			},
		}
		engine := newReservationRouter(&fakeReservationCommands{}, q)

		rec := doJSON(t, engine, http.MethodGet, "/api/reservations/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReservationHandlerList(t *testing.T) {
	t.Run("passes query filters through", func(t *testing.T) {
		var captured queries.ReservationFilter
		q := &fakeReservationQueries{
			list: func(filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
				captured = filter
				return []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}, nil
			},
		}
		engine := newReservationRouter(&fakeReservationCommands{}, q)

		customerID := uuid.New()
		rec := doJSON(t, engine, http.MethodGet,
			"/api/reservations?customer_id="+customerID.String()+"&status=confirmed&search=ABC&limit=20&offset=40", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured.CustomerID)
		assert.Equal(t, customerID, *captured.CustomerID)
		require.NotNil(t, captured.Status)
		assert.Equal(t, "confirmed", *captured.Status)
		require.NotNil(t, captured.Search)
		assert.Equal(t, "ABC", *captured.Search)
		assert.Equal(t, int32(20), captured.Limit)
		assert.Equal(t, int32(40), captured.Offset)
	})

	t.Run("returns 400 for a malformed date filter", func(t *testing.T) {
		engine := newReservationRouter(&fakeReservationCommands{}, &fakeReservationQueries{})

		rec := doJSON(t, engine, http.MethodGet, "/api/reservations?date_from=June+1st", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReservationHandlerUpdate(t *testing.T) {
	t.Run("returns 200 with the updated reservation", func(t *testing.T) {
		view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = "confirmed"
		}).BuildView()
		cmds := &fakeReservationCommands{
			update: func(uuid.UUID, reqdto.UpdateReservationRequest) (*queries.ReservationView, error) {
				return view, nil
			},
		}
		engine := newReservationRouter(cmds, &fakeReservationQueries{})

		status := "confirmed"
		rec := doJSON(t, engine, http.MethodPut, "/api/reservations/"+uuid.NewString(),
			reqdto.UpdateReservationRequest{Status: &status})

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "confirmed", body["status"])
	})

	t.Run("returns 400 for an unknown status value", func(t *testing.T) {
		engine := newReservationRouter(&fakeReservationCommands{}, &fakeReservationQueries{})

		rec := doJSON(t, engine, http.MethodPut, "/api/reservations/"+uuid.NewString(),
			map[string]any{"status": "paused"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps command errors to status codes", func(t *testing.T) {
		cases := []struct {
			name     string
			err      error
			expected int
		}{
			{name: "not found", err: commands.ErrReservationNotFound, expected: http.StatusNotFound},
			{name: "invalid transition", err: commands.ErrInvalidStatusTransition, expected: http.StatusConflict},
			{name: "domain validation", err: commands.ErrDomainValidation, expected: http.StatusUnprocessableEntity},
			{name: "database failure", err: commands.ErrDatabaseOperationFailed, expected: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cmds := &fakeReservationCommands{
					update: func(uuid.UUID, reqdto.UpdateReservationRequest) (*queries.ReservationView, error) {
						return nil, tc.err
					},
				}
				engine := newReservationRouter(cmds, &fakeReservationQueries{})

				status := "confirmed"
				rec := doJSON(t, engine, http.MethodPut, "/api/reservations/"+uuid.NewString(),
					reqdto.UpdateReservationRequest{Status: &status})
				assert.Equal(t, tc.expected, rec.Code)
			})
		}
	})
}
