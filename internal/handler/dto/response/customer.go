package response

import (
	"time"

	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ContractType  string    `json:"contract_type"`
	CreatedAt     time.Time `json:"created_at"`
}

// CustomerDetailResponse is a customer plus their reservation history.
type CustomerDetailResponse struct {
	CustomerResponse
	Reservations []*ReservationResponse `json:"reservations"`
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	return &CustomerResponse{
		ID:            v.ID,
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Email:         v.Email,
		Phone:         v.Phone,
		ContractType:  v.ContractType,
		CreatedAt:     v.CreatedAt,
	}
}

func FromCustomerViews(views []*queries.CustomerView) []*CustomerResponse {
	responses := make([]*CustomerResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromCustomerView(v))
	}
	return responses
}

func FromCustomerDetailView(v *queries.CustomerDetailView) *CustomerDetailResponse {
	return &CustomerDetailResponse{
		CustomerResponse: *FromCustomerView(&v.CustomerView),
		Reservations:     FromReservationViews(v.Reservations),
	}
}
