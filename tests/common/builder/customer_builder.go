//go:build unit || e2e

package builder

import (
	"time"

	domcustomer "lng-loading/internal/domain/customer"
	reqdto "lng-loading/internal/handler/dto/request"
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	ContractType  string
	CreatedAt     time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Name:          "Acme Logistics",
		ContactPerson: "Jan Peeters",
		Email:         "dispatch@acme-logistics.example",
		Phone:         "+32 50 123 456",
		ContractType:  "contract",
		CreatedAt:     time.Now(),
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) BuildDomain() (*domcustomer.Customer, error) {
	return domcustomer.NewCustomer(
		b.Name,
		b.ContactPerson,
		b.Email,
		b.Phone,
		domcustomer.ContractType(b.ContractType),
	)
}

func (b *CustomerBuilder) BuildCreateRequestDTO() reqdto.CreateCustomerRequest {
	return reqdto.CreateCustomerRequest{
		Name:          b.Name,
		ContactPerson: b.ContactPerson,
		Email:         b.Email,
		Phone:         b.Phone,
		ContractType:  b.ContractType,
	}
}

func (b *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:            uuid.New(),
		Name:          b.Name,
		ContactPerson: b.ContactPerson,
		Email:         b.Email,
		Phone:         b.Phone,
		ContractType:  b.ContractType,
		CreatedAt:     b.CreatedAt,
	}
}
