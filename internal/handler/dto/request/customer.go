package request

import (
	"lng-loading/internal/domain/customer"
)

type CreateCustomerRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	ContactPerson string `json:"contact_person" binding:"required,max=255"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,max=50"`
	ContractType  string `json:"contract_type" binding:"required,oneof=spot contract"`
}

func (r CreateCustomerRequest) ToDomain() (*customer.Customer, error) {
	return customer.NewCustomer(
		r.Name,
		r.ContactPerson,
		r.Email,
		r.Phone,
		customer.ContractType(r.ContractType),
	)
}

type UpdateCustomerRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	ContactPerson *string `json:"contact_person,omitempty" binding:"omitempty,min=1,max=255"`
	Email         *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone         *string `json:"phone,omitempty" binding:"omitempty,min=1,max=50"`
	ContractType  *string `json:"contract_type,omitempty" binding:"omitempty,oneof=spot contract"`
}

// Apply merges the patch into the current entity state and revalidates it.
func (r UpdateCustomerRequest) Apply(c *customer.Customer) error {
	name := c.Name()
	if r.Name != nil {
		name = *r.Name
	}
	contactPerson := c.ContactPerson()
	if r.ContactPerson != nil {
		contactPerson = *r.ContactPerson
	}
	email := c.Email()
	if r.Email != nil {
		email = *r.Email
	}
	phone := c.Phone()
	if r.Phone != nil {
		phone = *r.Phone
	}
	contractType := c.ContractType()
	if r.ContractType != nil {
		contractType = customer.ContractType(*r.ContractType)
	}
	return c.Update(name, contactPerson, email, phone, contractType)
}
