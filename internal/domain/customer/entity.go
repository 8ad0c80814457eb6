package customer

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName  = errors.New("customer name cannot be empty")
	ErrEmptyContactPerson = errors.New("contact person cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyPhone         = errors.New("phone number cannot be empty")
	ErrPhoneTooLong       = errors.New("phone number is too long (max 50 characters)")
)

const (
	MaxCustomerNameLength = 255
	MaxPhoneLength        = 50
)

type Customer struct {
	id            uuid.UUID
	name          string
	contactPerson string
	email         string
	phone         string
	contractType  ContractType
	createdAt     time.Time
}

func NewCustomer(
	name, contactPerson, email, phone string,
	contractType ContractType,
) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxCustomerNameLength {
		return nil, ErrEmptyCustomerName
	}
	contactPerson = strings.TrimSpace(contactPerson)
	if contactPerson == "" {
		return nil, ErrEmptyContactPerson
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	if len(phone) > MaxPhoneLength {
		return nil, ErrPhoneTooLong
	}
	if !contractType.IsValid() {
		return nil, ErrInvalidContractType
	}

	return &Customer{
		id:            uuid.New(),
		name:          name,
		contactPerson: contactPerson,
		email:         email,
		phone:         phone,
		contractType:  contractType,
	}, nil
}

func ReconstructCustomer(
	id uuid.UUID,
	name, contactPerson, email, phone string,
	contractType ContractType,
	createdAt time.Time,
) *Customer {
	return &Customer{
		id:            id,
		name:          name,
		contactPerson: contactPerson,
		email:         email,
		phone:         phone,
		contractType:  contractType,
		createdAt:     createdAt,
	}
}

// Update replaces the customer's attributes after validation. Callers merge
// partial edits against the current values before calling.
func (c *Customer) Update(
	name, contactPerson, email, phone string,
	contractType ContractType,
) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxCustomerNameLength {
		return ErrEmptyCustomerName
	}
	contactPerson = strings.TrimSpace(contactPerson)
	if contactPerson == "" {
		return ErrEmptyContactPerson
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrEmptyPhone
	}
	if len(phone) > MaxPhoneLength {
		return ErrPhoneTooLong
	}
	if !contractType.IsValid() {
		return ErrInvalidContractType
	}

	c.name = name
	c.contactPerson = contactPerson
	c.email = email
	c.phone = phone
	c.contractType = contractType
	return nil
}

func (c *Customer) ID() uuid.UUID              { return c.id }
func (c *Customer) Name() string               { return c.name }
func (c *Customer) ContactPerson() string      { return c.contactPerson }
func (c *Customer) Email() string              { return c.email }
func (c *Customer) Phone() string              { return c.phone }
func (c *Customer) ContractType() ContractType { return c.contractType }
func (c *Customer) CreatedAt() time.Time       { return c.createdAt }
