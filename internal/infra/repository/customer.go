package repository

import (
	"context"
	"time"

	"lng-loading/internal/domain/customer"
	"lng-loading/internal/infra"

	"github.com/google/uuid"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(ctx context.Context, db infra.DBTX, c *customer.Customer) error {
	_, err := db.Exec(ctx, `
		INSERT INTO customers (id, name, contact_person, email, phone, contract_type)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID(),
		c.Name(),
		c.ContactPerson(),
		c.Email(),
		c.Phone(),
		c.ContractType().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create customer", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, db infra.DBTX, c *customer.Customer) error {
	tag, err := db.Exec(ctx, `
		UPDATE customers
		SET name = $2, contact_person = $3, email = $4, phone = $5, contract_type = $6
		WHERE id = $1`,
		c.ID(),
		c.Name(),
		c.ContactPerson(),
		c.Email(),
		c.Phone(),
		c.ContractType().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "customer not found")
	}
	return nil
}

// Delete removes a customer. A FK violation surfaces when reservations
// still reference the customer.
func (r *CustomerRepository) Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "customer not found")
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*customer.Customer, error) {
	var (
		customerID    uuid.UUID
		name          string
		contactPerson string
		email         string
		phone         string
		contractType  string
		createdAt     time.Time
	)
	err := db.QueryRow(ctx, `
		SELECT id, name, contact_person, email, phone, contract_type, created_at
		FROM customers
		WHERE id = $1`, id).Scan(&customerID, &name, &contactPerson, &email, &phone, &contractType, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get customer", err)
	}
	return customer.ReconstructCustomer(
		customerID, name, contactPerson, email, phone,
		customer.ContractType(contractType), createdAt,
	), nil
}
