package readstore

import (
	"context"

	"lng-loading/internal/infra"
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadStore struct {
	db infra.DBTX
}

func NewCustomerReadStore(db infra.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

const customerViewColumns = `id, name, contact_person, email, phone, contract_type, created_at`

func (s *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+customerViewColumns+`
		FROM customers
		WHERE id = $1`, id)

	var view queries.CustomerView
	if err := row.Scan(
		&view.ID,
		&view.Name,
		&view.ContactPerson,
		&view.Email,
		&view.Phone,
		&view.ContractType,
		&view.CreatedAt,
	); err != nil {
		return nil, infra.WrapRepoErr("failed to get customer", err)
	}
	return &view, nil
}

func (s *CustomerReadStore) List(ctx context.Context, contractType *string, limit, offset int32) ([]*queries.CustomerView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+customerViewColumns+`
		FROM customers
		WHERE $1::varchar IS NULL OR contract_type = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`, contractType, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	views := make([]*queries.CustomerView, 0)
	for rows.Next() {
		var view queries.CustomerView
		if scanErr := rows.Scan(
			&view.ID,
			&view.Name,
			&view.ContactPerson,
			&view.Email,
			&view.Phone,
			&view.ContractType,
			&view.CreatedAt,
		); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan customer", scanErr)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	return views, nil
}
