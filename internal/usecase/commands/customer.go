package commands

import (
	"context"

	reqdto "lng-loading/internal/handler/dto/request"
	"lng-loading/internal/infra"
	"lng-loading/internal/pkg/errs"
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDuplicateCustomerEmail  = errs.New("customer email already exists")
	ErrCustomerHasReservations = errs.New("customer still has reservations")
)

type CustomerCommands interface {
	Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	pool          infra.DBTX
	customerRepo  CustomerRepository
	customerViews queries.CustomerReadStore
}

func NewCustomerCommands(
	pool infra.DBTX,
	customerRepo CustomerRepository,
	customerViews queries.CustomerReadStore,
) CustomerCommands {
	return &customerCommandsImpl{
		pool:          pool,
		customerRepo:  customerRepo,
		customerViews: customerViews,
	}
}

func (c *customerCommandsImpl) Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error) {
	customerEntity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.customerRepo.Create(ctx, c.pool, customerEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateCustomerEmail
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.customerViews.FindByID(ctx, customerEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *customerCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error) {
	customerEntity, err := c.customerRepo.FindByID(ctx, c.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := req.Apply(customerEntity); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.customerRepo.Update(ctx, c.pool, customerEntity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateCustomerEmail
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrCustomerNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	view, err := c.customerViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Delete removes a customer. Customers referenced by reservations are kept;
// the foreign key violation maps to a conflict the handler reports as 409.
func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.customerRepo.Delete(ctx, c.pool, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrCustomerNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrCustomerHasReservations
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}
