// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern. The unit of work maintains a list of aggregates affected by one
// business transaction and coordinates writing out changes atomically.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.SaleRepository().Update(ctx, sale); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns its own transaction state; concurrent
// operations must use separate instances created by the factory.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"breakfast/internal/adapters/out/postgres/accountrepo"
	"breakfast/internal/adapters/out/postgres/customerrepo"
	"breakfast/internal/adapters/out/postgres/productrepo"
	"breakfast/internal/adapters/out/postgres/providerrepo"
	"breakfast/internal/adapters/out/postgres/salerepo"
	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions across the sale, customer,
// product, and account repositories. Repositories obtained from an active
// unit of work share its transaction, so credit movements and step updates
// commit or roll back together with the sale they belong to.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin twice on the same instance is safe and will not create
// a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// SaleRepository provides sale persistence bound to the current transaction
// if one is active, otherwise to the main database connection.
func (uow *GormUnitOfWork) SaleRepository() ports.SaleRepository {
	return salerepo.NewGormSaleRepository(uow.conn(), uow)
}

// CustomerRepository provides customer persistence bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

// ProductRepository provides product persistence bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// AccountRepository provides account persistence bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn(), uow)
}

// ProviderRepository provides provider persistence bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) ProviderRepository() ports.ProviderRepository {
	return providerrepo.NewGormProviderRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call this on Add and Update so that
// tracked aggregates are available after the transaction completes.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
