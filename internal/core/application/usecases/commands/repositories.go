// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"breakfast/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SaleRepoFactory provides access to the sale repository within a transaction.
	SaleRepoFactory interface {
		SaleRepository() ports.SaleRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// ProviderRepoFactory provides access to the provider repository within a transaction.
	ProviderRepoFactory interface {
		ProviderRepository() ports.ProviderRepository
	}

	// SaleUoW manages transactions for sale-only operations.
	// Used when commands only modify sale aggregates.
	SaleUoW interface {
		TxManager
		SaleRepoFactory
	}

	// SaleUoWFactory creates new sale unit of work instances.
	SaleUoWFactory interface {
		Create() SaleUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// ProviderUoW manages transactions for provider-only operations.
	ProviderUoW interface {
		TxManager
		ProviderRepoFactory
	}

	// ProviderUoWFactory creates new provider unit of work instances.
	ProviderUoWFactory interface {
		Create() ProviderUoW
	}

	// DeliveryUoW manages transactions across sale and customer aggregates.
	// Used for delivery step commands that move customer credit together
	// with the step state change.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   saleRepo := uow.SaleRepository()
	//   customerRepo := uow.CustomerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		SaleRepoFactory
		CustomerRepoFactory
	}

	// DeliveryUoWFactory creates new unit of work instances for delivery operations.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// SaleEditingUoW manages transactions for sale creation and item editing,
	// which validate customer references and snapshot product prices.
	SaleEditingUoW interface {
		TxManager
		SaleRepoFactory
		CustomerRepoFactory
		ProductRepoFactory
	}

	// SaleEditingUoWFactory creates new unit of work instances for sale editing.
	SaleEditingUoWFactory interface {
		Create() SaleEditingUoW
	}
)
