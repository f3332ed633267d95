// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bookmarket/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ListingRepoFactory provides access to the listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// StatusRepoFactory provides access to the status lookup repository within a transaction.
	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the fulfillment transition commands.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ListingUoW manages transactions for listing moderation. Moderation needs
	// the status lookup alongside the listing repository because listing states
	// live in the status table rather than a compile-time enum.
	ListingUoW interface {
		TxManager
		ListingRepoFactory
		StatusRepoFactory
	}

	// ListingUoWFactory creates new listing unit of work instances.
	ListingUoWFactory interface {
		Create() ListingUoW
	}

	// UoW manages transactions across order and listing aggregates.
	// Used by checkout, which reads the listing before creating the order.
	UoW interface {
		TxManager
		OrderRepoFactory
		ListingRepoFactory
		StatusRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
