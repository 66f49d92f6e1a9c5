// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cargotracker/internal/core/ports"
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

	// CargoRepoFactory provides access to the cargo repository within a transaction.
	CargoRepoFactory interface {
		CargoRepository() ports.CargoRepository
	}

	// HandlingEventRepoFactory provides access to the handling event
	// repository within a transaction.
	HandlingEventRepoFactory interface {
		HandlingEventRepository() ports.HandlingEventRepository
	}

	// VoyageRepoFactory provides access to the voyage repository within a transaction.
	VoyageRepoFactory interface {
		VoyageRepository() ports.VoyageRepository
	}

	// LocationRepoFactory provides access to the location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// BookingUoW manages transactions for booking and rerouting operations,
	// which touch the cargo aggregate and read location reference data.
	BookingUoW interface {
		TxManager
		CargoRepoFactory
		LocationRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// CargoUoW manages transactions for operations over the cargo aggregate
	// and its handling history, such as routing and inspection.
	CargoUoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
	}

	// CargoUoWFactory creates new cargo unit of work instances.
	CargoUoWFactory interface {
		Create() CargoUoW
	}

	// ReroutingUoW manages transactions for destination changes, which
	// touch the cargo aggregate, location reference data and the handling
	// history for re-derivation.
	ReroutingUoW interface {
		TxManager
		CargoRepoFactory
		LocationRepoFactory
		HandlingEventRepoFactory
	}

	// ReroutingUoWFactory creates new rerouting unit of work instances.
	ReroutingUoWFactory interface {
		Create() ReroutingUoW
	}

	// HandlingUoW manages transactions for handling event registration,
	// which validates a report against all reference data before storing
	// the event.
	HandlingUoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
		VoyageRepoFactory
		LocationRepoFactory
	}

	// HandlingUoWFactory creates new handling unit of work instances.
	HandlingUoWFactory interface {
		Create() HandlingUoW
	}
)
