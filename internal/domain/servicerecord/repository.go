package servicerecord

import (
	"context"

	"github.com/garageops/workshop-api/internal/models"
)

type Repository interface {
	// -------- Business-key lookups (active entities only) --------
	FindActiveCustomerByEmail(
		ctx context.Context,
		email string,
	) (*models.Customer, error)

	FindActiveCarByRegistration(
		ctx context.Context,
		registrationNumber string,
	) (*models.Car, error)

	FindActiveMechanicByEmail(
		ctx context.Context,
		email string,
	) (*models.Mechanic, error)

	// -------- Record (create / state change) --------
	CreateRecord(
		ctx context.Context,
		rec *models.ServiceRecord,
	) error

	GetActiveRecord(
		ctx context.Context,
		id uint,
	) (*models.ServiceRecord, error)

	GetActiveRecordForMechanic(
		ctx context.Context,
		id uint,
		mechanicEmail string,
	) (*models.ServiceRecord, error)

	UpdateRecord(
		ctx context.Context,
		rec *models.ServiceRecord,
	) error

	// -------- Record (read models, relations loaded) --------
	GetActiveRecordWithRelations(
		ctx context.Context,
		id uint,
	) (*models.ServiceRecord, error)

	ListActiveRecords(
		ctx context.Context,
	) ([]models.ServiceRecord, error)

	ListActiveRecordsByMechanicEmail(
		ctx context.Context,
		mechanicEmail string,
	) ([]models.ServiceRecord, error)

	ListActiveRecordsByCustomerEmail(
		ctx context.Context,
		customerEmail string,
	) ([]models.ServiceRecord, error)
}
