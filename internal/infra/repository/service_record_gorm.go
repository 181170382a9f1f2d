package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/garageops/workshop-api/internal/domain/servicerecord"
	"github.com/garageops/workshop-api/internal/models"
)

type ServiceRecordGormRepository struct {
	db *gorm.DB
}

func NewServiceRecordGormRepository(db *gorm.DB) *ServiceRecordGormRepository {
	return &ServiceRecordGormRepository{db: db}
}

// --------------------------------------------------
// Business-key lookups (active only)
// --------------------------------------------------

func (r *ServiceRecordGormRepository) FindActiveCustomerByEmail(
	ctx context.Context,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", email, true).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *ServiceRecordGormRepository) FindActiveCarByRegistration(
	ctx context.Context,
	registrationNumber string,
) (*models.Car, error) {

	var car models.Car
	if err := r.db.WithContext(ctx).
		Where("registration_number = ? AND is_active = ?", registrationNumber, true).
		First(&car).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *ServiceRecordGormRepository) FindActiveMechanicByEmail(
	ctx context.Context,
	email string,
) (*models.Mechanic, error) {

	var mechanic models.Mechanic
	if err := r.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", email, true).
		First(&mechanic).Error; err != nil {
		return nil, err
	}
	return &mechanic, nil
}

// --------------------------------------------------
// Record (create / state change)
// --------------------------------------------------

func (r *ServiceRecordGormRepository) CreateRecord(
	ctx context.Context,
	rec *models.ServiceRecord,
) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ServiceRecordGormRepository) GetActiveRecord(
	ctx context.Context,
	id uint,
) (*models.ServiceRecord, error) {

	var rec models.ServiceRecord
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ServiceRecordGormRepository) GetActiveRecordForMechanic(
	ctx context.Context,
	id uint,
	mechanicEmail string,
) (*models.ServiceRecord, error) {

	var rec models.ServiceRecord
	if err := r.db.WithContext(ctx).
		Joins("JOIN mechanics ON mechanics.id = service_records.mechanic_id").
		Where(
			"service_records.id = ? AND mechanics.email = ? AND service_records.is_active = ?",
			id, mechanicEmail, true,
		).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ServiceRecordGormRepository) UpdateRecord(
	ctx context.Context,
	rec *models.ServiceRecord,
) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// --------------------------------------------------
// Record (read models)
// --------------------------------------------------

func (r *ServiceRecordGormRepository) GetActiveRecordWithRelations(
	ctx context.Context,
	id uint,
) (*models.ServiceRecord, error) {

	var rec models.ServiceRecord
	if err := r.db.WithContext(ctx).
		Preload("Car.Customer").
		Preload("Mechanic").
		Where("service_records.id = ? AND service_records.is_active = ?", id, true).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ServiceRecordGormRepository) ListActiveRecords(
	ctx context.Context,
) ([]models.ServiceRecord, error) {

	var recs []models.ServiceRecord
	if err := r.db.WithContext(ctx).
		Preload("Car.Customer").
		Preload("Mechanic").
		Where("service_records.is_active = ?", true).
		Order("service_date DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *ServiceRecordGormRepository) ListActiveRecordsByMechanicEmail(
	ctx context.Context,
	mechanicEmail string,
) ([]models.ServiceRecord, error) {

	var recs []models.ServiceRecord
	if err := r.db.WithContext(ctx).
		Preload("Car.Customer").
		Preload("Mechanic").
		Joins("JOIN mechanics ON mechanics.id = service_records.mechanic_id").
		Where(
			"mechanics.email = ? AND service_records.is_active = ?",
			mechanicEmail, true,
		).
		Order("service_date DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *ServiceRecordGormRepository) ListActiveRecordsByCustomerEmail(
	ctx context.Context,
	customerEmail string,
) ([]models.ServiceRecord, error) {

	var recs []models.ServiceRecord
	if err := r.db.WithContext(ctx).
		Preload("Car.Customer").
		Preload("Mechanic").
		Joins("JOIN cars ON cars.id = service_records.car_id").
		Joins("JOIN customers ON customers.id = cars.customer_id").
		Where(
			"customers.email = ? AND service_records.is_active = ?",
			customerEmail, true,
		).
		Order("service_date DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Compile-time check
var _ domain.Repository = (*ServiceRecordGormRepository)(nil)
