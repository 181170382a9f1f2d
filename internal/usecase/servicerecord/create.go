package servicerecord

import (
	"context"
	"time"

	"github.com/garageops/workshop-api/internal/audit"
	"github.com/garageops/workshop-api/internal/domain/access"
	domain "github.com/garageops/workshop-api/internal/domain/servicerecord"
	"github.com/garageops/workshop-api/internal/httperr"
	"github.com/garageops/workshop-api/internal/models"
	"github.com/garageops/workshop-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// References arrive as business keys; the repository resolves them to
// active entities.
type CreateServiceRecordInput struct {
	CustomerEmail         string
	CarRegistrationNumber string
	MechanicEmail         string

	ServiceDate string // "2006-01-02", workshop-local
}

// ======================================================
// USE CASE
// ======================================================

type CreateServiceRecord struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCreateServiceRecord(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateServiceRecord {
	return &CreateServiceRecord{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateServiceRecord) Execute(
	ctx context.Context,
	actor access.Actor,
	in CreateServiceRecordInput,
) (*models.ServiceRecord, error) {

	if !access.CanManageRecords(actor) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	serviceDate, err := time.ParseInLocation(
		"2006-01-02",
		in.ServiceDate,
		timezone.Location(uc.timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_service_date")
	}

	customer, err := uc.repo.FindActiveCustomerByEmail(ctx, in.CustomerEmail)
	if err != nil {
		return nil, httperr.ErrBusiness("reference_not_found")
	}

	car, err := uc.repo.FindActiveCarByRegistration(ctx, in.CarRegistrationNumber)
	if err != nil {
		return nil, httperr.ErrBusiness("reference_not_found")
	}
	if car.CustomerID != customer.ID {
		return nil, httperr.ErrBusiness("reference_not_found")
	}

	mechanic, err := uc.repo.FindActiveMechanicByEmail(ctx, in.MechanicEmail)
	if err != nil {
		return nil, httperr.ErrBusiness("reference_not_found")
	}

	rec := domain.NewScheduled(car.ID, mechanic.ID, serviceDate)

	if err := uc.repo.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "service_record_created",
		Entity:     "service_record",
		EntityID:   &rec.ID,
	})

	return rec, nil
}
