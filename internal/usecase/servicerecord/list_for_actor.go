package servicerecord

import (
	"context"

	"github.com/garageops/workshop-api/internal/domain/access"
	domain "github.com/garageops/workshop-api/internal/domain/servicerecord"
	"github.com/garageops/workshop-api/internal/dto"
	"github.com/garageops/workshop-api/internal/models"
)

type ListRecordsForActor struct {
	repo domain.Repository
}

func NewListRecordsForActor(
	repo domain.Repository,
) *ListRecordsForActor {
	return &ListRecordsForActor{
		repo: repo,
	}
}

// Execute returns the active records inside the actor's scope as
// assembled views. Scoping happens in the query where possible; an
// unknown role gets an empty list, never an error.
func (uc *ListRecordsForActor) Execute(
	ctx context.Context,
	actor access.Actor,
) ([]dto.ServiceRecordView, error) {

	var (
		records []models.ServiceRecord
		err     error
	)

	switch actor.Role {
	case access.RoleAdministrator:
		records, err = uc.repo.ListActiveRecords(ctx)
	case access.RoleMechanic:
		records, err = uc.repo.ListActiveRecordsByMechanicEmail(ctx, actor.Email)
	case access.RoleCustomer:
		records, err = uc.repo.ListActiveRecordsByCustomerEmail(ctx, actor.Email)
	default:
		return []dto.ServiceRecordView{}, nil
	}
	if err != nil {
		return nil, err
	}

	inScope := access.ScopeFor(actor)

	out := make([]dto.ServiceRecordView, 0, len(records))
	for i := range records {
		rec := &records[i]
		if !inScope(rec.Mechanic.Email, rec.Car.Customer.Email) {
			continue
		}
		out = append(out, dto.AssembleServiceRecordView(
			rec,
			&rec.Car,
			&rec.Mechanic,
			&rec.Car.Customer,
		))
	}

	return out, nil
}
