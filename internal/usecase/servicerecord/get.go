package servicerecord

import (
	"context"

	"github.com/garageops/workshop-api/internal/domain/access"
	domain "github.com/garageops/workshop-api/internal/domain/servicerecord"
	"github.com/garageops/workshop-api/internal/dto"
	"github.com/garageops/workshop-api/internal/httperr"
)

type GetServiceRecord struct {
	repo domain.Repository
}

func NewGetServiceRecord(
	repo domain.Repository,
) *GetServiceRecord {
	return &GetServiceRecord{
		repo: repo,
	}
}

func (uc *GetServiceRecord) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
) (*dto.ServiceRecordView, error) {

	rec, err := uc.repo.GetActiveRecordWithRelations(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("record_not_found")
	}

	if !access.ScopeFor(actor)(rec.Mechanic.Email, rec.Car.Customer.Email) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	view := dto.AssembleServiceRecordView(
		rec,
		&rec.Car,
		&rec.Mechanic,
		&rec.Car.Customer,
	)
	return &view, nil
}
