package servicerecord

import (
	"context"

	"github.com/garageops/workshop-api/internal/audit"
	"github.com/garageops/workshop-api/internal/domain/access"
	domain "github.com/garageops/workshop-api/internal/domain/servicerecord"
	"github.com/garageops/workshop-api/internal/httperr"
)

type SoftDeleteServiceRecord struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSoftDeleteServiceRecord(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SoftDeleteServiceRecord {
	return &SoftDeleteServiceRecord{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SoftDeleteServiceRecord) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
) error {

	if !access.CanManageRecords(actor) {
		return httperr.ErrBusiness("forbidden")
	}

	// already-inactive records are invisible here, so deleting twice
	// reports record_not_found
	rec, err := uc.repo.GetActiveRecord(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("record_not_found")
	}

	domain.SoftDelete(rec)

	if err := uc.repo.UpdateRecord(ctx, rec); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "service_record_deleted",
		Entity:     "service_record",
		EntityID:   &rec.ID,
	})

	return nil
}
