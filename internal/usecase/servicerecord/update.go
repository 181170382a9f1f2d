package servicerecord

import (
	"context"

	"github.com/garageops/workshop-api/internal/audit"
	"github.com/garageops/workshop-api/internal/domain/access"
	domain "github.com/garageops/workshop-api/internal/domain/servicerecord"
	"github.com/garageops/workshop-api/internal/httperr"
	"github.com/garageops/workshop-api/internal/models"
	"github.com/garageops/workshop-api/internal/timezone"
)

type UpdateServiceRecordInput struct {
	Description string
	HoursWorked float64
	IsCompleted bool
}

type UpdateServiceRecord struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewUpdateServiceRecord(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *UpdateServiceRecord {
	return &UpdateServiceRecord{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *UpdateServiceRecord) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
	in UpdateServiceRecordInput,
) (*models.ServiceRecord, error) {

	if !access.CanManageRecords(actor) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	rec, err := uc.repo.GetActiveRecord(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("record_not_found")
	}

	now := timezone.NowIn(uc.timezone)
	domain.ApplyUpdate(rec, in.Description, in.HoursWorked, in.IsCompleted, now)

	if err := uc.repo.UpdateRecord(ctx, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "service_record_updated",
		Entity:     "service_record",
		EntityID:   &rec.ID,
	})

	return rec, nil
}
