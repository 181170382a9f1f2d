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

type CompleteServiceRecordInput struct {
	WorkDescription string
	HoursWorked     float64
}

type CompleteServiceRecord struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCompleteServiceRecord(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CompleteServiceRecord {
	return &CompleteServiceRecord{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *CompleteServiceRecord) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
	in CompleteServiceRecordInput,
) (*models.ServiceRecord, error) {

	if actor.Role != access.RoleMechanic {
		return nil, httperr.ErrBusiness("forbidden")
	}

	// scoped fetch: a mechanic can only reach their own assignments
	rec, err := uc.repo.GetActiveRecordForMechanic(ctx, id, actor.Email)
	if err != nil {
		return nil, httperr.ErrBusiness("record_not_found")
	}

	now := timezone.NowIn(uc.timezone)
	if err := domain.Complete(rec, in.WorkDescription, in.HoursWorked, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateRecord(ctx, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "service_record_completed",
		Entity:     "service_record",
		EntityID:   &rec.ID,
	})

	return rec, nil
}
