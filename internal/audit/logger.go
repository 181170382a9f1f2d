package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/garageops/workshop-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	actorEmail string,
	actorRole string,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {
	if l.db == nil {
		// no store configured (tests) → drop
		return nil
	}

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		ActorEmail: actorEmail,
		ActorRole:  actorRole,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		Metadata:   metaJSON,
	}

	return l.db.Create(&log).Error
}
