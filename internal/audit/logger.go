package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/barberbook/api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	shopID *uint,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ShopID:   shopID,
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}

// List returns the newest entries first, optionally scoped to a shop.
func (l *Logger) List(shopID *uint, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	q := l.db.Order("created_at DESC").Limit(limit)
	if shopID != nil {
		q = q.Where("shop_id = ?", *shopID)
	}

	var entries []models.AuditLog
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
