package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Review struct {
	BaseModel
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"` // author
	TripTitle string         `gorm:"type:varchar(255);not null"`
	Rating    int            `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"` // Rating between 1 and 5
	Comment   string         `gorm:"type:text;not null"`
	Photos    pq.StringArray `gorm:"type:text[]"`
}
