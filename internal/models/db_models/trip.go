package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TripKind string

const (
	// TripKindPackaged is a trip created from a catalog package.
	TripKindPackaged TripKind = "packaged"
	// TripKindUser is a trip the user planned on their own.
	TripKindUser TripKind = "user"
)

func (k TripKind) Valid() bool {
	return k == TripKindPackaged || k == TripKindUser
}

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        TripKind  `gorm:"type:varchar(16);not null"`
	PackageID   *int      `gorm:"index"`
	Destination string    `gorm:"type:varchar(255);not null"`
	Sport       string    `gorm:"type:varchar(120);not null"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`

	// Budget is NULL when the trip price is still to be confirmed.
	Budget          decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	People          int                 `gorm:"not null;default:1"`
	Notes           string              `gorm:"type:text"`
	IsOpen          bool                `gorm:"not null;default:false"`
	InterestedCount int                 `gorm:"not null;default:0"`
	NeedsGuide      bool                `gorm:"not null;default:false"`
	GuideID         *string             `gorm:"type:varchar(64)"`
}

func (t Trip) IsPackaged() bool { return t.Kind == TripKindPackaged }
