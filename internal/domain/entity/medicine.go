package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Medicine represents a pharmacy stock item
type Medicine struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Stock        int             `gorm:"default:0" json:"stock"`
	Manufacturer string          `gorm:"type:varchar(255)" json:"manufacturer,omitempty"`
	ExpiryDate   *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}
