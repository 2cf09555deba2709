package model

import (
	"time"

	"github.com/google/uuid"
)

// Account represents the database model for wallet accounts
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null;size:255"`
	Name      string    `gorm:"not null;size:255"`
	Balance   int64     `gorm:"not null;default:0"` // Balance in kobo
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Transactions []Transaction `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
