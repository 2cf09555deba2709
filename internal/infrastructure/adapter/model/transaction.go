package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents the database model for ledger entries.
// The composite unique index allows a transfer's debit and credit to share a
// reference while still guaranteeing at most one credit per funding reference
// system-wide.
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Direction   string    `gorm:"not null;size:10;uniqueIndex:idx_reference_direction,priority:2"`
	Amount      int64     `gorm:"not null"` // Amount in kobo, always positive
	Reference   string    `gorm:"not null;size:255;uniqueIndex:idx_reference_direction,priority:1"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
