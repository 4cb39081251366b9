package models

import (
	"inspection-app/types"
	"time"

	"gorm.io/gorm"
)

const (
	HistoryStatusVerified    = "verified"
	HistoryStatusScheduled   = "scheduled"
	HistoryStatusRescheduled = "rescheduled"
)

// TransactionHistory is the per call audit trail.
type TransactionHistory struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey"`
	RefNo     string            `json:"refNo" gorm:"index;not null"`
	Status    string            `json:"status"`
	Type      string            `json:"type"`
	Detail    string            `json:"detail" gorm:"type:text"`
	CreatedAt time.Time         `json:"createdAt"`
	CreatedBy string            `json:"createdBy"`
}

func (h *TransactionHistory) BeforeCreate(tx *gorm.DB) (err error) {
	assignID(&h.ID)
	return
}
