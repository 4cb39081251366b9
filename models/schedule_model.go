package models

import (
	"inspection-app/types"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ScheduleStatus string

const (
	ScheduleStatusScheduled   ScheduleStatus = "SCHEDULED"
	ScheduleStatusRescheduled ScheduleStatus = "RESCHEDULED"
)

// InspectionSchedule rows are append only. The latest row of a call is its
// current schedule, earlier rows are its history.
type InspectionSchedule struct {
	ID           types.SnowflakeID `gorm:"primaryKey"`
	CallNo       string            `gorm:"index;not null"`
	ScheduleDate datatypes.Date    `gorm:"index;not null"`
	Reason       string            `gorm:"type:text"`
	Status       ScheduleStatus    `gorm:"size:20;not null"`
	CreatedBy    string
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (InspectionSchedule) TableName() string {
	return "inspection_schedules"
}

func (s *InspectionSchedule) BeforeCreate(tx *gorm.DB) (err error) {
	assignID(&s.ID)
	return
}
