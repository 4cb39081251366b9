package dto

import (
	"inspection-app/models"
	"inspection-app/types"
	"time"
)

type ScheduleRequest struct {
	CallNo       string           `json:"callNo" validate:"required,max=100"`
	ScheduleDate *types.LocalDate `json:"scheduleDate" validate:"required"`
	Reason       string           `json:"reason" validate:"max=1000"`
}

type Schedule struct {
	ID           types.SnowflakeID     `json:"id"`
	CallNo       string                `json:"callNo"`
	ScheduleDate types.LocalDate       `json:"scheduleDate"`
	Reason       string                `json:"reason"`
	Status       models.ScheduleStatus `json:"status"`
	CreatedBy    string                `json:"createdBy"`
	UpdatedBy    string                `json:"updatedBy"`
	CreatedDate  time.Time             `json:"createdDate"`
	UpdatedDate  time.Time             `json:"updatedDate"`
}

func ScheduleFromModel(m models.InspectionSchedule) Schedule {
	return Schedule{
		ID:           m.ID,
		CallNo:       m.CallNo,
		ScheduleDate: *types.DateFrom(&m.ScheduleDate),
		Reason:       m.Reason,
		Status:       m.Status,
		CreatedBy:    m.CreatedBy,
		UpdatedBy:    m.UpdatedBy,
		CreatedDate:  m.CreatedAt,
		UpdatedDate:  m.UpdatedAt,
	}
}

func SchedulesFromModels(ms []models.InspectionSchedule) []Schedule {
	out := make([]Schedule, 0, len(ms))
	for _, m := range ms {
		out = append(out, ScheduleFromModel(m))
	}
	return out
}
