package services

import (
	"context"
	"fmt"
	"inspection-app/database"
	"inspection-app/dto"
	"inspection-app/logger"
	"inspection-app/models"
	"inspection-app/repositories"
	"inspection-app/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const EntitySchedule = "schedule"

type ScheduleService struct {
	db             *gorm.DB
	schedules      repositories.ScheduleRepository
	history        repositories.HistoryRepository
	maxCallsPerDay int
	metrics        *Metrics
	log            logger.Logger
}

func NewScheduleService(db *gorm.DB, maxCallsPerDay int, metrics *Metrics) *ScheduleService {
	return &ScheduleService{
		db:             db,
		schedules:      repositories.NewScheduleRepository(db),
		history:        repositories.NewHistoryRepository(db),
		maxCallsPerDay: maxCallsPerDay,
		metrics:        metrics,
		log:            logger.New("scheduleService"),
	}
}

// Schedule books the first inspection date of a call. A call that already
// has a schedule has to be rescheduled instead.
func (s *ScheduleService) Schedule(ctx context.Context, req dto.ScheduleRequest, actor string) (out dto.Schedule, err error) {
	defer func() { s.metrics.Observe(EntitySchedule, "schedule", err) }()

	if err := validateRecord(req); err != nil {
		return dto.Schedule{}, err
	}

	var created models.InspectionSchedule
	err = database.Transaction(ctx, s.db, func(ctx context.Context) error {
		exists, err := s.schedules.ExistsByCallNo(ctx, req.CallNo)
		if err != nil {
			return err
		}
		if exists {
			return &ConflictError{Message: fmt.Sprintf("call %s is already scheduled, reschedule it instead", req.CallNo)}
		}

		date := datatypes.Date(req.ScheduleDate.Time)
		if err := s.checkDailyLimit(ctx, date); err != nil {
			return err
		}

		created = models.InspectionSchedule{
			CallNo:       req.CallNo,
			ScheduleDate: date,
			Reason:       req.Reason,
			Status:       models.ScheduleStatusScheduled,
			CreatedBy:    actor,
			UpdatedBy:    actor,
		}
		if err := s.schedules.Create(ctx, &created); err != nil {
			return err
		}
		return s.history.Insert(ctx, req.CallNo, models.HistoryStatusScheduled, EntitySchedule,
			"scheduled for "+req.ScheduleDate.String(), actor)
	})
	if err != nil {
		return dto.Schedule{}, storageError("schedule call", err)
	}
	return dto.ScheduleFromModel(created), nil
}

// Reschedule appends a new schedule row. Earlier rows stay as history.
func (s *ScheduleService) Reschedule(ctx context.Context, req dto.ScheduleRequest, actor string) (out dto.Schedule, err error) {
	defer func() { s.metrics.Observe(EntitySchedule, "reschedule", err) }()

	if err := validateRecord(req); err != nil {
		return dto.Schedule{}, err
	}

	var created models.InspectionSchedule
	err = database.Transaction(ctx, s.db, func(ctx context.Context) error {
		current, found, err := s.schedules.FindLatestByCallNo(ctx, req.CallNo)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}

		date := datatypes.Date(req.ScheduleDate.Time)
		if types.DateFrom(&current.ScheduleDate).String() != req.ScheduleDate.String() {
			if err := s.checkDailyLimit(ctx, date); err != nil {
				return err
			}
		}

		created = models.InspectionSchedule{
			CallNo:       req.CallNo,
			ScheduleDate: date,
			Reason:       req.Reason,
			Status:       models.ScheduleStatusRescheduled,
			CreatedBy:    current.CreatedBy,
			UpdatedBy:    actor,
		}
		if err := s.schedules.Create(ctx, &created); err != nil {
			return err
		}
		return s.history.Insert(ctx, req.CallNo, models.HistoryStatusRescheduled, EntitySchedule,
			"rescheduled to "+req.ScheduleDate.String(), actor)
	})
	if err != nil {
		return dto.Schedule{}, storageError("reschedule call", err)
	}
	return dto.ScheduleFromModel(created), nil
}

func (s *ScheduleService) checkDailyLimit(ctx context.Context, date datatypes.Date) error {
	count, err := s.schedules.CountCallsOnDate(ctx, date)
	if err != nil {
		return err
	}
	if count >= int64(s.maxCallsPerDay) {
		return newValidationError(
			fmt.Sprintf("maximum of %d calls per day reached", s.maxCallsPerDay),
			map[string]string{"scheduleDate": "full"},
		)
	}
	return nil
}

// GetByCallNo returns the current schedule of a call.
func (s *ScheduleService) GetByCallNo(ctx context.Context, callNo string) (dto.Schedule, error) {
	schedule, found, err := s.schedules.FindLatestByCallNo(ctx, callNo)
	if err != nil {
		return dto.Schedule{}, storageError("load schedule", err)
	}
	if !found {
		return dto.Schedule{}, ErrNotFound
	}
	return dto.ScheduleFromModel(schedule), nil
}

func (s *ScheduleService) GetHistory(ctx context.Context, callNo string) ([]dto.Schedule, error) {
	schedules, err := s.schedules.FindHistoryByCallNo(ctx, callNo)
	if err != nil {
		return nil, storageError("load schedule history", err)
	}
	return dto.SchedulesFromModels(schedules), nil
}

func (s *ScheduleService) IsScheduled(ctx context.Context, callNo string) (bool, error) {
	exists, err := s.schedules.ExistsByCallNo(ctx, callNo)
	return exists, storageError("check schedule", err)
}

func (s *ScheduleService) GetAll(ctx context.Context) ([]dto.Schedule, error) {
	schedules, err := s.schedules.FindAll(ctx)
	if err != nil {
		return nil, storageError("list schedules", err)
	}
	return dto.SchedulesFromModels(schedules), nil
}

// CountByDate counts calls currently scheduled on date.
func (s *ScheduleService) CountByDate(ctx context.Context, date types.LocalDate) (int64, error) {
	count, err := s.schedules.CountCallsOnDate(ctx, datatypes.Date(date.Time))
	return count, storageError("count schedules", err)
}
