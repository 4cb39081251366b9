package repositories

import (
	"context"
	"errors"
	"inspection-app/database"
	"inspection-app/logger"
	"inspection-app/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.InspectionSchedule) error
	FindLatestByCallNo(ctx context.Context, callNo string) (models.InspectionSchedule, bool, error)
	FindHistoryByCallNo(ctx context.Context, callNo string) ([]models.InspectionSchedule, error)
	FindAll(ctx context.Context) ([]models.InspectionSchedule, error)
	ExistsByCallNo(ctx context.Context, callNo string) (bool, error)
	// CountCallsOnDate counts calls whose current schedule falls on date.
	CountCallsOnDate(ctx context.Context, date datatypes.Date) (int64, error)
}

type scheduleRepository struct {
	db  *gorm.DB
	log logger.Logger
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{
		db:  db,
		log: logger.New("scheduleRepository"),
	}
}

func (r *scheduleRepository) getDB(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, r.db)
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *models.InspectionSchedule) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(schedule).Error; err != nil {
		return log.Err("failed to create schedule", err, "callNo", schedule.CallNo)
	}
	return nil
}

func (r *scheduleRepository) FindLatestByCallNo(ctx context.Context, callNo string) (models.InspectionSchedule, bool, error) {
	log := r.log.Function("FindLatestByCallNo")

	var schedule models.InspectionSchedule
	err := r.getDB(ctx).Where("call_no = ?", callNo).Order("id DESC").First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return schedule, false, nil
	}
	if err != nil {
		return schedule, false, log.Err("failed to find schedule", err, "callNo", callNo)
	}
	return schedule, true, nil
}

func (r *scheduleRepository) FindHistoryByCallNo(ctx context.Context, callNo string) ([]models.InspectionSchedule, error) {
	log := r.log.Function("FindHistoryByCallNo")

	schedules := []models.InspectionSchedule{}
	if err := r.getDB(ctx).Where("call_no = ?", callNo).Order("id ASC").Find(&schedules).Error; err != nil {
		return nil, log.Err("failed to list schedule history", err, "callNo", callNo)
	}
	return schedules, nil
}

func (r *scheduleRepository) FindAll(ctx context.Context) ([]models.InspectionSchedule, error) {
	log := r.log.Function("FindAll")

	db := r.getDB(ctx)
	latest := db.Session(&gorm.Session{NewDB: true}).
		Model(&models.InspectionSchedule{}).
		Select("MAX(id)").
		Group("call_no")

	// one row per call, the latest
	schedules := []models.InspectionSchedule{}
	if err := db.Where("id IN (?)", latest).Order("created_at DESC, id DESC").Find(&schedules).Error; err != nil {
		return nil, log.Err("failed to list schedules", err)
	}
	return schedules, nil
}

func (r *scheduleRepository) ExistsByCallNo(ctx context.Context, callNo string) (bool, error) {
	log := r.log.Function("ExistsByCallNo")

	var count int64
	if err := r.getDB(ctx).Model(&models.InspectionSchedule{}).Where("call_no = ?", callNo).Count(&count).Error; err != nil {
		return false, log.Err("failed to count schedules", err, "callNo", callNo)
	}
	return count > 0, nil
}

func (r *scheduleRepository) CountCallsOnDate(ctx context.Context, date datatypes.Date) (int64, error) {
	log := r.log.Function("CountCallsOnDate")

	db := r.getDB(ctx)
	latest := db.Session(&gorm.Session{NewDB: true}).
		Model(&models.InspectionSchedule{}).
		Select("MAX(id)").
		Group("call_no")

	var count int64
	if err := db.Model(&models.InspectionSchedule{}).
		Where("id IN (?)", latest).
		Where("schedule_date = ?", date).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count schedules on date", err)
	}
	return count, nil
}
