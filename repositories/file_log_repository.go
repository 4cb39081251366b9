package repositories

import (
	"context"
	"inspection-app/database"
	"inspection-app/logger"
	"inspection-app/models"
	"time"

	"gorm.io/gorm"
)

type FileLogRepository interface {
	IsProcessed(ctx context.Context, filename string) (bool, error)
	MarkProcessed(ctx context.Context, filename string, modified time.Time, rows int) error
}

type fileLogRepository struct {
	db  *gorm.DB
	log logger.Logger
}

func NewFileLogRepository(db *gorm.DB) FileLogRepository {
	return &fileLogRepository{
		db:  db,
		log: logger.New("fileLogRepository"),
	}
}

func (r *fileLogRepository) IsProcessed(ctx context.Context, filename string) (bool, error) {
	log := r.log.Function("IsProcessed")

	var count int64
	if err := database.Conn(ctx, r.db).Model(&models.FileLog{}).Where("filename = ?", filename).Count(&count).Error; err != nil {
		return false, log.Err("failed to check file log", err, "filename", filename)
	}
	return count > 0, nil
}

func (r *fileLogRepository) MarkProcessed(ctx context.Context, filename string, modified time.Time, rows int) error {
	log := r.log.Function("MarkProcessed")

	entry := models.FileLog{Filename: filename, DateModified: modified, RowsImported: rows}
	if err := database.Conn(ctx, r.db).Create(&entry).Error; err != nil {
		return log.Err("failed to record processed file", err, "filename", filename)
	}
	return nil
}
