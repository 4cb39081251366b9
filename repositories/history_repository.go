package repositories

import (
	"context"
	"inspection-app/database"
	"inspection-app/logger"
	"inspection-app/models"

	"gorm.io/gorm"
)

type HistoryRepository interface {
	Insert(ctx context.Context, refNo, status, txType, detail, actor string) error
	FindByRefNo(ctx context.Context, refNo string) ([]models.TransactionHistory, error)
}

type historyRepository struct {
	db  *gorm.DB
	log logger.Logger
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{
		db:  db,
		log: logger.New("historyRepository"),
	}
}

// Insert appends one entry to the trail of refNo.
func (r *historyRepository) Insert(ctx context.Context, refNo, status, txType, detail, actor string) error {
	log := r.log.Function("Insert")

	history := models.TransactionHistory{
		RefNo:     refNo,
		Status:    status,
		Type:      txType,
		Detail:    detail,
		CreatedBy: actor,
	}
	if err := database.Conn(ctx, r.db).Create(&history).Error; err != nil {
		return log.Err("failed to insert transaction history", err, "refNo", refNo, "type", txType)
	}
	return nil
}

func (r *historyRepository) FindByRefNo(ctx context.Context, refNo string) ([]models.TransactionHistory, error) {
	log := r.log.Function("FindByRefNo")

	histories := []models.TransactionHistory{}
	if err := database.Conn(ctx, r.db).Where("ref_no = ?", refNo).Order("id ASC").Find(&histories).Error; err != nil {
		return nil, log.Err("failed to list transaction history", err, "refNo", refNo)
	}
	return histories, nil
}
