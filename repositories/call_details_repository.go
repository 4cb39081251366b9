package repositories

import (
	"context"
	"inspection-app/models"

	"gorm.io/gorm"
)

type CallDetailsFilter struct {
	ProductType       string
	StageOfInspection string
}

type CallDetailsRepository interface {
	CallRecordRepository[models.CallDetails, *models.CallDetails]
	FindByProductType(ctx context.Context, productType string) ([]models.CallDetails, error)
	FindByStageOfInspection(ctx context.Context, stage string) ([]models.CallDetails, error)
	Find(ctx context.Context, filter CallDetailsFilter) ([]models.CallDetails, error)
}

type callDetailsRepository struct {
	*callRecordRepository[models.CallDetails, *models.CallDetails]
}

func NewCallDetailsRepository(db *gorm.DB) CallDetailsRepository {
	return &callDetailsRepository{
		callRecordRepository: newCallRecordRepository[models.CallDetails](db, "callDetailsRepository", "id ASC"),
	}
}

func (r *callDetailsRepository) FindByProductType(ctx context.Context, productType string) ([]models.CallDetails, error) {
	return r.Find(ctx, CallDetailsFilter{ProductType: productType})
}

func (r *callDetailsRepository) FindByStageOfInspection(ctx context.Context, stage string) ([]models.CallDetails, error) {
	return r.Find(ctx, CallDetailsFilter{StageOfInspection: stage})
}

// Find applies every non empty filter field. An empty filter lists all calls.
func (r *callDetailsRepository) Find(ctx context.Context, filter CallDetailsFilter) ([]models.CallDetails, error) {
	log := r.log.Function("Find")

	query := r.getDB(ctx).Order("id ASC")
	if filter.ProductType != "" {
		query = query.Where("product_type = ?", filter.ProductType)
	}
	if filter.StageOfInspection != "" {
		query = query.Where("stage_of_inspection = ?", filter.StageOfInspection)
	}

	calls := []models.CallDetails{}
	if err := query.Find(&calls).Error; err != nil {
		return nil, log.Err("failed to find call details", err, "productType", filter.ProductType, "stage", filter.StageOfInspection)
	}
	return calls, nil
}
