package repositories

import (
	"context"
	"errors"
	"inspection-app/database"
	"inspection-app/logger"
	"inspection-app/models"
	"inspection-app/types"

	"gorm.io/gorm"
)

const callNoColumn = "inspection_call_no"

// RecordPtr constrains P to the pointer of a call keyed model.
type RecordPtr[T any] interface {
	*T
	models.CallRecord
}

// CallRecordRepository is the keyed store shared by every call record kind.
type CallRecordRepository[T any, P RecordPtr[T]] interface {
	// FindByCallNo returns the earliest inserted record of the call. The bool
	// is false when there is none.
	FindByCallNo(ctx context.Context, callNo string) (T, bool, error)
	FindAllByCallNo(ctx context.Context, callNo string) ([]T, error)
	FindByID(ctx context.Context, id types.SnowflakeID) (T, bool, error)
	ExistsByCallNo(ctx context.Context, callNo string) (bool, error)
	Save(ctx context.Context, record P) error
	SaveAll(ctx context.Context, records []T) error
	DeleteByCallNo(ctx context.Context, callNo string) error
}

type (
	PODetailsRepository      = CallRecordRepository[models.PODetails, *models.PODetails]
	SubPODetailsRepository   = CallRecordRepository[models.SubPODetails, *models.SubPODetails]
	ProductionLineRepository = CallRecordRepository[models.ProductionLine, *models.ProductionLine]
)

type callRecordRepository[T any, P RecordPtr[T]] struct {
	db      *gorm.DB
	log     logger.Logger
	orderBy string
}

func newCallRecordRepository[T any, P RecordPtr[T]](db *gorm.DB, name, orderBy string) *callRecordRepository[T, P] {
	return &callRecordRepository[T, P]{
		db:      db,
		log:     logger.New(name),
		orderBy: orderBy,
	}
}

func NewPODetailsRepository(db *gorm.DB) PODetailsRepository {
	return newCallRecordRepository[models.PODetails](db, "poDetailsRepository", "id ASC")
}

func NewSubPODetailsRepository(db *gorm.DB) SubPODetailsRepository {
	return newCallRecordRepository[models.SubPODetails](db, "subPODetailsRepository", "id ASC")
}

// NewProductionLineRepository lists lines in line number order.
func NewProductionLineRepository(db *gorm.DB) ProductionLineRepository {
	return newCallRecordRepository[models.ProductionLine](db, "productionLineRepository", "line_number ASC, id ASC")
}

func (r *callRecordRepository[T, P]) getDB(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, r.db)
}

func (r *callRecordRepository[T, P]) FindByCallNo(ctx context.Context, callNo string) (T, bool, error) {
	log := r.log.Function("FindByCallNo")

	var record T
	err := r.getDB(ctx).Where(callNoColumn+" = ?", callNo).Order("id ASC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record, false, nil
	}
	if err != nil {
		return record, false, log.Err("failed to find record", err, "callNo", callNo)
	}
	return record, true, nil
}

func (r *callRecordRepository[T, P]) FindAllByCallNo(ctx context.Context, callNo string) ([]T, error) {
	log := r.log.Function("FindAllByCallNo")

	records := []T{}
	if err := r.getDB(ctx).Where(callNoColumn+" = ?", callNo).Order(r.orderBy).Find(&records).Error; err != nil {
		return nil, log.Err("failed to list records", err, "callNo", callNo)
	}
	return records, nil
}

func (r *callRecordRepository[T, P]) FindByID(ctx context.Context, id types.SnowflakeID) (T, bool, error) {
	log := r.log.Function("FindByID")

	var record T
	err := r.getDB(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record, false, nil
	}
	if err != nil {
		return record, false, log.Err("failed to find record by id", err, "id", id)
	}
	return record, true, nil
}

func (r *callRecordRepository[T, P]) ExistsByCallNo(ctx context.Context, callNo string) (bool, error) {
	log := r.log.Function("ExistsByCallNo")

	var count int64
	if err := r.getDB(ctx).Model(P(new(T))).Where(callNoColumn+" = ?", callNo).Count(&count).Error; err != nil {
		return false, log.Err("failed to count records", err, "callNo", callNo)
	}
	return count > 0, nil
}

// Save inserts when the record has no id and overwrites the row otherwise.
func (r *callRecordRepository[T, P]) Save(ctx context.Context, record P) error {
	log := r.log.Function("Save")

	if err := r.getDB(ctx).Save(record).Error; err != nil {
		return log.Err("failed to save record", err, "callNo", record.CallKey())
	}
	return nil
}

func (r *callRecordRepository[T, P]) SaveAll(ctx context.Context, records []T) error {
	for i := range records {
		if err := r.Save(ctx, P(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

func (r *callRecordRepository[T, P]) DeleteByCallNo(ctx context.Context, callNo string) error {
	log := r.log.Function("DeleteByCallNo")

	if err := r.getDB(ctx).Where(callNoColumn+" = ?", callNo).Delete(P(new(T))).Error; err != nil {
		return log.Err("failed to delete records", err, "callNo", callNo)
	}
	return nil
}
