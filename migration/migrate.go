package migration

import (
	"inspection-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.PODetails{},
		&models.CallDetails{},
		&models.SubPODetails{},
		&models.ProductionLine{},
		&models.InspectionSchedule{},
		&models.TransactionHistory{},
		&models.FileLog{},
	)
}
