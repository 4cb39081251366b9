package models

import (
	"inspection-app/types"

	"gorm.io/gorm"
)

// ProductionLine is one of zero or more lines of a call. RawMaterialICs holds
// the comma joined list of raw material IC references.
type ProductionLine struct {
	ID               types.SnowflakeID `gorm:"primaryKey"`
	InspectionCallNo string            `gorm:"not null;uniqueIndex:idx_production_line_call_line"`
	LineNumber       int               `gorm:"not null;uniqueIndex:idx_production_line_call_line"`
	ICNumber         string            `gorm:"column:ic_number"`
	PONumber         string            `gorm:"column:po_number"`
	RawMaterialICs   string            `gorm:"column:raw_material_ics;type:text"`
	ProductType      string
	Verification
	Audit
}

func (ProductionLine) TableName() string {
	return "inspection_production_lines"
}

func (l *ProductionLine) BeforeCreate(tx *gorm.DB) (err error) {
	assignID(&l.ID)
	return
}

func (l *ProductionLine) CallKey() string                  { return l.InspectionCallNo }
func (l *ProductionLine) Identity() types.SnowflakeID      { return l.ID }
func (l *ProductionLine) SetIdentity(id types.SnowflakeID) { l.ID = id }
