package models

import (
	"inspection-app/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubPODetails struct {
	ID                types.SnowflakeID `gorm:"primaryKey"`
	InspectionCallNo  string            `gorm:"index;not null"`
	RawMaterialName   string
	SubPONumber       string          `gorm:"column:sub_po_number"`
	SubPODate         *datatypes.Date `gorm:"column:sub_po_date"`
	Contractor        string
	Manufacturer      string
	PlaceOfInspection string
	BillPayingOfficer string
	Consignee         string
	Verification
	Audit
}

func (SubPODetails) TableName() string {
	return "inspection_sub_po_details"
}

func (s *SubPODetails) BeforeCreate(tx *gorm.DB) (err error) {
	assignID(&s.ID)
	return
}

func (s *SubPODetails) CallKey() string                  { return s.InspectionCallNo }
func (s *SubPODetails) Identity() types.SnowflakeID      { return s.ID }
func (s *SubPODetails) SetIdentity(id types.SnowflakeID) { s.ID = id }
