package models

import (
	"inspection-app/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PODetails struct {
	ID                          types.SnowflakeID `gorm:"primaryKey"`
	InspectionCallNo            string            `gorm:"index;not null"`
	PONumber                    string            `gorm:"column:po_number"`
	PODate                      *datatypes.Date   `gorm:"column:po_date"`
	POAmendmentNumbers          string            `gorm:"column:po_amendment_numbers"`
	POAmendmentDates            string            `gorm:"column:po_amendment_dates"`
	ProductName                 string
	PLNumber                    string `gorm:"column:pl_number"`
	VendorName                  string
	PurchasingAuthority         string
	BillPayingOfficer           string
	POQuantity                  *int   `gorm:"column:po_quantity"`
	DeliveryPeriod              string
	PlaceOfInspection           string
	InspectionFeePaymentDetails string `gorm:"type:text"`
	Verification
	Audit
}

func (PODetails) TableName() string {
	return "inspection_po_details"
}

func (p *PODetails) BeforeCreate(tx *gorm.DB) (err error) {
	assignID(&p.ID)
	return
}

func (p *PODetails) CallKey() string                  { return p.InspectionCallNo }
func (p *PODetails) Identity() types.SnowflakeID      { return p.ID }
func (p *PODetails) SetIdentity(id types.SnowflakeID) { p.ID = id }
