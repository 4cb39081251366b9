package models

import (
	"inspection-app/types"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CallDetails is the inspection call itself. The call number is unique.
type CallDetails struct {
	ID                       types.SnowflakeID `gorm:"primaryKey"`
	InspectionCallNo         string            `gorm:"uniqueIndex;not null"`
	InspectionCallDate       *datatypes.Date
	ShiftOfInspection        string
	DateOfInspection         *datatypes.Date
	POItemSrNo               *int `gorm:"column:po_item_sr_no"`
	ProductName              string
	ProductType              string `gorm:"index"`
	POQty                    *int   `gorm:"column:po_qty"`
	CallQty                  *int
	OfferedQty               *int
	DeliveryCompletionPeriod string
	Rate                     decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	PlaceOfInspection        string
	StageOfInspection        string `gorm:"index"`
	PreviousICNumbers        string `gorm:"column:previous_ic_numbers;type:text"`
	VendorRemarks            string `gorm:"type:text"`
	Verification
	Audit
}

func (CallDetails) TableName() string {
	return "inspection_call_details"
}

func (c *CallDetails) BeforeCreate(tx *gorm.DB) (err error) {
	assignID(&c.ID)
	return
}

func (c *CallDetails) CallKey() string                  { return c.InspectionCallNo }
func (c *CallDetails) Identity() types.SnowflakeID      { return c.ID }
func (c *CallDetails) SetIdentity(id types.SnowflakeID) { c.ID = id }
