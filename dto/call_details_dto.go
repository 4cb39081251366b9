package dto

import (
	"inspection-app/models"
	"inspection-app/types"

	"github.com/shopspring/decimal"
)

type CallDetails struct {
	ID                       types.SnowflakeID   `json:"id"`
	InspectionCallNo         string              `json:"inspectionCallNo" validate:"required,max=100"`
	InspectionCallDate       *types.LocalDate    `json:"inspectionCallDate"`
	ShiftOfInspection        string              `json:"shiftOfInspection"`
	DateOfInspection         *types.LocalDate    `json:"dateOfInspection"`
	POItemSrNo               *int                `json:"poItemSrNo"`
	ProductName              string              `json:"productName"`
	ProductType              string              `json:"productType"`
	POQty                    *int                `json:"poQty" validate:"omitempty,min=0"`
	CallQty                  *int                `json:"callQty" validate:"omitempty,min=0"`
	OfferedQty               *int                `json:"offeredQty" validate:"omitempty,min=0"`
	DeliveryCompletionPeriod string              `json:"deliveryCompletionPeriod"`
	Rate                     decimal.NullDecimal `json:"rate"`
	PlaceOfInspection        string              `json:"placeOfInspection"`
	StageOfInspection        string              `json:"stageOfInspection"`
	PreviousICNumbers        string              `json:"previousIcNumbers"`
	VendorRemarks            string              `json:"vendorRemarks"`
	Status
}

func CallDetailsFromModel(m models.CallDetails) CallDetails {
	return CallDetails{
		ID:                       m.ID,
		InspectionCallNo:         m.InspectionCallNo,
		InspectionCallDate:       types.DateFrom(m.InspectionCallDate),
		ShiftOfInspection:        m.ShiftOfInspection,
		DateOfInspection:         types.DateFrom(m.DateOfInspection),
		POItemSrNo:               m.POItemSrNo,
		ProductName:              m.ProductName,
		ProductType:              m.ProductType,
		POQty:                    m.POQty,
		CallQty:                  m.CallQty,
		OfferedQty:               m.OfferedQty,
		DeliveryCompletionPeriod: m.DeliveryCompletionPeriod,
		Rate:                     m.Rate,
		PlaceOfInspection:        m.PlaceOfInspection,
		StageOfInspection:        m.StageOfInspection,
		PreviousICNumbers:        m.PreviousICNumbers,
		VendorRemarks:            m.VendorRemarks,
		Status:                   statusFrom(m.Verification, m.Audit),
	}
}

func CallDetailsFromModels(ms []models.CallDetails) []CallDetails {
	out := make([]CallDetails, 0, len(ms))
	for _, m := range ms {
		out = append(out, CallDetailsFromModel(m))
	}
	return out
}

// ToModel copies business fields only.
func (d CallDetails) ToModel() models.CallDetails {
	return models.CallDetails{
		ID:                       d.ID,
		InspectionCallNo:         d.InspectionCallNo,
		InspectionCallDate:       types.ToDate(d.InspectionCallDate),
		ShiftOfInspection:        d.ShiftOfInspection,
		DateOfInspection:         types.ToDate(d.DateOfInspection),
		POItemSrNo:               d.POItemSrNo,
		ProductName:              d.ProductName,
		ProductType:              d.ProductType,
		POQty:                    d.POQty,
		CallQty:                  d.CallQty,
		OfferedQty:               d.OfferedQty,
		DeliveryCompletionPeriod: d.DeliveryCompletionPeriod,
		Rate:                     d.Rate,
		PlaceOfInspection:        d.PlaceOfInspection,
		StageOfInspection:        d.StageOfInspection,
		PreviousICNumbers:        d.PreviousICNumbers,
		VendorRemarks:            d.VendorRemarks,
	}
}

// ApplyPartial overwrites the fields a partial update is allowed to change.
func (d CallDetails) ApplyPartial(m *models.CallDetails) {
	m.ShiftOfInspection = d.ShiftOfInspection
	m.DateOfInspection = types.ToDate(d.DateOfInspection)
	m.OfferedQty = d.OfferedQty
}
