package dto

import (
	"inspection-app/models"
	"inspection-app/types"
)

type SubPODetails struct {
	ID                types.SnowflakeID `json:"id"`
	InspectionCallNo  string            `json:"inspectionCallNo" validate:"required,max=100"`
	RawMaterialName   string            `json:"rawMaterialName"`
	SubPONumber       string            `json:"subPoNumber"`
	SubPODate         *types.LocalDate  `json:"subPoDate"`
	Contractor        string            `json:"contractor"`
	Manufacturer      string            `json:"manufacturer"`
	PlaceOfInspection string            `json:"placeOfInspection"`
	BillPayingOfficer string            `json:"billPayingOfficer"`
	Consignee         string            `json:"consignee"`
	Status
}

func SubPODetailsFromModel(m models.SubPODetails) SubPODetails {
	return SubPODetails{
		ID:                m.ID,
		InspectionCallNo:  m.InspectionCallNo,
		RawMaterialName:   m.RawMaterialName,
		SubPONumber:       m.SubPONumber,
		SubPODate:         types.DateFrom(m.SubPODate),
		Contractor:        m.Contractor,
		Manufacturer:      m.Manufacturer,
		PlaceOfInspection: m.PlaceOfInspection,
		BillPayingOfficer: m.BillPayingOfficer,
		Consignee:         m.Consignee,
		Status:            statusFrom(m.Verification, m.Audit),
	}
}

func (d SubPODetails) ToModel() models.SubPODetails {
	return models.SubPODetails{
		ID:                d.ID,
		InspectionCallNo:  d.InspectionCallNo,
		RawMaterialName:   d.RawMaterialName,
		SubPONumber:       d.SubPONumber,
		SubPODate:         types.ToDate(d.SubPODate),
		Contractor:        d.Contractor,
		Manufacturer:      d.Manufacturer,
		PlaceOfInspection: d.PlaceOfInspection,
		BillPayingOfficer: d.BillPayingOfficer,
		Consignee:         d.Consignee,
	}
}
