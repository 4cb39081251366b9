package dto

import (
	"inspection-app/models"
	"inspection-app/types"
)

type ProductionLine struct {
	ID               types.SnowflakeID `json:"id"`
	InspectionCallNo string            `json:"inspectionCallNo"`
	LineNumber       int               `json:"lineNumber" validate:"required,min=1"`
	ICNumber         string            `json:"icNumber"`
	PONumber         string            `json:"poNumber"`
	RawMaterialICs   []string          `json:"rawMaterialIcs" validate:"omitempty,dive,required,nocomma"`
	ProductType      string            `json:"productType"`
	Status
}

func ProductionLineFromModel(m models.ProductionLine) ProductionLine {
	return ProductionLine{
		ID:               m.ID,
		InspectionCallNo: m.InspectionCallNo,
		LineNumber:       m.LineNumber,
		ICNumber:         m.ICNumber,
		PONumber:         m.PONumber,
		RawMaterialICs:   DecodeRawMaterialICs(m.RawMaterialICs),
		ProductType:      m.ProductType,
		Status:           statusFrom(m.Verification, m.Audit),
	}
}

func ProductionLinesFromModels(ms []models.ProductionLine) []ProductionLine {
	out := make([]ProductionLine, 0, len(ms))
	for _, m := range ms {
		out = append(out, ProductionLineFromModel(m))
	}
	return out
}

// ToModel binds the line to callNo. The incoming id is dropped because a
// save replaces the whole set of lines.
func (d ProductionLine) ToModel(callNo string) models.ProductionLine {
	return models.ProductionLine{
		InspectionCallNo: callNo,
		LineNumber:       d.LineNumber,
		ICNumber:         d.ICNumber,
		PONumber:         d.PONumber,
		RawMaterialICs:   EncodeRawMaterialICs(d.RawMaterialICs),
		ProductType:      d.ProductType,
	}
}
