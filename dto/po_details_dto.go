package dto

import (
	"inspection-app/models"
	"inspection-app/types"
)

type PODetails struct {
	ID                          types.SnowflakeID `json:"id"`
	InspectionCallNo            string            `json:"inspectionCallNo" validate:"required,max=100"`
	PONumber                    string            `json:"poNumber"`
	PODate                      *types.LocalDate  `json:"poDate"`
	POAmendmentNumbers          string            `json:"poAmendmentNumbers"`
	POAmendmentDates            string            `json:"poAmendmentDates"`
	ProductName                 string            `json:"productName"`
	PLNumber                    string            `json:"plNumber"`
	VendorName                  string            `json:"vendorName"`
	PurchasingAuthority         string            `json:"purchasingAuthority"`
	BillPayingOfficer           string            `json:"billPayingOfficer"`
	POQuantity                  *int              `json:"poQuantity" validate:"omitempty,min=0"`
	DeliveryPeriod              string            `json:"deliveryPeriod"`
	PlaceOfInspection           string            `json:"placeOfInspection"`
	InspectionFeePaymentDetails string            `json:"inspectionFeePaymentDetails"`
	Status
}

func PODetailsFromModel(m models.PODetails) PODetails {
	return PODetails{
		ID:                          m.ID,
		InspectionCallNo:            m.InspectionCallNo,
		PONumber:                    m.PONumber,
		PODate:                      types.DateFrom(m.PODate),
		POAmendmentNumbers:          m.POAmendmentNumbers,
		POAmendmentDates:            m.POAmendmentDates,
		ProductName:                 m.ProductName,
		PLNumber:                    m.PLNumber,
		VendorName:                  m.VendorName,
		PurchasingAuthority:         m.PurchasingAuthority,
		BillPayingOfficer:           m.BillPayingOfficer,
		POQuantity:                  m.POQuantity,
		DeliveryPeriod:              m.DeliveryPeriod,
		PlaceOfInspection:           m.PlaceOfInspection,
		InspectionFeePaymentDetails: m.InspectionFeePaymentDetails,
		Status:                      statusFrom(m.Verification, m.Audit),
	}
}

// ToModel copies business fields only.
func (d PODetails) ToModel() models.PODetails {
	return models.PODetails{
		ID:                          d.ID,
		InspectionCallNo:            d.InspectionCallNo,
		PONumber:                    d.PONumber,
		PODate:                      types.ToDate(d.PODate),
		POAmendmentNumbers:          d.POAmendmentNumbers,
		POAmendmentDates:            d.POAmendmentDates,
		ProductName:                 d.ProductName,
		PLNumber:                    d.PLNumber,
		VendorName:                  d.VendorName,
		PurchasingAuthority:         d.PurchasingAuthority,
		BillPayingOfficer:           d.BillPayingOfficer,
		POQuantity:                  d.POQuantity,
		DeliveryPeriod:              d.DeliveryPeriod,
		PlaceOfInspection:           d.PlaceOfInspection,
		InspectionFeePaymentDetails: d.InspectionFeePaymentDetails,
	}
}
