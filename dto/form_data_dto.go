package dto

// FormData is the combined view of one call. Absent sections are null.
type FormData struct {
	InspectionCallNo string        `json:"inspectionCallNo"`
	PODetails        *PODetails    `json:"poDetails"`
	CallDetails      *CallDetails  `json:"callDetails"`
	SubPODetails     *SubPODetails `json:"subPoDetails"`
}
