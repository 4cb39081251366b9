package services

import (
	"context"
	"inspection-app/dto"
	"inspection-app/logger"
	"inspection-app/types"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	SheetPODetails       = "PO Details"
	SheetCallDetails     = "Call Details"
	SheetSubPODetails    = "Sub PO Details"
	SheetProductionLines = "Production Lines"
)

var productionLineHeader = []interface{}{
	"Line Number", "IC Number", "PO Number", "Raw Material ICs", "Product Type", "Verified", "Verified By", "Verified At",
}

type ExportService struct {
	forms *InspectionFormService
	log   logger.Logger
}

func NewExportService(forms *InspectionFormService) *ExportService {
	return &ExportService{forms: forms, log: logger.New("exportService")}
}

type field struct {
	name  string
	value interface{}
}

// ExportFormData renders every section of a call into an xlsx workbook. It
// returns ErrNotFound when the call has no data at all.
func (e *ExportService) ExportFormData(ctx context.Context, callNo string) ([]byte, error) {
	log := e.log.Function("ExportFormData")

	form, err := e.forms.GetFormData(ctx, callNo)
	if err != nil {
		return nil, err
	}
	lines, err := e.forms.GetProductionLines(ctx, callNo)
	if err != nil {
		return nil, err
	}
	if form.PODetails == nil && form.CallDetails == nil && form.SubPODetails == nil && len(lines) == 0 {
		return nil, ErrNotFound
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetPODetails); err != nil {
		return nil, log.Err("failed to rename sheet", err)
	}
	for _, name := range []string{SheetCallDetails, SheetSubPODetails, SheetProductionLines} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, log.Err("failed to create sheet", err, "sheet", name)
		}
	}

	sections := []struct {
		sheet  string
		fields []field
	}{
		{SheetPODetails, poDetailsFields(form.PODetails)},
		{SheetCallDetails, callDetailsFields(form.CallDetails)},
		{SheetSubPODetails, subPODetailsFields(form.SubPODetails)},
	}
	for _, section := range sections {
		if err := writeFields(f, section.sheet, section.fields); err != nil {
			return nil, log.Err("failed to write sheet", err, "sheet", section.sheet)
		}
	}
	if err := writeLines(f, lines); err != nil {
		return nil, log.Err("failed to write production lines", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, log.Err("failed to render workbook", err, "callNo", callNo)
	}
	return buf.Bytes(), nil
}

func writeFields(f *excelize.File, sheet string, fields []field) error {
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Field", "Value"}); err != nil {
		return err
	}
	for i, fl := range fields {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{fl.name, fl.value}); err != nil {
			return err
		}
	}
	return nil
}

func writeLines(f *excelize.File, lines []dto.ProductionLine) error {
	if err := f.SetSheetRow(SheetProductionLines, "A1", &productionLineHeader); err != nil {
		return err
	}
	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			line.LineNumber,
			line.ICNumber,
			line.PONumber,
			strings.Join(line.RawMaterialICs, ", "),
			line.ProductType,
			yesNo(line.IsVerified),
			deref(line.VerifiedBy),
			timeText(line.VerifiedAt),
		}
		if err := f.SetSheetRow(SheetProductionLines, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func statusFields(s dto.Status) []field {
	return []field{
		{"Verified", yesNo(s.IsVerified)},
		{"Verified By", deref(s.VerifiedBy)},
		{"Verified At", timeText(s.VerifiedAt)},
	}
}

func poDetailsFields(d *dto.PODetails) []field {
	if d == nil {
		return nil
	}
	return append([]field{
		{"Inspection Call No", d.InspectionCallNo},
		{"PO Number", d.PONumber},
		{"PO Date", dateText(d.PODate)},
		{"PO Amendment Numbers", d.POAmendmentNumbers},
		{"PO Amendment Dates", d.POAmendmentDates},
		{"Product Name", d.ProductName},
		{"PL Number", d.PLNumber},
		{"Vendor Name", d.VendorName},
		{"Purchasing Authority", d.PurchasingAuthority},
		{"Bill Paying Officer", d.BillPayingOfficer},
		{"PO Quantity", intText(d.POQuantity)},
		{"Delivery Period", d.DeliveryPeriod},
		{"Place Of Inspection", d.PlaceOfInspection},
		{"Inspection Fee Payment Details", d.InspectionFeePaymentDetails},
	}, statusFields(d.Status)...)
}

func callDetailsFields(d *dto.CallDetails) []field {
	if d == nil {
		return nil
	}
	rate := ""
	if d.Rate.Valid {
		rate = d.Rate.Decimal.StringFixed(2)
	}
	return append([]field{
		{"Inspection Call No", d.InspectionCallNo},
		{"Inspection Call Date", dateText(d.InspectionCallDate)},
		{"Shift Of Inspection", d.ShiftOfInspection},
		{"Date Of Inspection", dateText(d.DateOfInspection)},
		{"PO Item Sr No", intText(d.POItemSrNo)},
		{"Product Name", d.ProductName},
		{"Product Type", d.ProductType},
		{"PO Qty", intText(d.POQty)},
		{"Call Qty", intText(d.CallQty)},
		{"Offered Qty", intText(d.OfferedQty)},
		{"Delivery Completion Period", d.DeliveryCompletionPeriod},
		{"Rate", rate},
		{"Place Of Inspection", d.PlaceOfInspection},
		{"Stage Of Inspection", d.StageOfInspection},
		{"Previous IC Numbers", d.PreviousICNumbers},
		{"Vendor Remarks", d.VendorRemarks},
	}, statusFields(d.Status)...)
}

func subPODetailsFields(d *dto.SubPODetails) []field {
	if d == nil {
		return nil
	}
	return append([]field{
		{"Inspection Call No", d.InspectionCallNo},
		{"Raw Material Name", d.RawMaterialName},
		{"Sub PO Number", d.SubPONumber},
		{"Sub PO Date", dateText(d.SubPODate)},
		{"Contractor", d.Contractor},
		{"Manufacturer", d.Manufacturer},
		{"Place Of Inspection", d.PlaceOfInspection},
		{"Bill Paying Officer", d.BillPayingOfficer},
		{"Consignee", d.Consignee},
	}, statusFields(d.Status)...)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeText(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func dateText(d *types.LocalDate) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func intText(i *int) interface{} {
	if i == nil {
		return ""
	}
	return *i
}
