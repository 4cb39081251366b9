package seed

import (
	"context"
	"errors"
	"inspection-app/dto"
	"inspection-app/logger"
	"inspection-app/services"
	"inspection-app/types"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DemoCallNo = "DEMO-IC-0001"
	seedActor  = "seeder"
)

func intPtr(i int) *int { return &i }

func datePtr(year int, month time.Month, day int) *types.LocalDate {
	d := types.NewLocalDate(year, month, day)
	return &d
}

// SeedDemo creates one demo inspection call. Sections that already exist are
// left untouched so running it twice is harmless.
func SeedDemo(ctx context.Context, forms *services.InspectionFormService) error {
	log := logger.New("seeder").Function("SeedDemo")

	exists, err := forms.PODetailsExists(ctx, DemoCallNo)
	if err != nil {
		return err
	}
	if !exists {
		if _, err := forms.SavePODetails(ctx, dto.PODetails{
			InspectionCallNo:    DemoCallNo,
			PONumber:            "PO-2024-0457",
			PODate:              datePtr(2024, time.January, 15),
			ProductName:         "ERC Mk-V",
			PLNumber:            "PL-11030035",
			VendorName:          "Demo Castings Pvt Ltd",
			PurchasingAuthority: "Central Stores",
			BillPayingOfficer:   "FA&CAO",
			POQuantity:          intPtr(50000),
			DeliveryPeriod:      "2024-06-30",
			PlaceOfInspection:   "Vendor premises",
		}, seedActor); err != nil {
			return err
		}
	}

	exists, err = forms.CallDetailsExists(ctx, DemoCallNo)
	if err != nil {
		return err
	}
	if !exists {
		if _, err := forms.SaveCallDetails(ctx, dto.CallDetails{
			InspectionCallNo:   DemoCallNo,
			InspectionCallDate: datePtr(2024, time.February, 1),
			ShiftOfInspection:  "General",
			ProductName:        "ERC Mk-V",
			ProductType:        "ERC",
			POQty:              intPtr(50000),
			CallQty:            intPtr(10000),
			OfferedQty:         intPtr(10000),
			Rate:               decimal.NewNullDecimal(decimal.RequireFromString("38.75")),
			StageOfInspection:  "Final",
		}, seedActor); err != nil {
			return err
		}
	}

	if _, err := forms.GetSubPODetails(ctx, DemoCallNo); errors.Is(err, services.ErrNotFound) {
		if _, err := forms.SaveSubPODetails(ctx, dto.SubPODetails{
			InspectionCallNo: DemoCallNo,
			RawMaterialName:  "Spring steel bars",
			SubPONumber:      "SPO-88",
			SubPODate:        datePtr(2024, time.January, 20),
			Manufacturer:     "Demo Steel",
			Consignee:        "Depot Stores",
		}, seedActor); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	lines, err := forms.GetProductionLines(ctx, DemoCallNo)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		if _, err := forms.SaveProductionLines(ctx, DemoCallNo, []dto.ProductionLine{
			{LineNumber: 1, ICNumber: "RM-IC-101", RawMaterialICs: []string{"RM-IC-101", "RM-IC-102"}, ProductType: "ERC"},
			{LineNumber: 2, ICNumber: "RM-IC-103", RawMaterialICs: []string{"RM-IC-103"}, ProductType: "ERC"},
		}, seedActor); err != nil {
			return err
		}
	}

	log.Info("demo call seeded", "callNo", DemoCallNo)
	return nil
}
