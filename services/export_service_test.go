package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"inspection-app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportFormData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	export := NewExportService(f.svc)

	_, err := export.ExportFormData(ctx, "IC-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.SavePODetails(ctx, dto.PODetails{InspectionCallNo: "IC-1", PONumber: "PO-9", POQuantity: intPtr(40)}, "clerk")
	require.NoError(t, err)
	_, err = f.svc.SaveProductionLines(ctx, "IC-1", []dto.ProductionLine{
		{LineNumber: 2, RawMaterialICs: []string{"RM-1", "RM-2"}},
		{LineNumber: 1, ICNumber: "IC-N1"},
	}, "clerk")
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	_, err = f.svc.VerifyPODetails(ctx, "IC-1", "inspector")
	require.NoError(t, err)

	data, err := export.ExportFormData(ctx, "IC-1")
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{SheetPODetails, SheetCallDetails, SheetSubPODetails, SheetProductionLines}, book.GetSheetList())

	rows, err := book.GetRows(SheetPODetails)
	require.NoError(t, err)
	values := map[string]string{}
	for _, row := range rows[1:] {
		if len(row) == 2 {
			values[row[0]] = row[1]
		}
	}
	assert.Equal(t, "PO-9", values["PO Number"])
	assert.Equal(t, "40", values["PO Quantity"])
	assert.Equal(t, "Yes", values["Verified"])
	assert.Equal(t, "inspector", values["Verified By"])

	rows, err = book.GetRows(SheetCallDetails)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "absent section only has the header")

	lines, err := book.GetRows(SheetProductionLines)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "Line Number", lines[0][0])
	assert.Equal(t, "1", lines[1][0])
	assert.Equal(t, "IC-N1", lines[1][1])
	assert.Equal(t, "RM-1, RM-2", lines[2][3])
}
