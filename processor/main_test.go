package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"inspection-app/repositories"
	"inspection-app/services"
	"inspection-app/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "inspectionCallNo,poNumber,poDate,productName,vendorName,purchasingAuthority,billPayingOfficer,poQuantity,deliveryPeriod,placeOfInspection\n"

func TestProcessDir(t *testing.T) {
	clock := testutil.NewClock(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	db := testutil.NewDB(t, clock.Now)
	forms := services.NewInspectionFormService(db, clock, nil, nil)
	files := repositories.NewFileLogRepository(db)
	im := newImporter(forms, files)
	ctx := context.Background()

	dir := t.TempDir()
	content := header +
		"IC-1,PO-1,2024-02-01,Rail,Acme,RDSO,FA&CAO,100,90 days,Works\n" +
		",PO-2,,,,,,,,\n" +
		"IC-3,PO-3,01/02/2024,,,,,,,\n" +
		"IC-4,PO-4,,,,,,abc,,\n" +
		"IC-5,PO-5,,,,,,,,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "po_batch.csv"), []byte(content), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	count, err := im.processDir(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	po, err := forms.GetPODetails(ctx, "IC-1")
	require.NoError(t, err)
	assert.Equal(t, "PO-1", po.PONumber)
	assert.Equal(t, "2024-02-01", po.PODate.String())
	assert.Equal(t, 100, *po.POQuantity)
	assert.Equal(t, importActor, po.CreatedBy)

	_, err = forms.GetPODetails(ctx, "IC-3")
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = forms.GetPODetails(ctx, "IC-5")
	assert.NoError(t, err)

	done, err := files.IsProcessed(ctx, "po_batch.csv")
	require.NoError(t, err)
	assert.True(t, done)

	count, err = im.processDir(ctx, dir)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestParseRow(t *testing.T) {
	columns := columnIndex([]string{"poQuantity", " inspectionCallNo "})

	po, err := parseRow(columns, []string{" 12 ", "IC-9"})
	require.NoError(t, err)
	assert.Equal(t, "IC-9", po.InspectionCallNo)
	assert.Equal(t, 12, *po.POQuantity)
	assert.Nil(t, po.PODate)

	po, err = parseRow(columns, []string{""})
	require.NoError(t, err)
	assert.Empty(t, po.InspectionCallNo)
	assert.Nil(t, po.POQuantity)
}
