package seed

import (
	"context"
	"testing"
	"time"

	"inspection-app/services"
	"inspection-app/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoIsIdempotent(t *testing.T) {
	clock := testutil.NewClock(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))
	db := testutil.NewDB(t, clock.Now)
	forms := services.NewInspectionFormService(db, clock, nil, nil)
	ctx := context.Background()

	require.NoError(t, SeedDemo(ctx, forms))
	_, err := forms.VerifyPODetails(ctx, DemoCallNo, "inspector")
	require.NoError(t, err)

	require.NoError(t, SeedDemo(ctx, forms))

	form, err := forms.GetFormData(ctx, DemoCallNo)
	require.NoError(t, err)
	require.NotNil(t, form.PODetails)
	require.NotNil(t, form.CallDetails)
	require.NotNil(t, form.SubPODetails)
	assert.True(t, form.PODetails.IsVerified)

	lines, err := forms.GetProductionLines(ctx, DemoCallNo)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"RM-IC-101", "RM-IC-102"}, lines[0].RawMaterialICs)
}
