package repositories

import (
	"context"
	"errors"
	"inspection-app/database"
	"inspection-app/models"
	"inspection-app/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var start = time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)

func newDB(t *testing.T) (*gorm.DB, *testutil.Clock) {
	clock := testutil.NewClock(start)
	return testutil.NewDB(t, clock.Now), clock
}

func TestCallRecordRepositoryFindAndExists(t *testing.T) {
	db, _ := newDB(t)
	repo := NewPODetailsRepository(db)
	ctx := context.Background()

	_, found, err := repo.FindByCallNo(ctx, "IC-1")
	require.NoError(t, err)
	assert.False(t, found)

	exists, err := repo.ExistsByCallNo(ctx, "IC-1")
	require.NoError(t, err)
	assert.False(t, exists)

	first := models.PODetails{InspectionCallNo: "IC-1", PONumber: "PO-A"}
	second := models.PODetails{InspectionCallNo: "IC-1", PONumber: "PO-B"}
	require.NoError(t, repo.Save(ctx, &first))
	require.NoError(t, repo.Save(ctx, &second))
	assert.False(t, first.ID.IsZero())

	got, found, err := repo.FindByCallNo(ctx, "IC-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "PO-A", got.PONumber, "first inserted record wins")
	assert.True(t, start.Equal(got.CreatedAt))

	exists, err = repo.ExistsByCallNo(ctx, "IC-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCallRecordRepositorySaveOverwritesByID(t *testing.T) {
	db, clock := newDB(t)
	repo := NewSubPODetailsRepository(db)
	ctx := context.Background()

	rec := models.SubPODetails{InspectionCallNo: "IC-2", Contractor: "Old"}
	require.NoError(t, repo.Save(ctx, &rec))

	clock.Advance(time.Hour)
	rec.Contractor = "New"
	require.NoError(t, repo.Save(ctx, &rec))

	all, err := repo.FindAllByCallNo(ctx, "IC-2")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "New", all[0].Contractor)
	assert.True(t, start.Add(time.Hour).Equal(all[0].UpdatedAt))
}

func TestProductionLineRepositoryOrderAndDelete(t *testing.T) {
	db, _ := newDB(t)
	repo := NewProductionLineRepository(db)
	ctx := context.Background()

	lines := []models.ProductionLine{
		{InspectionCallNo: "IC-3", LineNumber: 2},
		{InspectionCallNo: "IC-3", LineNumber: 1},
		{InspectionCallNo: "IC-4", LineNumber: 1},
	}
	require.NoError(t, repo.SaveAll(ctx, lines))

	got, err := repo.FindAllByCallNo(ctx, "IC-3")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].LineNumber)
	assert.Equal(t, 2, got[1].LineNumber)

	require.NoError(t, repo.DeleteByCallNo(ctx, "IC-3"))
	require.NoError(t, repo.DeleteByCallNo(ctx, "IC-none"))

	got, err = repo.FindAllByCallNo(ctx, "IC-3")
	require.NoError(t, err)
	assert.Empty(t, got)

	other, err := repo.FindAllByCallNo(ctx, "IC-4")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestCallDetailsUniqueCallNo(t *testing.T) {
	db, _ := newDB(t)
	repo := NewCallDetailsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.CallDetails{InspectionCallNo: "IC-5"}))
	err := repo.Save(ctx, &models.CallDetails{InspectionCallNo: "IC-5"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestCallDetailsFind(t *testing.T) {
	db, _ := newDB(t)
	repo := NewCallDetailsRepository(db)
	ctx := context.Background()

	for _, c := range []models.CallDetails{
		{InspectionCallNo: "IC-1", ProductType: "Rail", StageOfInspection: "Final"},
		{InspectionCallNo: "IC-2", ProductType: "Rail", StageOfInspection: "Stage"},
		{InspectionCallNo: "IC-3", ProductType: "Sleeper", StageOfInspection: "Final"},
	} {
		c := c
		require.NoError(t, repo.Save(ctx, &c))
	}

	rails, err := repo.FindByProductType(ctx, "Rail")
	require.NoError(t, err)
	assert.Len(t, rails, 2)

	finals, err := repo.FindByStageOfInspection(ctx, "Final")
	require.NoError(t, err)
	assert.Len(t, finals, 2)

	both, err := repo.Find(ctx, CallDetailsFilter{ProductType: "Rail", StageOfInspection: "Final"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "IC-1", both[0].InspectionCallNo)
}

func TestRepositoriesUseContextTransaction(t *testing.T) {
	db, _ := newDB(t)
	repo := NewPODetailsRepository(db)
	ctx := context.Background()

	rollback := errors.New("rollback")
	err := database.Transaction(ctx, db, func(ctx context.Context) error {
		require.NoError(t, repo.Save(ctx, &models.PODetails{InspectionCallNo: "IC-TX"}))
		exists, err := repo.ExistsByCallNo(ctx, "IC-TX")
		require.NoError(t, err)
		assert.True(t, exists)
		return rollback
	})
	assert.ErrorIs(t, err, rollback)

	exists, err := repo.ExistsByCallNo(ctx, "IC-TX")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestScheduleRepository(t *testing.T) {
	db, clock := newDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	day1 := datatypes.Date(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))
	day2 := datatypes.Date(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Create(ctx, &models.InspectionSchedule{CallNo: "IC-1", ScheduleDate: day1, Status: models.ScheduleStatusScheduled}))
	require.NoError(t, repo.Create(ctx, &models.InspectionSchedule{CallNo: "IC-2", ScheduleDate: day1, Status: models.ScheduleStatusScheduled}))
	clock.Advance(time.Minute)
	require.NoError(t, repo.Create(ctx, &models.InspectionSchedule{CallNo: "IC-1", ScheduleDate: day2, Status: models.ScheduleStatusRescheduled}))

	latest, found, err := repo.FindLatestByCallNo(ctx, "IC-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.ScheduleStatusRescheduled, latest.Status)

	history, err := repo.FindHistoryByCallNo(ctx, "IC-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.ScheduleStatusScheduled, history[0].Status)

	onDay1, err := repo.CountCallsOnDate(ctx, day1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), onDay1, "IC-1 moved away from day 1")

	onDay2, err := repo.CountCallsOnDate(ctx, day2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), onDay2)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2, "one current row per call")
	assert.Equal(t, "IC-1", all[0].CallNo)
	assert.Equal(t, models.ScheduleStatusRescheduled, all[0].Status)
	assert.Equal(t, "2024-05-02", time.Time(all[0].ScheduleDate).Format("2006-01-02"))
	assert.Equal(t, "IC-2", all[1].CallNo)

	_, found, err = repo.FindLatestByCallNo(ctx, "IC-9")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHistoryAndFileLogRepositories(t *testing.T) {
	db, _ := newDB(t)
	ctx := context.Background()

	history := NewHistoryRepository(db)
	require.NoError(t, history.Insert(ctx, "IC-1", models.HistoryStatusVerified, "po_details", "verified", "alice"))
	require.NoError(t, history.Insert(ctx, "IC-1", models.HistoryStatusVerified, "call_details", "verified", "bob"))

	entries, err := history.FindByRefNo(ctx, "IC-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].CreatedBy)

	files := NewFileLogRepository(db)
	done, err := files.IsProcessed(ctx, "po.csv")
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, files.MarkProcessed(ctx, "po.csv", start, 3))
	done, err = files.IsProcessed(ctx, "po.csv")
	require.NoError(t, err)
	assert.True(t, done)
}
