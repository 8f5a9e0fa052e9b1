package rooms

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"hotelcore/internal/database"
	"hotelcore/internal/domain"
	"hotelcore/internal/repository"
)

type capturedEvent struct {
	room  *domain.Room
	entry *domain.StatusHistoryEntry
}

type fakeNotifier struct {
	events []capturedEvent
}

func (f *fakeNotifier) NotifyStatusChanged(room *domain.Room, entry *domain.StatusHistoryEntry) {
	f.events = append(f.events, capturedEvent{room: room, entry: entry})
}

func setupTestService(t *testing.T) (*Service, *fakeNotifier, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:rooms_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true},
	)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	rt := domain.RoomType{Code: "STD", Name: "Standard", MaxOccupancy: 2, BasePrice: 100}
	require.NoError(t, db.Create(&rt).Error)

	notifier := &fakeNotifier{}
	svc := NewService(
		repository.NewRoomRepository(db),
		repository.NewHistoryRepository(db),
		repository.NewBlockingRepository(db),
		repository.NewFloorRepository(db),
		notifier,
	)
	return svc, notifier, db
}

func createRoom(t *testing.T, svc *Service, number string, floor int) *domain.Room {
	t.Helper()
	room, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		RoomNumber: number,
		Floor:      floor,
		RoomTypeID: 1,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusClean, room.Status)
	return room
}

func historyCount(t *testing.T, db *gorm.DB, roomID int64) int64 {
	t.Helper()
	var cnt int64
	require.NoError(t, db.Model(&domain.StatusHistoryEntry{}).Where("room_id = ?", roomID).Count(&cnt).Error)
	return cnt
}

func TestHouseUseRoundTrip(t *testing.T) {
	svc, _, db := setupTestService(t)
	ctx := context.Background()
	room := createRoom(t, svc, "101", 1)

	res, err := svc.Transition(ctx, room.ID, 7, TransitionRequest{Action: "assign_house_use", Reason: "staff stay"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHouseUse, res.Room.Status)
	assert.Equal(t, domain.StatusClean, res.History.OldStatus)
	assert.Equal(t, domain.ChannelFrontOffice, res.History.Channel)
	assert.Equal(t, int64(7), res.History.ChangedBy)

	res, err = svc.Transition(ctx, room.ID, 7, TransitionRequest{Action: "checkout"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDirty, res.Room.Status)

	assert.Equal(t, int64(2), historyCount(t, db, room.ID))
}

func TestCleaningCycle(t *testing.T) {
	svc, notifier, db := setupTestService(t)
	ctx := context.Background()
	room := createRoom(t, svc, "102", 1)

	// Put the room into dirty first.
	_, err := svc.Transition(ctx, room.ID, 1, TransitionRequest{Action: "assign_house_use"})
	require.NoError(t, err)
	_, err = svc.Transition(ctx, room.ID, 1, TransitionRequest{Action: "checkout"})
	require.NoError(t, err)
	before := historyCount(t, db, room.ID)

	for _, step := range []struct {
		action string
		want   domain.RoomStatus
	}{
		{"start_cleaning", domain.StatusMakeUpRoom},
		{"finish_cleaning", domain.StatusInspected},
		{"approve", domain.StatusClean},
	} {
		res, err := svc.Transition(ctx, room.ID, 1, TransitionRequest{Action: step.action})
		require.NoError(t, err, step.action)
		assert.Equal(t, step.want, res.Room.Status)
		assert.Equal(t, domain.ChannelHousekeeping, res.History.Channel)
		assert.NotEqual(t, res.History.OldStatus, res.History.NewStatus)
	}

	assert.Equal(t, before+3, historyCount(t, db, room.ID))
	assert.Len(t, notifier.events, 5)
}

func TestInvalidTransitionIsRejectedWithoutMutation(t *testing.T) {
	svc, _, db := setupTestService(t)
	ctx := context.Background()
	room := createRoom(t, svc, "103", 1)

	_, err := svc.Transition(ctx, room.ID, 1, TransitionRequest{Action: "heavy_maintenance"})
	require.NoError(t, err)
	before := historyCount(t, db, room.ID)

	// start_cleaning is not defined from out_of_order; rejection must be
	// idempotent and leave both the room and the history untouched.
	for i := 0; i < 2; i++ {
		_, err := svc.Transition(ctx, room.ID, 1, TransitionRequest{Action: "start_cleaning"})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	}

	got, err := svc.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOutOfOrder, got.Status)
	assert.Equal(t, before, historyCount(t, db, room.ID))
}

func TestUnknownActionRejected(t *testing.T) {
	svc, _, _ := setupTestService(t)
	room := createRoom(t, svc, "104", 1)

	_, err := svc.Transition(context.Background(), room.ID, 1, TransitionRequest{Action: "levitate"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestArchivedRoomCannotTransition(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()
	room := createRoom(t, svc, "105", 1)

	require.NoError(t, svc.ArchiveRoom(ctx, room.ID))

	_, err := svc.Transition(ctx, room.ID, 1, TransitionRequest{Action: "assign_house_use"})
	assert.ErrorIs(t, err, ErrArchived)

	actions, err := svc.Actions(ctx, room.ID)
	require.NoError(t, err)
	assert.Empty(t, actions.Actions)
}

func TestActionsFollowStatus(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()
	room := createRoom(t, svc, "106", 1)

	res, err := svc.Actions(ctx, room.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]domain.Action{domain.ActionAssignHouseUse, domain.ActionLightMaintenance, domain.ActionHeavyMaintenance},
		res.Actions,
	)

	_, err = svc.Transition(ctx, room.ID, 1, TransitionRequest{Action: "light_maintenance"})
	require.NoError(t, err)

	res, err = svc.Actions(ctx, room.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Action{domain.ActionCompleteMaintenance}, res.Actions)
}

func TestDuplicateRoomNumberPerFloor(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()
	createRoom(t, svc, "201", 2)

	_, err := svc.CreateRoom(ctx, CreateRoomRequest{RoomNumber: "201", Floor: 2, RoomTypeID: 1})
	assert.ErrorIs(t, err, ErrDuplicate)

	// Same number on a different floor is fine.
	_, err = svc.CreateRoom(ctx, CreateRoomRequest{RoomNumber: "201", Floor: 3, RoomTypeID: 1})
	assert.NoError(t, err)
}

func TestAvailabilityHonoursStatusAndBlockings(t *testing.T) {
	svc, _, db := setupTestService(t)
	ctx := context.Background()
	room := createRoom(t, svc, "301", 3)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	res, err := svc.Availability(ctx, room.ID, start, end)
	require.NoError(t, err)
	assert.True(t, res.Available)

	blocking := domain.RoomBlocking{
		Reference:    "blk-1",
		RoomID:       room.ID,
		Name:         "Boiler repair",
		StartDate:    start.AddDate(0, 0, 1),
		EndDate:      start.AddDate(0, 0, 5),
		BlockingType: domain.BlockingMaintenance,
		Status:       domain.BlockingActive,
	}
	require.NoError(t, db.Create(&blocking).Error)

	res, err = svc.Availability(ctx, room.ID, start, end)
	require.NoError(t, err)
	assert.True(t, res.StatusOK)
	assert.False(t, res.NotBlocked)
	assert.False(t, res.Available)
	assert.Len(t, res.Blockings, 1)

	// A blocked room still transitions freely.
	_, err = svc.Transition(ctx, room.ID, 1, TransitionRequest{Action: "assign_house_use"})
	assert.NoError(t, err)
}

func TestHistoryListing(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()
	room := createRoom(t, svc, "401", 4)

	_, err := svc.Transition(ctx, room.ID, 1, TransitionRequest{Action: "assign_house_use"})
	require.NoError(t, err)
	_, err = svc.Transition(ctx, room.ID, 1, TransitionRequest{Action: "checkout"})
	require.NoError(t, err)

	res, err := svc.History(ctx, room.ID, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	require.Len(t, res.Entries, 2)
	// Newest first.
	assert.Equal(t, domain.StatusDirty, res.Entries[0].NewStatus)
	assert.Equal(t, domain.StatusHouseUse, res.Entries[1].NewStatus)
}
