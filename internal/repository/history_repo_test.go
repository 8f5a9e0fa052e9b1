package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"hotelcore/internal/database"
	"hotelcore/internal/domain"
)

func setupHistoryRepo(t *testing.T) (*HistoryRepository, *domain.Room) {
	t.Helper()
	dsn := fmt.Sprintf("file:history_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true},
	)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	rt := domain.RoomType{Code: "STD", Name: "Standard"}
	require.NoError(t, db.Create(&rt).Error)
	room := domain.Room{RoomNumber: "101", Floor: 1, RoomTypeID: rt.ID, Status: domain.StatusClean}
	require.NoError(t, db.Create(&room).Error)

	return NewHistoryRepository(db), &room
}

func TestRecordAppendsEntries(t *testing.T) {
	repo, room := setupHistoryRepo(t)
	ctx := context.Background()

	for _, status := range []domain.RoomStatus{domain.StatusHouseUse, domain.StatusDirty} {
		entry := domain.StatusHistoryEntry{
			RoomID:    room.ID,
			OldStatus: domain.StatusClean,
			NewStatus: status,
			Channel:   domain.ChannelSystem,
			ChangedBy: 1,
		}
		require.NoError(t, repo.Record(ctx, &entry))
		assert.NotZero(t, entry.ID)
	}

	cnt, err := repo.CountByRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)

	entries, err := repo.ListByRoom(ctx, room.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// newest first
	assert.Equal(t, domain.StatusDirty, entries[0].NewStatus)
	assert.Equal(t, domain.StatusHouseUse, entries[1].NewStatus)
}
