package postgres

import (
	"context"
	"testing"
	"time"

	"equiptrack/internal/domain/entity"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/infra/persistence/model"
	"equiptrack/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

type fixture struct {
	user     *entity.User
	admin    *entity.User
	building *entity.Building
	stock    *entity.Room
	room     *entity.Room
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	ctx := context.Background()

	users := NewUserRepository(db)
	locations := NewLocationRepository(db)

	f := &fixture{
		user:     &entity.User{Username: "tecnico", PasswordHash: "x"},
		admin:    &entity.User{Username: "admin", PasswordHash: "x", IsAdmin: true},
		building: &entity.Building{Name: "Sede"},
	}
	require.NoError(t, users.CreateUser(ctx, f.user))
	require.NoError(t, users.CreateUser(ctx, f.admin))
	require.NoError(t, locations.CreateBuilding(ctx, f.building))

	f.stock = &entity.Room{Name: "Estoque", BuildingID: f.building.ID}
	f.room = &entity.Room{Name: "Sala 1", BuildingID: f.building.ID}
	require.NoError(t, locations.CreateRoom(ctx, f.stock))
	require.NoError(t, locations.CreateRoom(ctx, f.room))

	return f
}

func createEquipment(t *testing.T, db *gorm.DB, f *fixture, serial string) *entity.Equipment {
	t.Helper()

	equipment := &entity.Equipment{
		SerialNumber:  serial,
		DisplayName:   "Equipamento " + serial,
		Status:        entity.InStockStatus(),
		CurrentRoomID: &f.stock.ID,
		RegisteredBy:  f.user.ID,
	}
	require.NoError(t, NewEquipmentRepository(db).CreateEquipment(context.Background(), equipment))

	return equipment
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.CreateUser(ctx, &entity.User{Username: "tecnico", PasswordHash: "y"})
		assert.ErrorIs(t, err, repository.ErrUserAlreadyExists)
	})

	t.Run("find by id and username", func(t *testing.T) {
		byID, err := repo.FindUserByID(ctx, f.admin.ID)
		require.NoError(t, err)
		assert.True(t, byID.IsAdmin)

		byName, err := repo.FindUserByUsername(ctx, "tecnico")
		require.NoError(t, err)
		assert.Equal(t, f.user.ID, byName.ID)

		_, err = repo.FindUserByID(ctx, 9999)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("list ordered by username", func(t *testing.T) {
		users, err := repo.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "admin", users[0].Username)
		assert.Equal(t, "tecnico", users[1].Username)
	})

	t.Run("admin ids", func(t *testing.T) {
		ids, err := repo.FindAdminIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uint{f.admin.ID}, ids)
	})
}

func TestLocationRepository(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	t.Run("duplicate names", func(t *testing.T) {
		assert.ErrorIs(t, repo.CreateBuilding(ctx, &entity.Building{Name: "Sede"}), repository.ErrBuildingAlreadyExists)
		assert.ErrorIs(t, repo.CreateRoom(ctx, &entity.Room{Name: "Sala 1", BuildingID: f.building.ID}), repository.ErrRoomAlreadyExists)
	})

	t.Run("same room name in another building", func(t *testing.T) {
		annex := &entity.Building{Name: "Anexo"}
		require.NoError(t, repo.CreateBuilding(ctx, annex))
		require.NoError(t, repo.CreateRoom(ctx, &entity.Room{Name: "Sala 1", BuildingID: annex.ID}))
	})

	t.Run("room in unknown building", func(t *testing.T) {
		err := repo.CreateRoom(ctx, &entity.Room{Name: "Sala X", BuildingID: 9999})
		assert.ErrorIs(t, err, repository.ErrBuildingNotFound)
	})

	t.Run("list preloads rooms by name", func(t *testing.T) {
		buildings, err := repo.ListBuildings(ctx)
		require.NoError(t, err)
		require.Len(t, buildings, 2)
		assert.Equal(t, "Anexo", buildings[0].Name)
		assert.Equal(t, "Sede", buildings[1].Name)
		require.Len(t, buildings[1].Rooms, 2)
		assert.Equal(t, "Estoque", buildings[1].Rooms[0].Name)
		assert.Equal(t, "Sala 1", buildings[1].Rooms[1].Name)
	})

	t.Run("building with rooms cannot be deleted", func(t *testing.T) {
		assert.ErrorIs(t, repo.DeleteBuilding(ctx, f.building.ID), repository.ErrBuildingInUse)

		count, err := repo.CountRoomsByBuilding(ctx, f.building.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("room with equipment cannot be deleted", func(t *testing.T) {
		createEquipment(t, db, f, "LOC-1")
		assert.ErrorIs(t, repo.DeleteRoom(ctx, f.stock.ID), repository.ErrRoomInUse)
	})

	t.Run("delete missing", func(t *testing.T) {
		assert.ErrorIs(t, repo.DeleteRoom(ctx, 9999), repository.ErrRoomNotFound)
		assert.ErrorIs(t, repo.DeleteBuilding(ctx, 9999), repository.ErrBuildingNotFound)
		_, err := repo.FindRoomByID(ctx, 9999)
		assert.ErrorIs(t, err, repository.ErrRoomNotFound)
		_, err = repo.FindBuildingByID(ctx, 9999)
		assert.ErrorIs(t, err, repository.ErrBuildingNotFound)
	})
}

func TestEquipmentRepository_UpdateEquipmentStatus(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewEquipmentRepository(db)
	ctx := context.Background()
	equipment := createEquipment(t, db, f, "CAS-1")

	err := repo.UpdateEquipmentStatus(ctx, equipment.ID, entity.InStockStatus(), entity.InTransitStatus(), &f.stock.ID)
	require.NoError(t, err)

	t.Run("stale expectation", func(t *testing.T) {
		err := repo.UpdateEquipmentStatus(ctx, equipment.ID, entity.InStockStatus(), entity.InTransitStatus(), &f.stock.ID)
		assert.ErrorIs(t, err, repository.ErrEquipmentStatusChanged)
	})

	t.Run("in use carries its room", func(t *testing.T) {
		next := entity.InUseStatus(f.room.ID)
		require.NoError(t, repo.UpdateEquipmentStatus(ctx, equipment.ID, entity.InTransitStatus(), next, &f.room.ID))

		stored, err := repo.FindEquipmentBySerial(ctx, "CAS-1")
		require.NoError(t, err)
		assert.True(t, stored.Status.Equal(next))
		assert.Equal(t, f.room.ID, *stored.CurrentRoomID)

		err = repo.UpdateEquipmentStatus(ctx, equipment.ID, entity.InUseStatus(f.stock.ID), entity.InTransitStatus(), &f.room.ID)
		assert.ErrorIs(t, err, repository.ErrEquipmentStatusChanged, "room is part of the expected status")
	})

	t.Run("missing room", func(t *testing.T) {
		missing := uint(9999)
		err := repo.UpdateEquipmentStatus(ctx, equipment.ID, entity.InUseStatus(f.room.ID), entity.InStockStatus(), &missing)
		assert.ErrorIs(t, err, repository.ErrRoomNotFound)
	})
}

func TestEquipmentRepository(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	b := createEquipment(t, db, f, "B-2")
	createEquipment(t, db, f, "A-1")

	err := repo.CreateEquipment(ctx, &entity.Equipment{
		SerialNumber:  "B-2",
		DisplayName:   "dup",
		Status:        entity.InStockStatus(),
		CurrentRoomID: &f.stock.ID,
		RegisteredBy:  f.user.ID,
	})
	assert.ErrorIs(t, err, repository.ErrEquipmentAlreadyExists)

	locked, err := repo.FindEquipmentBySerialForUpdate(ctx, "B-2")
	require.NoError(t, err)
	assert.Equal(t, b.ID, locked.ID)

	_, err = repo.FindEquipmentByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrEquipmentNotFound)

	list, err := repo.ListEquipment(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A-1", list[0].SerialNumber)

	require.NoError(t, repo.UpdateEquipmentStatus(ctx, b.ID, entity.InStockStatus(), entity.InTransitStatus(), &f.stock.ID))

	counts, err := repo.CountEquipmentByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[entity.StatusKind]int64{
		entity.StatusInStock:   1,
		entity.StatusInTransit: 1,
	}, counts)

	inStock, err := repo.CountEquipmentByRoom(ctx, f.stock.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inStock)
}

func TestCheckpointRepository(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewCheckpointRepository(db)
	ctx := context.Background()
	equipment := createEquipment(t, db, f, "LOG-1")

	_, err := repo.FindLatestCheckpoint(ctx, equipment.ID)
	assert.ErrorIs(t, err, repository.ErrCheckpointNotFound)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	statuses := []struct {
		before, after entity.Status
		room          *entity.Room
	}{
		{entity.NotApplicableStatus(), entity.InStockStatus(), f.stock},
		{entity.InStockStatus(), entity.InTransitStatus(), f.room},
		{entity.InTransitStatus(), entity.InUseStatus(f.room.ID), f.room},
	}
	for i, s := range statuses {
		require.NoError(t, repo.AppendCheckpoint(ctx, &entity.Checkpoint{
			EquipmentID:      equipment.ID,
			StatusBefore:     s.before,
			StatusAfter:      s.after,
			TargetBuildingID: &f.building.ID,
			TargetRoomID:     &s.room.ID,
			ChangedBy:        f.user.ID,
			Timestamp:        base.Add(time.Duration(i) * time.Minute),
		}))
	}

	latest, err := repo.FindLatestCheckpoint(ctx, equipment.ID)
	require.NoError(t, err)
	assert.True(t, latest.StatusAfter.Equal(entity.InUseStatus(f.room.ID)))

	history, err := repo.FindCheckpointsByEquipment(ctx, equipment.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.True(t, history[2].StatusBefore.Is(entity.StatusNotApplicable))

	t.Run("deleting a target room nulls history references", func(t *testing.T) {
		other := &entity.Room{Name: "Sala 2", BuildingID: f.building.ID}
		locations := NewLocationRepository(db)
		require.NoError(t, locations.CreateRoom(ctx, other))
		require.NoError(t, repo.AppendCheckpoint(ctx, &entity.Checkpoint{
			EquipmentID:  equipment.ID,
			StatusBefore: entity.InUseStatus(f.room.ID),
			StatusAfter:  entity.InTransitStatus(),
			TargetRoomID: &other.ID,
			ChangedBy:    f.user.ID,
			Timestamp:    base.Add(time.Hour),
		}))

		require.NoError(t, locations.DeleteRoom(ctx, other.ID))

		latest, err := repo.FindLatestCheckpoint(ctx, equipment.ID)
		require.NoError(t, err)
		assert.Nil(t, latest.TargetRoomID)
	})

	t.Run("unknown equipment", func(t *testing.T) {
		err := repo.AppendCheckpoint(ctx, &entity.Checkpoint{
			EquipmentID:  9999,
			StatusBefore: entity.NotApplicableStatus(),
			StatusAfter:  entity.InStockStatus(),
			ChangedBy:    f.user.ID,
			Timestamp:    base,
		})
		assert.Error(t, err)
	})

	all, err := repo.ListCheckpoints(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].Timestamp.Before(all[i].Timestamp))
	}
}

func TestNotificationRepository(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	notifications := make([]*entity.Notification, 0, 5)
	for i := 0; i < 5; i++ {
		notifications = append(notifications, &entity.Notification{Message: "msg", TargetUserID: f.admin.ID})
	}
	require.NoError(t, repo.CreateNotifications(ctx, notifications))
	for _, n := range notifications {
		assert.NotZero(t, n.ID)
	}
	require.NoError(t, repo.CreateNotifications(ctx, nil))

	err := repo.CreateNotifications(ctx, []*entity.Notification{{Message: "orphan", TargetUserID: 9999}})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	require.NoError(t, repo.MarkNotificationRead(ctx, notifications[0].ID))
	assert.ErrorIs(t, repo.MarkNotificationRead(ctx, 9999), repository.ErrNotificationNotFound)

	unread, err := repo.FindNotificationsByUser(ctx, f.admin.ID, true, 0)
	require.NoError(t, err)
	assert.Len(t, unread, 4)

	limited, err := repo.FindNotificationsByUser(ctx, f.admin.ID, false, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, notifications[4].ID, limited[0].ID)

	marked, err := repo.MarkAllNotificationsRead(ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), marked)

	marked, err = repo.MarkAllNotificationsRead(ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Zero(t, marked)

	count, err := repo.CountUnreadNotifications(ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	found, err := repo.FindNotificationByID(ctx, notifications[0].ID)
	require.NoError(t, err)
	assert.True(t, found.Read)
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewNotificationRepository().CreateNotifications(ctx, []*entity.Notification{
			{Message: "rolled back", TargetUserID: f.user.ID},
		}); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	count, err := NewNotificationRepository(db).CountUnreadNotifications(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.NewNotificationRepository().CreateNotifications(ctx, []*entity.Notification{
			{Message: "committed", TargetUserID: f.user.ID},
		})
	})
	require.NoError(t, err)

	count, err = NewNotificationRepository(db).CountUnreadNotifications(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
