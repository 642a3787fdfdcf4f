package impl

import (
	"context"
	"testing"

	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/domain/repository"
	mockRepo "equiptrack/internal/mocks/repository"
	"equiptrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceFixture struct {
	service       usecase.LocationUsecase
	locationRepo  *mockRepo.MockLocationRepository
	equipmentRepo *mockRepo.MockEquipmentRepository
}

func createTestLocationService(t *testing.T) *locationServiceFixture {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	equipmentRepo := mockRepo.NewMockEquipmentRepository(t)

	return &locationServiceFixture{
		service:       NewLocationService(locationRepo, equipmentRepo, newDiscardLogger()),
		locationRepo:  locationRepo,
		equipmentRepo: equipmentRepo,
	}
}

func TestLocationService_AddBuilding_Success(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().
		CreateBuilding(ctx, mock.MatchedBy(func(b *entity.Building) bool { return b.Name == "Sede Principal" })).
		Run(func(_ context.Context, b *entity.Building) { b.ID = 1 }).
		Return(nil)

	building, err := fx.service.AddBuilding(ctx, "  Sede Principal ")
	require.NoError(t, err)
	assert.Equal(t, uint(1), building.ID)
	assert.Equal(t, "Sede Principal", building.Name)
}

func TestLocationService_AddBuilding_Errors(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		fx := createTestLocationService(t)

		_, err := fx.service.AddBuilding(context.Background(), "   ")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().
			CreateBuilding(ctx, mock.AnythingOfType("*entity.Building")).
			Return(repository.ErrBuildingAlreadyExists)

		_, err := fx.service.AddBuilding(ctx, "Sede")
		assert.True(t, errors.Is(err, domainerrors.ErrDuplicateBuilding))
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().
			CreateBuilding(ctx, mock.AnythingOfType("*entity.Building")).
			Return(errors.New("connection reset"))

		_, err := fx.service.AddBuilding(ctx, "Sede")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create building")
	})
}

func TestLocationService_AddRoom(t *testing.T) {
	tests := []struct {
		name       string
		roomName   string
		buildingID uint
		setup      func(fx *locationServiceFixture)
		wantErr    error
	}{
		{
			name:       "success",
			roomName:   "Sala 101",
			buildingID: 1,
			setup: func(fx *locationServiceFixture) {
				fx.locationRepo.EXPECT().FindBuildingByID(mock.Anything, uint(1)).Return(&entity.Building{ID: 1}, nil)
				fx.locationRepo.EXPECT().CreateRoom(mock.Anything, mock.AnythingOfType("*entity.Room")).Return(nil)
			},
		},
		{
			name:       "missing building id",
			roomName:   "Sala 101",
			buildingID: 0,
			setup:      func(fx *locationServiceFixture) {},
			wantErr:    domainerrors.ErrInvalidInput,
		},
		{
			name:       "building not found",
			roomName:   "Sala 101",
			buildingID: 9,
			setup: func(fx *locationServiceFixture) {
				fx.locationRepo.EXPECT().FindBuildingByID(mock.Anything, uint(9)).Return(nil, repository.ErrBuildingNotFound)
			},
			wantErr: domainerrors.ErrBuildingNotFound,
		},
		{
			name:       "duplicate room",
			roomName:   "Sala 101",
			buildingID: 1,
			setup: func(fx *locationServiceFixture) {
				fx.locationRepo.EXPECT().FindBuildingByID(mock.Anything, uint(1)).Return(&entity.Building{ID: 1}, nil)
				fx.locationRepo.EXPECT().CreateRoom(mock.Anything, mock.AnythingOfType("*entity.Room")).Return(repository.ErrRoomAlreadyExists)
			},
			wantErr: domainerrors.ErrDuplicateRoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationService(t)
			tt.setup(fx)

			room, err := fx.service.AddRoom(context.Background(), tt.roomName, tt.buildingID)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, room)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.roomName, room.Name)
			assert.Equal(t, tt.buildingID, room.BuildingID)
		})
	}
}

func TestLocationService_DeleteBuilding(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx *locationServiceFixture)
		wantErr error
	}{
		{
			name: "has rooms",
			setup: func(fx *locationServiceFixture) {
				fx.locationRepo.EXPECT().FindBuildingByID(mock.Anything, uint(1)).Return(&entity.Building{ID: 1}, nil)
				fx.locationRepo.EXPECT().CountRoomsByBuilding(mock.Anything, uint(1)).Return(int64(2), nil)
			},
			wantErr: domainerrors.ErrBuildingHasRooms,
		},
		{
			name: "not found",
			setup: func(fx *locationServiceFixture) {
				fx.locationRepo.EXPECT().FindBuildingByID(mock.Anything, uint(1)).Return(nil, repository.ErrBuildingNotFound)
			},
			wantErr: domainerrors.ErrBuildingNotFound,
		},
		{
			name: "foreign key race",
			setup: func(fx *locationServiceFixture) {
				fx.locationRepo.EXPECT().FindBuildingByID(mock.Anything, uint(1)).Return(&entity.Building{ID: 1}, nil)
				fx.locationRepo.EXPECT().CountRoomsByBuilding(mock.Anything, uint(1)).Return(int64(0), nil)
				fx.locationRepo.EXPECT().DeleteBuilding(mock.Anything, uint(1)).Return(repository.ErrBuildingInUse)
			},
			wantErr: domainerrors.ErrBuildingHasRooms,
		},
		{
			name: "success",
			setup: func(fx *locationServiceFixture) {
				fx.locationRepo.EXPECT().FindBuildingByID(mock.Anything, uint(1)).Return(&entity.Building{ID: 1}, nil)
				fx.locationRepo.EXPECT().CountRoomsByBuilding(mock.Anything, uint(1)).Return(int64(0), nil)
				fx.locationRepo.EXPECT().DeleteBuilding(mock.Anything, uint(1)).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationService(t)
			tt.setup(fx)

			err := fx.service.DeleteBuilding(context.Background(), 1)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLocationService_DeleteRoom(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx *locationServiceFixture)
		wantErr error
	}{
		{
			name: "equipment located",
			setup: func(fx *locationServiceFixture) {
				fx.locationRepo.EXPECT().FindRoomByID(mock.Anything, uint(3)).Return(&entity.Room{ID: 3}, nil)
				fx.equipmentRepo.EXPECT().CountEquipmentByRoom(mock.Anything, uint(3)).Return(int64(1), nil)
			},
			wantErr: domainerrors.ErrRoomHasEquipment,
		},
		{
			name: "not found",
			setup: func(fx *locationServiceFixture) {
				fx.locationRepo.EXPECT().FindRoomByID(mock.Anything, uint(3)).Return(nil, repository.ErrRoomNotFound)
			},
			wantErr: domainerrors.ErrRoomNotFound,
		},
		{
			name: "foreign key race",
			setup: func(fx *locationServiceFixture) {
				fx.locationRepo.EXPECT().FindRoomByID(mock.Anything, uint(3)).Return(&entity.Room{ID: 3}, nil)
				fx.equipmentRepo.EXPECT().CountEquipmentByRoom(mock.Anything, uint(3)).Return(int64(0), nil)
				fx.locationRepo.EXPECT().DeleteRoom(mock.Anything, uint(3)).Return(repository.ErrRoomInUse)
			},
			wantErr: domainerrors.ErrRoomHasEquipment,
		},
		{
			name: "success",
			setup: func(fx *locationServiceFixture) {
				fx.locationRepo.EXPECT().FindRoomByID(mock.Anything, uint(3)).Return(&entity.Room{ID: 3}, nil)
				fx.equipmentRepo.EXPECT().CountEquipmentByRoom(mock.Anything, uint(3)).Return(int64(0), nil)
				fx.locationRepo.EXPECT().DeleteRoom(mock.Anything, uint(3)).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationService(t)
			tt.setup(fx)

			err := fx.service.DeleteRoom(context.Background(), 3)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLocationService_ListBuildings(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	expected := []*entity.Building{
		{ID: 2, Name: "Filial Norte", Rooms: []*entity.Room{{ID: 5, Name: "Estoque", BuildingID: 2}}},
		{ID: 1, Name: "Sede"},
	}
	fx.locationRepo.EXPECT().ListBuildings(ctx).Return(expected, nil)

	buildings, err := fx.service.ListBuildings(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, buildings)
}
