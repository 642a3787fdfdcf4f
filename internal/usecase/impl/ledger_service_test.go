package impl

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"equiptrack/config"
	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/infra/persistence/postgres"
	"equiptrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_RegisterEquipment(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()

	equipment := h.register(t, "  abc123 ", "Notebook Dell")

	assert.Equal(t, "ABC123", equipment.SerialNumber)
	assert.Equal(t, "Notebook Dell", equipment.DisplayName)
	assert.True(t, equipment.Status.Is(entity.StatusInStock))
	require.NotNil(t, equipment.CurrentRoomID)
	assert.Equal(t, h.stock.ID, *equipment.CurrentRoomID)

	history, err := h.ledger.History(ctx, equipment.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)

	first := history[0]
	assert.True(t, first.StatusBefore.Is(entity.StatusNotApplicable))
	assert.True(t, first.StatusAfter.Is(entity.StatusInStock))
	require.NotNil(t, first.TargetRoomID)
	require.NotNil(t, first.TargetBuildingID)
	assert.Equal(t, h.stock.ID, *first.TargetRoomID)
	assert.Equal(t, h.building.ID, *first.TargetBuildingID)
	assert.Equal(t, h.operator.ID, first.ChangedBy)

	events := h.publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, "ABC123", events[0].SerialNumber)
	assert.Equal(t, entity.StatusNotApplicable.String(), events[0].StatusBefore)
	assert.Equal(t, entity.StatusInStock.String(), events[0].StatusAfter)
	assert.NotEmpty(t, events[0].EventID)

	h.requireStatusMatchesLog(t, equipment.ID)
}

func TestLedgerService_RegisterEquipment_Errors(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	h.register(t, "ABC123", "Notebook Dell")

	tests := []struct {
		name    string
		input   *usecase.RegisterEquipmentInput
		actorID uint
		wantErr error
	}{
		{
			name:    "duplicate serial differing only in case",
			input:   &usecase.RegisterEquipmentInput{SerialNumber: "abc123", DisplayName: "Outro"},
			actorID: h.operator.ID,
			wantErr: domainerrors.ErrDuplicateSerial,
		},
		{
			name:    "empty serial",
			input:   &usecase.RegisterEquipmentInput{SerialNumber: "  ", DisplayName: "Monitor"},
			actorID: h.operator.ID,
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "empty display name",
			input:   &usecase.RegisterEquipmentInput{SerialNumber: "MON-1", DisplayName: ""},
			actorID: h.operator.ID,
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "serial longer than the column",
			input:   &usecase.RegisterEquipmentInput{SerialNumber: strings.Repeat("S", entity.MaxSerialNumberLength+1), DisplayName: "Monitor"},
			actorID: h.operator.ID,
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "display name longer than the column",
			input:   &usecase.RegisterEquipmentInput{SerialNumber: "MON-3", DisplayName: strings.Repeat("n", entity.MaxDisplayNameLength+1)},
			actorID: h.operator.ID,
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "unknown actor",
			input:   &usecase.RegisterEquipmentInput{SerialNumber: "MON-2", DisplayName: "Monitor"},
			actorID: 9999,
			wantErr: domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equipment, err := h.ledger.RegisterEquipment(ctx, tt.input, tt.actorID)

			assert.Nil(t, equipment)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	list, err := h.ledger.ListEquipment(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestLedgerService_RegisterEquipment_LengthLimitCountsCharacters(t *testing.T) {
	h := newLedgerHarness(t)

	serial := strings.Repeat("É", entity.MaxSerialNumberLength)
	name := strings.Repeat("ç", entity.MaxDisplayNameLength)

	equipment := h.register(t, serial, name)
	assert.Equal(t, serial, equipment.SerialNumber)
	assert.Equal(t, name, equipment.DisplayName)
}

func TestLedgerService_RegisterEquipment_StockRoomMissing(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()

	cfg := &config.Config{}
	ledger := NewLedgerService(LedgerServiceParams{
		TxManager:      postgres.NewTransactionManager(h.db),
		UserRepo:       postgres.NewUserRepository(h.db),
		LocationRepo:   postgres.NewLocationRepository(h.db),
		EquipmentRepo:  h.equipmentRepo,
		CheckpointRepo: h.checkpointRepo,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})

	_, err := ledger.RegisterEquipment(ctx, &usecase.RegisterEquipmentInput{SerialNumber: "X1", DisplayName: "Teclado"}, h.operator.ID)
	assert.ErrorIs(t, err, domainerrors.ErrStockRoomMissing)

	cfg.Ledger.DefaultStockRoomID = 4242
	ledger = NewLedgerService(LedgerServiceParams{
		TxManager:      postgres.NewTransactionManager(h.db),
		UserRepo:       postgres.NewUserRepository(h.db),
		LocationRepo:   postgres.NewLocationRepository(h.db),
		EquipmentRepo:  h.equipmentRepo,
		CheckpointRepo: h.checkpointRepo,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})

	_, err = ledger.RegisterEquipment(ctx, &usecase.RegisterEquipmentInput{SerialNumber: "X1", DisplayName: "Teclado"}, h.operator.ID)
	assert.ErrorIs(t, err, domainerrors.ErrStockRoomMissing)
}

func TestLedgerService_CheckoutCheckinRoundTrip(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	equipment := h.register(t, "NB-001", "Notebook Lenovo")

	checkpoint, err := h.ledger.Checkout(ctx, "nb-001", h.room.ID, h.operator.ID)
	require.NoError(t, err)
	assert.True(t, checkpoint.StatusBefore.Is(entity.StatusInStock))
	assert.True(t, checkpoint.StatusAfter.Is(entity.StatusInTransit))
	require.NotNil(t, checkpoint.TargetRoomID)
	assert.Equal(t, h.room.ID, *checkpoint.TargetRoomID)

	inTransit := h.reload(t, equipment.ID)
	assert.True(t, inTransit.Status.Is(entity.StatusInTransit))
	require.NotNil(t, inTransit.CurrentRoomID)
	assert.Equal(t, h.stock.ID, *inTransit.CurrentRoomID, "location only changes on arrival")
	h.requireStatusMatchesLog(t, equipment.ID)

	checkpoint, err = h.ledger.Checkin(ctx, "NB-001", h.admin.ID)
	require.NoError(t, err)
	assert.True(t, checkpoint.StatusBefore.Is(entity.StatusInTransit))
	assert.True(t, checkpoint.StatusAfter.Equal(entity.InUseStatus(h.room.ID)))
	assert.Equal(t, h.admin.ID, checkpoint.ChangedBy)

	inUse := h.reload(t, equipment.ID)
	require.NotNil(t, inUse.CurrentRoomID)
	assert.Equal(t, h.room.ID, *inUse.CurrentRoomID)
	h.requireStatusMatchesLog(t, equipment.ID)

	details, err := h.ledger.GetEquipment(ctx, equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, "InUse(Sala 101 - TI)", details.StatusLabel)
	assert.Equal(t, "Sala 101 - TI (Sede Principal)", details.Location)
	require.Len(t, details.History, 3)
	assert.Equal(t, "InTransit", details.History[0].StatusBeforeLabel)
	assert.Equal(t, "InUse(Sala 101 - TI)", details.History[0].StatusAfterLabel)
	assert.Equal(t, "admin", details.History[0].Responsible)
	assert.Equal(t, "N/A", details.History[2].StatusBeforeLabel)
	assert.Equal(t, "Estoque TI Central (Sede Principal)", details.History[2].Location)
	assert.Equal(t, "tecnico", details.History[2].Responsible)

	assert.Len(t, h.publisher.published(), 3)
}

func TestLedgerService_CheckoutFromInUse(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	equipment := h.register(t, "NB-002", "Notebook HP")

	_, err := h.ledger.Checkout(ctx, "NB-002", h.room.ID, h.operator.ID)
	require.NoError(t, err)
	_, err = h.ledger.Checkin(ctx, "NB-002", h.operator.ID)
	require.NoError(t, err)

	checkpoint, err := h.ledger.Checkout(ctx, "NB-002", h.stock.ID, h.operator.ID)
	require.NoError(t, err)
	assert.True(t, checkpoint.StatusBefore.Equal(entity.InUseStatus(h.room.ID)))
	assert.True(t, checkpoint.StatusAfter.Is(entity.StatusInTransit))
	h.requireStatusMatchesLog(t, equipment.ID)
}

func TestLedgerService_TransitionErrors(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	inStock := h.register(t, "STK-1", "Impressora")
	inTransit := h.register(t, "TRN-1", "Projetor")
	_, err := h.ledger.Checkout(ctx, "TRN-1", h.room.ID, h.operator.ID)
	require.NoError(t, err)

	tests := []struct {
		name    string
		call    func() (*entity.Checkpoint, error)
		wantErr error
	}{
		{
			name:    "checkin from stock",
			call:    func() (*entity.Checkpoint, error) { return h.ledger.Checkin(ctx, "STK-1", h.operator.ID) },
			wantErr: domainerrors.ErrInvalidState,
		},
		{
			name:    "checkout while in transit",
			call:    func() (*entity.Checkpoint, error) { return h.ledger.Checkout(ctx, "TRN-1", h.stock.ID, h.operator.ID) },
			wantErr: domainerrors.ErrInvalidState,
		},
		{
			name:    "checkout to unknown room",
			call:    func() (*entity.Checkpoint, error) { return h.ledger.Checkout(ctx, "STK-1", 9999, h.operator.ID) },
			wantErr: domainerrors.ErrInvalidDestination,
		},
		{
			name:    "return when already in stock",
			call:    func() (*entity.Checkpoint, error) { return h.ledger.ReturnToStock(ctx, "STK-1", h.operator.ID) },
			wantErr: domainerrors.ErrInvalidState,
		},
		{
			name:    "unknown serial",
			call:    func() (*entity.Checkpoint, error) { return h.ledger.Checkin(ctx, "NOPE", h.operator.ID) },
			wantErr: domainerrors.ErrEquipmentNotFound,
		},
		{
			name:    "empty serial",
			call:    func() (*entity.Checkpoint, error) { return h.ledger.Checkout(ctx, " ", h.room.ID, h.operator.ID) },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "unknown actor",
			call:    func() (*entity.Checkpoint, error) { return h.ledger.Checkin(ctx, "TRN-1", 9999) },
			wantErr: domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkpoint, err := tt.call()

			assert.Nil(t, checkpoint)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, 1, h.checkpointCount(t, inStock.ID), "rejected transitions append nothing")
	assert.Equal(t, 2, h.checkpointCount(t, inTransit.ID))
	h.requireStatusMatchesLog(t, inStock.ID)
	h.requireStatusMatchesLog(t, inTransit.ID)
}

func TestLedgerService_ReturnToStock(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	equipment := h.register(t, "PRJ-9", "Projetor Epson")

	_, err := h.ledger.Checkout(ctx, "PRJ-9", h.room.ID, h.operator.ID)
	require.NoError(t, err)

	checkpoint, err := h.ledger.ReturnToStock(ctx, "PRJ-9", h.operator.ID)
	require.NoError(t, err)
	assert.True(t, checkpoint.StatusBefore.Is(entity.StatusInTransit))
	assert.True(t, checkpoint.StatusAfter.Is(entity.StatusInStock))
	require.NotNil(t, checkpoint.TargetRoomID)
	assert.Equal(t, h.stock.ID, *checkpoint.TargetRoomID)

	returned := h.reload(t, equipment.ID)
	require.NotNil(t, returned.CurrentRoomID)
	assert.Equal(t, h.stock.ID, *returned.CurrentRoomID)
	h.requireStatusMatchesLog(t, equipment.ID)

	want := "Equipment PRJ-9 (Projetor Epson) returned to stock."
	for _, admin := range []*entity.User{h.admin, h.otherAdmin} {
		feed, err := h.notifications.List(ctx, admin.ID)
		require.NoError(t, err)
		require.Len(t, feed.Notifications, 1)
		assert.Equal(t, want, feed.Notifications[0].Message)
		assert.False(t, feed.Notifications[0].Read)
		require.NotNil(t, feed.Notifications[0].EquipmentID)
		assert.Equal(t, equipment.ID, *feed.Notifications[0].EquipmentID)
		assert.Equal(t, int64(1), feed.UnreadCount)
	}

	operatorFeed, err := h.notifications.List(ctx, h.operator.ID)
	require.NoError(t, err)
	assert.Empty(t, operatorFeed.Notifications)

	_, err = h.ledger.ReturnToStock(ctx, "PRJ-9", h.operator.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)

	count, err := h.notifications.UnreadCount(ctx, h.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "rejected return sends no notification")
}

func TestLedgerService_CheckinAfterDestinationDeleted(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	equipment := h.register(t, "MON-7", "Monitor LG")

	_, err := h.ledger.Checkout(ctx, "MON-7", h.room.ID, h.operator.ID)
	require.NoError(t, err)

	require.NoError(t, h.locations.DeleteRoom(ctx, h.room.ID))

	_, err = h.ledger.Checkin(ctx, "MON-7", h.operator.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDestinationMissing)

	still := h.reload(t, equipment.ID)
	assert.True(t, still.Status.Is(entity.StatusInTransit))
	assert.Equal(t, 2, h.checkpointCount(t, equipment.ID))

	details, err := h.ledger.GetEquipment(ctx, equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, "N/A", details.History[0].Location)

	// The equipment can still be recovered by returning it to stock.
	_, err = h.ledger.ReturnToStock(ctx, "MON-7", h.operator.ID)
	require.NoError(t, err)
	h.requireStatusMatchesLog(t, equipment.ID)
}

func TestLedgerService_ConcurrentCheckout(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	equipment := h.register(t, "RACE-1", "Switch")

	const workers = 2
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = h.ledger.Checkout(ctx, "RACE-1", h.room.ID, h.operator.ID)
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
		rejected++
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 2, h.checkpointCount(t, equipment.ID))
	h.requireStatusMatchesLog(t, equipment.ID)
}

func TestLedgerService_PublishFailureKeepsTransition(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	h.publisher.err = errPublishUnavailable

	equipment := h.register(t, "PUB-1", "Roteador")
	_, err := h.ledger.Checkout(ctx, "PUB-1", h.room.ID, h.operator.ID)
	require.NoError(t, err)

	assert.Empty(t, h.publisher.published())
	assert.Equal(t, 2, h.checkpointCount(t, equipment.ID))
	h.requireStatusMatchesLog(t, equipment.ID)
}

func TestLedgerService_HistoryNewestFirst(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	equipment := h.register(t, "HIS-1", "Tablet")

	for i := 0; i < 3; i++ {
		_, err := h.ledger.Checkout(ctx, "HIS-1", h.room.ID, h.operator.ID)
		require.NoError(t, err, fmt.Sprintf("checkout %d", i))
		_, err = h.ledger.Checkin(ctx, "HIS-1", h.operator.ID)
		require.NoError(t, err, fmt.Sprintf("checkin %d", i))
	}

	history, err := h.ledger.History(ctx, equipment.ID)
	require.NoError(t, err)
	require.Len(t, history, 7)
	for i := 1; i < len(history); i++ {
		assert.True(t, history[i-1].Timestamp.After(history[i].Timestamp))
	}
	assert.True(t, history[len(history)-1].StatusBefore.Is(entity.StatusNotApplicable))

	_, err = h.ledger.History(ctx, 9999)
	assert.ErrorIs(t, err, domainerrors.ErrEquipmentNotFound)

	_, err = h.ledger.GetEquipment(ctx, 9999)
	assert.ErrorIs(t, err, domainerrors.ErrEquipmentNotFound)
}
