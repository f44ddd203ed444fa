//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workhive/internal/domain/availability"
	"workhive/internal/domain/cart"
	"workhive/internal/infra"
	"workhive/internal/infra/memstore"
	"workhive/internal/pkg/clock"
	"workhive/internal/pkg/errs"
	"workhive/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorkspaceRepo struct {
	snap *commands.WorkspaceSnapshot
	err  error
}

func (s *stubWorkspaceRepo) FindByID(_ context.Context, _ uuid.UUID) (*commands.WorkspaceSnapshot, error) {
	return s.snap, s.err
}

type stubCatalogRepo struct {
	snap *commands.CatalogItemSnapshot
	err  error
}

func (s *stubCatalogRepo) FindByID(_ context.Context, _ uuid.UUID) (*commands.CatalogItemSnapshot, error) {
	return s.snap, s.err
}

type stubIntervalRepo struct {
	intervals []availability.ReservedInterval
	err       error
}

func (s *stubIntervalRepo) ActiveIntervals(_ context.Context, _ uuid.UUID) ([]availability.ReservedInterval, error) {
	return s.intervals, s.err
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", errors.New("no rows in result set"), infra.KindNotFound)
}

func newWorkspaceSnap(id uuid.UUID) *commands.WorkspaceSnapshot {
	return &commands.WorkspaceSnapshot{
		ID:        id,
		Name:      "WorkHive Quận 1",
		OpenTime:  "08:00",
		CloseTime: "22:00",
		Pricing: []commands.PricingEntry{
			{Category: commands.CategoryHour, Price: 50000},
			{Category: commands.CategoryDay, Price: 300000},
		},
	}
}

func day(s string) time.Time {
	t, _ := time.Parse("02/01/2006", s)
	return t
}

func TestCartCommands_SelectWorkspace(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	wsID := uuid.New()
	mockClock := clock.NewMockClock(day("30/05/2024"))

	t.Run("daily category sets daily pricing mode", func(t *testing.T) {
		store := memstore.NewCartStore()
		cmds := commands.NewCartCommands(store, &stubWorkspaceRepo{snap: newWorkspaceSnap(wsID)}, &stubCatalogRepo{}, &stubIntervalRepo{}, mockClock)

		view, err := cmds.SelectWorkspace(ctx, userID, wsID, commands.CategoryDay)
		require.NoError(t, err)

		assert.Equal(t, wsID.String(), view.WorkspaceID)
		assert.Equal(t, string(cart.PriceTypeDaily), view.PriceType)
		assert.Equal(t, 300000.0, view.Price)
	})

	t.Run("hourly category sets hourly pricing mode", func(t *testing.T) {
		store := memstore.NewCartStore()
		cmds := commands.NewCartCommands(store, &stubWorkspaceRepo{snap: newWorkspaceSnap(wsID)}, &stubCatalogRepo{}, &stubIntervalRepo{}, mockClock)

		view, err := cmds.SelectWorkspace(ctx, userID, wsID, commands.CategoryHour)
		require.NoError(t, err)

		assert.Equal(t, string(cart.PriceTypeHourly), view.PriceType)
		assert.Equal(t, 50000.0, view.Price)
	})

	t.Run("unknown workspace", func(t *testing.T) {
		store := memstore.NewCartStore()
		cmds := commands.NewCartCommands(store, &stubWorkspaceRepo{err: notFoundErr()}, &stubCatalogRepo{}, &stubIntervalRepo{}, mockClock)

		_, err := cmds.SelectWorkspace(ctx, userID, wsID, commands.CategoryHour)
		assert.ErrorIs(t, err, errs.ErrWorkspaceNotFound)
	})

	t.Run("category without pricing", func(t *testing.T) {
		snap := newWorkspaceSnap(wsID)
		snap.Pricing = snap.Pricing[:1]
		store := memstore.NewCartStore()
		cmds := commands.NewCartCommands(store, &stubWorkspaceRepo{snap: snap}, &stubCatalogRepo{}, &stubIntervalRepo{}, mockClock)

		_, err := cmds.SelectWorkspace(ctx, userID, wsID, commands.CategoryDay)
		assert.ErrorIs(t, err, errs.ErrPricingNotFound)
	})
}

func TestCartCommands_SetTime(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	wsID := uuid.New()
	mockClock := clock.NewMockClock(day("30/05/2024"))

	selectDaily := func(t *testing.T, cmds commands.CartCommands) {
		t.Helper()
		_, err := cmds.SelectWorkspace(ctx, userID, wsID, commands.CategoryDay)
		require.NoError(t, err)
	}

	t.Run("requires a workspace first", func(t *testing.T) {
		store := memstore.NewCartStore()
		cmds := commands.NewCartCommands(store, &stubWorkspaceRepo{snap: newWorkspaceSnap(wsID)}, &stubCatalogRepo{}, &stubIntervalRepo{}, mockClock)

		_, err := cmds.SetTime(ctx, userID, "09:00 01/06/2024", "13:00 01/06/2024", "Giờ")
		assert.ErrorIs(t, err, errs.ErrNoWorkspaceSet)
	})

	t.Run("hourly range totals price times hours plus items", func(t *testing.T) {
		store := memstore.NewCartStore()
		cmds := commands.NewCartCommands(store, &stubWorkspaceRepo{snap: newWorkspaceSnap(wsID)}, &stubCatalogRepo{}, &stubIntervalRepo{}, mockClock)
		_, err := cmds.SelectWorkspace(ctx, userID, wsID, commands.CategoryHour)
		require.NoError(t, err)

		view, err := cmds.SetTime(ctx, userID, "09:00 01/06/2024", "13:00 01/06/2024", "Giờ")
		require.NoError(t, err)

		assert.Equal(t, 200000.0, view.Total)
		assert.Equal(t, "200.000 ₫", view.FormattedTotal)
	})

	t.Run("hourly end before start is rejected", func(t *testing.T) {
		store := memstore.NewCartStore()
		cmds := commands.NewCartCommands(store, &stubWorkspaceRepo{snap: newWorkspaceSnap(wsID)}, &stubCatalogRepo{}, &stubIntervalRepo{}, mockClock)
		_, err := cmds.SelectWorkspace(ctx, userID, wsID, commands.CategoryHour)
		require.NoError(t, err)

		_, err = cmds.SetTime(ctx, userID, "13:00 01/06/2024", "09:00 01/06/2024", "Giờ")
		assert.ErrorIs(t, err, errs.ErrInvalidTimeRange)
	})

	t.Run("daily inclusive range totals price times days", func(t *testing.T) {
		store := memstore.NewCartStore()
		cmds := commands.NewCartCommands(store, &stubWorkspaceRepo{snap: newWorkspaceSnap(wsID)}, &stubCatalogRepo{}, &stubIntervalRepo{}, mockClock)
		selectDaily(t, cmds)

		view, err := cmds.SetTime(ctx, userID, "Mở cửa 01/06/2024", "Mở cửa 03/06/2024", "Ngày")
		require.NoError(t, err)

		assert.Equal(t, 900000.0, view.Total)
	})

	t.Run("daily range overlapping a reservation is rejected", func(t *testing.T) {
		intervals := []availability.ReservedInterval{
			{StartDate: day("02/06/2024"), EndDate: day("03/06/2024"), Status: availability.StatusHandling},
		}
		store := memstore.NewCartStore()
		cmds := commands.NewCartCommands(store, &stubWorkspaceRepo{snap: newWorkspaceSnap(wsID)}, &stubCatalogRepo{}, &stubIntervalRepo{intervals: intervals}, mockClock)
		selectDaily(t, cmds)

		_, err := cmds.SetTime(ctx, userID, "01/06/2024", "03/06/2024", "Ngày")
		assert.ErrorIs(t, err, errs.ErrDateUnavailable)
	})

	t.Run("interval fetch failure fails open", func(t *testing.T) {
		store := memstore.NewCartStore()
		cmds := commands.NewCartCommands(store, &stubWorkspaceRepo{snap: newWorkspaceSnap(wsID)}, &stubCatalogRepo{}, &stubIntervalRepo{err: errors.New("connection refused")}, mockClock)
		selectDaily(t, cmds)

		view, err := cmds.SetTime(ctx, userID, "01/06/2024", "03/06/2024", "Ngày")
		require.NoError(t, err)
		assert.Equal(t, 900000.0, view.Total)
	})

	t.Run("daily malformed date is rejected", func(t *testing.T) {
		store := memstore.NewCartStore()
		cmds := commands.NewCartCommands(store, &stubWorkspaceRepo{snap: newWorkspaceSnap(wsID)}, &stubCatalogRepo{}, &stubIntervalRepo{}, mockClock)
		selectDaily(t, cmds)

		_, err := cmds.SetTime(ctx, userID, "June 1st", "03/06/2024", "Ngày")
		assert.ErrorIs(t, err, errs.ErrInvalidTimeRange)
	})
}

func TestCartCommands_Items(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	wsID := uuid.New()
	itemID := uuid.New()
	mockClock := clock.NewMockClock(day("30/05/2024"))

	amenity := &commands.CatalogItemSnapshot{
		ID:    itemID,
		Name:  "Máy chiếu",
		Price: 40000,
		Kind:  commands.ItemKindAmenity,
	}

	newCmds := func(catalog *stubCatalogRepo) (commands.CartCommands, *memstore.CartStore) {
		store := memstore.NewCartStore()
		return commands.NewCartCommands(store, &stubWorkspaceRepo{snap: newWorkspaceSnap(wsID)}, catalog, &stubIntervalRepo{}, mockClock), store
	}

	t.Run("add amenity lands in the amenity list", func(t *testing.T) {
		cmds, _ := newCmds(&stubCatalogRepo{snap: amenity})

		view, err := cmds.AddItem(ctx, userID, itemID, 2)
		require.NoError(t, err)

		require.Len(t, view.Amenities, 1)
		assert.Equal(t, 2, view.Amenities[0].Quantity)
		assert.Equal(t, 80000.0, view.Total)
	})

	t.Run("add beverage lands in the beverage list", func(t *testing.T) {
		beverage := &commands.CatalogItemSnapshot{ID: itemID, Name: "Cà phê sữa", Price: 10000, Kind: commands.ItemKindBeverage}
		cmds, _ := newCmds(&stubCatalogRepo{snap: beverage})

		view, err := cmds.AddItem(ctx, userID, itemID, 1)
		require.NoError(t, err)

		require.Len(t, view.Beverages, 1)
		assert.Empty(t, view.Amenities)
	})

	t.Run("zero quantity is rejected before the catalog lookup", func(t *testing.T) {
		cmds, _ := newCmds(&stubCatalogRepo{err: errors.New("must not be called")})

		_, err := cmds.AddItem(ctx, userID, itemID, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("vanished catalog item", func(t *testing.T) {
		cmds, _ := newCmds(&stubCatalogRepo{err: notFoundErr()})

		_, err := cmds.AddItem(ctx, userID, itemID, 1)
		assert.ErrorIs(t, err, errs.ErrCatalogItemGone)
	})

	t.Run("decrementing to zero removes the line", func(t *testing.T) {
		cmds, _ := newCmds(&stubCatalogRepo{snap: amenity})
		_, err := cmds.AddItem(ctx, userID, itemID, 1)
		require.NoError(t, err)

		view, err := cmds.UpdateItemQuantity(userID, itemID.String(), 0)
		require.NoError(t, err)

		assert.Empty(t, view.Amenities)
		assert.Zero(t, view.Total)
	})

	t.Run("updating an absent item", func(t *testing.T) {
		cmds, _ := newCmds(&stubCatalogRepo{snap: amenity})

		_, err := cmds.UpdateItemQuantity(userID, "ghost", 3)
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("removing an absent item", func(t *testing.T) {
		cmds, _ := newCmds(&stubCatalogRepo{snap: amenity})

		_, err := cmds.RemoveItem(userID, "ghost")
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("clear items empties both lists and zeroes the total", func(t *testing.T) {
		cmds, _ := newCmds(&stubCatalogRepo{snap: amenity})
		_, err := cmds.AddItem(ctx, userID, itemID, 2)
		require.NoError(t, err)

		view := cmds.ClearItems(userID)

		assert.Empty(t, view.Amenities)
		assert.Empty(t, view.Beverages)
		assert.Zero(t, view.Total)
	})
}
