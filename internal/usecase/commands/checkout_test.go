//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

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

type stubBookingRepo struct {
	created *commands.NewBooking
	id      uuid.UUID
	err     error
}

func (s *stubBookingRepo) Create(_ context.Context, booking commands.NewBooking) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	s.created = &booking
	return s.id, nil
}

func seedDailyCart(t *testing.T, store *memstore.CartStore, userID, wsID uuid.UUID) {
	t.Helper()
	store.Update(userID, func(s cart.State) cart.State {
		s = cart.Apply(s, cart.SetWorkspace{WorkspaceID: wsID.String(), Price: 300000, PriceType: cart.PriceTypeDaily})
		s = cart.Apply(s, cart.SetWorkspaceTime{StartTime: "01/06/2024", EndTime: "03/06/2024", Category: "Ngày"})
		s = cart.Apply(s, cart.AddBeverage{Item: cart.LineItem{ID: "bev-1", Name: "Cà phê sữa", Price: 10000, Quantity: 2}})
		return cart.Apply(s, cart.CalculateTotal{})
	})
}

func TestCheckoutCommands_Checkout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	wsID := uuid.New()
	mockClock := clock.NewMockClock(day("30/05/2024"))

	t.Run("submits the booking and clears the session", func(t *testing.T) {
		store := memstore.NewCartStore()
		seedDailyCart(t, store, userID, wsID)
		repo := &stubBookingRepo{id: uuid.New()}
		cmds := commands.NewCheckoutCommands(store, repo, mockClock)

		result, err := cmds.Checkout(ctx, userID)
		require.NoError(t, err)

		assert.Equal(t, repo.id, result.BookingID)
		assert.Equal(t, 920000.0, result.Total)

		require.NotNil(t, repo.created)
		assert.Equal(t, wsID, repo.created.WorkspaceID)
		assert.Equal(t, userID, repo.created.UserID)
		assert.Equal(t, availability.StatusHandling, repo.created.Status)
		assert.Equal(t, day("01/06/2024"), repo.created.StartDate)
		assert.Equal(t, day("03/06/2024"), repo.created.EndDate)
		require.Len(t, repo.created.Items, 1)
		assert.Equal(t, commands.ItemKindBeverage, repo.created.Items[0].Kind)

		assert.Empty(t, store.Get(userID).WorkspaceID)
	})

	t.Run("empty session has no workspace", func(t *testing.T) {
		store := memstore.NewCartStore()
		cmds := commands.NewCheckoutCommands(store, &stubBookingRepo{}, mockClock)

		_, err := cmds.Checkout(ctx, userID)
		assert.ErrorIs(t, err, errs.ErrNoWorkspaceSet)
	})

	t.Run("workspace without billable time or items is rejected", func(t *testing.T) {
		store := memstore.NewCartStore()
		store.Update(userID, func(s cart.State) cart.State {
			s = cart.Apply(s, cart.SetWorkspace{WorkspaceID: wsID.String(), Price: 50000, PriceType: cart.PriceTypeHourly})
			return cart.Apply(s, cart.CalculateTotal{})
		})
		cmds := commands.NewCheckoutCommands(store, &stubBookingRepo{}, mockClock)

		_, err := cmds.Checkout(ctx, userID)
		assert.ErrorIs(t, err, errs.ErrEmptyCart)
	})

	t.Run("repository conflict maps to date unavailable", func(t *testing.T) {
		store := memstore.NewCartStore()
		seedDailyCart(t, store, userID, wsID)
		conflict := infra.WrapRepoErr("window taken", errors.New("exclusion violation"), infra.KindConflict)
		cmds := commands.NewCheckoutCommands(store, &stubBookingRepo{err: conflict}, mockClock)

		_, err := cmds.Checkout(ctx, userID)
		assert.ErrorIs(t, err, errs.ErrDateUnavailable)

		// A failed checkout keeps the session for a retry.
		assert.NotEmpty(t, store.Get(userID).WorkspaceID)
	})

	t.Run("repository failure maps to database error", func(t *testing.T) {
		store := memstore.NewCartStore()
		seedDailyCart(t, store, userID, wsID)
		dbErr := infra.WrapRepoErr("insert failed", errors.New("connection reset"))
		cmds := commands.NewCheckoutCommands(store, &stubBookingRepo{err: dbErr}, mockClock)

		_, err := cmds.Checkout(ctx, userID)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
