//go:build unit

package memstore_test

import (
	"sync"
	"testing"

	"workhive/internal/domain/cart"
	"workhive/internal/infra/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStore(t *testing.T) {
	t.Run("unknown user gets a fresh cart", func(t *testing.T) {
		store := memstore.NewCartStore()
		got := store.Get(uuid.New())
		assert.Empty(t, got.WorkspaceID)
		assert.Zero(t, got.Total)
	})

	t.Run("update persists and returns the new state", func(t *testing.T) {
		store := memstore.NewCartStore()
		userID := uuid.New()

		next := store.Update(userID, func(s cart.State) cart.State {
			return cart.Apply(s, cart.AddAmenity{Item: cart.LineItem{ID: "amn-1", Price: 10000, Quantity: 1}})
		})
		require.Len(t, next.AmenityList, 1)

		assert.Len(t, store.Get(userID).AmenityList, 1)
	})

	t.Run("sessions are isolated per user", func(t *testing.T) {
		store := memstore.NewCartStore()
		alice, bob := uuid.New(), uuid.New()

		store.Update(alice, func(s cart.State) cart.State {
			return cart.Apply(s, cart.AddBeverage{Item: cart.LineItem{ID: "bev-1", Price: 20000, Quantity: 1}})
		})

		assert.Empty(t, store.Get(bob).BeverageList)
	})

	t.Run("clear wipes the session", func(t *testing.T) {
		store := memstore.NewCartStore()
		userID := uuid.New()

		store.Update(userID, func(s cart.State) cart.State {
			return cart.Apply(s, cart.SetWorkspace{WorkspaceID: "ws-1", Price: 50000, PriceType: cart.PriceTypeHourly})
		})
		store.Clear(userID)

		assert.Empty(t, store.Get(userID).WorkspaceID)
	})

	t.Run("concurrent updates are applied in full", func(t *testing.T) {
		store := memstore.NewCartStore()
		userID := uuid.New()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Update(userID, func(s cart.State) cart.State {
					return cart.Apply(s, cart.AddAmenity{Item: cart.LineItem{ID: "amn-1", Price: 10000, Quantity: 1}})
				})
			}()
		}
		wg.Wait()

		got := store.Get(userID)
		require.Len(t, got.AmenityList, 1)
		assert.Equal(t, 50, got.AmenityList[0].Quantity)
	})
}
