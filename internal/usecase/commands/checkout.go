package commands

import (
	"context"
	"time"

	"workhive/internal/domain/availability"
	"workhive/internal/domain/cart"
	"workhive/internal/infra"
	"workhive/internal/pkg/clock"
	"workhive/internal/pkg/errs"
	"workhive/internal/pkg/vnd"

	"github.com/google/uuid"
)

type CheckoutResult struct {
	BookingID uuid.UUID
	Total     float64
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	store       CartStore
	bookingRepo BookingRepository
	clock       clock.Clock
}

func NewCheckoutCommands(store CartStore, bookingRepo BookingRepository, clock clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{
		store:       store,
		bookingRepo: bookingRepo,
		clock:       clock,
	}
}

// Checkout submits the composed order and wipes the cart session. The
// cart total is recomputed one last time before submission; a zero total
// never reaches the booking repository.
func (c *checkoutCommandsImpl) Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResult, error) {
	state := c.store.Update(userID, func(s cart.State) cart.State {
		return cart.Apply(s, cart.CalculateTotal{})
	})

	if state.WorkspaceID == "" {
		return nil, errs.ErrNoWorkspaceSet
	}
	if state.Total <= 0 {
		return nil, errs.ErrEmptyCart
	}

	workspaceID, err := uuid.Parse(state.WorkspaceID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrNoWorkspaceSet)
	}

	start, end, err := bookingDates(state)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeRange)
	}

	booking := NewBooking{
		WorkspaceID: workspaceID,
		UserID:      userID,
		StartDate:   start,
		EndDate:     end,
		Category:    state.Category,
		Total:       state.Total,
		Status:      availability.StatusHandling,
		Items:       bookingItems(state),
	}

	bookingID, err := c.bookingRepo.Create(ctx, booking)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrDateUnavailable
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.store.Clear(userID)

	return &CheckoutResult{BookingID: bookingID, Total: state.Total}, nil
}

func bookingDates(s cart.State) (start, end time.Time, err error) {
	if s.PriceType == cart.PriceTypeDaily {
		start, err = vnd.ParseLabelDate(s.StartTime)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err = vnd.ParseLabelDate(s.EndTime)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, end, nil
	}

	start, err = vnd.ParseHourDate(s.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = vnd.ParseHourDate(s.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func bookingItems(s cart.State) []BookingItem {
	items := make([]BookingItem, 0, len(s.AmenityList)+len(s.BeverageList))
	for _, it := range s.AmenityList {
		items = append(items, BookingItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Kind:     ItemKindAmenity,
		})
	}
	for _, it := range s.BeverageList {
		items = append(items, BookingItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Kind:     ItemKindBeverage,
		})
	}
	return items
}
