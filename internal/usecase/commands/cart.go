package commands

import (
	"context"
	"log/slog"

	"workhive/internal/domain/availability"
	"workhive/internal/domain/cart"
	"workhive/internal/infra"
	"workhive/internal/pkg/clock"
	"workhive/internal/pkg/errs"
	"workhive/internal/pkg/vnd"
	"workhive/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartCommands interface {
	SelectWorkspace(ctx context.Context, userID, workspaceID uuid.UUID, category string) (*queries.CartView, error)
	SetTime(ctx context.Context, userID uuid.UUID, startTime, endTime, category string) (*queries.CartView, error)
	ClearTime(userID uuid.UUID) *queries.CartView
	AddItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*queries.CartView, error)
	UpdateItemQuantity(userID uuid.UUID, itemID string, quantity int) (*queries.CartView, error)
	RemoveItem(userID uuid.UUID, itemID string) (*queries.CartView, error)
	ClearItems(userID uuid.UUID) *queries.CartView
}

type cartCommandsImpl struct {
	store         CartStore
	workspaceRepo WorkspaceRepository
	catalogRepo   CatalogRepository
	intervalRepo  IntervalRepository
	clock         clock.Clock
}

func NewCartCommands(
	store CartStore,
	workspaceRepo WorkspaceRepository,
	catalogRepo CatalogRepository,
	intervalRepo IntervalRepository,
	clock clock.Clock,
) CartCommands {
	return &cartCommandsImpl{
		store:         store,
		workspaceRepo: workspaceRepo,
		catalogRepo:   catalogRepo,
		intervalRepo:  intervalRepo,
		clock:         clock,
	}
}

func (c *cartCommandsImpl) SelectWorkspace(ctx context.Context, userID, workspaceID uuid.UUID, category string) (*queries.CartView, error) {
	ws, err := c.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrWorkspaceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	price, ok := ws.PriceFor(category)
	if !ok {
		return nil, errs.ErrPricingNotFound
	}

	priceType := cart.PriceTypeHourly
	if category == CategoryDay {
		priceType = cart.PriceTypeDaily
	}

	state := c.store.Update(userID, func(s cart.State) cart.State {
		s = cart.Apply(s, cart.SetWorkspace{
			WorkspaceID: ws.ID.String(),
			Price:       price,
			PriceType:   priceType,
		})
		return cart.Apply(s, cart.CalculateTotal{})
	})
	return queries.FromCartState(state), nil
}

func (c *cartCommandsImpl) SetTime(ctx context.Context, userID uuid.UUID, startTime, endTime, category string) (*queries.CartView, error) {
	current := c.store.Get(userID)
	if current.WorkspaceID == "" {
		return nil, errs.ErrNoWorkspaceSet
	}

	switch current.PriceType {
	case cart.PriceTypeDaily:
		if err := c.validateDailyRange(ctx, current.WorkspaceID, startTime, endTime); err != nil {
			return nil, err
		}
	default:
		if err := validateHourlyRange(startTime, endTime); err != nil {
			return nil, err
		}
	}

	state := c.store.Update(userID, func(s cart.State) cart.State {
		s = cart.Apply(s, cart.SetWorkspaceTime{
			StartTime: startTime,
			EndTime:   endTime,
			Category:  category,
		})
		return cart.Apply(s, cart.CalculateTotal{})
	})
	return queries.FromCartState(state), nil
}

func (c *cartCommandsImpl) ClearTime(userID uuid.UUID) *queries.CartView {
	state := c.store.Update(userID, func(s cart.State) cart.State {
		return cart.Apply(s, cart.ClearWorkspaceTime{})
	})
	return queries.FromCartState(state)
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*queries.CartView, error) {
	if quantity < 1 {
		return nil, errs.ErrInvalidQuantity
	}

	item, err := c.catalogRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCatalogItemGone
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	line := cart.LineItem{
		ID:       item.ID.String(),
		Name:     item.Name,
		ImgURL:   item.ImgURL,
		Price:    item.Price,
		Quantity: quantity,
	}

	state := c.store.Update(userID, func(s cart.State) cart.State {
		if item.Kind == ItemKindBeverage {
			s = cart.Apply(s, cart.AddBeverage{Item: line})
		} else {
			s = cart.Apply(s, cart.AddAmenity{Item: line})
		}
		return cart.Apply(s, cart.CalculateTotal{})
	})
	return queries.FromCartState(state), nil
}

// UpdateItemQuantity is the decrease/increase flow: a non-positive
// quantity removes the line instead of leaving a zero-quantity entry.
func (c *cartCommandsImpl) UpdateItemQuantity(userID uuid.UUID, itemID string, quantity int) (*queries.CartView, error) {
	current := c.store.Get(userID)

	_, isAmenity := current.FindAmenity(itemID)
	_, isBeverage := current.FindBeverage(itemID)
	if !isAmenity && !isBeverage {
		return nil, errs.ErrItemNotFound
	}

	state := c.store.Update(userID, func(s cart.State) cart.State {
		switch {
		case quantity < 1 && isAmenity:
			s = cart.Apply(s, cart.RemoveAmenity{ID: itemID})
		case quantity < 1:
			s = cart.Apply(s, cart.RemoveBeverage{ID: itemID})
		case isAmenity:
			s = cart.Apply(s, cart.UpdateAmenityQuantity{ID: itemID, Quantity: quantity})
		default:
			s = cart.Apply(s, cart.UpdateBeverageQuantity{ID: itemID, Quantity: quantity})
		}
		return cart.Apply(s, cart.CalculateTotal{})
	})
	return queries.FromCartState(state), nil
}

func (c *cartCommandsImpl) RemoveItem(userID uuid.UUID, itemID string) (*queries.CartView, error) {
	current := c.store.Get(userID)

	_, isAmenity := current.FindAmenity(itemID)
	_, isBeverage := current.FindBeverage(itemID)
	if !isAmenity && !isBeverage {
		return nil, errs.ErrItemNotFound
	}

	state := c.store.Update(userID, func(s cart.State) cart.State {
		if isAmenity {
			s = cart.Apply(s, cart.RemoveAmenity{ID: itemID})
		} else {
			s = cart.Apply(s, cart.RemoveBeverage{ID: itemID})
		}
		return cart.Apply(s, cart.CalculateTotal{})
	})
	return queries.FromCartState(state), nil
}

func (c *cartCommandsImpl) ClearItems(userID uuid.UUID) *queries.CartView {
	state := c.store.Update(userID, func(s cart.State) cart.State {
		return cart.Apply(s, cart.ClearItems{})
	})
	return queries.FromCartState(state)
}

func (c *cartCommandsImpl) validateDailyRange(ctx context.Context, workspaceID, startTime, endTime string) error {
	start, err := vnd.ParseLabelDate(startTime)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidTimeRange)
	}
	end, err := vnd.ParseLabelDate(endTime)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidTimeRange)
	}
	if end.Before(start) {
		return errs.ErrInvalidTimeRange
	}

	wsID, err := uuid.Parse(workspaceID)
	if err != nil {
		return errs.Mark(err, errs.ErrNoWorkspaceSet)
	}

	all, err := c.intervalRepo.ActiveIntervals(ctx, wsID)
	if err != nil {
		// Fail open: a missing reservation list blocks nothing here.
		// Checkout re-verifies against the database.
		slog.Warn("interval fetch failed, accepting range unchecked", "workspace_id", wsID, "error", err)
		return nil
	}

	relevant := availability.RelevantIntervals(all, c.clock.Now())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if availability.IsDateBlocked(d, relevant) {
			return errs.ErrDateUnavailable
		}
	}
	return nil
}

func validateHourlyRange(startTime, endTime string) error {
	start, err := vnd.ParseHourDate(startTime)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidTimeRange)
	}
	end, err := vnd.ParseHourDate(endTime)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidTimeRange)
	}
	if !end.After(start) {
		return errs.ErrInvalidTimeRange
	}
	return nil
}
