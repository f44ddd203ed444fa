package commands

import (
	"context"
	"time"

	"workhive/internal/domain/availability"
	"workhive/internal/domain/cart"

	"github.com/google/uuid"
)

// Pricing categories as the catalog stores them.
const (
	CategoryHour = "Giờ"
	CategoryDay  = "Ngày"
)

type ItemKind string

const (
	ItemKindAmenity  ItemKind = "amenity"
	ItemKindBeverage ItemKind = "beverage"
)

// Write-side snapshots prevent dependency on read-side query types
type WorkspaceSnapshot struct {
	ID        uuid.UUID
	Name      string
	OpenTime  string
	CloseTime string
	Pricing   []PricingEntry
}

type PricingEntry struct {
	Category string
	Price    float64
}

// PriceFor resolves a pricing entry by catalog category.
func (w *WorkspaceSnapshot) PriceFor(category string) (float64, bool) {
	for _, p := range w.Pricing {
		if p.Category == category {
			return p.Price, true
		}
	}
	return 0, false
}

type CatalogItemSnapshot struct {
	ID     uuid.UUID
	Name   string
	ImgURL string
	Price  float64
	Kind   ItemKind
}

// NewBooking is the composed order submitted at checkout.
type NewBooking struct {
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Category    string
	Total       float64
	Status      availability.Status
	Items       []BookingItem
}

type BookingItem struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
	Kind     ItemKind
}

// CartStore owns the per-user in-memory cart sessions. Update applies
// fn under the store's lock so actions land in dispatch order.
type CartStore interface {
	Get(userID uuid.UUID) cart.State
	Update(userID uuid.UUID, fn func(cart.State) cart.State) cart.State
	Clear(userID uuid.UUID)
}

type WorkspaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WorkspaceSnapshot, error)
}

type CatalogRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CatalogItemSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking NewBooking) (uuid.UUID, error)
}

// IntervalRepository reads existing reservations for overlap checks.
type IntervalRepository interface {
	ActiveIntervals(ctx context.Context, workspaceID uuid.UUID) ([]availability.ReservedInterval, error)
}
