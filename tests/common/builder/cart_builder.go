//go:build unit || e2e

package builder

import (
	"workhive/internal/domain/cart"
	reqdto "workhive/internal/handler/dto/request"
	"workhive/internal/pkg/vnd"
	"workhive/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartBuilder struct {
	WorkspaceID uuid.UUID
	Price       float64
	PriceType   cart.PriceType
	StartTime   string
	EndTime     string
	Category    string
	Amenities   []cart.LineItem
	Beverages   []cart.LineItem
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		WorkspaceID: uuid.New(),
		Price:       50000,
		PriceType:   cart.PriceTypeHourly,
		StartTime:   "09:00 01/06/2024",
		EndTime:     "13:00 01/06/2024",
		Category:    "Giờ",
		Amenities: []cart.LineItem{
			{ID: "amn-1", Name: "Máy chiếu", Price: 40000, Quantity: 1},
		},
		Beverages: []cart.LineItem{
			{ID: "bev-1", Name: "Cà phê sữa", Price: 10000, Quantity: 1},
		},
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

func (b *CartBuilder) BuildState() cart.State {
	s := cart.NewState()
	s = cart.Apply(s, cart.SetWorkspace{
		WorkspaceID: b.WorkspaceID.String(),
		Price:       b.Price,
		PriceType:   b.PriceType,
	})
	s = cart.Apply(s, cart.SetWorkspaceTime{
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Category:  b.Category,
	})
	for _, it := range b.Amenities {
		s = cart.Apply(s, cart.AddAmenity{Item: it})
	}
	for _, it := range b.Beverages {
		s = cart.Apply(s, cart.AddBeverage{Item: it})
	}
	return cart.Apply(s, cart.CalculateTotal{})
}

func (b *CartBuilder) BuildView() *queries.CartView {
	return queries.FromCartState(b.BuildState())
}

func (b *CartBuilder) BuildSelectWorkspaceDTO() reqdto.SelectWorkspaceRequest {
	return reqdto.SelectWorkspaceRequest{
		WorkspaceID: b.WorkspaceID,
		Category:    b.Category,
	}
}

func (b *CartBuilder) BuildSetTimeDTO() reqdto.SetTimeRequest {
	return reqdto.SetTimeRequest{
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Category:  b.Category,
	}
}

func (b *CartBuilder) BuildAddItemDTO(quantity int) reqdto.AddItemRequest {
	return reqdto.AddItemRequest{
		ItemID:   uuid.New(),
		Quantity: quantity,
	}
}

// FormattedTotal mirrors the display formatting applied to the view.
func (b *CartBuilder) FormattedTotal() string {
	return vnd.Format(b.BuildState().Total)
}
