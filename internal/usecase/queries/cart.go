package queries

import (
	"workhive/internal/domain/cart"
	"workhive/internal/pkg/vnd"

	"github.com/google/uuid"
)

type CartQueries interface {
	Get(userID uuid.UUID) *CartView
}

// CartReader is the read side of the in-memory cart session store.
type CartReader interface {
	Get(userID uuid.UUID) cart.State
}

type cartQueriesImpl struct {
	store CartReader
}

func NewCartQueries(store CartReader) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) Get(userID uuid.UUID) *CartView {
	return FromCartState(q.store.Get(userID))
}

func FromCartState(s cart.State) *CartView {
	return &CartView{
		WorkspaceID:    s.WorkspaceID,
		Price:          s.Price,
		PriceType:      string(s.PriceType),
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		Category:       s.Category,
		Amenities:      toLineViews(s.AmenityList),
		Beverages:      toLineViews(s.BeverageList),
		Total:          s.Total,
		FormattedTotal: vnd.Format(s.Total),
	}
}

func toLineViews(items []cart.LineItem) []CartLineView {
	views := make([]CartLineView, len(items))
	for i, it := range items {
		views[i] = CartLineView{
			ID:       it.ID,
			Name:     it.Name,
			ImgURL:   it.ImgURL,
			Price:    it.Price,
			Quantity: it.Quantity,
		}
	}
	return views
}
