package response

import (
	"workhive/internal/pkg/vnd"
	"workhive/internal/usecase/commands"
	"workhive/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CartLineResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImgURL   string  `json:"imgUrl"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CartResponse struct {
	WorkspaceID    string             `json:"workspaceId"`
	Price          float64            `json:"price"`
	PriceType      string             `json:"priceType"`
	StartTime      string             `json:"startTime"`
	EndTime        string             `json:"endTime"`
	Category       string             `json:"category"`
	Amenities      []CartLineResponse `json:"amenities"`
	Beverages      []CartLineResponse `json:"beverages"`
	Total          float64            `json:"total"`
	FormattedTotal string             `json:"formattedTotal"`
}

type CheckoutResponse struct {
	BookingID      uuid.UUID `json:"bookingId"`
	Total          float64   `json:"total"`
	FormattedTotal string    `json:"formattedTotal"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	var resp CartResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		BookingID:      r.BookingID,
		Total:          r.Total,
		FormattedTotal: vnd.Format(r.Total),
	}
}
