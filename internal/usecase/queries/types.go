package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type WorkspaceView struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Address   string        `json:"address"`
	OpenTime  string        `json:"open_time"`
	CloseTime string        `json:"close_time"`
	Pricing   []PricingView `json:"pricing"`
	CreatedAt time.Time     `json:"created_at"`
}

type PricingView struct {
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type CatalogItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ImgURL      string    `json:"img_url"`
	Price       float64   `json:"price"`
	Kind        string    `json:"kind"`
	Description *string   `json:"description,omitempty"`
}

type CartLineView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImgURL   string  `json:"img_url"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CartView struct {
	WorkspaceID    string         `json:"workspace_id"`
	Price          float64        `json:"price"`
	PriceType      string         `json:"price_type"`
	StartTime      string         `json:"start_time"`
	EndTime        string         `json:"end_time"`
	Category       string         `json:"category"`
	Amenities      []CartLineView `json:"amenities"`
	Beverages      []CartLineView `json:"beverages"`
	Total          float64        `json:"total"`
	FormattedTotal string         `json:"formatted_total"`
}

type BlockedDatesView struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Dates       []string  `json:"dates"`
}
