package response

import (
	"time"

	"workhive/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type WorkspaceResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Address   string            `json:"address"`
	OpenTime  string            `json:"openTime"`
	CloseTime string            `json:"closeTime"`
	Pricing   []PricingResponse `json:"pricing"`
	CreatedAt time.Time         `json:"createdAt"`
}

type PricingResponse struct {
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type CatalogItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ImgURL      string    `json:"imgUrl"`
	Price       float64   `json:"price"`
	Kind        string    `json:"kind"`
	Description *string   `json:"description,omitempty"`
}

type BlockedDatesResponse struct {
	WorkspaceID uuid.UUID `json:"workspaceId"`
	Dates       []string  `json:"dates"`
}

func FromWorkspaceView(v *queries.WorkspaceView) *WorkspaceResponse {
	var resp WorkspaceResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCatalogViews(items []*queries.CatalogItemView) []*CatalogItemResponse {
	resp := make([]*CatalogItemResponse, len(items))
	for i, item := range items {
		var r CatalogItemResponse
		_ = copier.Copy(&r, item)
		resp[i] = &r
	}
	return resp
}

func FromBlockedDatesView(v *queries.BlockedDatesView) *BlockedDatesResponse {
	return &BlockedDatesResponse{WorkspaceID: v.WorkspaceID, Dates: v.Dates}
}
