package request

import (
	"github.com/google/uuid"
)

type SelectWorkspaceRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id" binding:"required"`
	Category    string    `json:"category" binding:"required"`
}

// SetTimeRequest carries display-formatted times: "HH:MM DD/MM/YYYY" for
// hourly carts, a label ending in "DD/MM/YYYY" for daily carts.
type SetTimeRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Category  string `json:"category"`
}

// Quantity is validated in the usecase so a non-positive value gets a
// domain error rather than a generic binding failure.
type AddItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
