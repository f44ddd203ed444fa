package errs

import "errors"

// Sentinel errors shared by the booking usecase layers
var (
	// Workspace errors
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrPricingNotFound   = errors.New("pricing entry not found")

	// Cart errors
	ErrItemNotFound     = errors.New("item not found in cart")
	ErrCatalogItemGone  = errors.New("catalog item not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrEmptyCart        = errors.New("cart has no billable total")
	ErrNoWorkspaceSet   = errors.New("no workspace selected")
	ErrInvalidTimeRange = errors.New("invalid time range")

	// Availability errors
	ErrDateUnavailable = errors.New("selected dates overlap an existing booking")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
