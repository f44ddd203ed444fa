package cart

// Action is the closed command set understood by Apply. The marker
// method keeps dispatch exhaustive at the type level instead of relying
// on string tags.
type Action interface {
	isAction()
}

// SetWorkspace records the booking target and its pricing mode.
type SetWorkspace struct {
	WorkspaceID string
	Price       float64
	PriceType   PriceType
}

// SetWorkspaceTime records the selected range. It does not recompute the
// total by itself; dispatch CalculateTotal afterwards.
type SetWorkspaceTime struct {
	StartTime string
	EndTime   string
	Category  string
}

// ClearWorkspaceTime resets the time fields and zeroes the total while
// keeping line items.
type ClearWorkspaceTime struct{}

// AddAmenity appends the item, or merges quantities when an amenity with
// the same id is already present.
type AddAmenity struct {
	Item LineItem
}

// AddBeverage appends the item, or merges quantities when a beverage
// with the same id is already present.
type AddBeverage struct {
	Item LineItem
}

// RemoveAmenity drops the amenity with the given id; no-op when absent.
type RemoveAmenity struct {
	ID string
}

// RemoveBeverage drops the beverage with the given id; no-op when absent.
type RemoveBeverage struct {
	ID string
}

// UpdateAmenityQuantity sets the quantity directly. Callers are
// responsible for routing quantity 0 through RemoveAmenity instead.
type UpdateAmenityQuantity struct {
	ID       string
	Quantity int
}

// UpdateBeverageQuantity sets the quantity directly. Callers are
// responsible for routing quantity 0 through RemoveBeverage instead.
type UpdateBeverageQuantity struct {
	ID       string
	Quantity int
}

// ClearItems empties both line-item lists and zeroes the total. The time
// fields survive; the zeroed total is the documented behavior of the
// booking flow even though the base workspace charge is still owed until
// the next CalculateTotal.
type ClearItems struct{}

// ClearCart resets the aggregate to its initial state.
type ClearCart struct{}

// CalculateTotal recomputes Total from the pricing mode, the time fields
// and the line items. In daily mode with unset or unparseable dates the
// transition is a no-op and the previous total is retained.
type CalculateTotal struct{}

func (SetWorkspace) isAction()           {}
func (SetWorkspaceTime) isAction()       {}
func (ClearWorkspaceTime) isAction()     {}
func (AddAmenity) isAction()             {}
func (AddBeverage) isAction()            {}
func (RemoveAmenity) isAction()          {}
func (RemoveBeverage) isAction()         {}
func (UpdateAmenityQuantity) isAction()  {}
func (UpdateBeverageQuantity) isAction() {}
func (ClearItems) isAction()             {}
func (ClearCart) isAction()              {}
func (CalculateTotal) isAction()         {}
