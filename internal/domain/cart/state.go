// Package cart implements the booking-in-progress aggregate as a pure
// reducer: a State record plus an Apply function over a closed set of
// actions. Callers own a State value and thread every mutation through
// Apply; the aggregate itself never reaches out to storage or the clock.
package cart

type PriceType string

const (
	// PriceTypeHourly bills price × elapsed hours between StartTime and
	// EndTime ("HH:mm DD/MM/YYYY" pair).
	PriceTypeHourly PriceType = "hourly"
	// PriceTypeDaily bills price × inclusive day count between the date
	// tokens of StartTime and EndTime ("<label> DD/MM/YYYY" pair).
	PriceTypeDaily PriceType = "daily"
)

// LineItem is one orderable amenity or beverage.
type LineItem struct {
	ID       string
	Name     string
	ImgURL   string
	Price    float64
	Quantity int
}

// State is the cart aggregate. Total is derived: it only changes through
// the CalculateTotal action and always equals
//
//	Price × duration + Σ amenity price×qty + Σ beverage price×qty
//
// with duration 0 while the time fields are unset.
type State struct {
	WorkspaceID  string
	Price        float64
	PriceType    PriceType
	StartTime    string
	EndTime      string
	Category     string
	AmenityList  []LineItem
	BeverageList []LineItem
	Total        float64
}

// NewState returns the initial, empty aggregate.
func NewState() State {
	return State{PriceType: PriceTypeHourly}
}

// FindAmenity reports the amenity line with the given id, if present.
func (s State) FindAmenity(id string) (LineItem, bool) {
	return findItem(s.AmenityList, id)
}

// FindBeverage reports the beverage line with the given id, if present.
func (s State) FindBeverage(id string) (LineItem, bool) {
	return findItem(s.BeverageList, id)
}

func findItem(items []LineItem, id string) (LineItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return LineItem{}, false
}
