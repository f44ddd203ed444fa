package cart

import (
	"math"

	"workhive/internal/pkg/vnd"
)

const hoursPerDay = 24

// Apply is the aggregate's single entry point. It is pure and total: the
// input state is never mutated, no action errors or panics, and an
// unknown action returns the state unchanged.
func Apply(s State, a Action) State {
	switch act := a.(type) {
	case SetWorkspace:
		s.WorkspaceID = act.WorkspaceID
		s.Price = act.Price
		s.PriceType = act.PriceType
		return s

	case SetWorkspaceTime:
		s.StartTime = act.StartTime
		s.EndTime = act.EndTime
		s.Category = act.Category
		return s

	case ClearWorkspaceTime:
		s.StartTime = ""
		s.EndTime = ""
		s.Category = ""
		s.Total = 0
		return s

	case AddAmenity:
		s.AmenityList = addItem(s.AmenityList, act.Item)
		return s

	case AddBeverage:
		s.BeverageList = addItem(s.BeverageList, act.Item)
		return s

	case RemoveAmenity:
		s.AmenityList = removeItem(s.AmenityList, act.ID)
		return s

	case RemoveBeverage:
		s.BeverageList = removeItem(s.BeverageList, act.ID)
		return s

	case UpdateAmenityQuantity:
		s.AmenityList = setQuantity(s.AmenityList, act.ID, act.Quantity)
		return s

	case UpdateBeverageQuantity:
		s.BeverageList = setQuantity(s.BeverageList, act.ID, act.Quantity)
		return s

	case ClearItems:
		s.AmenityList = nil
		s.BeverageList = nil
		s.Total = 0
		return s

	case ClearCart:
		return NewState()

	case CalculateTotal:
		return calculateTotal(s)

	default:
		return s
	}
}

func calculateTotal(s State) State {
	addOns := linesTotal(s.AmenityList) + linesTotal(s.BeverageList)

	duration, ok := billableDuration(s)
	if !ok {
		// Unset or unparseable dates keep the previous total.
		return s
	}

	s.Total = s.Price*duration + addOns
	return s
}

// billableDuration returns the duration factor for the pricing mode, or
// ok=false when the transition must be skipped. Negative spans (end
// before start) clamp to zero rather than producing a negative charge.
func billableDuration(s State) (duration float64, ok bool) {
	switch s.PriceType {
	case PriceTypeDaily:
		if s.StartTime == "" || s.EndTime == "" {
			return 0, false
		}
		start, err := vnd.ParseLabelDate(s.StartTime)
		if err != nil {
			return 0, false
		}
		end, err := vnd.ParseLabelDate(s.EndTime)
		if err != nil {
			return 0, false
		}
		// Inclusive day count: 01/06..03/06 bills three days.
		days := math.Ceil(end.Sub(start).Hours()/hoursPerDay) + 1
		if days < 0 {
			days = 0
		}
		return days, true

	default:
		if s.StartTime == "" || s.EndTime == "" {
			return 0, true
		}
		start, err := vnd.ParseHourDate(s.StartTime)
		if err != nil {
			return 0, false
		}
		end, err := vnd.ParseHourDate(s.EndTime)
		if err != nil {
			return 0, false
		}
		hours := end.Sub(start).Hours()
		if hours < 0 {
			hours = 0
		}
		return hours, true
	}
}

func linesTotal(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func addItem(items []LineItem, incoming LineItem) []LineItem {
	next := make([]LineItem, len(items))
	copy(next, items)

	for i, it := range next {
		if it.ID == incoming.ID {
			next[i].Quantity += incoming.Quantity
			return next
		}
	}
	return append(next, incoming)
}

func removeItem(items []LineItem, id string) []LineItem {
	next := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	if len(next) == 0 {
		return nil
	}
	return next
}

func setQuantity(items []LineItem, id string, quantity int) []LineItem {
	next := make([]LineItem, len(items))
	copy(next, items)

	for i, it := range next {
		if it.ID == id {
			next[i].Quantity = quantity
			break
		}
	}
	return next
}
