package cart

import (
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/money"
)

// Unit is a primary activity line plus the add-on lines recognised as belonging to it.
type Unit struct {
	Primary LineItem
	AddOns  []LineItem
}

func (u Unit) LineTotal() float64 {
	total := u.Primary.Amount()
	for _, a := range u.AddOns {
		total += a.Amount()
	}
	return money.Round(total)
}

func (u Unit) Tokens() []string {
	tokens := make([]string, 0, 1+len(u.AddOns))
	tokens = append(tokens, u.Primary.Token)
	for _, a := range u.AddOns {
		tokens = append(tokens, a.Token)
	}
	return tokens
}

// RemovalAlter zeroes every line of the unit; it must be sent as a single alter request.
func (u Unit) RemovalAlter() map[string]int {
	alter := make(map[string]int, 1+len(u.AddOns))
	for _, t := range u.Tokens() {
		alter[t] = 0
	}
	return alter
}

type Reconciliation struct {
	Units []Unit
	// Unassigned are priced lines that are neither a primary nor matched to one.
	Unassigned []LineItem
	// Stale are zero-total lines the API leaves behind after removals.
	Stale []LineItem
}

func (r Reconciliation) UnitCount() int {
	return len(r.Units)
}

func (r Reconciliation) UnitsTotal() float64 {
	var total float64
	for _, u := range r.Units {
		total += u.LineTotal()
	}
	return money.Round(total)
}

// Find returns the unit whose primary carries token.
func (r Reconciliation) Find(primaryToken string) (Unit, bool) {
	for _, u := range r.Units {
		if u.Primary.Token == primaryToken {
			return u, true
		}
	}
	return Unit{}, false
}

// Reconcile groups a snapshot's lines into bookable units. It is a pure
// function of its inputs: lines are visited in snapshot order, each add-on is
// assigned to the first primary it matches and never to a second one, and a
// primary takes at most one line of each add-on item.
func Reconcile(snap Snapshot, cat *catalog.Catalog) Reconciliation {
	var (
		rec       Reconciliation
		primaries []LineItem
		pool      []LineItem
	)

	for _, item := range snap.Items {
		if item.Amount() <= 0 {
			rec.Stale = append(rec.Stale, item)
			continue
		}
		if cat.IsPrimary(item.ItemID) {
			primaries = append(primaries, item)
			continue
		}
		pool = append(pool, item)
	}

	taken := make([]bool, len(pool))
	for _, p := range primaries {
		unit := Unit{Primary: p}
		seen := make(map[catalog.ItemID]bool)
		for i, candidate := range pool {
			if taken[i] || seen[candidate.ItemID] {
				continue
			}
			if !cat.IsAddOnOf(p.ItemID, candidate.ItemID) || !candidate.SameDates(p) {
				continue
			}
			taken[i] = true
			seen[candidate.ItemID] = true
			unit.AddOns = append(unit.AddOns, candidate)
		}
		rec.Units = append(rec.Units, unit)
	}

	for i, item := range pool {
		if !taken[i] {
			rec.Unassigned = append(rec.Unassigned, item)
		}
	}
	return rec
}
