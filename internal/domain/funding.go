package domain

import "math"

// ItemFunding joins an item with its pledges and the derived funding figures.
// Derived values are computed on read and never stored.
type ItemFunding struct {
	Item           Item          `json:"item"`
	Sponsorships   []Sponsorship `json:"sponsorships"`
	TotalSponsored float64       `json:"total_sponsored"`
	Remaining      float64       `json:"remaining"`
	PercentFunded  float64       `json:"percent_funded"`
	FullySponsored bool          `json:"fully_sponsored"`
}

// TotalSponsored sums the pledges referencing the given item.
func TotalSponsored(item Item, sponsorships []Sponsorship) float64 {
	var total float64
	for _, s := range sponsorships {
		if s.ItemID == item.ID {
			total += s.Amount
		}
	}

	return total
}

// Remaining is the item price minus total pledges, floored at zero.
func Remaining(item Item, sponsorships []Sponsorship) float64 {
	return math.Max(0, item.Price-TotalSponsored(item, sponsorships))
}

// PercentFunded can exceed 100 when an admin edit pushes pledges past the
// price; FullySponsored keys off it.
func PercentFunded(item Item, sponsorships []Sponsorship) float64 {
	if item.Price <= 0 {
		return 0
	}

	return TotalSponsored(item, sponsorships) / item.Price * 100
}

func FullySponsored(item Item, sponsorships []Sponsorship) bool {
	return PercentFunded(item, sponsorships) >= 100
}

// NewItemFunding computes the full funding view for one item. Only pledges
// referencing the item count toward its totals.
func NewItemFunding(item Item, sponsorships []Sponsorship) ItemFunding {
	own := make([]Sponsorship, 0, len(sponsorships))
	for _, s := range sponsorships {
		if s.ItemID == item.ID {
			own = append(own, s)
		}
	}

	return ItemFunding{
		Item:           item,
		Sponsorships:   own,
		TotalSponsored: TotalSponsored(item, own),
		Remaining:      Remaining(item, own),
		PercentFunded:  PercentFunded(item, own),
		FullySponsored: FullySponsored(item, own),
	}
}
