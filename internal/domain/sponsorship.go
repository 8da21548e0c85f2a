package domain

import "time"

// Sponsorship is a pledge of funds by a named sponsor toward one item. It
// references its item by id and inherits the item's account scope.
type Sponsorship struct {
	ID          uint      `json:"id"`
	ItemID      uint      `json:"item_id"`
	SponsorName string    `json:"sponsor_name"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
