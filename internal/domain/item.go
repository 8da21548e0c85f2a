package domain

import "time"

// Item is a purchasable thing with a target price, owned by one account.
// ImageRef is either an inline data URL or an external URL; the core never
// decodes image bytes.
type Item struct {
	ID        uint      `json:"id"`
	AccountID uint      `json:"account_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageRef  string    `json:"image_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
