package response

import (
	"fmt"

	"github.com/sponsorapp/sponsor-api/internal/domain"
)

// SponsorshipResponse wraps a created pledge with a one-shot acknowledgment
// addressed to the sponsor. The acknowledgment is transient, never stored.
type SponsorshipResponse struct {
	Sponsorship domain.Sponsorship `json:"sponsorship"`
	ThankYou    string             `json:"thank_you,omitempty"`
}

func NewSponsorshipCreated(sponsorship domain.Sponsorship) SponsorshipResponse {
	return SponsorshipResponse{
		Sponsorship: sponsorship,
		ThankYou:    fmt.Sprintf("Thank you, %v!", sponsorship.SponsorName),
	}
}
