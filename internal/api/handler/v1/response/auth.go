package response

import "github.com/sponsorapp/sponsor-api/internal/domain"

type LoginResponse struct {
	Token       string      `json:"token"`
	Role        domain.Role `json:"role"`
	AccountID   uint        `json:"account_id"`
	DisplayName string      `json:"display_name"`
}
