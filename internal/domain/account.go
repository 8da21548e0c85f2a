package domain

import "time"

// Account is an administrator identity owning a private collection of items
// and their sponsorships. Accounts are provisioned at startup and read-only
// for the lifetime of the process.
//
// Password and Passcode hold the revealed (plain) values inside the process;
// at rest they are stored obscured and never compared in obscured form.
type Account struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	Passcode    string    `json:"-"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Role of an authenticated session, resolved by the access gate.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleVisitor Role = "visitor"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleVisitor
}
