package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type PasscodeLoginRequest struct {
	Passcode string `json:"passcode"`
}

func (req *PasscodeLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Passcode, validation.Required),
	)
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *AdminLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
