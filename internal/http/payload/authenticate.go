package payload

import (
	"errors"

	"votehall/internal/core"

	"github.com/jellydator/validation"
)

type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: l.Username,
		Password: l.Password,
	}
}

// RegisterRequest only checks what the form adds on top of the account
// rules, which are enforced when the account is created.
type RegisterRequest struct {
	Username        string `form:"username" json:"username"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	PasswordConfirm string `form:"password_confirm" json:"password_confirm"`
}

func (rr RegisterRequest) Validate() error {
	return validation.ValidateStruct(&rr,
		validation.Field(&rr.PasswordConfirm,
			validation.Required,
			validation.By(func(value any) error {
				if value.(string) != rr.Password {
					return errors.New("passwords do not match")
				}
				return nil
			}),
		),
	)
}

func (rr RegisterRequest) ToRegistration() core.Registration {
	return core.Registration{
		Username: rr.Username,
		Email:    rr.Email,
		Password: rr.Password,
	}
}
