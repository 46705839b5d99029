package payload

import (
	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type VoteRequest struct {
	NomineeID string `form:"nominee_id" json:"nominee_id"`
}

func (v VoteRequest) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.NomineeID, validation.Required, is.UUIDv4),
	)
}
