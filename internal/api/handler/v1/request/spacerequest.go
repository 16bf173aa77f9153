package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateSpaceRequestRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Type    string `json:"type"`
	Details string `json:"details"`
}

func (req *CreateSpaceRequestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Type, validation.Required, validation.In("room", "mentorship")),
		validation.Field(&req.Details, validation.Required),
	)
}

type ResolveSpaceRequestRequest struct {
	Status string `json:"status"`
}

func (req *ResolveSpaceRequestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In("approved", "rejected")),
	)
}
