package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpsertSettingRequest struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

func (req *UpsertSettingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Value, validation.Required),
	)
}
