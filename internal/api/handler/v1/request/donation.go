package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	errAmountRequired  = errors.New("a positive amount is required for financial donations")
	errDetailsRequired = errors.New("a description is required for technical and material donations")
)

type CreateDonationRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Type        string   `json:"type"`
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
}

// Validate checks the shared fields, then the fields each donation
// type requires: financial donations need an amount, in-kind ones a
// description.
func (req *CreateDonationRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Type, validation.Required, validation.In("financier", "technique", "matériel")),
	)
	if err != nil {
		return err
	}

	switch req.Type {
	case "financier":
		if req.Amount == nil || *req.Amount <= 0 {
			return errAmountRequired
		}
	case "technique", "matériel":
		if req.Description == "" {
			return errDetailsRequired
		}
	}

	return nil
}
