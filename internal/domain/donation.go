package domain

import (
	"errors"
	"time"
)

type DonationType string

const (
	DonationFinancial DonationType = "financier"
	DonationTechnical DonationType = "technique"
	DonationMaterial  DonationType = "matériel"
)

func (t DonationType) IsValid() bool {
	switch t {
	case DonationFinancial, DonationTechnical, DonationMaterial:
		return true
	}
	return false
}

var (
	ErrDonationAmountRequired  = errors.New("amount is required for financial donations")
	ErrDonationDetailsRequired = errors.New("description is required for technical and material donations")
	ErrDonationInvalidType     = errors.New("invalid donation type")
)

type Donation struct {
	ID          uint         `json:"id"`
	UserID      *uint        `json:"user_id,omitempty"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Type        DonationType `json:"type"`
	Amount      *float64     `json:"amount,omitempty"`
	Description string       `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Validate enforces which fields each donation type requires: a financial
// donation carries a positive amount, technical and material donations
// carry a description of what is offered.
func (d Donation) Validate() error {
	switch d.Type {
	case DonationFinancial:
		if d.Amount == nil || *d.Amount <= 0 {
			return ErrDonationAmountRequired
		}
	case DonationTechnical, DonationMaterial:
		if d.Description == "" {
			return ErrDonationDetailsRequired
		}
	default:
		return ErrDonationInvalidType
	}
	return nil
}
