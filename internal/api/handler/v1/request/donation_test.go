package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestCreateDonationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateDonationRequest
		wantErr bool
	}{
		{
			name: "financial with amount",
			req: CreateDonationRequest{
				Name:   "Alice",
				Email:  "alice@example.com",
				Type:   "financier",
				Amount: float64Ptr(100),
			},
		},
		{
			name: "financial without amount",
			req: CreateDonationRequest{
				Name:  "Alice",
				Email: "alice@example.com",
				Type:  "financier",
			},
			wantErr: true,
		},
		{
			name: "financial with zero amount",
			req: CreateDonationRequest{
				Name:   "Alice",
				Email:  "alice@example.com",
				Type:   "financier",
				Amount: float64Ptr(0),
			},
			wantErr: true,
		},
		{
			name: "technical with description",
			req: CreateDonationRequest{
				Name:        "Bob",
				Email:       "bob@example.com",
				Type:        "technique",
				Description: "web development help",
			},
		},
		{
			name: "technical without description",
			req: CreateDonationRequest{
				Name:  "Bob",
				Email: "bob@example.com",
				Type:  "technique",
			},
			wantErr: true,
		},
		{
			name: "material with description",
			req: CreateDonationRequest{
				Name:        "Carol",
				Email:       "carol@example.com",
				Type:        "matériel",
				Description: "ten laptops",
			},
		},
		{
			name: "material without description",
			req: CreateDonationRequest{
				Name:  "Carol",
				Email: "carol@example.com",
				Type:  "matériel",
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			req: CreateDonationRequest{
				Name:  "Dave",
				Email: "dave@example.com",
				Type:  "crypto",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
