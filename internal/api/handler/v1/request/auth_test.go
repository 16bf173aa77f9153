package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password1"},
		},
		{
			name:    "missing name",
			req:     RegisterRequest{Email: "alice@example.com", Password: "password1"},
			wantErr: true,
		},
		{
			name:    "bad email",
			req:     RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "password1"},
			wantErr: true,
		},
		{
			name:    "password too short",
			req:     RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pass1"},
			wantErr: true,
		},
		{
			name:    "password without digit",
			req:     RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "passwords"},
			wantErr: true,
		},
		{
			name:    "password without letter",
			req:     RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "12345678"},
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

func TestChangePasswordRequest_Validate(t *testing.T) {
	err := (&ChangePasswordRequest{CurrentPassword: "old-pass1", NewPassword: "weak"}).Validate()
	assert.Error(t, err)

	err = (&ChangePasswordRequest{CurrentPassword: "old-pass1", NewPassword: "strong-pass1"}).Validate()
	assert.NoError(t, err)
}
