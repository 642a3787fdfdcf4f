package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type checkoutRequest struct {
	SerialNumber      string `json:"serial_number" validate:"required"`
	DestinationRoomID uint   `json:"destination_room_id" validate:"required,gt=0"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   any
		wantErr string
	}{
		{
			name:  "valid",
			input: &checkoutRequest{SerialNumber: "ABC", DestinationRoomID: 1},
		},
		{
			name:    "missing serial",
			input:   &checkoutRequest{DestinationRoomID: 1},
			wantErr: "field 'SerialNumber' failed on the 'required' rule",
		},
		{
			name:    "missing room",
			input:   &checkoutRequest{SerialNumber: "ABC"},
			wantErr: "field 'DestinationRoomID' failed on the 'required' rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
