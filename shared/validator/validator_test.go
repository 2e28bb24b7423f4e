package validator_test

import (
	"royalstay/shared/validator"
	"strings"
	"testing"
)

// Test structs for validation
type guestTestStruct struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Rating  int    `validate:"gte=1,lte=5"`
	CheckIn string `validate:"required,calendardate"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *guestTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &guestTestStruct{
				Name:    "John Doe",
				Email:   "john@example.com",
				Rating:  4,
				CheckIn: "2024-01-01",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &guestTestStruct{
				Email:   "john@example.com",
				Rating:  4,
				CheckIn: "2024-01-01",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &guestTestStruct{
				Name:    "John Doe",
				Email:   "invalid-email",
				Rating:  4,
				CheckIn: "2024-01-01",
			},
			expectError: true,
		},
		{
			name: "rating out of range",
			data: &guestTestStruct{
				Name:    "John Doe",
				Email:   "john@example.com",
				Rating:  6,
				CheckIn: "2024-01-01",
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: &guestTestStruct{
				Name:    "John Doe",
				Email:   "john@example.com",
				Rating:  4,
				CheckIn: "01-01-2024",
			},
			expectError: true,
		},
		{
			name: "impossible date",
			data: &guestTestStruct{
				Name:    "John Doe",
				Email:   "john@example.com",
				Rating:  4,
				CheckIn: "2024-13-45",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got %v", err)
			}
		})
	}
}

func TestValidateStructMessages(t *testing.T) {
	data := &guestTestStruct{
		Email:   "john@example.com",
		Rating:  4,
		CheckIn: "2024-01-01",
	}

	err := validator.ValidateStruct(data)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	if !strings.Contains(err.Error(), "Name is required") {
		t.Errorf("expected message to name the missing field, got %q", err.Error())
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{
			name:        "rating in range",
			field:       5,
			tag:         "gte=1,lte=5",
			expectError: false,
		},
		{
			name:        "rating above range",
			field:       6,
			tag:         "gte=1,lte=5",
			expectError: true,
		},
		{
			name:        "valid calendar date",
			field:       "2024-02-29",
			tag:         "calendardate",
			expectError: false,
		},
		{
			name:        "invalid calendar date",
			field:       "2023-02-29",
			tag:         "calendardate",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got %v", err)
			}
		})
	}
}
