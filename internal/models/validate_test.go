package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid 10 digits", id: "1234567890", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "too short", id: "123456789", wantErr: true},
		{name: "too long", id: "12345678901", wantErr: true},
		{name: "non-digit character", id: "12345678a0", wantErr: true},
		{name: "spaces", id: "12345 7890", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "valid", phone: "0987654321", wantErr: false},
		{name: "empty", phone: "", wantErr: true},
		{name: "dashes", phone: "098-765-43", wantErr: true},
		{name: "nine digits", phone: "098765432", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateAge(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		wantErr bool
	}{
		{name: "lower bound", age: 18, wantErr: false},
		{name: "upper bound", age: 100, wantErr: false},
		{name: "mid range", age: 42, wantErr: false},
		{name: "below minimum", age: 17, wantErr: true},
		{name: "above maximum", age: 101, wantErr: true},
		{name: "negative", age: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAge(tt.age)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateBalance(t *testing.T) {
	assert.NoError(t, ValidateBalance(0))
	assert.NoError(t, ValidateBalance(1000))
	assert.Error(t, ValidateBalance(-1))
}
