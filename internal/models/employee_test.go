package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCapabilities(t *testing.T) {
	tests := []struct {
		position        Position
		canApproveLoans bool
		canOpenAccounts bool
	}{
		{position: PositionManager, canApproveLoans: true, canOpenAccounts: true},
		{position: PositionTeller, canApproveLoans: false, canOpenAccounts: true},
		{position: PositionSeniorTeller, canApproveLoans: false, canOpenAccounts: true},
		{position: PositionLoanOfficer, canApproveLoans: true, canOpenAccounts: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.position), func(t *testing.T) {
			e, err := NewEmployee("1", "Grace", "Hopper", tt.position)
			require.NoError(t, err)
			assert.Equal(t, tt.canApproveLoans, e.CanApproveLoans())
			assert.Equal(t, tt.canOpenAccounts, e.CanOpenAccounts())
		})
	}
}

func TestNewEmployee(t *testing.T) {
	_, err := NewEmployee("", "Grace", "Hopper", PositionManager)
	assert.Error(t, err, "empty id")

	_, err = NewEmployee("1", "Grace", "Hopper", Position("Janitor"))
	assert.Error(t, err, "unknown position")

	e, err := NewEmployee("1", "Grace", "Hopper", PositionSeniorTeller)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", e.FullName())
}

func TestParsePosition(t *testing.T) {
	p, err := ParsePosition("Senior Teller")
	require.NoError(t, err)
	assert.Equal(t, PositionSeniorTeller, p)

	_, err = ParsePosition("senior teller")
	assert.Error(t, err, "positions are case sensitive, matching the stored form")
}
