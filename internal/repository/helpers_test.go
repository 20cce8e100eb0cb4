package repository

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jcalloway/backoffice/internal/models"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStorePath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func testEmployee(t *testing.T, id string, position models.Position) *models.Employee {
	t.Helper()
	e, err := models.NewEmployee(id, "Grace", "Hopper", position)
	require.NoError(t, err)
	return e
}

// testCustomer builds an aggregate mixing both account kinds and both
// service kinds, one service approved and one left untouched.
func testCustomer(t *testing.T, id string) *models.Customer {
	t.Helper()

	c, err := models.NewCustomer(id, "Ada", "Lovelace", 30, "12 Crunch St", "0123456789")
	require.NoError(t, err)

	savings, err := models.NewSavingsAccount("Grace Hopper", 1200)
	require.NoError(t, err)
	checking, err := models.NewCheckingAccount("Grace Hopper", 80)
	require.NoError(t, err)
	require.NoError(t, checking.SetTransactionLimit(250))
	c.AddAccount(savings)
	c.AddAccount(checking)

	loan := models.NewLoanService()
	loan.Approve(testEmployee(t, "9", models.PositionLoanOfficer))
	c.AttachService(loan)

	card := models.NewCreditCardService()
	card.SetActive(false)
	c.AttachService(card)

	return c
}
