package bank

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jcalloway/backoffice/internal/models"
	"github.com/jcalloway/backoffice/internal/repository/mocks"
)

func newTestBank(t *testing.T) (*Bank, *mocks.MockCustomerRepository, *mocks.MockEmployeeRepository) {
	t.Helper()
	customers := mocks.NewMockCustomerRepository(t)
	employees := mocks.NewMockEmployeeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(customers, employees, logger), customers, employees
}

func employee(t *testing.T, id string, position models.Position) *models.Employee {
	t.Helper()
	e, err := models.NewEmployee(id, "Grace", "Hopper", position)
	require.NoError(t, err)
	return e
}

func customer(t *testing.T, id string, age int) *models.Customer {
	t.Helper()
	c, err := models.NewCustomer(id, "Ada", "Lovelace", age, "12 Crunch St", "0123456789")
	require.NoError(t, err)
	return c
}

func assertOpCode(t *testing.T, err error, code string) {
	t.Helper()
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, code, opErr.Code)
}

func TestAddCustomer(t *testing.T) {
	t.Run("valid customer is persisted with the acting employee", func(t *testing.T) {
		b, customers, employees := newTestBank(t)
		teller := employee(t, "1", models.PositionTeller)

		employees.On("FindByID", "1").Return(teller, nil)
		customers.On("Add", mock.AnythingOfType("*models.Customer"), teller).Return(nil)

		c, err := b.AddCustomer("1234567890", "Ada", "Lovelace", 30, "12 Crunch St", "0123456789", "1")

		require.NoError(t, err)
		assert.Equal(t, "1234567890", c.ID())
	})

	t.Run("malformed field is a validation failure", func(t *testing.T) {
		b, _, employees := newTestBank(t)
		employees.On("FindByID", "1").Return(employee(t, "1", models.PositionTeller), nil)

		c, err := b.AddCustomer("123", "Ada", "Lovelace", 30, "12 Crunch St", "0123456789", "1")

		assert.Nil(t, c)
		assertOpCode(t, err, ErrCodeInvalidInput)
		var vErr *models.ValidationError
		assert.ErrorAs(t, err, &vErr, "the underlying reason is carried along")
	})

	t.Run("unknown acting employee", func(t *testing.T) {
		b, _, employees := newTestBank(t)
		employees.On("FindByID", "99").Return(nil, models.ErrNotFound)

		_, err := b.AddCustomer("1234567890", "Ada", "Lovelace", 30, "12 Crunch St", "0123456789", "99")

		assertOpCode(t, err, ErrCodeEmployeeNotFound)
	})
}

func TestOpenAccount(t *testing.T) {
	t.Run("teller opens a savings account", func(t *testing.T) {
		b, customers, employees := newTestBank(t)
		teller := employee(t, "1", models.PositionTeller)
		c := customer(t, "1234567890", 30)

		employees.On("FindByID", "1").Return(teller, nil)
		customers.On("FindByID", "1234567890").Return(c, nil)
		customers.On("Update", "1234567890", c).Return(nil)

		account, err := b.OpenAccount("1234567890", models.AccountSavings, 1000, "1")

		require.NoError(t, err)
		assert.Equal(t, models.AccountSavings, account.Kind())
		assert.Equal(t, "Grace Hopper", account.CreatedBy())
		require.Len(t, c.Accounts(), 1, "account attached to the aggregate")
	})

	t.Run("loan officer may not open accounts", func(t *testing.T) {
		b, _, employees := newTestBank(t)
		employees.On("FindByID", "2").Return(employee(t, "2", models.PositionLoanOfficer), nil)

		_, err := b.OpenAccount("1234567890", models.AccountChecking, 100, "2")

		assertOpCode(t, err, ErrCodeNotAuthorized)
	})

	t.Run("unknown customer", func(t *testing.T) {
		b, customers, employees := newTestBank(t)
		employees.On("FindByID", "1").Return(employee(t, "1", models.PositionManager), nil)
		customers.On("FindByID", "0000000000").Return(nil, models.ErrNotFound)

		_, err := b.OpenAccount("0000000000", models.AccountSavings, 1000, "1")

		assertOpCode(t, err, ErrCodeCustomerNotFound)
	})

	t.Run("unknown account type", func(t *testing.T) {
		b, customers, employees := newTestBank(t)
		employees.On("FindByID", "1").Return(employee(t, "1", models.PositionManager), nil)
		customers.On("FindByID", "1234567890").Return(customer(t, "1234567890", 30), nil)

		_, err := b.OpenAccount("1234567890", models.AccountKind("money_market"), 1000, "1")

		assertOpCode(t, err, ErrCodeUnknownAccountType)
	})

	t.Run("opening deposit below the savings floor", func(t *testing.T) {
		b, customers, employees := newTestBank(t)
		c := customer(t, "1234567890", 30)
		employees.On("FindByID", "1").Return(employee(t, "1", models.PositionTeller), nil)
		customers.On("FindByID", "1234567890").Return(c, nil)

		_, err := b.OpenAccount("1234567890", models.AccountSavings, 100, "1")

		assertOpCode(t, err, ErrCodeInvalidInput)
		assert.Empty(t, c.Accounts(), "nothing attached, nothing persisted")
	})
}

func TestApplyForService(t *testing.T) {
	withSavings := func(t *testing.T, id string, age int, balance int64) *models.Customer {
		c := customer(t, id, age)
		a, err := models.NewSavingsAccount("Grace Hopper", balance)
		require.NoError(t, err)
		c.AddAccount(a)
		return c
	}

	t.Run("eligible loan is approved and persisted", func(t *testing.T) {
		b, customers, employees := newTestBank(t)
		officer := employee(t, "3", models.PositionLoanOfficer)
		c := withSavings(t, "1234567890", 30, 1000)

		employees.On("FindByID", "3").Return(officer, nil)
		customers.On("FindByID", "1234567890").Return(c, nil)
		customers.On("Update", "1234567890", c).Return(nil)

		eligible, err := b.ApplyForService("1234567890", models.ServiceLoan, "3")

		require.NoError(t, err)
		assert.True(t, eligible)
		services := c.Services()
		require.Len(t, services, 1)
		assert.Equal(t, "Grace Hopper", services[0].ApprovedBy())
	})

	t.Run("teller may not take loan applications", func(t *testing.T) {
		b, _, employees := newTestBank(t)
		employees.On("FindByID", "1").Return(employee(t, "1", models.PositionTeller), nil)

		_, err := b.ApplyForService("1234567890", models.ServiceLoan, "1")

		assertOpCode(t, err, ErrCodeNotAuthorized)
	})

	t.Run("ineligible application is a soft false with no persistence", func(t *testing.T) {
		b, customers, employees := newTestBank(t)
		c := customer(t, "1234567890", 30) // no accounts at all

		employees.On("FindByID", "3").Return(employee(t, "3", models.PositionManager), nil)
		customers.On("FindByID", "1234567890").Return(c, nil)

		eligible, err := b.ApplyForService("1234567890", models.ServiceLoan, "3")

		require.NoError(t, err)
		assert.False(t, eligible)
		assert.Empty(t, c.Services())
	})

	t.Run("any employee may take credit card applications", func(t *testing.T) {
		b, customers, employees := newTestBank(t)
		teller := employee(t, "1", models.PositionTeller)
		c := withSavings(t, "1234567890", 25, 600)

		employees.On("FindByID", "1").Return(teller, nil)
		customers.On("FindByID", "1234567890").Return(c, nil)
		customers.On("Update", "1234567890", c).Return(nil)

		eligible, err := b.ApplyForService("1234567890", models.ServiceCreditCard, "1")

		require.NoError(t, err)
		assert.True(t, eligible)
	})

	t.Run("credit card age gate", func(t *testing.T) {
		b, customers, employees := newTestBank(t)
		c := withSavings(t, "1234567890", 20, 600)

		employees.On("FindByID", "1").Return(employee(t, "1", models.PositionTeller), nil)
		customers.On("FindByID", "1234567890").Return(c, nil)

		eligible, err := b.ApplyForService("1234567890", models.ServiceCreditCard, "1")

		require.NoError(t, err)
		assert.False(t, eligible)
	})

	t.Run("unknown customer", func(t *testing.T) {
		b, customers, employees := newTestBank(t)
		employees.On("FindByID", "1").Return(employee(t, "1", models.PositionManager), nil)
		customers.On("FindByID", "0000000000").Return(nil, models.ErrNotFound)

		_, err := b.ApplyForService("0000000000", models.ServiceLoan, "1")

		assertOpCode(t, err, ErrCodeCustomerNotFound)
	})

	t.Run("unknown service type", func(t *testing.T) {
		b, _, employees := newTestBank(t)
		employees.On("FindByID", "1").Return(employee(t, "1", models.PositionManager), nil)

		_, err := b.ApplyForService("1234567890", models.ServiceKind("mortgage"), "1")

		assertOpCode(t, err, ErrCodeUnknownServiceType)
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("approved withdrawal is persisted", func(t *testing.T) {
		b, customers, _ := newTestBank(t)
		c := customer(t, "1234567890", 30)
		a, err := models.NewSavingsAccount("Grace Hopper", 1000)
		require.NoError(t, err)
		c.AddAccount(a)

		customers.On("FindByID", "1234567890").Return(c, nil)
		customers.On("Update", "1234567890", c).Return(nil)

		ok, err := b.Withdraw("1234567890", 0, 400)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(600), a.Balance())
	})

	t.Run("denied withdrawal touches nothing", func(t *testing.T) {
		b, customers, _ := newTestBank(t)
		c := customer(t, "1234567890", 30)
		a, err := models.NewSavingsAccount("Grace Hopper", 1000)
		require.NoError(t, err)
		c.AddAccount(a)

		customers.On("FindByID", "1234567890").Return(c, nil)

		ok, err := b.Withdraw("1234567890", 0, 600)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(1000), a.Balance())
	})

	t.Run("bad account index", func(t *testing.T) {
		b, customers, _ := newTestBank(t)
		customers.On("FindByID", "1234567890").Return(customer(t, "1234567890", 30), nil)

		_, err := b.Withdraw("1234567890", 0, 100)

		assertOpCode(t, err, ErrCodeInvalidInput)
	})
}

func TestDeposit(t *testing.T) {
	t.Run("deposit is persisted", func(t *testing.T) {
		b, customers, _ := newTestBank(t)
		c := customer(t, "1234567890", 30)
		a, err := models.NewCheckingAccount("Grace Hopper", 50)
		require.NoError(t, err)
		c.AddAccount(a)

		customers.On("FindByID", "1234567890").Return(c, nil)
		customers.On("Update", "1234567890", c).Return(nil)

		require.NoError(t, b.Deposit("1234567890", 0, 200))
		assert.Equal(t, int64(250), a.Balance())
	})

	t.Run("non-positive deposit is a hard error", func(t *testing.T) {
		b, customers, _ := newTestBank(t)
		c := customer(t, "1234567890", 30)
		a, err := models.NewCheckingAccount("Grace Hopper", 50)
		require.NoError(t, err)
		c.AddAccount(a)

		customers.On("FindByID", "1234567890").Return(c, nil)

		err = b.Deposit("1234567890", 0, 0)

		assertOpCode(t, err, ErrCodeInvalidInput)
		assert.Equal(t, int64(50), a.Balance())
	})
}

func TestAddEmployee(t *testing.T) {
	t.Run("valid employee", func(t *testing.T) {
		b, _, employees := newTestBank(t)
		employees.On("Add", mock.AnythingOfType("*models.Employee")).Return(nil)

		e, err := b.AddEmployee("5", "Margaret", "Hamilton", models.PositionManager)

		require.NoError(t, err)
		assert.Equal(t, "Margaret Hamilton", e.FullName())
	})

	t.Run("unknown position", func(t *testing.T) {
		b, _, _ := newTestBank(t)

		_, err := b.AddEmployee("5", "Margaret", "Hamilton", models.Position("Janitor"))

		assertOpCode(t, err, ErrCodeInvalidInput)
	})
}
