// Package bank is the facade the front end talks to: it checks employee
// authorization, builds domain objects, and round-trips customer aggregates
// through the repositories. It holds no state of its own.
package bank

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jcalloway/backoffice/internal/models"
	"github.com/jcalloway/backoffice/internal/repository"
)

// Bank coordinates the repositories and the domain model.
type Bank struct {
	customers repository.CustomerRepository
	employees repository.EmployeeRepository
	logger    *slog.Logger
}

// New creates a Bank over the given repositories.
func New(customers repository.CustomerRepository, employees repository.EmployeeRepository, logger *slog.Logger) *Bank {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bank{customers: customers, employees: employees, logger: logger}
}

// opLogger tags every log line of one operation with a correlation id.
func (b *Bank) opLogger(op string) *slog.Logger {
	return b.logger.With("op", op, "op_id", uuid.NewString())
}

// AddCustomer validates the fields, constructs the customer, and persists it
// stamped with the acting employee.
func (b *Bank) AddCustomer(id, firstName, lastName string, age int, address, phoneNumber, employeeID string) (*models.Customer, error) {
	log := b.opLogger("add_customer")

	employee, err := b.requireEmployee(employeeID)
	if err != nil {
		return nil, err
	}

	customer, err := models.NewCustomer(id, firstName, lastName, age, address, phoneNumber)
	if err != nil {
		log.Warn("customer rejected", "customer_id", id, "error", err)
		return nil, &OpError{Code: ErrCodeInvalidInput, Message: "invalid customer", Err: err}
	}

	if err := b.customers.Add(customer, employee); err != nil {
		return nil, &OpError{Code: ErrCodeStorageError, Message: "failed to persist customer", Err: err}
	}

	log.Info("customer added", "customer_id", customer.ID(), "by", employee.FullName())
	return customer, nil
}

// OpenAccount opens a savings or checking account for an existing customer.
// The acting employee must be authorized to open accounts.
func (b *Bank) OpenAccount(customerID string, accountType models.AccountKind, initialDeposit int64, employeeID string) (*models.Account, error) {
	log := b.opLogger("open_account")

	employee, err := b.requireEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	if !employee.CanOpenAccounts() {
		log.Warn("account opening denied", "employee_id", employeeID, "position", string(employee.Position))
		return nil, &OpError{Code: ErrCodeNotAuthorized, Message: "employee is not authorized to open accounts"}
	}

	customer, err := b.requireCustomer(customerID)
	if err != nil {
		return nil, err
	}

	var account *models.Account
	switch accountType {
	case models.AccountSavings:
		account, err = models.NewSavingsAccount(employee.FullName(), initialDeposit)
	case models.AccountChecking:
		account, err = models.NewCheckingAccount(employee.FullName(), initialDeposit)
	default:
		return nil, &OpError{Code: ErrCodeUnknownAccountType, Message: "unknown account type " + string(accountType)}
	}
	if err != nil {
		log.Warn("account rejected", "customer_id", customerID, "error", err)
		return nil, &OpError{Code: ErrCodeInvalidInput, Message: "invalid opening deposit", Err: err}
	}

	customer.AddAccount(account)
	if err := b.customers.Update(customer.ID(), customer); err != nil {
		return nil, &OpError{Code: ErrCodeStorageError, Message: "failed to persist account", Err: err}
	}

	log.Info("account opened",
		"customer_id", customerID,
		"account_type", string(accountType),
		"balance", account.Balance(),
		"by", employee.FullName(),
	)
	return account, nil
}

// ApplyForService runs a service application for a customer. Loan requests
// require an employee authorized to approve loans. Eligibility is a soft
// outcome: an ineligible customer gets false with nothing persisted.
func (b *Bank) ApplyForService(customerID string, serviceType models.ServiceKind, employeeID string) (bool, error) {
	log := b.opLogger("apply_for_service")

	employee, err := b.requireEmployee(employeeID)
	if err != nil {
		return false, err
	}

	var service *models.Service
	switch serviceType {
	case models.ServiceLoan:
		if !employee.CanApproveLoans() {
			log.Warn("loan application denied", "employee_id", employeeID, "position", string(employee.Position))
			return false, &OpError{Code: ErrCodeNotAuthorized, Message: "employee is not authorized to approve loans"}
		}
		service = models.NewLoanService()
	case models.ServiceCreditCard:
		service = models.NewCreditCardService()
	default:
		return false, &OpError{Code: ErrCodeUnknownServiceType, Message: "unknown service type " + string(serviceType)}
	}

	customer, err := b.requireCustomer(customerID)
	if err != nil {
		return false, err
	}

	if !customer.ApplyForService(service) {
		log.Info("service application rejected", "customer_id", customerID, "service_type", string(serviceType))
		return false, nil
	}

	service.Approve(employee)
	if err := b.customers.Update(customer.ID(), customer); err != nil {
		return false, &OpError{Code: ErrCodeStorageError, Message: "failed to persist service", Err: err}
	}

	log.Info("service approved",
		"customer_id", customerID,
		"service_type", string(serviceType),
		"approved_by", employee.FullName(),
	)
	return true, nil
}

// Deposit adds funds to one of the customer's accounts, addressed by its
// position in the account list.
func (b *Bank) Deposit(customerID string, accountIndex int, amount int64) error {
	log := b.opLogger("deposit")

	customer, err := b.requireCustomer(customerID)
	if err != nil {
		return err
	}

	account, err := accountAt(customer, accountIndex)
	if err != nil {
		return err
	}

	if err := account.Deposit(amount); err != nil {
		log.Warn("deposit rejected", "customer_id", customerID, "error", err)
		return &OpError{Code: ErrCodeInvalidInput, Message: "invalid deposit", Err: err}
	}

	if err := b.customers.Update(customer.ID(), customer); err != nil {
		return &OpError{Code: ErrCodeStorageError, Message: "failed to persist deposit", Err: err}
	}

	log.Info("deposit accepted", "customer_id", customerID, "account", accountIndex, "balance", account.Balance())
	return nil
}

// Withdraw takes funds from one of the customer's accounts. A denial by the
// account's policy is a soft false; the store is only touched on success.
func (b *Bank) Withdraw(customerID string, accountIndex int, amount int64) (bool, error) {
	log := b.opLogger("withdraw")

	customer, err := b.requireCustomer(customerID)
	if err != nil {
		return false, err
	}

	account, err := accountAt(customer, accountIndex)
	if err != nil {
		return false, err
	}

	if !account.Withdraw(amount) {
		log.Info("withdrawal denied", "customer_id", customerID, "account", accountIndex, "amount", amount)
		return false, nil
	}

	if err := b.customers.Update(customer.ID(), customer); err != nil {
		return false, &OpError{Code: ErrCodeStorageError, Message: "failed to persist withdrawal", Err: err}
	}

	log.Info("withdrawal accepted", "customer_id", customerID, "account", accountIndex, "balance", account.Balance())
	return true, nil
}

// RemoveCustomer deletes the customer record; removing a missing customer is
// a repository-level warned no-op.
func (b *Bank) RemoveCustomer(id string) error {
	if err := b.customers.Remove(id); err != nil {
		return &OpError{Code: ErrCodeStorageError, Message: "failed to remove customer", Err: err}
	}
	return nil
}

// FindCustomer loads one customer aggregate.
func (b *Bank) FindCustomer(id string) (*models.Customer, error) {
	return b.customers.FindByID(id)
}

// GetAllCustomers loads every customer aggregate in storage order.
func (b *Bank) GetAllCustomers() ([]*models.Customer, error) {
	return b.customers.ListAll()
}

// AddEmployee validates and persists a new employee. A duplicate id is a
// repository-level warned no-op.
func (b *Bank) AddEmployee(id, firstName, lastName string, position models.Position) (*models.Employee, error) {
	employee, err := models.NewEmployee(id, firstName, lastName, position)
	if err != nil {
		return nil, &OpError{Code: ErrCodeInvalidInput, Message: "invalid employee", Err: err}
	}
	if err := b.employees.Add(employee); err != nil {
		return nil, &OpError{Code: ErrCodeStorageError, Message: "failed to persist employee", Err: err}
	}
	return employee, nil
}

// FindEmployee loads one employee.
func (b *Bank) FindEmployee(id string) (*models.Employee, error) {
	return b.employees.FindByID(id)
}

// GetAllEmployees loads every employee in storage order.
func (b *Bank) GetAllEmployees() ([]*models.Employee, error) {
	return b.employees.ListAll()
}

func (b *Bank) requireEmployee(id string) (*models.Employee, error) {
	employee, err := b.employees.FindByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &OpError{Code: ErrCodeEmployeeNotFound, Message: "employee not found", Err: err}
		}
		return nil, &OpError{Code: ErrCodeStorageError, Message: "failed to load employee", Err: err}
	}
	return employee, nil
}

func (b *Bank) requireCustomer(id string) (*models.Customer, error) {
	customer, err := b.customers.FindByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &OpError{Code: ErrCodeCustomerNotFound, Message: "customer not found", Err: err}
		}
		return nil, &OpError{Code: ErrCodeStorageError, Message: "failed to load customer", Err: err}
	}
	return customer, nil
}

func accountAt(c *models.Customer, index int) (*models.Account, error) {
	accounts := c.Accounts()
	if index < 0 || index >= len(accounts) {
		return nil, &OpError{Code: ErrCodeInvalidInput, Message: "no account at that position"}
	}
	return accounts[index], nil
}
