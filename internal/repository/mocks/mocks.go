// Package mocks provides testify mocks for the repository interfaces,
// consumed by the bank facade tests.
package mocks

import (
	"github.com/jcalloway/backoffice/internal/models"
	"github.com/jcalloway/backoffice/internal/repository"
	"github.com/stretchr/testify/mock"
)

// Ensure the mocks track the real interfaces
var (
	_ repository.CustomerRepository = (*MockCustomerRepository)(nil)
	_ repository.EmployeeRepository = (*MockEmployeeRepository)(nil)
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockCustomerRepository mocks repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

// NewMockCustomerRepository creates a mock whose expectations are asserted
// on test cleanup.
func NewMockCustomerRepository(t mockConstructorTestingT) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCustomerRepository) Add(customer *models.Customer, actor *models.Employee) error {
	args := m.Called(customer, actor)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(id string, customer *models.Customer) error {
	args := m.Called(id, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Remove(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(id string) (*models.Customer, error) {
	args := m.Called(id)
	var customer *models.Customer
	if v := args.Get(0); v != nil {
		customer = v.(*models.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) ListAll() ([]*models.Customer, error) {
	args := m.Called()
	var customers []*models.Customer
	if v := args.Get(0); v != nil {
		customers = v.([]*models.Customer)
	}
	return customers, args.Error(1)
}

// MockEmployeeRepository mocks repository.EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

// NewMockEmployeeRepository creates a mock whose expectations are asserted
// on test cleanup.
func NewMockEmployeeRepository(t mockConstructorTestingT) *MockEmployeeRepository {
	m := &MockEmployeeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEmployeeRepository) Add(employee *models.Employee) error {
	args := m.Called(employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Remove(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindByID(id string) (*models.Employee, error) {
	args := m.Called(id)
	var employee *models.Employee
	if v := args.Get(0); v != nil {
		employee = v.(*models.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) ListAll() ([]*models.Employee, error) {
	args := m.Called()
	var employees []*models.Employee
	if v := args.Get(0); v != nil {
		employees = v.([]*models.Employee)
	}
	return employees, args.Error(1)
}
