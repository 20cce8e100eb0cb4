package repository

import (
	"fmt"

	"github.com/jcalloway/backoffice/internal/models"
)

// Persisted record shapes. Accounts and services are tagged by "type" so the
// concrete variant survives the round trip; the subtype field that does not
// apply to a variant is omitted from its record.

type accountRecord struct {
	Type             string `json:"type"`
	Balance          int64  `json:"balance"`
	CreatedBy        string `json:"created_by,omitempty"`
	MinimumBalance   int64  `json:"minimum_balance,omitempty"`
	TransactionLimit int64  `json:"transaction_limit,omitempty"`
}

type serviceRecord struct {
	Type       string `json:"type"`
	IsActive   bool   `json:"is_active"`
	ApprovedBy string `json:"approved_by,omitempty"`
}

type customerRecord struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Age         int             `json:"age"`
	Address     string          `json:"address"`
	PhoneNumber string          `json:"phone_number"`
	CreatedBy   string          `json:"created_by,omitempty"`
	Accounts    []accountRecord `json:"accounts"`
	Services    []serviceRecord `json:"services"`
}

type employeeRecord struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

func newAccountRecord(a *models.Account) accountRecord {
	return accountRecord{
		Type:             string(a.Kind()),
		Balance:          a.Balance(),
		CreatedBy:        a.CreatedBy(),
		MinimumBalance:   a.MinimumBalance(),
		TransactionLimit: a.TransactionLimit(),
	}
}

func (r accountRecord) toDomain() (*models.Account, error) {
	return models.RestoreAccount(models.AccountKind(r.Type), r.Balance, r.CreatedBy, r.MinimumBalance, r.TransactionLimit)
}

func newServiceRecord(s *models.Service) serviceRecord {
	return serviceRecord{
		Type:       string(s.Kind()),
		IsActive:   s.IsActive(),
		ApprovedBy: s.ApprovedBy(),
	}
}

func (r serviceRecord) toDomain() (*models.Service, error) {
	return models.RestoreService(models.ServiceKind(r.Type), r.IsActive, r.ApprovedBy)
}

// newCustomerRecord serializes the whole aggregate. createdBy is repository
// metadata, not domain state; it is threaded through so updates preserve the
// original stamp.
func newCustomerRecord(c *models.Customer, createdBy string) customerRecord {
	rec := customerRecord{
		ID:          c.ID(),
		FirstName:   c.FirstName(),
		LastName:    c.LastName(),
		Age:         c.Age(),
		Address:     c.Address(),
		PhoneNumber: c.PhoneNumber(),
		CreatedBy:   createdBy,
		Accounts:    []accountRecord{},
		Services:    []serviceRecord{},
	}
	for _, a := range c.Accounts() {
		rec.Accounts = append(rec.Accounts, newAccountRecord(a))
	}
	for _, s := range c.Services() {
		rec.Services = append(rec.Services, newServiceRecord(s))
	}
	return rec
}

func (r customerRecord) toDomain() (*models.Customer, error) {
	c, err := models.NewCustomer(r.ID, r.FirstName, r.LastName, r.Age, r.Address, r.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("customer record %q: %w", r.ID, err)
	}
	for i, ar := range r.Accounts {
		a, err := ar.toDomain()
		if err != nil {
			return nil, fmt.Errorf("customer record %q, account %d: %w", r.ID, i, err)
		}
		c.AddAccount(a)
	}
	for i, sr := range r.Services {
		s, err := sr.toDomain()
		if err != nil {
			return nil, fmt.Errorf("customer record %q, service %d: %w", r.ID, i, err)
		}
		c.AttachService(s)
	}
	return c, nil
}

func newEmployeeRecord(e *models.Employee) employeeRecord {
	return employeeRecord{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Position:  string(e.Position),
	}
}

func (r employeeRecord) toDomain() (*models.Employee, error) {
	position, err := models.ParsePosition(r.Position)
	if err != nil {
		return nil, fmt.Errorf("employee record %q: %w", r.ID, err)
	}
	e, err := models.NewEmployee(r.ID, r.FirstName, r.LastName, position)
	if err != nil {
		return nil, fmt.Errorf("employee record %q: %w", r.ID, err)
	}
	return e, nil
}
