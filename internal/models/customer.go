package models

import "slices"

// Customer is the aggregate root: it owns its accounts and services, and the
// whole graph is persisted and reloaded as one unit. All field mutation goes
// through setters that re-run the field's validation, so an instance that
// exists is always valid.
type Customer struct {
	id          string
	firstName   string
	lastName    string
	age         int
	address     string
	phoneNumber string
	accounts    []*Account
	services    []*Service
}

func NewCustomer(id, firstName, lastName string, age int, address, phoneNumber string) (*Customer, error) {
	c := &Customer{}
	if err := c.SetID(id); err != nil {
		return nil, err
	}
	if err := c.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := c.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := c.SetAge(age); err != nil {
		return nil, err
	}
	c.SetAddress(address)
	if err := c.SetPhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) ID() string          { return c.id }
func (c *Customer) FirstName() string   { return c.firstName }
func (c *Customer) LastName() string    { return c.lastName }
func (c *Customer) Age() int            { return c.age }
func (c *Customer) Address() string     { return c.address }
func (c *Customer) PhoneNumber() string { return c.phoneNumber }

func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

func (c *Customer) SetID(id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) SetFirstName(name string) error {
	if err := ValidateName("first name", name); err != nil {
		return err
	}
	c.firstName = name
	return nil
}

func (c *Customer) SetLastName(name string) error {
	if err := ValidateName("last name", name); err != nil {
		return err
	}
	c.lastName = name
	return nil
}

func (c *Customer) SetAge(age int) error {
	if err := ValidateAge(age); err != nil {
		return err
	}
	c.age = age
	return nil
}

// SetAddress accepts any address, including empty; the address is free-form.
func (c *Customer) SetAddress(address string) {
	c.address = address
}

func (c *Customer) SetPhoneNumber(phone string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	c.phoneNumber = phone
	return nil
}

// Accounts returns the customer's accounts in the order they were opened.
// The slice is a copy; the accounts themselves are shared.
func (c *Customer) Accounts() []*Account {
	return slices.Clone(c.accounts)
}

// Services returns the customer's services in application order.
func (c *Customer) Services() []*Service {
	return slices.Clone(c.services)
}

// ActiveServices filters the service list down to active entries.
func (c *Customer) ActiveServices() []*Service {
	var active []*Service
	for _, s := range c.services {
		if s.active {
			active = append(active, s)
		}
	}
	return active
}

// AddAccount appends an account. A customer may hold any number of accounts
// of the same kind.
func (c *Customer) AddAccount(a *Account) {
	c.accounts = append(c.accounts, a)
}

// RemoveAccount drops the given account instance from the list. Returns
// false if the instance is not held by this customer.
func (c *Customer) RemoveAccount(a *Account) bool {
	for i, held := range c.accounts {
		if held == a {
			c.accounts = slices.Delete(c.accounts, i, i+1)
			return true
		}
	}
	return false
}

// ApplyForService runs the service's eligibility check against this customer.
// The service is appended to the customer's list only on success; a failed
// application leaves the aggregate untouched.
func (c *Customer) ApplyForService(s *Service) bool {
	if !s.CanApply(c) {
		return false
	}
	c.services = append(c.services, s)
	return true
}

// AttachService appends a service without an eligibility check. This is the
// restore path used when rebuilding an aggregate from storage.
func (c *Customer) AttachService(s *Service) {
	c.services = append(c.services, s)
}
