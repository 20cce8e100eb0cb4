package models

// ServiceKind discriminates the closed set of service variants.
type ServiceKind string

const (
	ServiceLoan       ServiceKind = "loan"
	ServiceCreditCard ServiceKind = "credit_card"
)

// eligibilityChecks maps each service kind to its requirements predicate.
// CanApply consults this table only while the service is active.
var eligibilityChecks = map[ServiceKind]func(c *Customer) bool{
	ServiceLoan:       loanEligible,
	ServiceCreditCard: creditCardEligible,
}

// A loan needs a savings account holding at least its own floor, and a
// customer of loan age.
func loanEligible(c *Customer) bool {
	if c.age < LoanMinAge {
		return false
	}
	for _, a := range c.accounts {
		if a.kind == AccountSavings && a.balance >= a.minimumBalance {
			return true
		}
	}
	return false
}

// A credit card needs any account holding the global minimum balance, and a
// customer of credit-card age.
func creditCardEligible(c *Customer) bool {
	if c.age < CreditCardMinAge {
		return false
	}
	for _, a := range c.accounts {
		if a.balance >= MinimumBalance {
			return true
		}
	}
	return false
}

// Service is a bank product a customer applies for. It has no identity of its
// own; it exists only inside a customer's service list. A freshly constructed
// service is active but unapproved.
type Service struct {
	kind       ServiceKind
	active     bool
	approvedBy string
}

func NewLoanService() *Service {
	return &Service{kind: ServiceLoan, active: true}
}

func NewCreditCardService() *Service {
	return &Service{kind: ServiceCreditCard, active: true}
}

// RestoreService rebuilds a service from persisted state.
func RestoreService(kind ServiceKind, active bool, approvedBy string) (*Service, error) {
	if _, ok := eligibilityChecks[kind]; !ok {
		return nil, validationErrorf("service type", "unknown kind %q", string(kind))
	}
	return &Service{kind: kind, active: active, approvedBy: approvedBy}, nil
}

func (s *Service) Kind() ServiceKind { return s.kind }
func (s *Service) IsActive() bool    { return s.active }

// ApprovedBy is the full name of the approving employee, or empty while the
// service has never been approved.
func (s *Service) ApprovedBy() string { return s.approvedBy }

func (s *Service) SetActive(active bool) { s.active = active }

// CanApply reports whether the customer qualifies for this service. An
// inactive service accepts no applications regardless of eligibility.
func (s *Service) CanApply(c *Customer) bool {
	if !s.active {
		return false
	}
	return eligibilityChecks[s.kind](c)
}

// Approve records the approving employee and forces the service active.
func (s *Service) Approve(e *Employee) {
	s.approvedBy = e.FullName()
	s.active = true
}
