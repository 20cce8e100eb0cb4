package models

// Position is a bank employee role. Roles are a closed set; capabilities are
// derived from the role, never stored.
type Position string

const (
	PositionManager      Position = "Manager"
	PositionTeller       Position = "Teller"
	PositionSeniorTeller Position = "Senior Teller"
	PositionLoanOfficer  Position = "Loan Officer"
)

// ParsePosition maps a stored or user-supplied role name to a Position.
func ParsePosition(s string) (Position, error) {
	switch Position(s) {
	case PositionManager, PositionTeller, PositionSeniorTeller, PositionLoanOfficer:
		return Position(s), nil
	}
	return "", validationErrorf("position", "unknown position %q", s)
}

// Employee is a back-office operator. Employees gate account opening and loan
// approval; they are persisted flat and referenced from customer records by
// full name only.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Position  Position
}

// NewEmployee validates the identifier and role before constructing.
func NewEmployee(id, firstName, lastName string, position Position) (*Employee, error) {
	if id == "" {
		return nil, validationErrorf("employee id", "cannot be empty")
	}
	if _, err := ParsePosition(string(position)); err != nil {
		return nil, err
	}
	if err := ValidateName("first name", firstName); err != nil {
		return nil, err
	}
	if err := ValidateName("last name", lastName); err != nil {
		return nil, err
	}
	return &Employee{ID: id, FirstName: firstName, LastName: lastName, Position: position}, nil
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// CanApproveLoans reports whether this role may authorize loan applications.
func (e *Employee) CanApproveLoans() bool {
	return e.Position == PositionManager || e.Position == PositionLoanOfficer
}

// CanOpenAccounts reports whether this role may open customer accounts.
func (e *Employee) CanOpenAccounts() bool {
	switch e.Position {
	case PositionManager, PositionTeller, PositionSeniorTeller:
		return true
	}
	return false
}
