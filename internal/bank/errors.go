package bank

import "fmt"

// OpError is a hard failure of a facade operation, carrying a stable code
// for callers and a human-readable reason. Soft business outcomes (denied
// withdrawals, ineligible applications) are returned as values, never as an
// OpError.
type OpError struct {
	Err     error
	Message string
	Code    string
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *OpError) Unwrap() error {
	return e.Err
}

// Operation error codes
const (
	ErrCodeInvalidInput       = "invalid_input"
	ErrCodeEmployeeNotFound   = "employee_not_found"
	ErrCodeCustomerNotFound   = "customer_not_found"
	ErrCodeNotAuthorized      = "not_authorized"
	ErrCodeUnknownAccountType = "unknown_account_type"
	ErrCodeUnknownServiceType = "unknown_service_type"
	ErrCodeStorageError       = "storage_error"
)
