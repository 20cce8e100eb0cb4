package models

// Policy constants shared across the account and service hierarchies.
const (
	CustomerIDLength  = 10
	PhoneNumberLength = 10

	MinCustomerAge = 18
	MaxCustomerAge = 100

	// MinimumBalance is the floor stamped onto new savings accounts and the
	// balance bar for credit-card eligibility.
	MinimumBalance int64 = 500

	// TransactionLimit caps a single checking-account withdrawal.
	TransactionLimit int64 = 500

	LoanMinAge       = 18
	CreditCardMinAge = 21
)

// ValidateID checks a customer identifier: non-empty, all digits, exactly
// CustomerIDLength long.
func ValidateID(id string) error {
	return validateDigitString("id", id, CustomerIDLength)
}

// ValidatePhone checks a phone number: non-empty, all digits, exactly
// PhoneNumberLength long.
func ValidatePhone(phone string) error {
	return validateDigitString("phone number", phone, PhoneNumberLength)
}

// ValidateAge checks that an age falls within the accepted customer range.
func ValidateAge(age int) error {
	if age < MinCustomerAge || age > MaxCustomerAge {
		return validationErrorf("age", "must be between %d and %d years", MinCustomerAge, MaxCustomerAge)
	}
	return nil
}

// ValidateBalance checks the base balance rule shared by every account kind.
// Subtype floors are applied on top of this by the account itself.
func ValidateBalance(balance int64) error {
	if balance < 0 {
		return validationErrorf("balance", "cannot be negative")
	}
	return nil
}

// ValidateName checks a customer name component.
func ValidateName(field, name string) error {
	if name == "" {
		return validationErrorf(field, "cannot be empty")
	}
	return nil
}

func validateDigitString(field, s string, length int) error {
	if s == "" {
		return validationErrorf(field, "cannot be empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return validationErrorf(field, "must contain only digits")
		}
	}
	if len(s) != length {
		return validationErrorf(field, "must be exactly %d digits", length)
	}
	return nil
}
