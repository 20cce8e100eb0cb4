package models

// AccountKind discriminates the closed set of account variants.
type AccountKind string

const (
	AccountSavings  AccountKind = "savings"
	AccountChecking AccountKind = "checking"
)

// withdrawPolicies maps each account kind to its withdrawal rule. A policy
// only decides; the caller commits the balance change on approval.
var withdrawPolicies = map[AccountKind]func(a *Account, amount int64) bool{
	AccountSavings: func(a *Account, amount int64) bool {
		return a.balance-amount >= a.minimumBalance
	},
	AccountChecking: func(a *Account, amount int64) bool {
		return amount <= a.transactionLimit && a.balance >= amount
	},
}

// Account is a customer-owned bank account. It is a tagged variant rather
// than an interface hierarchy: the kind selects the withdrawal policy and the
// balance floor, and unknown kinds are rejected at construction, so every
// dispatch site stays exhaustive.
type Account struct {
	kind      AccountKind
	balance   int64
	createdBy string

	// minimumBalance is the savings floor, captured per instance at
	// creation time and persisted with the account.
	minimumBalance int64

	// transactionLimit caps a single checking withdrawal.
	transactionLimit int64
}

// NewSavingsAccount opens a savings account. The opening balance must meet
// the savings floor.
func NewSavingsAccount(createdBy string, balance int64) (*Account, error) {
	a := &Account{
		kind:           AccountSavings,
		createdBy:      createdBy,
		minimumBalance: MinimumBalance,
	}
	if err := a.setBalance(balance); err != nil {
		return nil, err
	}
	return a, nil
}

// NewCheckingAccount opens a checking account with the default per-withdrawal
// transaction limit.
func NewCheckingAccount(createdBy string, balance int64) (*Account, error) {
	a := &Account{
		kind:             AccountChecking,
		createdBy:        createdBy,
		transactionLimit: TransactionLimit,
	}
	if err := a.setBalance(balance); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreAccount rebuilds an account from persisted state. The same floor
// rules apply: a stored record that violates its own kind's invariants is a
// hard error, never silently accepted.
func RestoreAccount(kind AccountKind, balance int64, createdBy string, minimumBalance, transactionLimit int64) (*Account, error) {
	a := &Account{kind: kind, createdBy: createdBy}
	switch kind {
	case AccountSavings:
		a.minimumBalance = minimumBalance
	case AccountChecking:
		if transactionLimit <= 0 || transactionLimit > TransactionLimit {
			return nil, validationErrorf("transaction limit", "must be positive and at most %d", TransactionLimit)
		}
		a.transactionLimit = transactionLimit
	default:
		return nil, validationErrorf("account type", "unknown kind %q", string(kind))
	}
	if err := a.setBalance(balance); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Account) Kind() AccountKind { return a.kind }
func (a *Account) Balance() int64    { return a.balance }
func (a *Account) CreatedBy() string { return a.createdBy }

// MinimumBalance is the floor for savings accounts; zero for checking.
func (a *Account) MinimumBalance() int64 { return a.minimumBalance }

// TransactionLimit is the single-withdrawal cap for checking accounts; zero
// for savings.
func (a *Account) TransactionLimit() int64 { return a.transactionLimit }

// Withdraw reduces the balance by amount if the kind's policy allows it.
// A denied withdrawal is a normal outcome, reported as false with the balance
// unchanged.
func (a *Account) Withdraw(amount int64) bool {
	if amount <= 0 {
		return false
	}
	if !withdrawPolicies[a.kind](a, amount) {
		return false
	}
	// The policy already guarantees the floor, so this cannot fail.
	return a.setBalance(a.balance-amount) == nil
}

// Deposit increases the balance by amount. Unlike Withdraw, a violation here
// is a hard validation error: deposits go through the same floor check as
// construction.
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return validationErrorf("deposit", "must be a positive amount")
	}
	return a.setBalance(a.balance + amount)
}

// SetTransactionLimit adjusts the checking withdrawal cap within
// (0, TransactionLimit].
func (a *Account) SetTransactionLimit(limit int64) error {
	if a.kind != AccountChecking {
		return validationErrorf("transaction limit", "only checking accounts have a transaction limit")
	}
	if limit <= 0 || limit > TransactionLimit {
		return validationErrorf("transaction limit", "must be positive and at most %d", TransactionLimit)
	}
	a.transactionLimit = limit
	return nil
}

// setBalance is the single balance mutation point: every change re-runs the
// shared non-negative rule plus the kind's floor before committing.
func (a *Account) setBalance(balance int64) error {
	if err := ValidateBalance(balance); err != nil {
		return err
	}
	if a.kind == AccountSavings && balance < a.minimumBalance {
		return validationErrorf("balance", "savings balance cannot drop below %d", a.minimumBalance)
	}
	a.balance = balance
	return nil
}
