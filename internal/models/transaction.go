package models

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	KindExpense = "Expense"
	KindIncome  = "Income"
)

// Display labels derived during reconciliation. LabelUnknownCategory is the
// fallback when a category lookup fails or the kind is unrecognized.
const (
	LabelIncome          = "Income"
	LabelUnknownCategory = "Unknown Category"
	LabelNoDescription   = "No description given"
)

var (
	ErrInvalidKind        = errors.New("invalid transaction kind")
	ErrNegativeAmount     = errors.New("transaction amount must not be negative")
	ErrCategoryRequired   = errors.New("expense transactions require a category reference")
	ErrCategoryNotAllowed = errors.New("income transactions must not carry a category reference")
)

// Transaction is one entry of a user's ledger. Amount is always non-negative;
// the sign of its contribution to the balance is derived from Kind.
type Transaction struct {
	ID            int64
	UserID        int64
	Amount        decimal.Decimal
	Kind          string
	CategoryRef   *int64
	CategoryLabel string
	Description   *string
	OccurredAt    time.Time
}

// Validate enforces the ledger invariant: exactly one of {CategoryRef set,
// Kind == Income} holds, and the stored amount is non-negative.
func (t *Transaction) Validate() error {
	if !IsValidKind(t.Kind) {
		return ErrInvalidKind
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.Kind == KindExpense && t.CategoryRef == nil {
		return ErrCategoryRequired
	}

	if t.Kind == KindIncome && t.CategoryRef != nil {
		return ErrCategoryNotAllowed
	}

	return nil
}

// IsIncome returns true if the transaction adds to the balance
func (t *Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense returns true if the transaction subtracts from the balance
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// SignedAmount returns the transaction's contribution to the balance:
// positive for income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// DisplayAmount formats the amount the way the transaction list renders it,
// e.g. "+$1200.00" for income and "-$34.50" for expense.
func (t *Transaction) DisplayAmount() string {
	sign := "-"
	if t.IsIncome() {
		sign = "+"
	}
	return fmt.Sprintf("%s$%s", sign, t.Amount.StringFixed(2))
}

// DisplayDate formats the timestamp the way the transaction list renders it,
// e.g. "Mar 2, 2024".
func (t *Transaction) DisplayDate() string {
	return t.OccurredAt.Format("Jan 2, 2006")
}

// DisplayDescription returns the free-text description, or a placeholder when
// none was supplied. An empty description is still a description.
func (t *Transaction) DisplayDescription() string {
	if t.Description == nil {
		return LabelNoDescription
	}
	return *t.Description
}

// IsValidKind checks if the transaction kind is one the ledger understands
func IsValidKind(kind string) bool {
	switch kind {
	case KindExpense, KindIncome:
		return true
	default:
		return false
	}
}

// ComputeBalance derives the running balance of a ledger: the sum of income
// amounts minus the sum of expense amounts, rounded to 2 decimal places.
// Transactions with an unrecognized kind contribute nothing.
func ComputeBalance(transactions []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range transactions {
		switch t.Kind {
		case KindIncome:
			balance = balance.Add(t.Amount)
		case KindExpense:
			balance = balance.Sub(t.Amount)
		}
	}
	return balance.Round(2)
}

// SortByOccurredAtDesc orders a ledger newest-first. The sort is stable so
// records sharing a timestamp keep the order in which they were fetched.
func SortByOccurredAtDesc(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].OccurredAt.After(transactions[j].OccurredAt)
	})
}

// InsertPosition returns the index at which a transaction with the given
// timestamp belongs in a descending-ordered ledger. On a timestamp tie the
// newly added record wins the earlier position.
func InsertPosition(transactions []Transaction, occurredAt time.Time) int {
	return sort.Search(len(transactions), func(i int) bool {
		return !transactions[i].OccurredAt.After(occurredAt)
	})
}
