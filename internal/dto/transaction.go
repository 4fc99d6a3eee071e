package dto

import "time"

// RawTransaction mirrors one transaction record as the remote store returns
// it. Monetary amounts travel as decimal strings with two fractional digits;
// timestamps travel as UTC ISO-8601 strings.
type RawTransaction struct {
	ID                  int64     `json:"id"`
	AppUserID           int64     `json:"appuserID"`
	DollarAmount        string    `json:"dollaramount"`
	TransactionType     string    `json:"transactiontype"`
	BudgetCategoryID    *int64    `json:"budgetcategoryID"`
	OptionalDescription *string   `json:"optionaldescription"`
	TransactionDate     time.Time `json:"transactiondate"`
}

// CreateTransactionRequest is the POST /transactions body
type CreateTransactionRequest struct {
	AppUserID           int64     `json:"appuserID"`
	DollarAmount        string    `json:"dollaramount"`
	TransactionType     string    `json:"transactiontype"`
	BudgetCategoryID    *int64    `json:"budgetcategoryID"`
	OptionalDescription *string   `json:"optionaldescription"`
	TransactionDate     time.Time `json:"transactiondate"`
}

// CategoryNameResponse is the GET /budgetCategoryName/{categoryId} body
type CategoryNameResponse struct {
	CategoryName string `json:"categoryname"`
}

// UpdateBalanceRequest is the PUT /currentBalance body. NewBalance is the
// derived running balance formatted with two fractional digits.
type UpdateBalanceRequest struct {
	ID         int64  `json:"id"`
	NewBalance string `json:"newbalance"`
}

// RemoteErrorResponse is the failure payload the remote store may attach to a
// rejected write. Message is empty when the server returned no body.
type RemoteErrorResponse struct {
	Message string `json:"message"`
}

// AddTransactionInput carries caller-supplied fields for recording a new
// transaction. Validation happens locally before any network call: the amount
// must parse to a finite non-negative decimal, and a category reference is
// required for expenses and forbidden for income.
type AddTransactionInput struct {
	Amount      string    `json:"amount" validate:"required,money"`
	Kind        string    `json:"kind" validate:"required,transaction_kind"`
	CategoryRef *int64    `json:"categoryRef" validate:"required_if=Kind Expense,excluded_if=Kind Income"`
	Description *string   `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurredAt" validate:"required"`
}
