package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense with category",
			transaction: Transaction{
				Kind:        KindExpense,
				Amount:      decimal.NewFromFloat(34.50),
				CategoryRef: int64Ptr(7),
			},
		},
		{
			name: "valid income without category",
			transaction: Transaction{
				Kind:   KindIncome,
				Amount: decimal.NewFromFloat(1200.00),
			},
		},
		{
			name: "zero amount is allowed",
			transaction: Transaction{
				Kind:        KindExpense,
				Amount:      decimal.Zero,
				CategoryRef: int64Ptr(1),
			},
		},
		{
			name: "unknown kind",
			transaction: Transaction{
				Kind:   "Transfer",
				Amount: decimal.NewFromFloat(10),
			},
			wantErr: ErrInvalidKind,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				Kind:        KindExpense,
				Amount:      decimal.NewFromFloat(-5),
				CategoryRef: int64Ptr(1),
			},
			wantErr: ErrNegativeAmount,
		},
		{
			name: "expense without category",
			transaction: Transaction{
				Kind:   KindExpense,
				Amount: decimal.NewFromFloat(5),
			},
			wantErr: ErrCategoryRequired,
		},
		{
			name: "income with category",
			transaction: Transaction{
				Kind:        KindIncome,
				Amount:      decimal.NewFromFloat(5),
				CategoryRef: int64Ptr(3),
			},
			wantErr: ErrCategoryNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	income := Transaction{Kind: KindIncome, Amount: decimal.NewFromFloat(100)}
	expense := Transaction{Kind: KindExpense, Amount: decimal.NewFromFloat(40), CategoryRef: int64Ptr(1)}

	assert.True(t, income.SignedAmount().Equal(decimal.NewFromFloat(100)))
	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromFloat(-40)))
}

func TestTransaction_DisplayAmount(t *testing.T) {
	income := Transaction{Kind: KindIncome, Amount: decimal.NewFromFloat(1200)}
	expense := Transaction{Kind: KindExpense, Amount: decimal.NewFromFloat(34.5)}

	assert.Equal(t, "+$1200.00", income.DisplayAmount())
	assert.Equal(t, "-$34.50", expense.DisplayAmount())
}

func TestTransaction_DisplayDate(t *testing.T) {
	tx := Transaction{OccurredAt: time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)}

	assert.Equal(t, "Mar 2, 2024", tx.DisplayDate())
}

func TestTransaction_DisplayDescription(t *testing.T) {
	withDescription := Transaction{Description: strPtr("Groceries")}
	withEmpty := Transaction{Description: strPtr("")}
	without := Transaction{}

	assert.Equal(t, "Groceries", withDescription.DisplayDescription())
	assert.Equal(t, "", withEmpty.DisplayDescription())
	assert.Equal(t, LabelNoDescription, without.DisplayDescription())
}

func TestIsValidKind(t *testing.T) {
	assert.True(t, IsValidKind(KindExpense))
	assert.True(t, IsValidKind(KindIncome))
	assert.False(t, IsValidKind("income"))
	assert.False(t, IsValidKind(""))
	assert.False(t, IsValidKind("Transfer"))
}

func TestComputeBalance(t *testing.T) {
	tests := []struct {
		name         string
		transactions []Transaction
		want         string
	}{
		{
			name: "empty ledger",
			want: "0.00",
		},
		{
			name: "income minus expense",
			transactions: []Transaction{
				{Kind: KindIncome, Amount: decimal.NewFromFloat(1000)},
				{Kind: KindExpense, Amount: decimal.NewFromFloat(250)},
			},
			want: "750.00",
		},
		{
			name: "negative balance when expenses dominate",
			transactions: []Transaction{
				{Kind: KindIncome, Amount: decimal.NewFromFloat(100)},
				{Kind: KindExpense, Amount: decimal.NewFromFloat(180.75)},
			},
			want: "-80.75",
		},
		{
			name: "rounds to two decimal places",
			transactions: []Transaction{
				{Kind: KindIncome, Amount: decimal.RequireFromString("10.005")},
			},
			want: "10.01",
		},
		{
			name: "unknown kinds contribute nothing",
			transactions: []Transaction{
				{Kind: KindIncome, Amount: decimal.NewFromFloat(100)},
				{Kind: "Transfer", Amount: decimal.NewFromFloat(9999)},
			},
			want: "100.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := ComputeBalance(tt.transactions)
			assert.Equal(t, tt.want, balance.StringFixed(2))
		})
	}
}

func TestSortByOccurredAtDesc(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	transactions := []Transaction{
		{ID: 1, OccurredAt: base.Add(-48 * time.Hour)},
		{ID: 2, OccurredAt: base},
		{ID: 3, OccurredAt: base.Add(-24 * time.Hour)},
	}

	SortByOccurredAtDesc(transactions)

	assert.Equal(t, int64(2), transactions[0].ID)
	assert.Equal(t, int64(3), transactions[1].ID)
	assert.Equal(t, int64(1), transactions[2].ID)
}

func TestSortByOccurredAtDesc_TiesKeepFetchOrder(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	transactions := []Transaction{
		{ID: 10, OccurredAt: base},
		{ID: 20, OccurredAt: base},
		{ID: 30, OccurredAt: base.Add(time.Hour)},
		{ID: 40, OccurredAt: base},
	}

	SortByOccurredAtDesc(transactions)

	require.Len(t, transactions, 4)
	assert.Equal(t, int64(30), transactions[0].ID)
	assert.Equal(t, int64(10), transactions[1].ID)
	assert.Equal(t, int64(20), transactions[2].ID)
	assert.Equal(t, int64(40), transactions[3].ID)
}

func TestInsertPosition(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	ledger := []Transaction{
		{ID: 1, OccurredAt: base.Add(48 * time.Hour)},
		{ID: 2, OccurredAt: base.Add(24 * time.Hour)},
		{ID: 3, OccurredAt: base},
	}

	tests := []struct {
		name       string
		occurredAt time.Time
		want       int
	}{
		{name: "newest goes first", occurredAt: base.Add(72 * time.Hour), want: 0},
		{name: "middle position", occurredAt: base.Add(36 * time.Hour), want: 1},
		{name: "oldest goes last", occurredAt: base.Add(-time.Hour), want: 3},
		{name: "tie places new record before existing", occurredAt: base.Add(24 * time.Hour), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InsertPosition(ledger, tt.occurredAt))
		})
	}
}

func TestInsertPosition_EmptyLedger(t *testing.T) {
	assert.Equal(t, 0, InsertPosition(nil, time.Now()))
}
