package ledger

import (
	"context"
	"time"

	"centsible-ledger/internal/dto"
	"centsible-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// RemoteLedgerInterface is the client binding to the remote transaction store
type RemoteLedgerInterface interface {
	ListTransactions(ctx context.Context, userID int64) ([]dto.RawTransaction, error)
	CategoryName(ctx context.Context, categoryID int64) (string, error)
	CreateTransaction(ctx context.Context, request dto.CreateTransactionRequest) (*dto.RawTransaction, error)
	DeleteTransaction(ctx context.Context, transactionID int64) error
	UpdateBalance(ctx context.Context, userID int64, newBalance string) error
}

// CategoryResolverInterface maps a transaction's kind and category reference
// to a display label. Resolution never fails: lookup errors collapse into the
// fallback label and are absorbed as warnings.
type CategoryResolverInterface interface {
	Resolve(ctx context.Context, kind string, categoryRef *int64) string
}

// BalanceSyncerInterface pushes a derived balance to the remote store. The
// engine invokes it after every balance-affecting mutation as a best-effort
// side effect.
type BalanceSyncerInterface interface {
	SyncBalance(ctx context.Context, userID int64, balance decimal.Decimal) error
}

// MetricsRecorderInterface records engine health metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// LedgerEngineInterface owns the in-memory ledger for one user and keeps it
// reconciled with the remote store. Operations are serialized internally;
// the collection is always sorted by occurredAt descending.
type LedgerEngineInterface interface {
	LoadAll(ctx context.Context, userID int64) ([]models.Transaction, error)
	Add(ctx context.Context, userID int64, input dto.AddTransactionInput) (*models.Transaction, error)
	Remove(ctx context.Context, userID int64, transactionID int64) error
	CurrentBalance() decimal.Decimal
	Transactions() []models.Transaction
}
