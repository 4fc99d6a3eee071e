package ledger

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"centsible-ledger/internal/config"
	"centsible-ledger/internal/dto"
	ledgererrors "centsible-ledger/internal/errors"
	"centsible-ledger/internal/models"
	"centsible-ledger/internal/validation"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ledgerEngine struct {
	mu                 sync.Mutex
	remote             RemoteLedgerInterface
	resolver           CategoryResolverInterface
	syncer             BalanceSyncerInterface
	metrics            MetricsRecorderInterface
	validator          *validation.Validator
	logger             *slog.Logger
	resolveConcurrency int

	transactions []models.Transaction
	balance      decimal.Decimal
}

// NewLedgerEngine creates a LedgerEngineInterface instance. The engine
// serializes LoadAll/Add/Remove internally, so overlapping refreshes cannot
// race each other's writes to the local collection.
func NewLedgerEngine(
	remote RemoteLedgerInterface,
	resolver CategoryResolverInterface,
	syncer BalanceSyncerInterface,
	metrics MetricsRecorderInterface,
	cfg config.EngineConfig,
	logger *slog.Logger,
) LedgerEngineInterface {
	concurrency := cfg.ResolveConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &ledgerEngine{
		remote:             remote,
		resolver:           resolver,
		syncer:             syncer,
		metrics:            metrics,
		validator:          validation.GetValidator(),
		logger:             logger,
		resolveConcurrency: concurrency,
		balance:            decimal.Zero,
	}
}

// LoadAll replaces the local ledger with the remote store's records for one
// user. Category labels for all records resolve concurrently and the merge
// waits for every lookup to settle; a failed lookup falls back to the unknown
// label and never drops the record. Only the initial list fetch can fail.
func (e *ledgerEngine) LoadAll(ctx context.Context, userID int64) ([]models.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()

	records, err := e.remote.ListTransactions(ctx, userID)
	if err != nil {
		e.metrics.IncrementCounter("ledger.refresh", map[string]string{"outcome": "failure"})
		return nil, err
	}

	transactions := make([]models.Transaction, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.resolveConcurrency)

	for i, record := range records {
		i := i
		transactions[i] = e.fromWire(record)

		g.Go(func() error {
			t := &transactions[i]
			t.CategoryLabel = e.resolver.Resolve(gctx, t.Kind, t.CategoryRef)
			return nil
		})
	}

	// Resolution is infallible by contract; Wait only ensures every lookup
	// has settled before the merge.
	_ = g.Wait()

	models.SortByOccurredAtDesc(transactions)
	e.transactions = transactions

	e.recomputeBalance()
	e.pushBalance(ctx, userID)

	e.metrics.RecordProcessingTime("ledger.refresh", time.Since(start))
	e.metrics.RecordGauge("ledger.size", float64(len(e.transactions)), nil)

	return e.snapshot(), nil
}

// Add validates the input locally, records the transaction remotely, and on
// success inserts it into the ledger at the position its timestamp dictates.
// A validation failure rejects the input before any network call; a remote
// failure leaves the local ledger untouched.
func (e *ledgerEngine) Add(ctx context.Context, userID int64, input dto.AddTransactionInput) (*models.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if details := e.validator.ValidateStruct(input); details != nil {
		e.metrics.IncrementCounter("ledger.write", map[string]string{"operation": "add", "outcome": "invalid"})
		return nil, ledgererrors.New(ledgererrors.ValidationGeneral, ledgererrors.WithDetails(details...))
	}

	// The money rule guarantees this parses
	amount, err := decimal.NewFromString(strings.TrimSpace(input.Amount))
	if err != nil {
		return nil, ledgererrors.New(ledgererrors.ValidationInvalidAmount, ledgererrors.WithCause(err))
	}

	var categoryRef *int64
	if input.Kind == models.KindExpense {
		categoryRef = input.CategoryRef
	}

	request := dto.CreateTransactionRequest{
		AppUserID:           userID,
		DollarAmount:        amount.StringFixed(2),
		TransactionType:     input.Kind,
		BudgetCategoryID:    categoryRef,
		OptionalDescription: input.Description,
		TransactionDate:     input.OccurredAt.UTC(),
	}

	created, err := e.remote.CreateTransaction(ctx, request)
	if err != nil {
		e.metrics.IncrementCounter("ledger.write", map[string]string{"operation": "add", "outcome": "failure"})
		return nil, err
	}

	transaction := e.fromWire(*created)
	transaction.CategoryLabel = e.resolver.Resolve(ctx, transaction.Kind, transaction.CategoryRef)

	idx := models.InsertPosition(e.transactions, transaction.OccurredAt)
	e.transactions = append(e.transactions, models.Transaction{})
	copy(e.transactions[idx+1:], e.transactions[idx:])
	e.transactions[idx] = transaction

	e.recomputeBalance()
	e.pushBalance(ctx, userID)

	e.metrics.IncrementCounter("ledger.write", map[string]string{"operation": "add", "outcome": "success"})
	e.metrics.RecordGauge("ledger.size", float64(len(e.transactions)), nil)

	result := transaction
	return &result, nil
}

// Remove deletes a transaction. An identifier absent from the local ledger is
// a not-found condition and issues no network call; the local record is only
// removed after the remote store confirms the deletion.
func (e *ledgerEngine) Remove(ctx context.Context, userID int64, transactionID int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(transactionID)
	if idx < 0 {
		return ledgererrors.New(ledgererrors.LedgerTransactionNotFound)
	}

	if err := e.remote.DeleteTransaction(ctx, transactionID); err != nil {
		e.metrics.IncrementCounter("ledger.write", map[string]string{"operation": "remove", "outcome": "failure"})
		return err
	}

	e.transactions = append(e.transactions[:idx], e.transactions[idx+1:]...)

	e.recomputeBalance()
	e.pushBalance(ctx, userID)

	e.metrics.IncrementCounter("ledger.write", map[string]string{"operation": "remove", "outcome": "success"})
	e.metrics.RecordGauge("ledger.size", float64(len(e.transactions)), nil)

	return nil
}

// CurrentBalance returns the derived running balance of the local ledger
func (e *ledgerEngine) CurrentBalance() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.balance
}

// Transactions returns a copy of the local ledger, newest first
func (e *ledgerEngine) Transactions() []models.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// recomputeBalance must run under the engine mutex after every mutation
func (e *ledgerEngine) recomputeBalance() {
	e.balance = models.ComputeBalance(e.transactions)
}

// pushBalance is the best-effort post-mutation sync. Failure is logged and
// counted but never reverses the mutation and never retries; the local
// balance stays authoritative for the session.
func (e *ledgerEngine) pushBalance(ctx context.Context, userID int64) {
	if err := e.syncer.SyncBalance(ctx, userID, e.balance); err != nil {
		e.metrics.IncrementCounter("balance.sync", map[string]string{"outcome": "failure"})
		e.logger.Warn("balance push failed",
			slog.Int64("user_id", userID),
			slog.String("balance", e.balance.StringFixed(2)),
			slog.String("error", err.Error()),
		)
		return
	}

	e.metrics.IncrementCounter("balance.sync", map[string]string{"outcome": "success"})
}

// fromWire converts a raw remote record into a ledger transaction. Income
// records never carry a category reference; an unparseable amount is kept as
// zero so the record still appears in the ledger.
func (e *ledgerEngine) fromWire(record dto.RawTransaction) models.Transaction {
	amount, err := decimal.NewFromString(record.DollarAmount)
	if err != nil {
		e.logger.Warn("fetched record carries unparseable amount",
			slog.Int64("transaction_id", record.ID),
			slog.String("dollaramount", record.DollarAmount),
		)
		amount = decimal.Zero
	}

	categoryRef := record.BudgetCategoryID
	if record.TransactionType == models.KindIncome {
		categoryRef = nil
	}

	return models.Transaction{
		ID:          record.ID,
		UserID:      record.AppUserID,
		Amount:      amount,
		Kind:        record.TransactionType,
		CategoryRef: categoryRef,
		Description: record.OptionalDescription,
		OccurredAt:  record.TransactionDate.UTC(),
	}
}

func (e *ledgerEngine) indexOf(transactionID int64) int {
	for i, t := range e.transactions {
		if t.ID == transactionID {
			return i
		}
	}
	return -1
}

func (e *ledgerEngine) snapshot() []models.Transaction {
	out := make([]models.Transaction, len(e.transactions))
	copy(out, e.transactions)
	return out
}
