package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"centsible-ledger/internal/config"
	"centsible-ledger/internal/dto"
	ledgererrors "centsible-ledger/internal/errors"
)

// RemoteLedgerClient is the HTTP binding to the remote transaction store. All
// calls go through the circuit breaker; an open breaker short-circuits into a
// transport failure without touching the network.
type RemoteLedgerClient struct {
	config  *config.RemoteConfig
	client  *http.Client
	breaker CircuitBreakerInterface
	logger  *slog.Logger
}

// NewRemoteLedgerClient creates a client binding for the remote transaction store
func NewRemoteLedgerClient(
	cfg *config.RemoteConfig,
	breaker CircuitBreakerInterface,
	logger *slog.Logger,
) *RemoteLedgerClient {

	client := &http.Client{
		Transport: newLedgerTransport(cfg.APIKey, cfg.RequestsPerSecond, cfg.Burst),
		Timeout:   cfg.Timeout,
	}

	return &RemoteLedgerClient{
		config:  cfg,
		client:  client,
		breaker: breaker,
		logger:  logger,
	}
}

func (c *RemoteLedgerClient) buildRequest(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		c.config.BaseURL+path,
		buf,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *RemoteLedgerClient) do(req *http.Request) (*http.Response, []byte, error) {
	if c.breaker.IsOpen() {
		c.logger.Warn("circuit breaker open, skipping remote call",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
		)
		return nil, nil, ledgererrors.New(ledgererrors.TransportUnavailable)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.breaker.RecordFailure()
		c.logger.Error("remote ledger request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		c.breaker.RecordFailure()
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.breaker.RecordFailure()
	} else {
		c.breaker.RecordSuccess()
	}

	return resp, body, nil
}

// ListTransactions fetches the raw transaction records for a user. An empty
// list with a 200 status is a valid, empty ledger.
func (c *RemoteLedgerClient) ListTransactions(ctx context.Context, userID int64) ([]dto.RawTransaction, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, fmt.Sprintf("/transactions/%d", userID), nil)
	if err != nil {
		return nil, ledgererrors.New(ledgererrors.TransportUnreachable, ledgererrors.WithCause(err))
	}

	resp, body, err := c.do(req)
	if err != nil {
		return nil, ledgererrors.New(ledgererrors.TransportUnreachable, ledgererrors.WithCause(err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ledgererrors.New(
			ledgererrors.TransportBadStatus,
			ledgererrors.WithDetails(fmt.Sprintf("GET /transactions returned %d", resp.StatusCode)),
		)
	}

	var records []dto.RawTransaction
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, ledgererrors.New(ledgererrors.TransportBadPayload, ledgererrors.WithCause(err))
	}

	return records, nil
}

// CategoryName resolves a budget category identifier to its display name
func (c *RemoteLedgerClient) CategoryName(ctx context.Context, categoryID int64) (string, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, fmt.Sprintf("/budgetCategoryName/%d", categoryID), nil)
	if err != nil {
		return "", ledgererrors.New(ledgererrors.TransportUnreachable, ledgererrors.WithCause(err))
	}

	resp, body, err := c.do(req)
	if err != nil {
		return "", ledgererrors.New(ledgererrors.TransportUnreachable, ledgererrors.WithCause(err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", ledgererrors.New(
			ledgererrors.TransportBadStatus,
			ledgererrors.WithDetails(fmt.Sprintf("GET /budgetCategoryName/%d returned %d", categoryID, resp.StatusCode)),
		)
	}

	var payload dto.CategoryNameResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", ledgererrors.New(ledgererrors.TransportBadPayload, ledgererrors.WithCause(err))
	}

	return payload.CategoryName, nil
}

// CreateTransaction records a new transaction in the remote store and returns
// the created record, including the server-assigned identifier.
func (c *RemoteLedgerClient) CreateTransaction(ctx context.Context, request dto.CreateTransactionRequest) (*dto.RawTransaction, error) {
	req, err := c.buildRequest(ctx, http.MethodPost, "/transactions", request)
	if err != nil {
		return nil, ledgererrors.New(ledgererrors.WriteCreateRejected, ledgererrors.WithCause(err))
	}

	resp, body, err := c.do(req)
	if err != nil {
		return nil, ledgererrors.New(ledgererrors.WriteCreateRejected, ledgererrors.WithCause(err))
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var created dto.RawTransaction
		if err := json.Unmarshal(body, &created); err != nil {
			return nil, ledgererrors.New(ledgererrors.TransportBadPayload, ledgererrors.WithCause(err))
		}
		return &created, nil

	default:
		c.logger.Error("remote store rejected transaction create",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, ledgererrors.New(
			ledgererrors.WriteCreateRejected,
			ledgererrors.WithMessage(decodeRemoteMessage(body)),
		)
	}
}

// DeleteTransaction removes a transaction from the remote store
func (c *RemoteLedgerClient) DeleteTransaction(ctx context.Context, transactionID int64) error {
	req, err := c.buildRequest(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", transactionID), nil)
	if err != nil {
		return ledgererrors.New(ledgererrors.WriteDeleteRejected, ledgererrors.WithCause(err))
	}

	resp, body, err := c.do(req)
	if err != nil {
		return ledgererrors.New(ledgererrors.WriteDeleteRejected, ledgererrors.WithCause(err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("remote store rejected transaction delete",
			slog.Int64("transaction_id", transactionID),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return ledgererrors.New(
			ledgererrors.WriteDeleteRejected,
			ledgererrors.WithMessage(decodeRemoteMessage(body)),
		)
	}

	return nil
}

// UpdateBalance pushes a derived balance to the remote store. The engine
// treats this as fire-and-forget; any error here is absorbed as a warning.
func (c *RemoteLedgerClient) UpdateBalance(ctx context.Context, userID int64, newBalance string) error {
	payload := dto.UpdateBalanceRequest{
		ID:         userID,
		NewBalance: newBalance,
	}

	req, err := c.buildRequest(ctx, http.MethodPut, "/currentBalance", payload)
	if err != nil {
		return ledgererrors.New(ledgererrors.WarnBalanceSyncFailed, ledgererrors.WithCause(err))
	}

	resp, body, err := c.do(req)
	if err != nil {
		return ledgererrors.New(ledgererrors.WarnBalanceSyncFailed, ledgererrors.WithCause(err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ledgererrors.New(
			ledgererrors.WarnBalanceSyncFailed,
			ledgererrors.WithDetails(fmt.Sprintf("PUT /currentBalance returned %d: %s", resp.StatusCode, string(body))),
		)
	}

	return nil
}

// decodeRemoteMessage extracts the server's {message} payload from a failed
// write. Returns "" when the body is absent or not the expected shape, which
// keeps the code's default message.
func decodeRemoteMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var remoteErr dto.RemoteErrorResponse
	if err := json.Unmarshal(body, &remoteErr); err != nil {
		return ""
	}

	return remoteErr.Message
}
