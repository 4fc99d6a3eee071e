package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

type remoteBalanceSyncer struct {
	remote RemoteLedgerInterface
}

// NewRemoteBalanceSyncer creates the default BalanceSyncerInterface: a
// fire-and-forget PUT of the two-decimal balance string to the remote store.
func NewRemoteBalanceSyncer(remote RemoteLedgerInterface) BalanceSyncerInterface {
	return &remoteBalanceSyncer{remote: remote}
}

func (s *remoteBalanceSyncer) SyncBalance(ctx context.Context, userID int64, balance decimal.Decimal) error {
	return s.remote.UpdateBalance(ctx, userID, balance.StringFixed(2))
}
