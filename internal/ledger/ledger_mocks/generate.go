package ledger_mocks

//go:generate mockgen -source=../interfaces.go -destination=ledger_mocks.go -package=ledger_mocks

// This file contains the go:generate directive to regenerate the mocks for
// the ledger interfaces:
//   go generate ./internal/ledger/ledger_mocks
