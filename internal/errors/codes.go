package errors

// ErrorCode represents a standardized error code used throughout the engine
type ErrorCode string

// Transport error codes (TRANSPORT_*): the remote store could not be read.
// These interrupt the caller-visible operation.
const (
	TransportUnreachable ErrorCode = "TRANSPORT_001"
	TransportBadStatus   ErrorCode = "TRANSPORT_002"
	TransportBadPayload  ErrorCode = "TRANSPORT_003"
	TransportUnavailable ErrorCode = "TRANSPORT_004"
)

// Validation error codes (VALIDATION_*): malformed input rejected locally,
// before any network call.
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationInvalidAmount   ErrorCode = "VALIDATION_002"
	ValidationInvalidKind     ErrorCode = "VALIDATION_003"
	ValidationMissingCategory ErrorCode = "VALIDATION_004"
)

// Write error codes (WRITE_*): the remote store rejected a mutation. Local
// state is left unchanged.
const (
	WriteCreateRejected ErrorCode = "WRITE_001"
	WriteDeleteRejected ErrorCode = "WRITE_002"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerTransactionNotFound ErrorCode = "LEDGER_001"
)

// Warning codes, absorbed internally and only logged (never surfaced as
// errors to the caller).
const (
	WarnResolutionFailed  ErrorCode = "WARN_RESOLUTION_001"
	WarnBalanceSyncFailed ErrorCode = "WARN_SYNC_001"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	TransportUnreachable: "Remote ledger store is unreachable",
	TransportBadStatus:   "Remote ledger store returned an unexpected status",
	TransportBadPayload:  "Remote ledger store returned a malformed payload",
	TransportUnavailable: "Remote ledger store is temporarily unavailable",

	ValidationGeneral:         "Validation failed",
	ValidationInvalidAmount:   "Amount must be a non-negative decimal number",
	ValidationInvalidKind:     "Transaction kind must be Expense or Income",
	ValidationMissingCategory: "Expense transactions require a category",

	WriteCreateRejected: "Remote ledger store rejected the new transaction",
	WriteDeleteRejected: "Remote ledger store rejected the deletion",

	LedgerTransactionNotFound: "Transaction not found in the local ledger",

	WarnResolutionFailed:  "Category name lookup failed",
	WarnBalanceSyncFailed: "Balance push to the remote store failed",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
