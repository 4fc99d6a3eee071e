package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ErrorsTestSuite defines the test suite for engine errors
type ErrorsTestSuite struct {
	suite.Suite
}

// TestErrorsTestSuite runs the test suite
func TestErrorsTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

// TestNew_DefaultMessage tests that a bare code carries its default message
func (s *ErrorsTestSuite) TestNew_DefaultMessage() {
	err := New(WriteCreateRejected)

	s.Equal(WriteCreateRejected, err.Code)
	s.Equal(GetErrorMessage(WriteCreateRejected), err.Message)
	s.Contains(err.Error(), "[WRITE_001]")
}

// TestNew_WithMessage tests that a server-supplied message overrides the default
func (s *ErrorsTestSuite) TestNew_WithMessage() {
	err := New(WriteCreateRejected, WithMessage("insufficient funds"))

	s.Equal("insufficient funds", err.Message)
	s.Contains(err.Error(), "insufficient funds")
}

// TestNew_WithEmptyMessageKeepsDefault tests that an absent server message
// falls back to the code's default
func (s *ErrorsTestSuite) TestNew_WithEmptyMessageKeepsDefault() {
	err := New(WriteDeleteRejected, WithMessage(""))

	s.Equal(GetErrorMessage(WriteDeleteRejected), err.Message)
}

// TestNew_WithDetails tests per-field detail formatting
func (s *ErrorsTestSuite) TestNew_WithDetails() {
	err := New(ValidationGeneral, WithDetails("amount: is required", "kind: must be Expense or Income"))

	s.Len(err.Details, 2)
	s.Contains(err.Error(), "amount: is required")
	s.Contains(err.Error(), "kind: must be Expense or Income")
}

// TestNew_WithCause tests cause wrapping and unwrapping
func (s *ErrorsTestSuite) TestNew_WithCause() {
	cause := stderrors.New("connection refused")
	err := New(TransportUnreachable, WithCause(cause))

	s.ErrorIs(err, cause)
	s.Contains(err.Error(), "connection refused")
}

// TestIs_MatchesByCode tests that errors.Is compares engine errors by code
func (s *ErrorsTestSuite) TestIs_MatchesByCode() {
	err := New(TransportBadStatus, WithDetails("GET /transactions returned 502"))

	s.ErrorIs(err, New(TransportBadStatus))
	s.NotErrorIs(err, New(TransportUnreachable))
}

// TestCodeOf tests code extraction from wrapped chains
func (s *ErrorsTestSuite) TestCodeOf() {
	s.Equal(ValidationGeneral, CodeOf(New(ValidationGeneral)))
	s.Equal(ErrorCode(""), CodeOf(stderrors.New("plain error")))
	s.Equal(ErrorCode(""), CodeOf(nil))
}

// TestTaxonomyPredicates tests the caller-facing error classification helpers
func (s *ErrorsTestSuite) TestTaxonomyPredicates() {
	s.True(IsTransport(New(TransportUnreachable)))
	s.True(IsTransport(New(TransportUnavailable)))
	s.False(IsTransport(New(WriteCreateRejected)))

	s.True(IsValidation(New(ValidationGeneral)))
	s.False(IsValidation(New(TransportBadPayload)))

	s.True(IsWrite(New(WriteDeleteRejected)))
	s.False(IsWrite(New(ValidationInvalidAmount)))

	s.True(IsNotFound(New(LedgerTransactionNotFound)))
	s.False(IsNotFound(New(WriteDeleteRejected)))
	s.False(IsNotFound(stderrors.New("plain error")))
}
