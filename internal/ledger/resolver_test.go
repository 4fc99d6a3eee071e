package ledger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"centsible-ledger/internal/config"
	ledgererrors "centsible-ledger/internal/errors"
	"centsible-ledger/internal/ledger/ledger_mocks"
	"centsible-ledger/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// CategoryResolverTestSuite is the test suite for the category resolver
type CategoryResolverTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRemote  *ledger_mocks.MockRemoteLedgerInterface
	mockMetrics *ledger_mocks.MockMetricsRecorderInterface
	resolver    CategoryResolverInterface
	ctx         context.Context
}

// SetupTest initializes the test suite before each test
func (s *CategoryResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRemote = ledger_mocks.NewMockRemoteLedgerInterface(s.ctrl)
	s.mockMetrics = ledger_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()

	s.resolver = NewCategoryResolver(
		s.mockRemote,
		config.EngineConfig{CategoryCacheSize: 8, CategoryCacheTTL: time.Minute},
		s.mockMetrics,
		slog.Default(),
	)

	s.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (s *CategoryResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestCategoryResolverSuite runs the test suite
func TestCategoryResolverSuite(t *testing.T) {
	suite.Run(t, new(CategoryResolverTestSuite))
}

// TestResolve_IncomeNeverHitsRemote tests that income resolves to the literal
// label without a lookup. The remote mock carries no expectations, so any call
// would fail the test.
func (s *CategoryResolverTestSuite) TestResolve_IncomeNeverHitsRemote() {
	ref := int64(7)

	label := s.resolver.Resolve(s.ctx, models.KindIncome, &ref)

	s.Equal(models.LabelIncome, label)
}

// TestResolve_UnknownKindFallsBack tests the fallback for a kind the ledger
// does not understand
func (s *CategoryResolverTestSuite) TestResolve_UnknownKindFallsBack() {
	label := s.resolver.Resolve(s.ctx, "Transfer", nil)

	s.Equal(models.LabelUnknownCategory, label)
}

// TestResolve_ExpenseWithoutReferenceFallsBack tests the fallback for an
// expense carrying no category reference
func (s *CategoryResolverTestSuite) TestResolve_ExpenseWithoutReferenceFallsBack() {
	label := s.resolver.Resolve(s.ctx, models.KindExpense, nil)

	s.Equal(models.LabelUnknownCategory, label)
}

// TestResolve_Success tests a successful remote lookup
func (s *CategoryResolverTestSuite) TestResolve_Success() {
	ref := int64(7)

	s.mockRemote.EXPECT().CategoryName(s.ctx, ref).Return("Groceries", nil)

	label := s.resolver.Resolve(s.ctx, models.KindExpense, &ref)

	s.Equal("Groceries", label)
}

// TestResolve_SecondLookupHitsCache tests that repeated references resolve
// from the cache after one remote round trip
func (s *CategoryResolverTestSuite) TestResolve_SecondLookupHitsCache() {
	ref := int64(7)

	s.mockRemote.EXPECT().CategoryName(s.ctx, ref).Return("Groceries", nil).Times(1)

	first := s.resolver.Resolve(s.ctx, models.KindExpense, &ref)
	second := s.resolver.Resolve(s.ctx, models.KindExpense, &ref)

	s.Equal("Groceries", first)
	s.Equal("Groceries", second)
}

// TestResolve_LookupErrorFallsBack tests that a failed lookup collapses into
// the fallback label instead of an error
func (s *CategoryResolverTestSuite) TestResolve_LookupErrorFallsBack() {
	ref := int64(999)

	s.mockRemote.EXPECT().CategoryName(s.ctx, ref).
		Return("", ledgererrors.New(ledgererrors.TransportUnreachable))

	label := s.resolver.Resolve(s.ctx, models.KindExpense, &ref)

	s.Equal(models.LabelUnknownCategory, label)
}

// TestResolve_EmptyNameFallsBack tests that a lookup returning an empty name
// falls back rather than caching a blank label
func (s *CategoryResolverTestSuite) TestResolve_EmptyNameFallsBack() {
	ref := int64(5)

	s.mockRemote.EXPECT().CategoryName(s.ctx, ref).Return("", nil)

	label := s.resolver.Resolve(s.ctx, models.KindExpense, &ref)

	s.Equal(models.LabelUnknownCategory, label)
}

// TestResolve_FallbackIsNotCached tests that a failed lookup does not poison
// the cache for the next attempt
func (s *CategoryResolverTestSuite) TestResolve_FallbackIsNotCached() {
	ref := int64(7)

	first := s.mockRemote.EXPECT().CategoryName(s.ctx, ref).
		Return("", ledgererrors.New(ledgererrors.TransportUnreachable))
	s.mockRemote.EXPECT().CategoryName(s.ctx, ref).Return("Groceries", nil).After(first)

	s.Equal(models.LabelUnknownCategory, s.resolver.Resolve(s.ctx, models.KindExpense, &ref))
	s.Equal("Groceries", s.resolver.Resolve(s.ctx, models.KindExpense, &ref))
}
