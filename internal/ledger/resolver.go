package ledger

import (
	"context"
	"log/slog"
	"strconv"

	"centsible-ledger/internal/cache"
	"centsible-ledger/internal/config"
	"centsible-ledger/internal/models"
)

type categoryResolver struct {
	remote  RemoteLedgerInterface
	cache   *cache.LRU[string]
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewCategoryResolver creates a CategoryResolverInterface backed by the
// remote store with an LRU+TTL cache in front. Per-record lookups stay
// independent; the cache only collapses repeats of the same identifier.
func NewCategoryResolver(
	remote RemoteLedgerInterface,
	cfg config.EngineConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CategoryResolverInterface {
	return &categoryResolver{
		remote:  remote,
		cache:   cache.NewLRU[string](cfg.CategoryCacheSize, cfg.CategoryCacheTTL),
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve returns the display label for a transaction. Income transactions
// short-circuit to the literal "Income" label; anything that cannot be
// resolved falls back to "Unknown Category" and is absorbed as a warning,
// never an error.
func (r *categoryResolver) Resolve(ctx context.Context, kind string, categoryRef *int64) string {
	if kind == models.KindIncome {
		return models.LabelIncome
	}

	if kind != models.KindExpense {
		r.logger.Warn("transaction carries unrecognized kind",
			slog.String("kind", kind),
		)
		r.metrics.IncrementCounter("category.lookup", map[string]string{"outcome": "fallback"})
		return models.LabelUnknownCategory
	}

	if categoryRef == nil {
		r.logger.Warn("expense transaction carries no category reference")
		r.metrics.IncrementCounter("category.lookup", map[string]string{"outcome": "fallback"})
		return models.LabelUnknownCategory
	}

	key := strconv.FormatInt(*categoryRef, 10)
	if label, ok := r.cache.Get(key); ok {
		r.metrics.IncrementCounter("category.lookup", map[string]string{"outcome": "cache_hit"})
		return label
	}

	label, err := r.remote.CategoryName(ctx, *categoryRef)
	if err != nil || label == "" {
		if err != nil {
			r.logger.Warn("category name lookup failed",
				slog.Int64("category_id", *categoryRef),
				slog.String("error", err.Error()),
			)
		}
		r.metrics.IncrementCounter("category.lookup", map[string]string{"outcome": "fallback"})
		return models.LabelUnknownCategory
	}

	r.cache.Set(key, label)
	r.metrics.IncrementCounter("category.lookup", map[string]string{"outcome": "resolved"})
	return label
}
