// Package address validates cryptocurrency addresses one at a time or in
// concurrent batches, recording metrics and debug logs for each check.
package address

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/coinaddr/internal/config"
	"github.com/mrz1836/coinaddr/internal/metrics"
	"github.com/mrz1836/coinaddr/pkg/coinaddress"
)

// DefaultWorkers is the batch concurrency used when none is configured.
const DefaultWorkers = config.DefaultWorkers

// currencyAny labels generic validations in results and metrics.
const currencyAny = config.CurrencyAny

// Service validates addresses.
type Service struct {
	logger  *config.Logger
	metrics *metrics.Metrics
	workers int
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(l *config.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithWorkers sets the batch concurrency. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewService creates a validation service.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger:  config.NullLogger(),
		metrics: metrics.Global,
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workers returns the batch concurrency.
func (s *Service) Workers() int {
	return s.workers
}

// Validate validates a single address.
func (s *Service) Validate(_ context.Context, req Request) Result {
	return s.validate(0, req.Address, req.Currency)
}

// ValidateBatch validates every address in req concurrently and returns
// the results in input order. An invalid address is reported in its Result;
// only context cancellation fails the batch.
func (s *Service) ValidateBatch(ctx context.Context, req BatchRequest) ([]Result, error) {
	results := make([]Result, len(req.Addresses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, addr := range req.Addresses {
		i, addr := i, addr
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.validate(i, addr, req.Currency)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.metrics.RecordBatch()
	s.logger.DebugFields("batch validated", config.Fields{
		"count":    len(req.Addresses),
		"currency": currencyLabel(req.Currency),
		"workers":  s.workers,
	})

	return results, nil
}

func (s *Service) validate(index int, addr string, c *coinaddress.Currency) Result {
	start := time.Now()
	res := coinaddress.Inspect(addr, c)
	elapsed := time.Since(start)

	label := currencyLabel(c)
	s.metrics.RecordValidation(label, elapsed, res.Err)

	fields := config.Fields{
		"address":  addr,
		"currency": label,
		"outcome":  metrics.Outcome(res.Err),
	}
	if res.Err == nil {
		fields["version"] = res.Version
	}
	s.logger.DebugFields("address checked", fields)

	return Result{
		Index:    index,
		Address:  addr,
		Currency: label,
		Version:  res.Version,
		Kind:     res.Kind,
		Err:      res.Err,
	}
}

func currencyLabel(c *coinaddress.Currency) string {
	if c == nil {
		return currencyAny
	}
	return c.Name
}

// ResolveCurrency maps a currency name to a Currency. "any" and "" map to
// nil, meaning generic validation.
func ResolveCurrency(name string) (*coinaddress.Currency, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == currencyAny {
		return nil, true
	}
	return coinaddress.LookupCurrency(name)
}

// Summarize tallies results by outcome.
func Summarize(results []Result) Summary {
	sum := Summary{ByOutcome: make(map[string]int)}
	for _, r := range results {
		sum.Total++
		if r.Valid() {
			sum.Valid++
		} else {
			sum.Invalid++
		}
		sum.ByOutcome[metrics.Outcome(r.Err)]++
	}
	return sum
}
