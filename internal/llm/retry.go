package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// failureKind sorts provider errors for the retry decorator.
type failureKind int

const (
	// failPermanent ends the call: cancellation, truncation, rejected requests.
	failPermanent failureKind = iota
	// failTransient covers rate limits, outages and network errors.
	failTransient
	// failMalformed is a reply that did not parse. It gets one more try.
	failMalformed
)

func classifyFailure(err error) failureKind {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return failPermanent
	}
	var (
		truncated *ErrMaxTokensExceeded
		rejected  *ErrRequestRejected
		malformed *ErrInvalidResponse
	)
	switch {
	case errors.As(err, &truncated), errors.As(err, &rejected):
		return failPermanent
	case errors.As(err, &malformed):
		return failMalformed
	}
	return failTransient
}

// RetryProvider gives each Generate call up to MaxAttempts tries, waiting
// with exponential backoff and ±20% jitter in between.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	sleep  func(context.Context, time.Duration) error
}

func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg, sleep: sleepContext}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.config.MaxAttempts, 1)
	sawMalformed := false

	var err error
	for attempt := range attempts {
		if attempt > 0 {
			if werr := r.sleep(ctx, r.backoff(attempt-1, err)); werr != nil {
				return nil, werr
			}
		}

		var resp *Response
		if resp, err = r.inner.Generate(ctx, req); err == nil {
			return resp, nil
		}

		switch classifyFailure(err) {
		case failPermanent:
			return nil, err
		case failMalformed:
			if sawMalformed {
				return nil, err
			}
			sawMalformed = true
		}
	}
	return nil, err
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff is the wait before retry number n (0-based). A rate limit with a
// Retry-After hint overrides the schedule.
func (r *RetryProvider) backoff(n int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	wait := min(
		float64(r.config.InitialWait)*math.Pow(r.config.Multiplier, float64(n)),
		float64(r.config.MaxWait),
	)
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(max(wait, 0))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
