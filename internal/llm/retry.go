package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryStreamer is a decorator that retries opening a stream on transient
// errors with exponential backoff and jitter. Once a stream is open, failures
// mid-stream are not retried — the turn is already partially delivered and
// replaying it would duplicate output.
type RetryStreamer struct {
	inner  Streamer
	config RetryConfig
}

// WithRetry wraps a Streamer with retry logic on stream open.
func WithRetry(s Streamer, cfg RetryConfig) Streamer {
	return &RetryStreamer{inner: s, config: cfg}
}

func (r *RetryStreamer) Stream(ctx context.Context, req Request) (TokenStream, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		stream, err := r.inner.Stream(ctx, req)
		if err == nil {
			return stream, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return nil, err
		}

		// Last attempt — don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *RetryStreamer) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry determines if a stream-open error is retryable.
func shouldRetry(err error) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Rate limit and provider unavailable are retryable.
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return true
	}

	// Other errors (network, etc.) are treated as transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *RetryStreamer) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
