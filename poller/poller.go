// Package poller implements the bounded polling loop used against the hotel
// API's asynchronous searches. The upstream reports progress with a completed
// flag; "not completed yet" is the only condition that triggers another
// attempt. Transport errors are never retried here.
package poller

import (
	"context"
	"fmt"
	"time"
)

// Accumulation selects how partial pages combine across poll attempts.
type Accumulation int

const (
	// Replace keeps only the latest page. Safe when the upstream returns its
	// full running result set on every poll, which is what the hotel API does.
	Replace Accumulation = iota
	// AppendDedupe merges pages by key, later pages overwriting earlier
	// entries for the same key. Safe when the upstream returns deltas.
	AppendDedupe
)

// Page is one poll iteration's payload.
type Page[T any] struct {
	Items     []T
	Completed bool
}

// FetchFunc issues a single upstream call and returns its parsed page.
type FetchFunc[T any] func(ctx context.Context) (Page[T], error)

// Options bounds and shapes a polling run. MaxAttempts and Interval have
// working defaults; Budget is optional wall-clock cap on the whole run.
// KeyFunc is required for AppendDedupe and ignored for Replace.
type Options[T any] struct {
	Interval     time.Duration
	MaxAttempts  int
	Budget       time.Duration
	Accumulation Accumulation
	KeyFunc      func(T) string
}

const (
	DefaultInterval    = 2000 * time.Millisecond
	DefaultMaxAttempts = 6
)

// TimeoutError means the attempt or time budget ran out before the upstream
// reported completion. Distinct from transport failures so callers can tell
// "upstream slow" from "upstream broken".
type TimeoutError struct {
	Attempts int
	Elapsed  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("polling did not complete after %d attempts (%s elapsed)", e.Attempts, e.Elapsed.Round(time.Millisecond))
}

// Poll calls fetch until it reports Completed, accumulating partial pages per
// opts.Accumulation. It stops immediately on the first completed page (a
// search that completes on the first call costs exactly one request). Fetch
// errors propagate as-is. The wait between attempts is cancellable through
// ctx; cancellation stops all further upstream calls.
func Poll[T any](ctx context.Context, fetch FetchFunc[T], opts Options[T]) ([]T, error) {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Accumulation == AppendDedupe && opts.KeyFunc == nil {
		return nil, fmt.Errorf("poller: AppendDedupe requires a KeyFunc")
	}

	state := newPollState(opts)
	start := time.Now()
	attempts := 0

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		page, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		attempts = attempt

		state.absorb(page.Items)
		if page.Completed {
			return state.items(), nil
		}

		if opts.Budget > 0 && time.Since(start)+opts.Interval > opts.Budget {
			break
		}
		if attempt == opts.MaxAttempts {
			break
		}
		if err := wait(ctx, opts.Interval); err != nil {
			return nil, err
		}
	}

	return nil, &TimeoutError{Attempts: attempts, Elapsed: time.Since(start)}
}

// pollState accumulates partial results across attempts.
type pollState[T any] struct {
	accumulation Accumulation
	keyFunc      func(T) string
	latest       []T
	order        []string
	byKey        map[string]T
}

func newPollState[T any](opts Options[T]) *pollState[T] {
	return &pollState[T]{
		accumulation: opts.Accumulation,
		keyFunc:      opts.KeyFunc,
		byKey:        make(map[string]T),
	}
}

func (s *pollState[T]) absorb(items []T) {
	if s.accumulation == Replace {
		s.latest = items
		return
	}
	for _, item := range items {
		key := s.keyFunc(item)
		if _, seen := s.byKey[key]; !seen {
			s.order = append(s.order, key)
		}
		// Later polls carry fresher values for the same key.
		s.byKey[key] = item
	}
}

func (s *pollState[T]) items() []T {
	if s.accumulation == Replace {
		return s.latest
	}
	merged := make([]T, 0, len(s.order))
	for _, key := range s.order {
		merged = append(merged, s.byKey[key])
	}
	return merged
}

// wait sleeps for d without blocking past ctx cancellation.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
