package common

import "time"

// BackoffFn returns the delay to sleep after the given failed attempt
// (1-based).
type BackoffFn func(attempt int) time.Duration

// LinearBackoff grows the delay as base * attempt.
func LinearBackoff(base time.Duration) BackoffFn {
	return func(attempt int) time.Duration {
		return base * time.Duration(attempt)
	}
}

// NoBackoff retries immediately.
func NoBackoff() BackoffFn {
	return func(int) time.Duration { return 0 }
}

// Retry runs op up to attempts times, sleeping backoff(attempt) between
// failed attempts. It stops at the first attempt that returns nil and
// otherwise returns the last error.
func Retry(attempts int, backoff BackoffFn, op func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if lastErr = op(); lastErr == nil {
			return nil
		}
		if attempt < attempts {
			if delay := backoff(attempt); delay > 0 {
				time.Sleep(delay)
			}
		}
	}
	return lastErr
}
