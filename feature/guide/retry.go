package guide

// RetryOnce runs fn and, if it fails, runs it exactly once more. No backoff:
// the admin panel's transient failures are connection resets that clear
// immediately or not at all.
//
// Only use with idempotent operations (fetches, lists). Retrying a save
// could double-apply a list mutation.
func RetryOnce[T any](fn func() (T, error)) (T, error) {
	result, err := fn()
	if err == nil {
		return result, nil
	}
	return fn()
}

// RetryOnceErr is RetryOnce for operations without a result.
func RetryOnceErr(fn func() error) error {
	if err := fn(); err == nil {
		return nil
	}
	return fn()
}
