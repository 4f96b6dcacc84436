// Package retry re-runs operations that fail with transient errors.
//
// The journal uses it to ride out SQLite lock contention when several
// sessions append to the same database file:
//
//	executor := retry.NewExecutor(retry.SQLiteBusyClassifier{}, retry.NewExponentialBackoff(5))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    _, err := db.ExecContext(ctx, query, args...)
//	    return err
//	})
//
// Classifier decides which errors are worth another attempt and Strategy
// decides how long to wait between attempts. Executor values are immutable
// once built, so one instance can be shared between goroutines.
package retry
