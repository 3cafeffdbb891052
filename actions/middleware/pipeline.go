// Package middleware provides the ordered interceptor pipeline wrapped
// around individual routes. Stages run their Before hooks in ascending
// order; a stage that short-circuits skips the remaining Befores and the
// handler, but the After hooks of the stages that completed their Before
// still run, in reverse order.
package middleware

import (
	"errors"
	"sort"

	"github.com/gobuffalo/buffalo"
)

// Stop is returned by a Before hook that has already written the response
// and wants the chain halted without surfacing an error.
var Stop = errors.New("pipeline stopped")

// Interceptor is one stage of a route's pipeline
type Interceptor interface {
	// Name identifies the stage in logs
	Name() string

	// Order determines the stage's position: Befores run in ascending
	// order, Afters in descending
	Order() int

	// Before runs ahead of the handler. A non-nil return short-circuits
	// the chain.
	Before(c buffalo.Context) error

	// After runs once the handler (or a short-circuit) has finished
	After(c buffalo.Context)
}

// Chain assembles interceptors into a buffalo middleware
func Chain(stages ...Interceptor) buffalo.MiddlewareFunc {
	sorted := make([]Interceptor, len(stages))
	copy(sorted, stages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})

	return func(next buffalo.Handler) buffalo.Handler {
		return func(c buffalo.Context) error {
			var err error

			entered := 0
			for _, stage := range sorted {
				if err = stage.Before(c); err != nil {
					break
				}
				entered++
			}

			if err == nil {
				err = next(c)
			}

			for i := entered - 1; i >= 0; i-- {
				sorted[i].After(c)
			}

			if errors.Is(err, Stop) {
				return nil
			}
			return err
		}
	}
}
