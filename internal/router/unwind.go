package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// unwindLog is the compensating-action log for one composition call. Each
// state-mutating step registers its inverse right after succeeding; the log
// is discarded on success and replayed in reverse on any failure, restoring
// every balance to its pre-call value.
type unwindLog struct {
	steps []unwindStep
	log   zerolog.Logger
}

type unwindStep struct {
	desc string
	run  func(ctx context.Context) error
}

func newUnwindLog(log zerolog.Logger) *unwindLog {
	return &unwindLog{log: log}
}

// add registers a compensating action. Compensators run in reverse
// registration order, so inverses of later steps execute first.
func (u *unwindLog) add(desc string, run func(ctx context.Context) error) {
	u.steps = append(u.steps, unwindStep{desc: desc, run: run})
}

// rollback replays all registered compensators in reverse order. Every
// compensator is attempted even if an earlier one fails; failures are
// joined so custody leaks are never silent.
func (u *unwindLog) rollback(ctx context.Context) error {
	var errs []error
	for i := len(u.steps) - 1; i >= 0; i-- {
		step := u.steps[i]
		if err := step.run(ctx); err != nil {
			u.log.Error().Err(err).Str("step", step.desc).Msg("compensating action failed")
			errs = append(errs, fmt.Errorf("unwind %q: %w", step.desc, err))
			continue
		}
		u.log.Debug().Str("step", step.desc).Msg("compensating action applied")
	}
	u.steps = u.steps[:0]
	return errors.Join(errs...)
}

// size returns the number of registered compensators, for metrics.
func (u *unwindLog) size() int {
	return len(u.steps)
}
