// Package sim provides the artificial round-trip latency the demo uses
// in place of real upstream calls. Delays come from configuration so
// tests run at zero.
package sim

import (
	"context"
	"time"
)

// Delay is a configured artificial latency.
type Delay time.Duration

// Wait blocks for the delay or until ctx is done, whichever comes first.
func (d Delay) Wait(ctx context.Context) error {
	return Wait(ctx, time.Duration(d))
}

// Wait blocks for d or until ctx is done, whichever comes first.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
