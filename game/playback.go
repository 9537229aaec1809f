// SPDX-License-Identifier: MIT

package game

import (
	"context"
	"time"

	"github.com/katalvlaran/konigsberg/narrator"
)

// Playback hands steps to fn one at a time, waiting interval between
// consecutive steps. The first step is delivered at once.
//
// It returns ctx.Err() if the context ends first, or the first error
// returned by fn. A non-positive interval plays without pauses.
func Playback(ctx context.Context, steps []narrator.Step, interval time.Duration, fn func(narrator.Step) error) error {
	var tick <-chan time.Time
	if interval > 0 && len(steps) > 1 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	for i, s := range steps {
		if i > 0 && tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
	}

	return nil
}
