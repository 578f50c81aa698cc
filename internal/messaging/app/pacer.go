package app

import (
	"context"
	"time"
)

// Pacer gates consecutive attempts inside a bulk send. The production pacer
// enforces a fixed inter-message interval to stay under the provider's
// messaging-rate ceiling; tests inject a no-op pacer to avoid wall-clock
// sleeps.
type Pacer interface {
	Wait(ctx context.Context) error
}

// FixedIntervalPacer blocks for a constant interval, or until the context is
// cancelled. It is not adaptive and does not back off on provider-reported
// rate-limit errors.
type FixedIntervalPacer struct {
	interval time.Duration
}

func NewFixedIntervalPacer(interval time.Duration) *FixedIntervalPacer {
	return &FixedIntervalPacer{interval: interval}
}

func (p *FixedIntervalPacer) Wait(ctx context.Context) error {
	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NopPacer waits for nothing and counts how often it was asked to.
type NopPacer struct {
	Waits int
}

func (p *NopPacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.Waits++
	return nil
}
