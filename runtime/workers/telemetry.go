package workers

import (
	"chat-hub/contract"
	busruntime "chat-hub/runtime"
	"context"
	"errors"
	"log/slog"
	"time"
)

// TelemetryWorker drains its own bus subscription and periodically logs
// how many events of each variant went through. It also counts overruns,
// which makes slow-consumer drops visible in production without touching
// the publisher path.
type TelemetryWorker struct {
	log      *slog.Logger
	bus      contract.EventBus
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, bus contract.EventBus, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, bus: bus, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	sub, ok := w.bus.Subscribe()
	if !ok {
		w.log.Info("Event bus does not support live subscriptions, telemetry disabled")
		return nil
	}
	defer sub.Close()

	counts := make(map[string]uint64)
	var overruns uint64
	lastReport := time.Now()

	for {
		evt, err := sub.Recv(ctx)
		if err != nil {
			var lag *busruntime.OverrunError
			if errors.As(err, &lag) {
				overruns += lag.Missed
				w.log.Warn("Telemetry subscription overrun", "missed", lag.Missed)
				continue
			}
			if ctx.Err() != nil {
				w.report(counts, overruns)
				return nil
			}
			return err
		}

		counts[evt.Kind()]++
		if time.Since(lastReport) >= w.interval {
			w.report(counts, overruns)
			lastReport = time.Now()
		}
	}
}

func (w *TelemetryWorker) report(counts map[string]uint64, overruns uint64) {
	args := []any{"overruns", overruns}
	for kind, n := range counts {
		args = append(args, kind, n)
	}
	w.log.Info("Domain event telemetry", args...)
}
