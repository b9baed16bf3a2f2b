package debug

// Goroutine logger, started only when config.Debug is true. The overlay
// schedules all of its work on the Tk event loop, so the goroutine count
// should stay flat; a climbing count points at a leaked ticker or a
// native callback that never returned.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// goroutineLeakSlack is how far above the previous high-water mark the
// count must climb before the Warn fires.
const goroutineLeakSlack = 8

// StartGoroutineLogger launches a ticker that logs the goroutine count and
// stack memory. Climbing more than goroutineLeakSlack past the previous
// high-water mark additionally logs a Warn.
func StartGoroutineLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		var highWater uint64
		for range t.C {
			metrics.Read(samples)
			goroutines := samples[0].Value.Uint64()
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info("goroutine-stacks",
				slog.Uint64("goroutines", goroutines),
				slog.Uint64("stack_inuse", uint64(ms.StackInuse)),
				slog.Uint64("stack_sys", uint64(ms.StackSys)),
			)
			if goroutines > highWater {
				if highWater != 0 && goroutines > highWater+goroutineLeakSlack {
					logger.Warn("goroutine count climbing",
						slog.Uint64("count", goroutines),
						slog.Uint64("previous_high", highWater),
					)
				}
				highWater = goroutines
			}
		}
	}()
}
