package debug

// Memory logger, started only when config.Debug is true. Every marker
// repaint re-encodes the canvas to PNG and swaps the Tk photo, so native
// memory is where a leaked photo shows up first. The resident set is
// logged next to the Go heap to tell the two apart.

import (
	"log/slog"
	"runtime"
	"time"
)

const defaultMemLogInterval = 2 * time.Second

// StartMemLogger launches a ticker goroutine logging heap stats and, where
// the platform supports it, the process resident set. Best-effort: an RSS
// query failure is logged once and then suppressed.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultMemLogInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for range ticker.C {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, err := residentSetSize()
			if err != nil && !rssErrLogged {
				logger.Warn("memlog: resident set query failed", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logger.Info("memstats",
				slog.Int("goroutines", runtime.NumGoroutine()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_idle", ms.HeapIdle),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("rss", rss),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
