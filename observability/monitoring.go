// Package observability exposes a point-in-time health snapshot of the
// process and its host, served by the /healthz endpoint.
package observability

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

type HealthStats struct {
	UptimeSeconds      int64   `json:"uptime_seconds"`
	NumGoroutine       int     `json:"num_goroutine"`
	AllocMemMb         uint64  `json:"alloc_mem_mb"`
	NumGC              uint32  `json:"num_gc"`
	HostMemUsedPercent float64 `json:"host_mem_used_percent"`
	HostCPUPercent     float64 `json:"host_cpu_percent"`
	Subscribers        int     `json:"subscribers"`
}

// SubscriberCounter reports how many live subscriptions the bus carries.
type SubscriberCounter interface {
	Subscribers() int
}

type Monitor struct {
	log     *slog.Logger
	started time.Time
	bus     SubscriberCounter
}

func NewMonitor(log *slog.Logger, bus SubscriberCounter) *Monitor {
	return &Monitor{log: log, started: time.Now(), bus: bus}
}

// Snapshot gathers Go runtime numbers plus host memory and CPU usage.
// Host metrics are best effort: a collection error is logged and leaves
// the corresponding field at zero.
func (m *Monitor) Snapshot() HealthStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	stats := HealthStats{
		UptimeSeconds: int64(time.Since(m.started).Seconds()),
		NumGoroutine:  runtime.NumGoroutine(),
		AllocMemMb:    ms.Alloc / 1024 / 1024,
		NumGC:         ms.NumGC,
	}
	if m.bus != nil {
		stats.Subscribers = m.bus.Subscribers()
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		m.log.Debug("Host memory stats unavailable", "error", err)
	} else {
		stats.HostMemUsedPercent = vm.UsedPercent
	}

	if percents, err := cpu.Percent(0, false); err != nil {
		m.log.Debug("Host CPU stats unavailable", "error", err)
	} else if len(percents) > 0 {
		stats.HostCPUPercent = percents[0]
	}

	return stats
}
