// Package status reports a snapshot of the host the server runs on.
package status

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

var started = time.Now()

type SystemStatus struct {
	Hostname      string  `json:"hostname"`
	Platform      string  `json:"platform"`
	Uptime        uint64  `json:"uptime_seconds"`
	UptimeString  string  `json:"uptime_string"`
	ServerUptime  string  `json:"server_uptime"`
	MemoryTotal   string  `json:"memory_total"`
	MemoryUsedPct float64 `json:"memory_used_percent"`
	GoVersion     string  `json:"go_version"`
	Version       string  `json:"version"`
}

// CheckSystem collects host details. version is the application version
// reported alongside them.
func CheckSystem(ctx context.Context, version string) (SystemStatus, error) {
	status := SystemStatus{
		GoVersion:    runtime.Version(),
		Version:      version,
		ServerUptime: FormatUptime(uint64(time.Since(started).Seconds())),
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return status, fmt.Errorf("host info: %w", err)
	}
	status.Hostname = info.Hostname
	status.Platform = info.Platform
	if info.PlatformVersion != "" {
		status.Platform += " " + info.PlatformVersion
	}
	status.Uptime = info.Uptime
	status.UptimeString = FormatUptime(info.Uptime)

	// Memory is best effort; some containers hide it.
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		status.MemoryTotal = FormatBytes(vm.Total)
		status.MemoryUsedPct = vm.UsedPercent
	}

	return status, nil
}

// FormatUptime renders seconds as "3d 4h 5m", dropping leading zero units.
func FormatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
