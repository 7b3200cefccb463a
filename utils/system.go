package utils

import (
	"log/slog"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// CPUUsagePercent returns the current system CPU usage as a percentage.
func CPUUsagePercent() float64 {
	percentage, err := cpu.Percent(0, false)
	if err != nil {
		slog.Warn("failed to read CPU usage", "error", err)
		return 0
	}
	if len(percentage) > 0 {
		return percentage[0]
	}
	return 0
}

// MemoryUsagePercent returns the current system memory usage as a percentage.
func MemoryUsagePercent() float64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		slog.Warn("failed to read memory usage", "error", err)
		return 0
	}
	return vm.UsedPercent
}
