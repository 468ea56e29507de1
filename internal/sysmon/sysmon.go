// Package sysmon samples system-wide CPU and memory load for the slice
// browser header.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one snapshot of system-wide resource usage, in percent.
type Stats struct {
	CPUPercent float64
	MemPercent float64
}

// String renders the snapshot as "cpu 12% mem 40%".
func (s Stats) String() string {
	return fmt.Sprintf("cpu %3.0f%% mem %3.0f%%", s.CPUPercent, s.MemPercent)
}

// Sample collects a snapshot. CPU load is the delta since the previous call
// (interval 0). Fields are zero when the platform query fails.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}
