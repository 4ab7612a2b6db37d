package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v4/process"
)

// procRow is one rendered process-table row.
type procRow struct {
	pid  int32
	name string
	user string
	cpu  float64
}

// listProcesses snapshots the host process table. Per-process attribute
// failures are tolerated; a process that vanished mid-scan simply renders
// with blank fields.
func listProcesses(ctx context.Context) ([]procRow, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]procRow, 0, len(procs))
	for _, proc := range procs {
		row := procRow{pid: proc.Pid}
		if name, err := proc.NameWithContext(ctx); err == nil {
			row.name = name
		}
		if user, err := proc.UsernameWithContext(ctx); err == nil {
			row.user = user
		}
		if percent, err := proc.CPUPercentWithContext(ctx); err == nil {
			row.cpu = percent
		}
		rows = append(rows, row)
	}
	return rows, nil
}
