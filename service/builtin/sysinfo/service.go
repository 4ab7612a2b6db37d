// Package sysinfo implements the host introspection builtins. Each command
// reads the host counters once per invocation and formats a snapshot; there
// is no polling loop.
package sysinfo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/webterm/webshell/model/types"
)

const name = "sysinfo"

const defaultSampleInterval = 200 * time.Millisecond

// Service provides cpu/mem/disk/ps snapshots. The reader funcs default to
// gopsutil and can be stubbed in tests.
type Service struct {
	sampleInterval time.Duration
	cpuPercent     func(ctx context.Context, interval time.Duration) ([]float64, error)
	virtualMemory  func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	diskUsage      func(ctx context.Context, path string) (*disk.UsageStat, error)
	processes      func(ctx context.Context) ([]procRow, error)
}

// New creates a new sysinfo builtin service
func New() *Service {
	return &Service{
		sampleInterval: defaultSampleInterval,
		cpuPercent: func(ctx context.Context, interval time.Duration) ([]float64, error) {
			return cpu.PercentWithContext(ctx, interval, false)
		},
		virtualMemory: mem.VirtualMemoryWithContext,
		diskUsage:     disk.UsageWithContext,
		processes:     listProcesses,
	}
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// Commands returns the builtin command signatures
func (s *Service) Commands() types.Signatures {
	return types.Signatures{
		{Name: "cpu", Usage: "cpu", Description: "cpu utilisation snapshot"},
		{Name: "mem", Usage: "mem", Description: "memory utilisation snapshot"},
		{Name: "disk", Usage: "disk", Description: "disk usage of the working directory volume"},
		{Name: "ps", Usage: "ps", Description: "process listing with cpu share"},
	}
}

// Command returns the executable for the specified command
func (s *Service) Command(name string) (types.Executable, error) {
	switch name {
	case "cpu":
		return s.cpu, nil
	case "mem":
		return s.mem, nil
	case "disk":
		return s.disk, nil
	case "ps":
		return s.ps, nil
	default:
		return nil, types.NewCommandNotFoundError(name)
	}
}

func (s *Service) cpu(ctx context.Context, request *types.Request) (*types.Response, error) {
	percents, err := s.cpuPercent(ctx, s.sampleInterval)
	if err != nil || len(percents) == 0 {
		return nil, types.NewUnavailableError("cpu counters", err)
	}
	return &types.Response{Text: fmt.Sprintf("CPU: %.1f%%", percents[0])}, nil
}

func (s *Service) mem(ctx context.Context, request *types.Request) (*types.Response, error) {
	stat, err := s.virtualMemory(ctx)
	if err != nil {
		return nil, types.NewUnavailableError("memory counters", err)
	}
	const mb = 1024 * 1024
	text := fmt.Sprintf("Memory: %.1f%% (%dMB used of %dMB)",
		stat.UsedPercent, stat.Used/mb, stat.Total/mb)
	return &types.Response{Text: text}, nil
}

func (s *Service) disk(ctx context.Context, request *types.Request) (*types.Response, error) {
	stat, err := s.diskUsage(ctx, request.Cwd)
	if err != nil {
		return nil, types.NewUnavailableError("disk counters", err)
	}
	const gb = 1024 * 1024 * 1024
	text := fmt.Sprintf("Disk: %.1f%% (%dGB used of %dGB)",
		stat.UsedPercent, stat.Used/gb, stat.Total/gb)
	return &types.Response{Text: text}, nil
}

func (s *Service) ps(ctx context.Context, request *types.Request) (*types.Response, error) {
	rows, err := s.processes(ctx)
	if err != nil {
		return nil, types.NewUnavailableError("process table", err)
	}
	builder := &strings.Builder{}
	for i, row := range rows {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(fmt.Sprintf("%6d %-25.25s %-15.15s %5.1f", row.pid, row.name, row.user, row.cpu))
	}
	return &types.Response{Text: builder.String()}, nil
}
