package hostinfo

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Summary is the extended host description printed by `whichpi info`.
type Summary struct {
	Hostname string
	Platform string
	Kernel   string
	Uptime   time.Duration
	CPUModel string
	CPUCores int
	RAMTotal uint64
}

// Collect gathers the host summary. Individual probes that fail leave their
// field at the zero value rather than failing the whole summary.
func Collect(ctx context.Context) Summary {
	var s Summary

	if hi, err := host.InfoWithContext(ctx); err == nil {
		s.Hostname = hi.Hostname
		s.Platform = hi.Platform
		if hi.PlatformVersion != "" {
			s.Platform += " " + hi.PlatformVersion
		}
		s.Kernel = hi.KernelVersion
		s.Uptime = time.Duration(hi.Uptime) * time.Second
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		s.RAMTotal = vm.Total
	}

	s.CPUModel = cpuModel(ctx)
	s.CPUCores = runtime.NumCPU()

	return s
}

// cpuModel returns a human-readable CPU identifier, falling back to GOARCH
// when the platform exposes no model name.
func cpuModel(ctx context.Context) string {
	infos, err := cpu.InfoWithContext(ctx)
	if err == nil && len(infos) > 0 {
		if infos[0].ModelName != "" {
			return infos[0].ModelName
		}
		if infos[0].VendorID != "" {
			return infos[0].VendorID
		}
	}
	return runtime.GOARCH
}
