// Package sysinfo collects host metrics via gopsutil.
package sysinfo

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	gopsnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"

	"github.com/ahmedw/folio/ports"
)

// Collector implements ports.SystemInfo using gopsutil. Partial failures
// (no temperature sensor, unreadable mount) degrade to missing fields
// rather than failing the whole snapshot.
type Collector struct {
	logger zerolog.Logger
}

// NewCollector creates a host metrics collector.
func NewCollector(logger zerolog.Logger) *Collector {
	return &Collector{logger: logger}
}

// Snapshot gathers a point-in-time view of host resources.
func (c *Collector) Snapshot(ctx context.Context) (ports.SystemSnapshot, error) {
	var snap ports.SystemSnapshot

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return snap, err
	}
	snap.Hostname = info.Hostname
	snap.Platform = info.OS
	snap.Arch = info.KernelArch

	if usage, err := cpu.PercentWithContext(ctx, 0, true); err == nil {
		snap.CPUUsage = roundAll(usage)
	} else {
		c.logger.Warn().Err(err).Msg("cpu usage unavailable")
	}

	snap.CPUTemp = c.cpuTemp(ctx)

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		snap.MemTotalGB = toGB(vm.Total)
		snap.MemUsedGB = toGB(vm.Used)
		snap.MemFreeGB = toGB(vm.Available)
	} else {
		c.logger.Warn().Err(err).Msg("memory stats unavailable")
	}

	snap.Storage, snap.TotalStorage = c.storage(ctx)
	snap.Network = c.network(ctx)

	return snap, nil
}

// cpuTemp returns the CPU temperature when a known sensor exposes one.
func (c *Collector) cpuTemp(ctx context.Context) *float64 {
	temps, err := sensors.TemperaturesWithContext(ctx)
	if err != nil {
		return nil
	}
	for _, t := range temps {
		key := strings.ToLower(t.SensorKey)
		if strings.Contains(key, "cpu") || strings.Contains(key, "coretemp") || strings.Contains(key, "k10temp") {
			v := round1(t.Temperature)
			return &v
		}
	}
	return nil
}

func (c *Collector) storage(ctx context.Context) ([]ports.MountUsage, ports.MountUsage) {
	total := ports.MountUsage{MountPoint: "total"}

	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		c.logger.Warn().Err(err).Msg("disk partitions unavailable")
		return nil, total
	}

	var mounts []ports.MountUsage
	for _, p := range parts {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || usage.Total == 0 {
			continue
		}
		m := ports.MountUsage{
			MountPoint: p.Mountpoint,
			TotalGB:    toGB(usage.Total),
			UsedGB:     toGB(usage.Used),
			FreeGB:     toGB(usage.Free),
		}
		mounts = append(mounts, m)
		total.TotalGB += m.TotalGB
		total.UsedGB += m.UsedGB
		total.FreeGB += m.FreeGB
	}
	return mounts, total
}

func (c *Collector) network(ctx context.Context) []ports.NetworkInterface {
	ifaces, err := gopsnet.InterfacesWithContext(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("network interfaces unavailable")
		return nil
	}

	var out []ports.NetworkInterface
	for _, iface := range ifaces {
		var up, loopback bool
		for _, f := range iface.Flags {
			switch f {
			case "up":
				up = true
			case "loopback":
				loopback = true
			}
		}
		if loopback {
			continue
		}
		ni := ports.NetworkInterface{Name: iface.Name, Up: up}
		for _, addr := range iface.Addrs {
			ip := strings.SplitN(addr.Addr, "/", 2)[0]
			if strings.Count(ip, ".") == 3 {
				ni.IPv4 = ip
				break
			}
		}
		out = append(out, ni)
	}
	return out
}

func toGB(b uint64) float64 {
	return math.Round(float64(b)/(1<<30)*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = round1(v)
	}
	return out
}

// Ensure interface compliance.
var _ ports.SystemInfo = (*Collector)(nil)
