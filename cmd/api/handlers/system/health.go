package handlers

import (
	"context"
	"net/http"
	"time"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Check probes one dependency.
type Check func(ctx context.Context) error

var (
	required = map[string]Check{}
	optional = map[string]Check{}
)

// Init registers the dependencies /health reports on. A failing required
// check turns the answer into 503.
func Init(requiredChecks, optionalChecks map[string]Check) {
	required = requiredChecks
	optional = optionalChecks
}

type HostStats struct {
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float64 `json:"memoryPercent"`
}

type HealthStatus struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Host         *HostStats        `json:"host,omitempty"`
}

// Health GET /health
func Health(ctx context.Context, c *app.RequestContext) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{Status: "ok", Dependencies: map[string]string{}}
	healthy := true
	run := func(name string, check Check, must bool) {
		if err := check(ctx); err != nil {
			hlog.CtxWarnf(ctx, "health check %s failed: %v", name, err)
			status.Dependencies[name] = "down"
			if must {
				healthy = false
			} else {
				status.Status = "degraded"
			}
			return
		}
		status.Dependencies[name] = "up"
	}
	for name, check := range required {
		run(name, check, true)
	}
	for name, check := range optional {
		run(name, check, false)
	}

	if !healthy {
		response.SendError(ctx, c, errno.UnavailableErr)
		return
	}
	status.Host = hostStats()
	response.SendResponse(c, http.StatusOK, "Service is healthy", status)
}

func hostStats() *HostStats {
	stats := &HostStats{}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
	}
	return stats
}
