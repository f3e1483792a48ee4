package workers

import (
	"chat-relay/contract"
	"chat-relay/domain/event"
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProcessStatsWorker samples the resources of the relay process together with the hub counters.
type ProcessStatsWorker struct {
	log            *slog.Logger
	stats          contract.IStatsProvider
	telemetryChan  chan event.Event
	metricInterval time.Duration
}

func NewProcessStatsWorker(
	log *slog.Logger,
	stats contract.IStatsProvider,
	telemetryChan chan event.Event,
	metricInterval time.Duration,
) *ProcessStatsWorker {
	return &ProcessStatsWorker{
		log:            log,
		stats:          stats,
		telemetryChan:  telemetryChan,
		metricInterval: metricInterval,
	}
}

func (w *ProcessStatsWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping process sampling")
			return nil
		case <-ticker.C:
			rss, cpu, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			hubStats := w.stats.Stats()
			evt := event.New(event.ProcessStatsType, event.ProcessStats{
				PID:         p.Pid,
				Cpu:         cpu,
				Ram:         rss,
				Goroutines:  runtime.NumGoroutine(),
				Subscribers: hubStats.Subscribers,
				Retained:    hubStats.Retained,
				Accepted:    hubStats.Accepted,
				Dropped:     hubStats.Dropped,
			})
			select {
			case <-ctx.Done():
				return nil
			case w.telemetryChan <- evt:
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		}
	}
}

// getSelfStats retrieves resident memory and CPU usage of the given process.
func getSelfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
