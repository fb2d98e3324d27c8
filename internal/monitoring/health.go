package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/oneirolab/dreamflow/internal/clients"
)

const HEALTHCHECK_TIMER = 15

// MonitorComposerHealth pings the OpenAI API on an interval so the
// interpretation consumer knows when completions are likely to fall back.
// A disabled client reads as permanently unhealthy.
func MonitorComposerHealth(ctx context.Context, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			oc := clients.GetOpenAIClient()
			if !oc.Enabled {
				healthy.Store(false)
				continue
			}

			pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			_, err := oc.Client.ListModels(pingCtx)
			cancel()

			isHealthy := err == nil
			healthy.Store(isHealthy)
			if !isHealthy {
				slog.Warn("[HealthCheck] Composer is unhealthy",
					slog.String("error", err.Error()))
			}
		}
	}
}
