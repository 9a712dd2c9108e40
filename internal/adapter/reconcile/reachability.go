package reconcile

import (
	"context"
	"time"

	"golang-netreconcile/internal/pkg/logging"
)

// waitReachable probes the administrative target a bounded number of times.
// Giving up is logged, never returned.
func (m *Manager) waitReachable(ctx context.Context) {
	target := m.cfg.Reachability.Target
	if m.prober == nil || target == "" {
		return
	}
	logger := logging.WithComponent("reachability").WithField("target", target)

	attempts := m.cfg.Reachability.Attempts
	for i := 1; i <= attempts; i++ {
		err := m.prober.Probe(ctx, target)
		if err == nil {
			logger.WithField("attempt", i).Info("Target is reachable")
			return
		}
		logger.WithError(err).WithField("attempt", i).Debug("Target not reachable yet")

		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(m.cfg.Reachability.Interval):
		}
	}
	logger.WithField("attempts", attempts).Warn("Target still unreachable, continuing anyway")
}
