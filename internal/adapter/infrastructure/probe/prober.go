// Package probe checks host reachability with ICMP echo.
package probe

import (
	"context"
	"fmt"
	"time"

	"golang-netreconcile/internal/port"

	probing "github.com/prometheus-community/pro-bing"
)

// ProberAdapter implements the ReachabilityProber port with pro-bing.
type ProberAdapter struct {
	timeout    time.Duration
	privileged bool
}

var _ port.ReachabilityProber = (*ProberAdapter)(nil)

// NewProberAdapter creates a prober sending one echo request per probe.
// Privileged mode uses raw sockets and needs CAP_NET_RAW.
func NewProberAdapter(timeout time.Duration, privileged bool) *ProberAdapter {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &ProberAdapter{timeout: timeout, privileged: privileged}
}

// Probe returns nil when target answered.
func (p *ProberAdapter) Probe(ctx context.Context, target string) error {
	pinger, err := probing.NewPinger(target)
	if err != nil {
		return fmt.Errorf("failed to create pinger: %w", err)
	}

	pinger.Count = 1
	pinger.Timeout = p.timeout
	pinger.SetPrivileged(p.privileged)

	if err := pinger.RunWithContext(ctx); err != nil {
		return err
	}
	if pinger.Statistics().PacketsRecv == 0 {
		return fmt.Errorf("no reply from %s", target)
	}
	return nil
}
