package reconcile

import (
	"context"

	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/types"

	"github.com/vishvananda/netlink"
)

// destroyStale tears down interfaces nothing wants any more, containers
// first. Physical NICs cannot be deleted and are flushed and set down.
func (m *Manager) destroyStale(ctx context.Context, stale []string, live *types.LiveState) error {
	for _, name := range stale {
		if err := ctx.Err(); err != nil {
			return err
		}
		obs, ok := live.Get(name)
		if !ok {
			continue
		}
		logger := logging.WithComponentAndInterface("reconcile", name).WithField("type", obs.Type)

		if obs.Type.IsVirtual() {
			logger.Info("Destroying stale interface")
			if err := m.destroy(name, obs.Type); err != nil {
				return err
			}
			continue
		}

		logger.Info("Deconfiguring stale interface")
		if err := m.deconfigure(obs); err != nil {
			return err
		}
	}

	if m.metrics != nil && len(stale) > 0 {
		m.metrics.StaleDestroyed(len(stale))
	}
	return nil
}

func (m *Manager) deconfigure(obs *types.ObservedInterface) error {
	link, err := m.link(obs.Name)
	if err != nil {
		return err
	}
	for _, cidr := range obs.Addresses {
		if isLinkLocalV6(cidr) {
			continue
		}
		addr, err := netlink.ParseAddr(cidr)
		if err != nil {
			continue
		}
		if err := m.mutate(opDelAddress, obs.Name, func() error { return m.network.DeleteAddress(link, addr) }); err != nil {
			return err
		}
	}
	if obs.Up {
		return m.mutate(opLinkDown, obs.Name, func() error { return m.network.SetLinkDown(link) })
	}
	return nil
}
