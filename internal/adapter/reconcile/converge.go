package reconcile

import (
	"context"
	"net"
	"sort"
	"strings"

	"golang-netreconcile/internal/adapter/inventory"
	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/pkg/topology"
	"golang-netreconcile/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
)

// parents before children
var convergeRank = map[types.InterfaceType]int{
	types.TypePhysical:  0,
	types.TypeBond:      1,
	types.TypeVLAN:      2,
	types.TypeBridge:    3,
	types.TypeOVSBridge: 4,
}

func convergeOrder(desired types.InterfaceMap) []*types.InterfaceRecord {
	recs := make([]*types.InterfaceRecord, 0, len(desired))
	for _, name := range desired.Names() {
		recs = append(recs, desired[name])
	}
	rank := func(t types.InterfaceType) int {
		if r, ok := convergeRank[t]; ok {
			return r
		}
		return len(convergeRank)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return rank(recs[i].Type) < rank(recs[j].Type)
	})
	return recs
}

// converge brings every desired interface up with its MTU and addresses,
// then settles the default route.
func (m *Manager) converge(ctx context.Context, plan *topology.Plan, live *types.LiveState) error {
	for _, rec := range convergeOrder(plan.Interfaces) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if rec.Unmanaged {
			logging.WithComponentAndInterface("reconcile", rec.Name).Debug("Skipping externally managed interface")
			continue
		}
		obs, _ := live.Get(rec.Name)
		if obs == nil {
			obs = &types.ObservedInterface{Name: rec.Name}
		}
		if err := m.convergeInterface(rec, obs); err != nil {
			return err
		}
	}

	if plan.DefaultRoute == nil {
		return nil
	}
	if rec, ok := plan.Interfaces[plan.DefaultRoute.Interface]; ok && rec.Unmanaged {
		return nil
	}
	return m.convergeDefaultRoute(plan.DefaultRoute)
}

func (m *Manager) convergeInterface(rec *types.InterfaceRecord, obs *types.ObservedInterface) error {
	var link netlink.Link
	getLink := func() (netlink.Link, error) {
		if link != nil {
			return link, nil
		}
		var err error
		link, err = m.link(rec.Name)
		return link, err
	}

	logger := logging.WithComponentAndInterface("reconcile", rec.Name)

	if rec.MTU > 0 && obs.MTU != rec.MTU {
		l, err := getLink()
		if err != nil {
			return err
		}
		logger.WithField("mtu", rec.MTU).Info("Setting MTU")
		if err := m.mutate(opSetMTU, rec.Name, func() error { return m.network.SetLinkMTU(l, rec.MTU) }); err != nil {
			return err
		}
	}

	if !obs.Up {
		l, err := getLink()
		if err != nil {
			return err
		}
		logger.Info("Bringing interface up")
		if err := m.mutate(opLinkUp, rec.Name, func() error { return m.network.SetLinkUp(l) }); err != nil {
			return err
		}
	}

	want := make(map[string]bool, len(rec.Addresses))
	for _, a := range rec.Addresses {
		want[a] = true
	}

	for _, cidr := range obs.Addresses {
		if want[cidr] || isLinkLocalV6(cidr) {
			continue
		}
		addr, err := netlink.ParseAddr(cidr)
		if err != nil {
			logger.WithError(err).WithField("address", cidr).Warn("Cannot parse observed address")
			continue
		}
		l, err := getLink()
		if err != nil {
			return err
		}
		logger.WithField("address", cidr).Info("Removing address")
		if err := m.mutate(opDelAddress, rec.Name, func() error { return m.network.DeleteAddress(l, addr) }); err != nil {
			return err
		}
	}

	for _, cidr := range rec.Addresses {
		if obs.HasAddress(cidr) {
			continue
		}
		addr, err := netlink.ParseAddr(cidr)
		if err != nil {
			return types.Configurationf("%s: invalid address %q", rec.Name, cidr)
		}
		l, err := getLink()
		if err != nil {
			return err
		}
		logger.WithField("address", cidr).Info("Adding address")
		if err := m.mutate(opAddAddress, rec.Name, func() error { return m.network.AddAddress(l, addr) }); err != nil {
			return err
		}
	}
	return nil
}

// convergeDefaultRoute leaves exactly one default route, via sel.
func (m *Manager) convergeDefaultRoute(sel *types.DefaultRouteSelection) error {
	logger := logging.WithNetwork(sel.Network).WithFields(logrus.Fields{
		"component": "reconcile",
		"interface": sel.Interface,
		"gateway":   sel.Gateway,
	})

	gw := net.ParseIP(sel.Gateway)
	if gw == nil {
		return types.Configurationf("invalid gateway %q", sel.Gateway)
	}
	link, err := m.link(sel.Interface)
	if err != nil {
		return err
	}
	index := link.Attrs().Index

	routes, err := m.network.ListRoutes()
	if err != nil {
		return &types.OperationError{Op: "list routes", Interface: sel.Interface, Err: err}
	}

	present := false
	for i := range routes {
		r := routes[i]
		if !inventory.IsDefaultRoute(r) {
			continue
		}
		if r.LinkIndex == index && r.Gw != nil && r.Gw.Equal(gw) && !present {
			present = true
			continue
		}
		logger.WithField("existing_gateway", r.Gw.String()).Info("Removing conflicting default route")
		if err := m.mutate(opDelRoute, sel.Interface, func() error { return m.network.DeleteRoute(&r) }); err != nil {
			return err
		}
	}

	if present {
		logger.Debug("Default route already configured")
		return nil
	}

	route := &netlink.Route{LinkIndex: index, Gw: gw}
	err = m.mutate(opAddRoute, sel.Interface, func() error { return m.network.AddRoute(route) })
	if err != nil && strings.Contains(err.Error(), "file exists") {
		logger.Debug("Default route already exists, ignoring error")
		return nil
	}
	if err == nil {
		logger.Info("Configured default route")
	}
	return err
}

func isLinkLocalV6(cidr string) bool {
	ip, _, err := net.ParseCIDR(cidr)
	return err == nil && ip.To4() == nil && ip.IsLinkLocalUnicast()
}
