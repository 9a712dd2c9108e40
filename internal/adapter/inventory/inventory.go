// Package inventory builds snapshots of the live interfaces from netlink and
// Open vSwitch.
package inventory

import (
	"context"
	"fmt"
	"net"

	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/port"
	"golang-netreconcile/internal/types"

	"github.com/vishvananda/netlink"
)

// Inventory implements the InterfaceInventory port.
type Inventory struct {
	network port.NetworkManager
	ovs     port.OVSManager
}

var _ port.InterfaceInventory = (*Inventory)(nil)

// New creates an inventory reading from network and ovs.
func New(network port.NetworkManager, ovs port.OVSManager) *Inventory {
	return &Inventory{network: network, ovs: ovs}
}

// Fetch returns a fresh snapshot. Nothing is cached between calls.
func (i *Inventory) Fetch(ctx context.Context) (*types.LiveState, error) {
	links, err := i.network.ListLinks()
	if err != nil {
		return nil, err
	}
	bridges, err := i.ovs.ListBridges()
	if err != nil {
		return nil, err
	}
	isOVSBridge := make(map[string]bool, len(bridges))
	for _, b := range bridges {
		isOVSBridge[b] = true
	}

	byIndex := make(map[int]*types.ObservedInterface, len(links))
	observed := make([]*types.ObservedInterface, 0, len(links))
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		o, err := i.observe(link, isOVSBridge)
		if err != nil {
			return nil, err
		}
		byIndex[o.Index] = o
		observed = append(observed, o)
	}

	// Masters and parents are only known by index until every link is read.
	for _, link := range links {
		attrs := link.Attrs()
		o := byIndex[attrs.Index]
		if m, ok := byIndex[attrs.MasterIndex]; ok && m.Kind != "openvswitch" {
			o.Master = m.Name
		}
		if p, ok := byIndex[attrs.ParentIndex]; ok && o.Type == types.TypeVLAN {
			o.Parent = p.Name
		}
	}

	// OVS ports point at the datapath device; the bridge comes from ovsdb.
	byName := make(map[string]*types.ObservedInterface, len(observed))
	for _, o := range observed {
		byName[o.Name] = o
	}
	for _, b := range bridges {
		ports, err := i.ovs.ListPorts(b)
		if err != nil {
			return nil, err
		}
		for _, p := range ports {
			if o, ok := byName[p]; ok {
				o.Master = b
			}
		}
	}
	for _, o := range observed {
		if m, ok := byName[o.Master]; ok {
			m.Slaves = append(m.Slaves, o.Name)
		}
	}

	if err := i.attachGateways(byIndex); err != nil {
		return nil, err
	}

	logging.WithComponent("inventory").Debugf("Observed %d interfaces", len(observed))
	return types.NewLiveState(observed), nil
}

func (i *Inventory) observe(link netlink.Link, isOVSBridge map[string]bool) (*types.ObservedInterface, error) {
	attrs := link.Attrs()
	o := &types.ObservedInterface{
		Name:  attrs.Name,
		Index: attrs.Index,
		Kind:  link.Type(),
		Type:  Classify(link, isOVSBridge[attrs.Name]),
		MTU:   attrs.MTU,
		Up:    attrs.Flags&net.FlagUp != 0,
	}
	if vlan, ok := link.(*netlink.Vlan); ok {
		o.VLANID = vlan.VlanId
	}

	addrs, err := i.network.ListAddresses(link)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses of %s: %w", attrs.Name, err)
	}
	for _, a := range addrs {
		o.Addresses = append(o.Addresses, a.IPNet.String())
	}

	if o.Type == types.TypeOVSBridge {
		if o.DatapathID, err = i.ovs.GetDatapathID(attrs.Name); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (i *Inventory) attachGateways(byIndex map[int]*types.ObservedInterface) error {
	routes, err := i.network.ListRoutes()
	if err != nil {
		return err
	}
	for _, r := range routes {
		if !IsDefaultRoute(r) || r.Gw == nil {
			continue
		}
		if o, ok := byIndex[r.LinkIndex]; ok {
			o.Gateways = append(o.Gateways, r.Gw.String())
		}
	}
	return nil
}

// Classify maps a netlink link kind to an interface type.
func Classify(link netlink.Link, ovsBridge bool) types.InterfaceType {
	switch link.Type() {
	case "device":
		if link.Attrs().Flags&net.FlagLoopback != 0 {
			return types.TypeLoopback
		}
		return types.TypePhysical
	case "bond":
		return types.TypeBond
	case "vlan":
		return types.TypeVLAN
	case "bridge":
		return types.TypeBridge
	case "openvswitch":
		if ovsBridge {
			return types.TypeOVSBridge
		}
	}
	return types.TypeOther
}

// IsDefaultRoute reports whether r is a 0.0.0.0/0 route. Newer kernels and
// netlink versions report the destination as nil or as an explicit /0.
func IsDefaultRoute(r netlink.Route) bool {
	if r.Dst == nil {
		return true
	}
	ones, _ := r.Dst.Mask.Size()
	return ones == 0 && r.Dst.IP.IsUnspecified()
}
