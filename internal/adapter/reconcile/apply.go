package reconcile

import (
	"context"
	"net"

	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/pkg/topology"
	"golang-netreconcile/internal/types"

	"github.com/vishvananda/netlink"
)

// Mutation operation names, also used as metric labels.
const (
	opCreateBond      = "create_bond"
	opCreateVLAN      = "create_vlan"
	opCreateBridge    = "create_bridge"
	opCreateOVSBridge = "create_ovs_bridge"
	opSetDatapathID   = "set_datapath_id"
	opEnslave         = "enslave"
	opOVSAddPort      = "ovs_add_port"
	opOVSDelPort      = "ovs_del_port"
	opRelease         = "release"
	opDestroy         = "destroy"
	opLinkUp          = "link_up"
	opLinkDown        = "link_down"
	opSetMTU          = "set_mtu"
	opAddAddress      = "add_address"
	opDelAddress      = "del_address"
	opAddRoute        = "add_route"
	opDelRoute        = "del_route"
	opLookup          = "lookup"
)

func (m *Manager) applyActions(ctx context.Context, actions []topology.Action) error {
	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		logging.WithComponentAndInterface("reconcile", a.Interface).Info(a.String())
		if err := m.apply(a); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) apply(a topology.Action) error {
	switch a.Kind {
	case topology.ActionRelease:
		return m.release(a.Interface, a.From, a.FromOVS)

	case topology.ActionDestroy:
		return m.destroy(a.Interface, a.Type)

	case topology.ActionCreateBond:
		bond := netlink.NewLinkBond(netlink.LinkAttrs{Name: a.Interface})
		bond.Mode = netlink.StringToBondMode(a.BondMode)
		bond.Miimon = a.Miimon
		switch bond.Mode {
		case netlink.BOND_MODE_BALANCE_XOR, netlink.BOND_MODE_802_3AD, netlink.BOND_MODE_BALANCE_TLB:
			bond.XmitHashPolicy = netlink.StringToBondXmitHashPolicy(a.XmitHashPolicy)
		}
		return m.mutate(opCreateBond, a.Interface, func() error { return m.network.AddLink(bond) })

	case topology.ActionCreateVLAN:
		parent, err := m.link(a.Parent)
		if err != nil {
			return err
		}
		vlan := &netlink.Vlan{
			LinkAttrs: netlink.LinkAttrs{Name: a.Interface, ParentIndex: parent.Attrs().Index},
			VlanId:    a.VLANID,
		}
		return m.mutate(opCreateVLAN, a.Interface, func() error { return m.network.AddLink(vlan) })

	case topology.ActionCreateBridge:
		br := &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: a.Interface}}
		return m.mutate(opCreateBridge, a.Interface, func() error { return m.network.AddLink(br) })

	case topology.ActionCreateOVSBridge:
		if err := m.mutate(opCreateOVSBridge, a.Interface, func() error { return m.ovs.AddBridge(a.Interface) }); err != nil {
			return err
		}
		if a.DatapathID == "" {
			return nil
		}
		return m.mutate(opSetDatapathID, a.Interface, func() error { return m.ovs.SetDatapathID(a.Interface, a.DatapathID) })

	case topology.ActionSetDatapathID:
		return m.mutate(opSetDatapathID, a.Interface, func() error { return m.ovs.SetDatapathID(a.Interface, a.DatapathID) })

	case topology.ActionEnslave:
		if a.From != "" {
			if err := m.release(a.Interface, a.From, a.FromOVS); err != nil {
				return err
			}
		}
		link, err := m.link(a.Interface)
		if err != nil {
			return err
		}
		if a.Down && link.Attrs().Flags&net.FlagUp != 0 {
			if err := m.mutate(opLinkDown, a.Interface, func() error { return m.network.SetLinkDown(link) }); err != nil {
				return err
			}
		}
		master, err := m.link(a.Master)
		if err != nil {
			return err
		}
		return m.mutate(opEnslave, a.Interface, func() error { return m.network.SetLinkMaster(link, master) })

	case topology.ActionOVSAddPort:
		if a.From != "" {
			if err := m.release(a.Interface, a.From, a.FromOVS); err != nil {
				return err
			}
		}
		return m.mutate(opOVSAddPort, a.Interface, func() error { return m.ovs.AddPort(a.Master, a.Interface) })
	}

	logging.WithComponentAndInterface("reconcile", a.Interface).Warnf("Unknown action %q ignored", a.Kind)
	return nil
}

// release detaches iface from its current master.
func (m *Manager) release(iface, from string, fromOVS bool) error {
	if fromOVS {
		return m.mutate(opOVSDelPort, iface, func() error { return m.ovs.DeletePort(from, iface) })
	}
	link, err := m.link(iface)
	if err != nil {
		return err
	}
	return m.mutate(opRelease, iface, func() error { return m.network.SetLinkNoMaster(link) })
}

// destroy removes a virtual interface.
func (m *Manager) destroy(iface string, typ types.InterfaceType) error {
	if typ == types.TypeOVSBridge {
		return m.mutate(opDestroy, iface, func() error { return m.ovs.DeleteBridge(iface) })
	}
	link, err := m.link(iface)
	if err != nil {
		return err
	}
	return m.mutate(opDestroy, iface, func() error { return m.network.DeleteLink(link) })
}

func (m *Manager) link(name string) (netlink.Link, error) {
	link, err := m.network.GetLinkByName(name)
	if err != nil {
		return nil, &types.OperationError{Op: opLookup, Interface: name, Err: err}
	}
	return link, nil
}
