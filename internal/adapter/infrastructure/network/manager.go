// Package network provides network management adapter implementation.
package network

import (
	"fmt"

	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/port"

	"github.com/vishvananda/netlink"
	"github.com/vishvananda/netns"
)

// ManagerAdapter is an adapter that implements the NetworkManager port using vishvananda/netlink library.
// All requests go through one netlink handle, bound to a named network
// namespace when one is configured.
type ManagerAdapter struct {
	handle *netlink.Handle
	ns     netns.NsHandle
}

// Ensure ManagerAdapter implements the NetworkManager port
var _ port.NetworkManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new network manager adapter. An empty nsName
// uses the namespace of the calling process.
func NewManagerAdapter(nsName string) (*ManagerAdapter, error) {
	if nsName == "" {
		h, err := netlink.NewHandle()
		if err != nil {
			return nil, fmt.Errorf("failed to open netlink handle: %w", err)
		}
		return &ManagerAdapter{handle: h, ns: netns.None()}, nil
	}

	ns, err := netns.GetFromName(nsName)
	if err != nil {
		return nil, fmt.Errorf("failed to open network namespace %s: %w", nsName, err)
	}
	h, err := netlink.NewHandleAt(ns)
	if err != nil {
		ns.Close()
		return nil, fmt.Errorf("failed to open netlink handle in %s: %w", nsName, err)
	}
	logging.WithComponent("netlink").WithField("netns", nsName).Debug("Bound to network namespace")
	return &ManagerAdapter{handle: h, ns: ns}, nil
}

// Close releases the netlink handle and namespace.
func (n *ManagerAdapter) Close() error {
	n.handle.Close()
	if n.ns.IsOpen() {
		return n.ns.Close()
	}
	return nil
}

// ListLinks returns every link in the namespace.
func (n *ManagerAdapter) ListLinks() ([]netlink.Link, error) {
	links, err := n.handle.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// GetLinkByName returns a network link by interface name.
func (n *ManagerAdapter) GetLinkByName(interfaceName string) (netlink.Link, error) {
	link, err := n.handle.LinkByName(interfaceName)
	if err != nil {
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}
	return link, nil
}

// AddLink creates a virtual link.
func (n *ManagerAdapter) AddLink(link netlink.Link) error {
	if err := n.handle.LinkAdd(link); err != nil {
		return fmt.Errorf("failed to add %s link %s: %w", link.Type(), link.Attrs().Name, err)
	}
	return nil
}

// DeleteLink destroys a virtual link.
func (n *ManagerAdapter) DeleteLink(link netlink.Link) error {
	if err := n.handle.LinkDel(link); err != nil {
		return fmt.Errorf("failed to delete link %s: %w", link.Attrs().Name, err)
	}
	return nil
}

// SetLinkUp brings the interface up.
func (n *ManagerAdapter) SetLinkUp(link netlink.Link) error {
	if err := n.handle.LinkSetUp(link); err != nil {
		return fmt.Errorf("failed to set link up: %w", err)
	}
	return nil
}

// SetLinkDown brings the interface down.
func (n *ManagerAdapter) SetLinkDown(link netlink.Link) error {
	if err := n.handle.LinkSetDown(link); err != nil {
		return fmt.Errorf("failed to set link down: %w", err)
	}
	return nil
}

// SetLinkMTU sets the interface MTU.
func (n *ManagerAdapter) SetLinkMTU(link netlink.Link, mtu int) error {
	if err := n.handle.LinkSetMTU(link, mtu); err != nil {
		return fmt.Errorf("failed to set mtu %d: %w", mtu, err)
	}
	return nil
}

// SetLinkMaster enslaves link into master.
func (n *ManagerAdapter) SetLinkMaster(link, master netlink.Link) error {
	if err := n.handle.LinkSetMaster(link, master); err != nil {
		return fmt.Errorf("failed to set master %s: %w", master.Attrs().Name, err)
	}
	return nil
}

// SetLinkNoMaster releases link from its master.
func (n *ManagerAdapter) SetLinkNoMaster(link netlink.Link) error {
	if err := n.handle.LinkSetNoMaster(link); err != nil {
		return fmt.Errorf("failed to release from master: %w", err)
	}
	return nil
}

// ListAddresses returns IPv4 and IPv6 addresses configured on the link.
func (n *ManagerAdapter) ListAddresses(link netlink.Link) ([]netlink.Addr, error) {
	addrs, err := n.handle.AddrList(link, netlink.FAMILY_ALL)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addrs, nil
}

// AddAddress adds an IP address to the interface.
func (n *ManagerAdapter) AddAddress(link netlink.Link, addr *netlink.Addr) error {
	if err := n.handle.AddrAdd(link, addr); err != nil {
		return fmt.Errorf("failed to add address %s: %w", addr.IPNet.String(), err)
	}
	return nil
}

// DeleteAddress removes an IP address from the interface.
func (n *ManagerAdapter) DeleteAddress(link netlink.Link, addr *netlink.Addr) error {
	if err := n.handle.AddrDel(link, addr); err != nil {
		return fmt.Errorf("failed to delete address %s: %w", addr.IPNet.String(), err)
	}
	return nil
}

// ListRoutes returns IPv4 routes.
func (n *ManagerAdapter) ListRoutes() ([]netlink.Route, error) {
	routes, err := n.handle.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// AddRoute adds a route.
func (n *ManagerAdapter) AddRoute(route *netlink.Route) error {
	if err := n.handle.RouteAdd(route); err != nil {
		return fmt.Errorf("failed to add route: %w", err)
	}
	return nil
}

// DeleteRoute removes a route.
func (n *ManagerAdapter) DeleteRoute(route *netlink.Route) error {
	if err := n.handle.RouteDel(route); err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}
	return nil
}
