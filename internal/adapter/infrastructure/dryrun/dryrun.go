// Package dryrun wraps the mutating ports so that reads reach the real
// system while every change is only logged and recorded.
package dryrun

import (
	"fmt"
	"sync"

	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/port"

	"github.com/vishvananda/netlink"
)

// Recorder collects the operations that would have been performed.
type Recorder struct {
	mu      sync.Mutex
	ops     []string
	created map[string]bool
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{created: map[string]bool{}}
}

func (r *Recorder) log(format string, args ...any) {
	op := fmt.Sprintf(format, args...)
	r.mu.Lock()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
	logging.WithComponent("dry-run").Info(op)
}

func (r *Recorder) markCreated(name string, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created[name] = created
}

func (r *Recorder) wasCreated(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created[name]
}

// Ops returns the recorded operations in order.
func (r *Recorder) Ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ops...)
}

// NetworkManager forwards reads to Inner and records writes.
type NetworkManager struct {
	Inner port.NetworkManager
	rec   *Recorder
}

var _ port.NetworkManager = (*NetworkManager)(nil)

// NewNetworkManager wraps inner.
func NewNetworkManager(inner port.NetworkManager, rec *Recorder) *NetworkManager {
	return &NetworkManager{Inner: inner, rec: rec}
}

func (n *NetworkManager) ListLinks() ([]netlink.Link, error) { return n.Inner.ListLinks() }

// GetLinkByName also resolves links that were only pretended into existence.
func (n *NetworkManager) GetLinkByName(name string) (netlink.Link, error) {
	link, err := n.Inner.GetLinkByName(name)
	if err != nil && n.rec.wasCreated(name) {
		return &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: name}}, nil
	}
	return link, err
}

func (n *NetworkManager) AddLink(link netlink.Link) error {
	n.rec.log("ip link add %s type %s", link.Attrs().Name, link.Type())
	n.rec.markCreated(link.Attrs().Name, true)
	return nil
}

func (n *NetworkManager) DeleteLink(link netlink.Link) error {
	n.rec.log("ip link del %s", link.Attrs().Name)
	n.rec.markCreated(link.Attrs().Name, false)
	return nil
}

func (n *NetworkManager) SetLinkUp(link netlink.Link) error {
	n.rec.log("ip link set %s up", link.Attrs().Name)
	return nil
}

func (n *NetworkManager) SetLinkDown(link netlink.Link) error {
	n.rec.log("ip link set %s down", link.Attrs().Name)
	return nil
}

func (n *NetworkManager) SetLinkMTU(link netlink.Link, mtu int) error {
	n.rec.log("ip link set %s mtu %d", link.Attrs().Name, mtu)
	return nil
}

func (n *NetworkManager) SetLinkMaster(link, master netlink.Link) error {
	n.rec.log("ip link set %s master %s", link.Attrs().Name, master.Attrs().Name)
	return nil
}

func (n *NetworkManager) SetLinkNoMaster(link netlink.Link) error {
	n.rec.log("ip link set %s nomaster", link.Attrs().Name)
	return nil
}

func (n *NetworkManager) ListAddresses(link netlink.Link) ([]netlink.Addr, error) {
	if n.rec.wasCreated(link.Attrs().Name) {
		return nil, nil
	}
	return n.Inner.ListAddresses(link)
}

func (n *NetworkManager) AddAddress(link netlink.Link, addr *netlink.Addr) error {
	n.rec.log("ip addr add %s dev %s", addr.IPNet, link.Attrs().Name)
	return nil
}

func (n *NetworkManager) DeleteAddress(link netlink.Link, addr *netlink.Addr) error {
	n.rec.log("ip addr del %s dev %s", addr.IPNet, link.Attrs().Name)
	return nil
}

func (n *NetworkManager) ListRoutes() ([]netlink.Route, error) { return n.Inner.ListRoutes() }

func (n *NetworkManager) AddRoute(route *netlink.Route) error {
	n.rec.log("ip route add default via %s dev-index %d", route.Gw, route.LinkIndex)
	return nil
}

func (n *NetworkManager) DeleteRoute(route *netlink.Route) error {
	n.rec.log("ip route del default via %s dev-index %d", route.Gw, route.LinkIndex)
	return nil
}

// OVSManager forwards reads to Inner and records writes.
type OVSManager struct {
	Inner port.OVSManager
	rec   *Recorder
}

var _ port.OVSManager = (*OVSManager)(nil)

// NewOVSManager wraps inner.
func NewOVSManager(inner port.OVSManager, rec *Recorder) *OVSManager {
	return &OVSManager{Inner: inner, rec: rec}
}

func (o *OVSManager) ListBridges() ([]string, error) { return o.Inner.ListBridges() }
func (o *OVSManager) GetDatapathID(bridge string) (string, error) {
	if o.rec.wasCreated(bridge) {
		return "", nil
	}
	return o.Inner.GetDatapathID(bridge)
}

func (o *OVSManager) ListPorts(bridge string) ([]string, error) {
	if o.rec.wasCreated(bridge) {
		return nil, nil
	}
	return o.Inner.ListPorts(bridge)
}

func (o *OVSManager) AddBridge(bridge string) error {
	o.rec.log("ovs-vsctl --may-exist add-br %s", bridge)
	o.rec.markCreated(bridge, true)
	return nil
}

func (o *OVSManager) DeleteBridge(bridge string) error {
	o.rec.log("ovs-vsctl --if-exists del-br %s", bridge)
	o.rec.markCreated(bridge, false)
	return nil
}

func (o *OVSManager) SetDatapathID(bridge, id string) error {
	o.rec.log("ovs-vsctl set bridge %s other-config:datapath-id=%s", bridge, id)
	return nil
}

func (o *OVSManager) AddPort(bridge, portName string) error {
	o.rec.log("ovs-vsctl --may-exist add-port %s %s", bridge, portName)
	return nil
}

func (o *OVSManager) DeletePort(bridge, portName string) error {
	o.rec.log("ovs-vsctl --if-exists del-port %s %s", bridge, portName)
	return nil
}
