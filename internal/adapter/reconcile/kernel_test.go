//go:build unit

package reconcile

import (
	"fmt"
	"net"
	"sort"

	"golang-netreconcile/internal/port"

	"github.com/vishvananda/netlink"
)

// fakeKernel is an in-memory network namespace with an OVS database. Every
// successful mutation is appended to ops.
type fakeKernel struct {
	links   map[string]netlink.Link
	addrs   map[string][]string
	routes  []netlink.Route
	bridges map[string][]string
	dpids   map[string]string
	next    int

	ops  []string
	fail map[string]error
	// dependants are removed together with the named link, the way the
	// kernel drops macvlans or veth peers with their lower device.
	dependants map[string][]string
}

var (
	_ port.NetworkManager = (*fakeKernel)(nil)
	_ port.OVSManager     = (*fakeKernel)(nil)
)

func newFakeKernel() *fakeKernel {
	k := &fakeKernel{
		links:   map[string]netlink.Link{},
		addrs:   map[string][]string{},
		bridges: map[string][]string{},
		dpids:   map[string]string{},
		next:    1,
		fail:    map[string]error{},
	}
	k.insert(&netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: "lo", MTU: 65536, Flags: net.FlagUp | net.FlagLoopback}})
	k.addrs["lo"] = []string{"127.0.0.1/8"}
	return k
}

func (k *fakeKernel) insert(l netlink.Link) {
	a := l.Attrs()
	a.Index = k.next
	k.next++
	if a.MTU == 0 {
		a.MTU = 1500
	}
	k.links[a.Name] = l
}

func (k *fakeKernel) byIndex(idx int) (netlink.Link, bool) {
	for _, l := range k.links {
		if l.Attrs().Index == idx {
			return l, true
		}
	}
	return nil, false
}

func (k *fakeKernel) mutate(op, detail string) error {
	if err := k.fail[op]; err != nil {
		return err
	}
	k.ops = append(k.ops, op+" "+detail)
	return nil
}

// setup helpers

func (k *fakeKernel) addNIC(name string, up bool, cidrs ...string) {
	d := &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: name}}
	if up {
		d.Flags = net.FlagUp
	}
	k.insert(d)
	k.addrs[name] = append(k.addrs[name], cidrs...)
}

func (k *fakeKernel) addDummy(name string) {
	k.insert(&netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: name, Flags: net.FlagUp}})
}

func (k *fakeKernel) addBridge(name string, ports ...string) {
	k.insert(&netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: name, Flags: net.FlagUp}})
	for _, p := range ports {
		k.links[p].Attrs().MasterIndex = k.links[name].Attrs().Index
	}
}

func (k *fakeKernel) addDefaultRoute(dev, gw string) {
	k.routes = append(k.routes, netlink.Route{LinkIndex: k.links[dev].Attrs().Index, Gw: net.ParseIP(gw)})
}

// assertion helpers

func (k *fakeKernel) exists(name string) bool {
	_, ok := k.links[name]
	return ok
}

func (k *fakeKernel) master(name string) string {
	for b, ports := range k.bridges {
		for _, p := range ports {
			if p == name {
				return b
			}
		}
	}
	if m, ok := k.byIndex(k.links[name].Attrs().MasterIndex); ok {
		return m.Attrs().Name
	}
	return ""
}

func (k *fakeKernel) up(name string) bool {
	return k.links[name].Attrs().Flags&net.FlagUp != 0
}

func (k *fakeKernel) mtu(name string) int {
	return k.links[name].Attrs().MTU
}

func (k *fakeKernel) defaultRoutes() []string {
	var out []string
	for _, r := range k.routes {
		if l, ok := k.byIndex(r.LinkIndex); ok {
			out = append(out, fmt.Sprintf("%s via %s", l.Attrs().Name, r.Gw))
		}
	}
	sort.Strings(out)
	return out
}

// NetworkManager

func (k *fakeKernel) ListLinks() ([]netlink.Link, error) {
	links := make([]netlink.Link, 0, len(k.links))
	for _, l := range k.links {
		links = append(links, l)
	}
	sort.Slice(links, func(i, j int) bool { return links[i].Attrs().Index < links[j].Attrs().Index })
	return links, nil
}

func (k *fakeKernel) GetLinkByName(name string) (netlink.Link, error) {
	l, ok := k.links[name]
	if !ok {
		return nil, fmt.Errorf("failed to get netlink interface %s: Link not found", name)
	}
	return l, nil
}

func (k *fakeKernel) AddLink(link netlink.Link) error {
	name := link.Attrs().Name
	if k.exists(name) {
		return fmt.Errorf("file exists")
	}
	if v, ok := link.(*netlink.Vlan); ok {
		if _, ok := k.byIndex(v.ParentIndex); !ok {
			return fmt.Errorf("no such device")
		}
	}
	if err := k.mutate("add_link", link.Type()+" "+name); err != nil {
		return err
	}
	k.insert(link)
	return nil
}

func (k *fakeKernel) DeleteLink(link netlink.Link) error {
	name := link.Attrs().Name
	l, ok := k.links[name]
	if !ok {
		return fmt.Errorf("no such device")
	}
	if err := k.mutate("del_link", name); err != nil {
		return err
	}
	k.remove(l)
	for _, dep := range k.dependants[name] {
		if d, ok := k.links[dep]; ok {
			k.remove(d)
		}
	}
	return nil
}

func (k *fakeKernel) remove(l netlink.Link) {
	idx := l.Attrs().Index
	delete(k.links, l.Attrs().Name)
	delete(k.addrs, l.Attrs().Name)
	for _, other := range k.links {
		if other.Attrs().MasterIndex == idx {
			other.Attrs().MasterIndex = 0
		}
		if v, ok := other.(*netlink.Vlan); ok && v.ParentIndex == idx {
			k.remove(v)
		}
	}
	routes := k.routes[:0]
	for _, r := range k.routes {
		if r.LinkIndex != idx {
			routes = append(routes, r)
		}
	}
	k.routes = routes
}

func (k *fakeKernel) SetLinkUp(link netlink.Link) error {
	if err := k.mutate("set_up", link.Attrs().Name); err != nil {
		return err
	}
	k.links[link.Attrs().Name].Attrs().Flags |= net.FlagUp
	return nil
}

func (k *fakeKernel) SetLinkDown(link netlink.Link) error {
	if err := k.mutate("set_down", link.Attrs().Name); err != nil {
		return err
	}
	k.links[link.Attrs().Name].Attrs().Flags &^= net.FlagUp
	return nil
}

func (k *fakeKernel) SetLinkMTU(link netlink.Link, mtu int) error {
	if err := k.mutate("set_mtu", fmt.Sprintf("%s %d", link.Attrs().Name, mtu)); err != nil {
		return err
	}
	k.links[link.Attrs().Name].Attrs().MTU = mtu
	return nil
}

func (k *fakeKernel) SetLinkMaster(link, master netlink.Link) error {
	s := k.links[link.Attrs().Name]
	m, ok := k.links[master.Attrs().Name]
	if !ok {
		return fmt.Errorf("no such device")
	}
	if _, bond := m.(*netlink.Bond); bond && s.Attrs().Flags&net.FlagUp != 0 {
		return fmt.Errorf("device or resource busy")
	}
	if err := k.mutate("set_master", s.Attrs().Name+" "+m.Attrs().Name); err != nil {
		return err
	}
	s.Attrs().MasterIndex = m.Attrs().Index
	return nil
}

func (k *fakeKernel) SetLinkNoMaster(link netlink.Link) error {
	if err := k.mutate("set_nomaster", link.Attrs().Name); err != nil {
		return err
	}
	k.links[link.Attrs().Name].Attrs().MasterIndex = 0
	return nil
}

func (k *fakeKernel) ListAddresses(link netlink.Link) ([]netlink.Addr, error) {
	var out []netlink.Addr
	for _, cidr := range k.addrs[link.Attrs().Name] {
		a, err := netlink.ParseAddr(cidr)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

func (k *fakeKernel) AddAddress(link netlink.Link, addr *netlink.Addr) error {
	name, cidr := link.Attrs().Name, addr.IPNet.String()
	for _, a := range k.addrs[name] {
		if a == cidr {
			return fmt.Errorf("file exists")
		}
	}
	if err := k.mutate("add_addr", name+" "+cidr); err != nil {
		return err
	}
	k.addrs[name] = append(k.addrs[name], cidr)
	return nil
}

func (k *fakeKernel) DeleteAddress(link netlink.Link, addr *netlink.Addr) error {
	name, cidr := link.Attrs().Name, addr.IPNet.String()
	for i, a := range k.addrs[name] {
		if a == cidr {
			if err := k.mutate("del_addr", name+" "+cidr); err != nil {
				return err
			}
			k.addrs[name] = append(k.addrs[name][:i], k.addrs[name][i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cannot assign requested address")
}

func (k *fakeKernel) ListRoutes() ([]netlink.Route, error) {
	return append([]netlink.Route(nil), k.routes...), nil
}

func (k *fakeKernel) AddRoute(route *netlink.Route) error {
	for _, r := range k.routes {
		if r.LinkIndex == route.LinkIndex && r.Gw.Equal(route.Gw) {
			return fmt.Errorf("file exists")
		}
	}
	if err := k.mutate("add_route", route.Gw.String()); err != nil {
		return err
	}
	k.routes = append(k.routes, *route)
	return nil
}

func (k *fakeKernel) DeleteRoute(route *netlink.Route) error {
	for i, r := range k.routes {
		if r.LinkIndex == route.LinkIndex && r.Gw.Equal(route.Gw) {
			if err := k.mutate("del_route", route.Gw.String()); err != nil {
				return err
			}
			k.routes = append(k.routes[:i], k.routes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no such process")
}

// OVSManager

func (k *fakeKernel) ListBridges() ([]string, error) {
	var out []string
	for b := range k.bridges {
		out = append(out, b)
	}
	sort.Strings(out)
	return out, nil
}

func (k *fakeKernel) ListPorts(bridge string) ([]string, error) {
	return append([]string(nil), k.bridges[bridge]...), nil
}

func (k *fakeKernel) AddBridge(bridge string) error {
	if err := k.mutate("ovs_add_br", bridge); err != nil {
		return err
	}
	if _, ok := k.bridges[bridge]; ok {
		return nil
	}
	if !k.exists("ovs-system") {
		k.insert(&netlink.GenericLink{LinkAttrs: netlink.LinkAttrs{Name: "ovs-system"}, LinkType: "openvswitch"})
	}
	k.insert(&netlink.GenericLink{LinkAttrs: netlink.LinkAttrs{Name: bridge}, LinkType: "openvswitch"})
	k.bridges[bridge] = nil
	return nil
}

func (k *fakeKernel) DeleteBridge(bridge string) error {
	if err := k.mutate("ovs_del_br", bridge); err != nil {
		return err
	}
	for _, p := range k.bridges[bridge] {
		if l, ok := k.links[p]; ok {
			l.Attrs().MasterIndex = 0
		}
	}
	delete(k.bridges, bridge)
	delete(k.dpids, bridge)
	if l, ok := k.links[bridge]; ok {
		k.remove(l)
	}
	return nil
}

func (k *fakeKernel) GetDatapathID(bridge string) (string, error) {
	return k.dpids[bridge], nil
}

func (k *fakeKernel) SetDatapathID(bridge, id string) error {
	if err := k.mutate("ovs_set_dpid", bridge+" "+id); err != nil {
		return err
	}
	k.dpids[bridge] = id
	return nil
}

func (k *fakeKernel) AddPort(bridge, portName string) error {
	l, ok := k.links[portName]
	if !ok {
		return fmt.Errorf("no such device")
	}
	if err := k.mutate("ovs_add_port", bridge+" "+portName); err != nil {
		return err
	}
	l.Attrs().MasterIndex = k.links["ovs-system"].Attrs().Index
	k.bridges[bridge] = append(k.bridges[bridge], portName)
	return nil
}

func (k *fakeKernel) DeletePort(bridge, portName string) error {
	if err := k.mutate("ovs_del_port", bridge+" "+portName); err != nil {
		return err
	}
	for b, ports := range k.bridges {
		if bridge != "" && b != bridge {
			continue
		}
		for i, p := range ports {
			if p == portName {
				k.bridges[b] = append(ports[:i], ports[i+1:]...)
				break
			}
		}
	}
	if l, ok := k.links[portName]; ok {
		l.Attrs().MasterIndex = 0
	}
	return nil
}
