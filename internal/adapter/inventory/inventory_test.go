//go:build unit

package inventory

import (
	"context"
	"errors"
	"net"
	"testing"

	"golang-netreconcile/internal/mock"
	"golang-netreconcile/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

func addr(t *testing.T, cidr string) netlink.Addr {
	t.Helper()
	ip, ipnet, err := net.ParseCIDR(cidr)
	require.NoError(t, err)
	ipnet.IP = ip
	return netlink.Addr{IPNet: ipnet}
}

func TestInventory_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nm := mock.NewMockNetworkManager(ctrl)
	ovs := mock.NewMockOVSManager(ctrl)

	lo := &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: "lo", Index: 1, MTU: 65536, Flags: net.FlagUp | net.FlagLoopback}}
	eth0 := &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: "eth0", Index: 2, MTU: 1500, Flags: net.FlagUp, MasterIndex: 5}}
	eth1 := &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: "eth1", Index: 3, MTU: 1500, MasterIndex: 5}}
	eth2 := &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: "eth2", Index: 4, MTU: 9000, Flags: net.FlagUp, MasterIndex: 8}}
	bond := &netlink.Bond{LinkAttrs: netlink.LinkAttrs{Name: "bond0", Index: 5, MTU: 1500, Flags: net.FlagUp}}
	vlan := &netlink.Vlan{LinkAttrs: netlink.LinkAttrs{Name: "bond0.100", Index: 6, MTU: 1500, ParentIndex: 5, MasterIndex: 7, Flags: net.FlagUp}, VlanId: 100}
	br := &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: "br-public", Index: 7, MTU: 1500, Flags: net.FlagUp}}
	dp := &netlink.GenericLink{LinkAttrs: netlink.LinkAttrs{Name: "ovs-system", Index: 8, MTU: 1500}, LinkType: "openvswitch"}
	ovsBr := &netlink.GenericLink{LinkAttrs: netlink.LinkAttrs{Name: "br-fixed", Index: 9, MTU: 9000}, LinkType: "openvswitch"}

	nm.EXPECT().ListLinks().Return([]netlink.Link{lo, eth0, eth1, eth2, bond, vlan, br, dp, ovsBr}, nil)
	nm.EXPECT().ListAddresses(gomock.Any()).DoAndReturn(func(link netlink.Link) ([]netlink.Addr, error) {
		switch link.Attrs().Name {
		case "lo":
			return []netlink.Addr{addr(t, "127.0.0.1/8")}, nil
		case "br-public":
			return []netlink.Addr{addr(t, "192.168.124.10/24"), addr(t, "fe80::1/64")}, nil
		}
		return nil, nil
	}).Times(9)
	nm.EXPECT().ListRoutes().Return([]netlink.Route{
		{LinkIndex: 7, Gw: net.ParseIP("192.168.124.1")},
		{LinkIndex: 9, Dst: &net.IPNet{IP: net.IPv4zero, Mask: net.CIDRMask(0, 32)}, Gw: net.ParseIP("10.0.0.1")},
		{LinkIndex: 2, Dst: &net.IPNet{IP: net.ParseIP("10.1.0.0"), Mask: net.CIDRMask(16, 32)}, Gw: net.ParseIP("10.1.0.254")},
	}, nil)

	ovs.EXPECT().ListBridges().Return([]string{"br-fixed"}, nil)
	ovs.EXPECT().ListPorts("br-fixed").Return([]string{"eth2"}, nil)
	ovs.EXPECT().GetDatapathID("br-fixed").Return("00000000000000aa", nil)

	live, err := New(nm, ovs).Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"br-fixed", "br-public", "bond0.100", "bond0", "ovs-system", "eth0", "eth1", "eth2", "lo"}, live.Order)

	get := func(name string) *types.ObservedInterface {
		o, ok := live.Get(name)
		require.True(t, ok, name)
		return o
	}

	assert.Equal(t, types.TypeLoopback, get("lo").Type)
	assert.Equal(t, types.TypePhysical, get("eth0").Type)
	assert.Equal(t, types.TypeOther, get("ovs-system").Type)

	b := get("bond0")
	assert.Equal(t, types.TypeBond, b.Type)
	assert.Equal(t, []string{"eth0", "eth1"}, b.Slaves)
	assert.Equal(t, "bond0", get("eth1").Master)
	assert.False(t, get("eth1").Up)

	v := get("bond0.100")
	assert.Equal(t, types.TypeVLAN, v.Type)
	assert.Equal(t, "bond0", v.Parent)
	assert.Equal(t, 100, v.VLANID)
	assert.Equal(t, "br-public", v.Master)

	pub := get("br-public")
	assert.Equal(t, types.TypeBridge, pub.Type)
	assert.Equal(t, []string{"192.168.124.10/24", "fe80::1/64"}, pub.Addresses)
	assert.Equal(t, []string{"192.168.124.1"}, pub.Gateways)

	fixed := get("br-fixed")
	assert.Equal(t, types.TypeOVSBridge, fixed.Type)
	assert.Equal(t, "00000000000000aa", fixed.DatapathID)
	assert.Equal(t, []string{"eth2"}, fixed.Slaves)
	assert.Equal(t, []string{"10.0.0.1"}, fixed.Gateways)
	assert.Equal(t, "br-fixed", get("eth2").Master)

	assert.Empty(t, get("eth0").Gateways)
}

func TestInventory_FetchErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nm := mock.NewMockNetworkManager(ctrl)
	ovs := mock.NewMockOVSManager(ctrl)

	nm.EXPECT().ListLinks().Return(nil, errors.New("netlink socket closed"))

	_, err := New(nm, ovs).Fetch(context.Background())
	assert.Error(t, err)
}

func TestIsDefaultRoute(t *testing.T) {
	assert.True(t, IsDefaultRoute(netlink.Route{}))
	assert.True(t, IsDefaultRoute(netlink.Route{Dst: &net.IPNet{IP: net.IPv4zero, Mask: net.CIDRMask(0, 32)}}))
	assert.False(t, IsDefaultRoute(netlink.Route{Dst: &net.IPNet{IP: net.ParseIP("10.0.0.0"), Mask: net.CIDRMask(8, 32)}}))
}
