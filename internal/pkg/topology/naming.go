package topology

import (
	"fmt"
	"net"
	"net/netip"
	"sort"
	"strconv"
	"strings"

	"golang-netreconcile/internal/types"

	"github.com/google/uuid"
	"github.com/vishvananda/netlink"
	"go4.org/netipx"
)

const (
	// MaxInterfaceNameLength is IFNAMSIZ minus the terminating NUL.
	MaxInterfaceNameLength = 15
	// DefaultMTU is assumed for interfaces that do not exist yet.
	DefaultMTU = 1500
	// OVSDatapathName is the kernel device backing every OVS bridge.
	OVSDatapathName = "ovs-system"

	DefaultBondMode       = "balance-tlb"
	DefaultMiimon         = 100
	DefaultXmitHashPolicy = "layer2"
)

// ValidateInterfaceName rejects names the kernel would refuse.
func ValidateInterfaceName(name string) error {
	if name == "" {
		return types.Configurationf("empty interface name")
	}
	if len(name) > MaxInterfaceNameLength {
		return types.Configurationf("interface name %q exceeds %d characters", name, MaxInterfaceNameLength)
	}
	return nil
}

// VLANName is the name of the VLAN interface tagging id on parent.
func VLANName(parent string, id int) string {
	return fmt.Sprintf("%s.%d", parent, id)
}

// BridgeName is the Linux bridge name for network, placed on owner. Bridges
// are named br-{network}; with vlanNames set, a bridge over a VLAN is named
// br{vlan} instead.
func BridgeName(network string, owner *types.InterfaceRecord, vlanNames bool) string {
	if vlanNames && owner != nil && owner.Type == types.TypeVLAN {
		return fmt.Sprintf("br%d", owner.VLANID)
	}
	return "br-" + network
}

// OVSBridgeName is the OVS bridge name for the network.
func OVSBridgeName(n types.NetworkDefinition) string {
	if n.BridgeName != "" {
		return n.BridgeName
	}
	return "br-" + n.Name
}

// NetworkCIDR returns the network's address in CIDR form, empty when the
// network carries no address.
func NetworkCIDR(n types.NetworkDefinition) (string, error) {
	if n.Address == "" {
		return "", nil
	}
	if strings.Contains(n.Address, "/") {
		prefix, err := netip.ParsePrefix(n.Address)
		if err != nil {
			return "", types.Configurationf("network %s: invalid address %q: %v", n.Name, n.Address, err)
		}
		return prefix.String(), nil
	}

	ip := net.ParseIP(n.Address).To4()
	if ip == nil {
		return "", types.Configurationf("network %s: invalid address %q", n.Name, n.Address)
	}
	if n.Netmask == "" {
		return "", types.Configurationf("network %s: address %s has no netmask", n.Name, n.Address)
	}
	mask := net.ParseIP(n.Netmask).To4()
	if mask == nil {
		return "", types.Configurationf("network %s: invalid netmask %q", n.Name, n.Netmask)
	}
	prefix, ok := netipx.FromStdIPNet(&net.IPNet{IP: ip, Mask: net.IPMask(mask)})
	if !ok {
		return "", types.Configurationf("network %s: non-contiguous netmask %q", n.Name, n.Netmask)
	}
	return prefix.String(), nil
}

// ParseBondMode accepts a kernel bond mode name or its numeric value and
// returns the canonical name.
func ParseBondMode(s string) (string, error) {
	if s == "" {
		return DefaultBondMode, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > int(netlink.BOND_MODE_BALANCE_ALB) {
			return "", types.Configurationf("bond mode %d out of range", n)
		}
		return netlink.BondMode(n).String(), nil
	}
	if netlink.StringToBondMode(s) == netlink.BOND_MODE_UNKNOWN {
		return "", types.Configurationf("unknown bond mode %q", s)
	}
	return s, nil
}

// ParseXmitHashPolicy validates a bond transmit hash policy.
func ParseXmitHashPolicy(s string) (string, error) {
	if s == "" {
		return DefaultXmitHashPolicy, nil
	}
	if netlink.StringToBondXmitHashPolicy(s) == netlink.BOND_XMIT_HASH_POLICY_UNKNOWN {
		return "", types.Configurationf("unknown xmit hash policy %q", s)
	}
	return s, nil
}

// DefaultDatapathID returns a random 16 hex digit OVS datapath id.
func DefaultDatapathID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x := append([]string(nil), a...)
	y := append([]string(nil), b...)
	sort.Strings(x)
	sort.Strings(y)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
