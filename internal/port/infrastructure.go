// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-netreconcile/internal/types"

	"github.com/vishvananda/netlink"
)

//go:generate mockgen -destination=../mock/mock_infrastructure.go -package=mock golang-netreconcile/internal/port NetworkManager,OVSManager,CommandExecutor,FileManager,StateStore,InterfaceInventory,ReachabilityProber,LinkInspector

// NetworkManager is a port for network interface operations.
// This interface abstracts netlink operations for network configuration.
type NetworkManager interface {
	// ListLinks returns every link in the namespace
	ListLinks() ([]netlink.Link, error)

	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// AddLink creates a virtual link (bond, VLAN, bridge)
	AddLink(link netlink.Link) error

	// DeleteLink destroys a virtual link
	DeleteLink(link netlink.Link) error

	// SetLinkUp brings the interface up
	SetLinkUp(link netlink.Link) error

	// SetLinkDown brings the interface administratively down
	SetLinkDown(link netlink.Link) error

	// SetLinkMTU sets the interface MTU
	SetLinkMTU(link netlink.Link, mtu int) error

	// SetLinkMaster enslaves link into master
	SetLinkMaster(link, master netlink.Link) error

	// SetLinkNoMaster releases link from its master
	SetLinkNoMaster(link netlink.Link) error

	// ListAddresses returns IPv4 and IPv6 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)

	// AddAddress adds an IP address to the interface
	AddAddress(link netlink.Link, addr *netlink.Addr) error

	// DeleteAddress removes an IP address from the interface
	DeleteAddress(link netlink.Link, addr *netlink.Addr) error

	// ListRoutes returns IPv4 routes
	ListRoutes() ([]netlink.Route, error)

	// AddRoute adds a route
	AddRoute(route *netlink.Route) error

	// DeleteRoute removes a route
	DeleteRoute(route *netlink.Route) error
}

// OVSManager is a port for Open vSwitch bridge operations.
type OVSManager interface {
	// ListBridges returns the OVS bridge names; empty when OVS is not installed
	ListBridges() ([]string, error)

	// ListPorts returns the ports attached to bridge
	ListPorts(bridge string) ([]string, error)

	// AddBridge creates bridge if it does not exist
	AddBridge(bridge string) error

	// DeleteBridge removes bridge
	DeleteBridge(bridge string) error

	// GetDatapathID returns the configured datapath-id of bridge, empty if unset
	GetDatapathID(bridge string) (string, error)

	// SetDatapathID pins the datapath-id of bridge
	SetDatapathID(bridge, id string) error

	// AddPort attaches portName to bridge
	AddPort(bridge, portName string) error

	// DeletePort detaches portName; an empty bridge means whichever bridge holds it
	DeletePort(bridge, portName string) error
}

// CommandExecutor is a port for running external commands.
type CommandExecutor interface {
	// RunCommand runs name with args and returns its combined output
	RunCommand(name string, args ...string) (string, error)

	// LookPath reports the resolved path of an executable
	LookPath(name string) (string, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile atomically writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool
}

// StateStore persists the materialized interface map between passes.
type StateStore interface {
	// Load returns the last saved state, or an empty state on first run
	Load(ctx context.Context) (*types.PersistedState, error)

	// Save replaces the stored state
	Save(ctx context.Context, state *types.PersistedState) error

	// Close releases the backend
	Close() error
}

// InterfaceInventory queries the live kernel for interfaces.
type InterfaceInventory interface {
	// Fetch returns a fresh snapshot; callers must not cache it across mutations
	Fetch(ctx context.Context) (*types.LiveState, error)
}

// ReachabilityProber checks whether a host answers.
type ReachabilityProber interface {
	// Probe returns nil when target answered
	Probe(ctx context.Context, target string) error
}

// LinkDetails is hardware information about a physical NIC.
type LinkDetails struct {
	Driver  string
	BusInfo string
	Speed   uint32 // Mb/s, 0 when unknown
	Duplex  string // full, half or unknown
}

// LinkInspector reads hardware details of physical NICs.
type LinkInspector interface {
	// Inspect returns driver and link details of the named NIC
	Inspect(interfaceName string) (*LinkDetails, error)

	// Close releases the underlying handle
	Close()
}
