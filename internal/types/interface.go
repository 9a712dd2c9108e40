package types

import (
	"sort"
	"time"
)

// InterfaceType classifies an interface in both the desired and the live view.
type InterfaceType string

const (
	TypePhysical  InterfaceType = "physical"
	TypeBond      InterfaceType = "bond"
	TypeVLAN      InterfaceType = "vlan"
	TypeBridge    InterfaceType = "bridge"
	TypeOVSBridge InterfaceType = "ovs_bridge"
	TypeLoopback  InterfaceType = "loopback"
	TypeOther     InterfaceType = "other"
)

// IsVirtual reports whether interfaces of this type can be created and destroyed.
func (t InterfaceType) IsVirtual() bool {
	switch t {
	case TypePhysical, TypeLoopback:
		return false
	}
	return true
}

// InterfaceRecord is a desired-state entry in the working interface map.
type InterfaceRecord struct {
	Name      string        `yaml:"name" json:"name"`
	Type      InterfaceType `yaml:"type" json:"type"`
	Addresses []string      `yaml:"addresses,omitempty" json:"addresses,omitempty"`
	MTU       int           `yaml:"mtu,omitempty" json:"mtu,omitempty"`
	Slave     bool          `yaml:"slave,omitempty" json:"slave,omitempty"`
	Master    string        `yaml:"master,omitempty" json:"master,omitempty"`
	Slaves    []string      `yaml:"slaves,omitempty" json:"slaves,omitempty"`
	VLANID    int           `yaml:"vlan,omitempty" json:"vlan,omitempty"`
	Parent    string        `yaml:"parent,omitempty" json:"parent,omitempty"`
	Gateway   string        `yaml:"gateway,omitempty" json:"gateway,omitempty"`

	BondMode       string `yaml:"bond_mode,omitempty" json:"bond_mode,omitempty"`
	Miimon         int    `yaml:"miimon,omitempty" json:"miimon,omitempty"`
	XmitHashPolicy string `yaml:"xmit_hash_policy,omitempty" json:"xmit_hash_policy,omitempty"`
	DatapathID     string `yaml:"datapath_id,omitempty" json:"datapath_id,omitempty"`

	// Unmanaged marks an interface enslaved to something outside our control.
	Unmanaged bool `yaml:"unmanaged,omitempty" json:"unmanaged,omitempty"`
}

// AddAddress appends cidr unless already present.
func (r *InterfaceRecord) AddAddress(cidr string) {
	for _, a := range r.Addresses {
		if a == cidr {
			return
		}
	}
	r.Addresses = append(r.Addresses, cidr)
}

// AddSlave appends name to the slave list unless already present.
func (r *InterfaceRecord) AddSlave(name string) {
	for _, s := range r.Slaves {
		if s == name {
			return
		}
	}
	r.Slaves = append(r.Slaves, name)
}

// InterfaceMap is the desired-state map keyed by interface name.
type InterfaceMap map[string]*InterfaceRecord

// Names returns the map keys in sorted order.
func (m InterfaceMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is in the map.
func (m InterfaceMap) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// ObservedInterface is the live-kernel view of an interface. It is never
// mutated by the reconciler, only compared against.
type ObservedInterface struct {
	Name       string        `json:"name"`
	Index      int           `json:"index"`
	Type       InterfaceType `json:"type"`
	Kind       string        `json:"kind"`
	Addresses  []string      `json:"addresses,omitempty"`
	MTU        int           `json:"mtu"`
	Up         bool          `json:"up"`
	Master     string        `json:"master,omitempty"`
	Slaves     []string      `json:"slaves,omitempty"`
	VLANID     int           `json:"vlan,omitempty"`
	Parent     string        `json:"parent,omitempty"`
	Gateways   []string      `json:"gateways,omitempty"`
	DatapathID string        `json:"datapath_id,omitempty"`
}

// HasAddress reports whether cidr is configured on the interface.
func (o *ObservedInterface) HasAddress(cidr string) bool {
	for _, a := range o.Addresses {
		if a == cidr {
			return true
		}
	}
	return false
}

// HasGateway reports whether a default route via gw leaves through this interface.
func (o *ObservedInterface) HasGateway(gw string) bool {
	for _, g := range o.Gateways {
		if g == gw {
			return true
		}
	}
	return false
}

// LiveState is one snapshot of the kernel's interfaces.
type LiveState struct {
	Interfaces map[string]*ObservedInterface
	// Order lists interface names so that containers come before their members.
	Order []string
}

// Get returns the observed interface with the given name.
func (l *LiveState) Get(name string) (*ObservedInterface, bool) {
	if l == nil {
		return nil, false
	}
	o, ok := l.Interfaces[name]
	return o, ok
}

// DefaultRouteSelection is the single (interface, gateway) pair carrying the default route.
type DefaultRouteSelection struct {
	Interface string `yaml:"interface" json:"interface"`
	Gateway   string `yaml:"gateway" json:"gateway"`
	Network   string `yaml:"network,omitempty" json:"network,omitempty"`
}

// PersistedState is what survives between reconciliation passes.
type PersistedState struct {
	Interfaces       InterfaceMap           `yaml:"interfaces" json:"interfaces"`
	Networks         map[string][]string    `yaml:"networks" json:"networks"`
	NetworkAddresses map[string][]string    `yaml:"network_addresses,omitempty" json:"network_addresses,omitempty"`
	DefaultRoute     *DefaultRouteSelection `yaml:"default_route,omitempty" json:"default_route,omitempty"`
	DatapathIDs      map[string]string      `yaml:"datapath_ids,omitempty" json:"datapath_ids,omitempty"`
	UpdatedAt        time.Time              `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// NewPersistedState returns an empty state with all maps allocated.
func NewPersistedState() *PersistedState {
	return &PersistedState{
		Interfaces:       InterfaceMap{},
		Networks:         map[string][]string{},
		NetworkAddresses: map[string][]string{},
		DatapathIDs:      map[string]string{},
	}
}

// Normalize allocates any nil map so callers never need nil checks.
func (s *PersistedState) Normalize() *PersistedState {
	if s.Interfaces == nil {
		s.Interfaces = InterfaceMap{}
	}
	if s.Networks == nil {
		s.Networks = map[string][]string{}
	}
	if s.NetworkAddresses == nil {
		s.NetworkAddresses = map[string][]string{}
	}
	if s.DatapathIDs == nil {
		s.DatapathIDs = map[string]string{}
	}
	return s
}

// InterfaceFor returns the interface that serves the named network.
func (s *PersistedState) InterfaceFor(network string) (string, bool) {
	chain := s.Networks[network]
	if len(chain) == 0 {
		return "", false
	}
	return chain[len(chain)-1], true
}

// PassResult summarises one reconciliation pass.
type PassResult struct {
	Interfaces       InterfaceMap
	Networks         map[string][]string
	NetworkAddresses map[string][]string
	DefaultRoute     *DefaultRouteSelection
	Destroyed        []string
	Warnings         []string
	Mutations        int
	DryRun           bool
}

var destroyRank = map[InterfaceType]int{
	TypeOVSBridge: 0,
	TypeBridge:    1,
	TypeVLAN:      2,
	TypeBond:      3,
	TypeOther:     4,
	TypePhysical:  5,
	TypeLoopback:  6,
}

// NewLiveState indexes observed interfaces and orders them containers first:
// OVS bridges, bridges, VLANs, bonds, other virtual kinds, physical, loopback.
func NewLiveState(observed []*ObservedInterface) *LiveState {
	l := &LiveState{Interfaces: make(map[string]*ObservedInterface, len(observed))}
	for _, o := range observed {
		l.Interfaces[o.Name] = o
		l.Order = append(l.Order, o.Name)
	}
	sort.SliceStable(l.Order, func(i, j int) bool {
		a, b := l.Interfaces[l.Order[i]], l.Interfaces[l.Order[j]]
		if destroyRank[a.Type] != destroyRank[b.Type] {
			return destroyRank[a.Type] < destroyRank[b.Type]
		}
		return a.Name < b.Name
	})
	return l
}
