// Package types defines common types used across the application.
package types

// NetworkDefinition describes one logical network and how it is layered on top
// of its conduit. Definitions are produced by the external allocation system.
type NetworkDefinition struct {
	Name         string `yaml:"name" json:"name"`
	Conduit      string `yaml:"conduit" json:"conduit"`
	UseVLAN      bool   `yaml:"use_vlan,omitempty" json:"use_vlan,omitempty"`
	VLAN         int    `yaml:"vlan,omitempty" json:"vlan,omitempty"`
	AddBridge    bool   `yaml:"add_bridge,omitempty" json:"add_bridge,omitempty"`
	AddOVSBridge bool   `yaml:"add_ovs_bridge,omitempty" json:"add_ovs_bridge,omitempty"`
	BridgeName   string `yaml:"bridge_name,omitempty" json:"bridge_name,omitempty"` // OVS bridge name override
	MTU          int    `yaml:"mtu,omitempty" json:"mtu,omitempty"`
	Address      string `yaml:"address,omitempty" json:"address,omitempty"` // dotted quad or CIDR
	Netmask      string `yaml:"netmask,omitempty" json:"netmask,omitempty"` // dotted quad, optional when Address is CIDR
	Router       string `yaml:"router,omitempty" json:"router,omitempty"`
	RouterPref   *int   `yaml:"router_pref,omitempty" json:"router_pref,omitempty"` // lower wins, unset ranks last
}

// HasRouter reports whether the network contributes a default route candidate.
func (n NetworkDefinition) HasRouter() bool {
	return n.Router != ""
}

// Preference returns the router preference, ranking an unset value after every explicit one.
func (n NetworkDefinition) Preference() int {
	if n.RouterPref == nil {
		return int(^uint(0) >> 1)
	}
	return *n.RouterPref
}

// Conduit is the ordered NIC list backing a conduit plus its bonding parameters.
type Conduit struct {
	Interfaces     []string `yaml:"interfaces" json:"interfaces"`
	TeamMode       string   `yaml:"team_mode,omitempty" json:"team_mode,omitempty"` // bond mode name or 0..6
	Miimon         int      `yaml:"miimon,omitempty" json:"miimon,omitempty"`
	XmitHashPolicy string   `yaml:"xmit_hash_policy,omitempty" json:"xmit_hash_policy,omitempty"`
}

// ConduitMapping maps a conduit identifier to its NICs.
type ConduitMapping map[string]Conduit
