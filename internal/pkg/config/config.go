package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/pkg/topology"
	"golang-netreconcile/internal/types"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStatePath       = "/var/lib/netreconcile/state.yml"
	DefaultSQLiteStatePath = "/var/lib/netreconcile/state.db"
	DefaultManagedMarker   = "/var/lib/netreconcile/managed"

	DefaultReachabilityAttempts = 30
	DefaultReachabilityInterval = 2 * time.Second
	DefaultReachabilityTimeout  = time.Second
)

// StateConfig selects where the interface map is persisted
type StateConfig struct {
	Backend string `yaml:"backend"` // file or sqlite
	Path    string `yaml:"path"`
}

// ReconcileConfig controls how passes are run
type ReconcileConfig struct {
	// Interval repeats passes on a ticker; zero runs a single pass.
	Interval time.Duration `yaml:"interval,omitempty"`
	DryRun   bool          `yaml:"dry_run,omitempty"`
	// VLANBridgeNames names bridges over a VLAN br{vlan} instead of br-{network}.
	VLANBridgeNames bool `yaml:"vlan_bridge_names,omitempty"`
}

// ReachabilityConfig is the bounded wait after a pass
type ReachabilityConfig struct {
	Target     string        `yaml:"target,omitempty"`
	Attempts   int           `yaml:"attempts,omitempty"`
	Interval   time.Duration `yaml:"interval,omitempty"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
	Privileged bool          `yaml:"privileged,omitempty"`
}

// MetricsConfig enables the node-exporter textfile output
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// OVSConfig locates the Open vSwitch tooling
type OVSConfig struct {
	Vsctl string `yaml:"vsctl,omitempty"`
}

// Config represents the main configuration structure
type Config struct {
	Logging       logging.LogConfig         `yaml:"logging"`
	State         StateConfig               `yaml:"state"`
	ManagedMarker string                    `yaml:"managed_marker"`
	Netns         string                    `yaml:"netns,omitempty"`
	Reconcile     ReconcileConfig           `yaml:"reconcile"`
	Reachability  ReachabilityConfig        `yaml:"reachability"`
	Metrics       MetricsConfig             `yaml:"metrics"`
	OVS           OVSConfig                 `yaml:"ovs"`
	Conduits      types.ConduitMapping      `yaml:"conduits"`
	Networks      []types.NetworkDefinition `yaml:"networks"`
}

// Load loads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return &config, nil
}

// ApplyDefaults fills every unset optional value
func (c *Config) ApplyDefaults() {
	if c.State.Backend == "" {
		c.State.Backend = "file"
	}
	if c.State.Path == "" {
		c.State.Path = DefaultStatePath
		if c.State.Backend == "sqlite" {
			c.State.Path = DefaultSQLiteStatePath
		}
	}
	if c.ManagedMarker == "" {
		c.ManagedMarker = DefaultManagedMarker
	}
	if c.Reachability.Attempts == 0 {
		c.Reachability.Attempts = DefaultReachabilityAttempts
	}
	if c.Reachability.Interval == 0 {
		c.Reachability.Interval = DefaultReachabilityInterval
	}
	if c.Reachability.Timeout == 0 {
		c.Reachability.Timeout = DefaultReachabilityTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// GetNetwork returns the definition of a named network
func (c *Config) GetNetwork(name string) (types.NetworkDefinition, bool) {
	for _, n := range c.Networks {
		if n.Name == name {
			return n, true
		}
	}
	return types.NetworkDefinition{}, false
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.State.Backend {
	case "", "file", "sqlite":
	default:
		return types.Configurationf("unknown state backend %q", c.State.Backend)
	}
	if c.Reconcile.Interval < 0 {
		return types.Configurationf("reconcile interval must not be negative")
	}
	if c.Reachability.Attempts < 0 {
		return types.Configurationf("reachability attempts must not be negative")
	}
	if t := c.Reachability.Target; t != "" && net.ParseIP(t) == nil {
		return types.Configurationf("reachability target %q is not an IP address", t)
	}

	if len(c.Networks) == 0 {
		return types.Configurationf("no networks configured")
	}

	for id, conduit := range c.Conduits {
		if err := validateConduit(id, conduit); err != nil {
			return err
		}
	}

	seen := map[string]bool{}
	for _, n := range c.Networks {
		if n.Name == "" {
			return types.Configurationf("network without a name")
		}
		if seen[n.Name] {
			return types.Configurationf("network %s is defined twice", n.Name)
		}
		seen[n.Name] = true

		if err := c.validateNetwork(n); err != nil {
			return err
		}
	}

	return c.validateNetns()
}

// validateNetns rejects features that cannot follow netlink into another
// namespace: ovs-vsctl and the ICMP prober run in the caller's namespace.
func (c *Config) validateNetns() error {
	if c.Netns == "" {
		return nil
	}
	if c.Reachability.Target != "" {
		return types.Configurationf("netns %s: reachability checks run in the current namespace and cannot be combined with netns", c.Netns)
	}
	for _, n := range c.Networks {
		if n.AddOVSBridge {
			return types.Configurationf("netns %s: network %s needs an OVS bridge, which cannot be managed inside netns", c.Netns, n.Name)
		}
	}
	return nil
}

func validateConduit(id string, conduit types.Conduit) error {
	if len(conduit.Interfaces) == 0 {
		return types.Configurationf("conduit %s: no interfaces", id)
	}
	for _, nic := range conduit.Interfaces {
		if err := topology.ValidateInterfaceName(nic); err != nil {
			return fmt.Errorf("conduit %s: %w", id, err)
		}
	}
	if len(conduit.Interfaces) > 1 {
		if _, err := topology.ParseBondMode(conduit.TeamMode); err != nil {
			return fmt.Errorf("conduit %s: %w", id, err)
		}
		if _, err := topology.ParseXmitHashPolicy(conduit.XmitHashPolicy); err != nil {
			return fmt.Errorf("conduit %s: %w", id, err)
		}
	}
	if conduit.Miimon < 0 {
		return types.Configurationf("conduit %s: miimon must not be negative", id)
	}
	return nil
}

func (c *Config) validateNetwork(n types.NetworkDefinition) error {
	conduit, ok := c.Conduits[n.Conduit]
	if !ok {
		return types.Configurationf("network %s: unknown conduit %q", n.Name, n.Conduit)
	}

	if n.UseVLAN {
		if n.VLAN < 1 || n.VLAN > 4094 {
			return types.Configurationf("network %s: vlan %d out of range 1-4094", n.Name, n.VLAN)
		}
		if len(conduit.Interfaces) == 1 {
			if err := topology.ValidateInterfaceName(topology.VLANName(conduit.Interfaces[0], n.VLAN)); err != nil {
				return fmt.Errorf("network %s: %w", n.Name, err)
			}
		}
	}
	if n.MTU != 0 && (n.MTU < 68 || n.MTU > 65535) {
		return types.Configurationf("network %s: mtu %d out of range 68-65535", n.Name, n.MTU)
	}
	if n.AddBridge && !n.UseVLAN {
		if err := topology.ValidateInterfaceName(topology.BridgeName(n.Name, nil, false)); err != nil {
			return fmt.Errorf("network %s: %w", n.Name, err)
		}
	}
	if n.AddOVSBridge {
		if err := topology.ValidateInterfaceName(topology.OVSBridgeName(n)); err != nil {
			return fmt.Errorf("network %s: %w", n.Name, err)
		}
	}

	if _, err := topology.NetworkCIDR(n); err != nil {
		return err
	}
	if n.Router != "" && net.ParseIP(n.Router).To4() == nil {
		return types.Configurationf("network %s: router %q is not an IPv4 address", n.Name, n.Router)
	}
	if n.RouterPref != nil && n.Router == "" {
		return types.Configurationf("network %s: router_pref without router", n.Name)
	}
	return nil
}
