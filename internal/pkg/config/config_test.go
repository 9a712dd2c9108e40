//go:build unit

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang-netreconcile/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
logging:
  level: debug
  format: simple
state:
  backend: sqlite
reconcile:
  interval: 30s
  vlan_bridge_names: true
reachability:
  target: 192.168.124.10
  attempts: 5
conduits:
  intf0:
    interfaces: [eth0, eth1]
    team_mode: "4"
    miimon: 100
  intf1:
    interfaces: [eth2]
networks:
  - name: admin
    conduit: intf0
    address: 192.168.124.81
    netmask: 255.255.255.0
    router: 192.168.124.1
    router_pref: 10
  - name: os_sdn
    conduit: intf1
    use_vlan: true
    vlan: 400
    add_bridge: true
    mtu: 9000
    address: 192.168.130.81/24
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validYAML))
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "sqlite", cfg.State.Backend)
		assert.Equal(t, 30*time.Second, cfg.Reconcile.Interval)
		assert.True(t, cfg.Reconcile.VLANBridgeNames)
		assert.Equal(t, 5, cfg.Reachability.Attempts)

		require.Len(t, cfg.Networks, 2)
		assert.Equal(t, "admin", cfg.Networks[0].Name)
		require.NotNil(t, cfg.Networks[0].RouterPref)
		assert.Equal(t, 10, *cfg.Networks[0].RouterPref)
		assert.Equal(t, []string{"eth0", "eth1"}, cfg.Conduits["intf0"].Interfaces)
		assert.Equal(t, 400, cfg.Networks[1].VLAN)

		assert.NoError(t, cfg.Validate())
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "networks: [\n  - name: admin\n    vlan: x: y"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestApplyDefaults(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		cfg := &Config{}
		cfg.ApplyDefaults()

		assert.Equal(t, "file", cfg.State.Backend)
		assert.Equal(t, DefaultStatePath, cfg.State.Path)
		assert.Equal(t, DefaultManagedMarker, cfg.ManagedMarker)
		assert.Equal(t, DefaultReachabilityAttempts, cfg.Reachability.Attempts)
		assert.Equal(t, DefaultReachabilityInterval, cfg.Reachability.Interval)
		assert.Equal(t, DefaultReachabilityTimeout, cfg.Reachability.Timeout)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("SQLite", func(t *testing.T) {
		cfg := &Config{State: StateConfig{Backend: "sqlite"}}
		cfg.ApplyDefaults()
		assert.Equal(t, DefaultSQLiteStatePath, cfg.State.Path)
	})

	t.Run("KeepsExplicitValues", func(t *testing.T) {
		cfg := &Config{State: StateConfig{Path: "/tmp/state.yml"}, ManagedMarker: "/tmp/m"}
		cfg.ApplyDefaults()
		assert.Equal(t, "/tmp/state.yml", cfg.State.Path)
		assert.Equal(t, "/tmp/m", cfg.ManagedMarker)
	})
}

func TestGetNetwork(t *testing.T) {
	cfg := &Config{Networks: []types.NetworkDefinition{{Name: "admin"}, {Name: "public"}}}

	n, ok := cfg.GetNetwork("public")
	assert.True(t, ok)
	assert.Equal(t, "public", n.Name)

	_, ok = cfg.GetNetwork("storage")
	assert.False(t, ok)
}

func base() *Config {
	return &Config{
		Conduits: types.ConduitMapping{
			"intf0": {Interfaces: []string{"eth0"}},
			"bond":  {Interfaces: []string{"eth1", "eth2"}, TeamMode: "802.3ad"},
		},
		Networks: []types.NetworkDefinition{
			{Name: "admin", Conduit: "intf0", Address: "10.0.0.2", Netmask: "255.255.255.0"},
		},
	}
}

func TestValidate(t *testing.T) {
	pref := 5

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{
			name:    "NoNetworks",
			mutate:  func(c *Config) { c.Networks = nil },
			wantErr: "no networks configured",
		},
		{
			name:    "UnknownBackend",
			mutate:  func(c *Config) { c.State.Backend = "etcd" },
			wantErr: `unknown state backend "etcd"`,
		},
		{
			name: "DuplicateNetwork",
			mutate: func(c *Config) {
				c.Networks = append(c.Networks, types.NetworkDefinition{Name: "admin", Conduit: "intf0"})
			},
			wantErr: "network admin is defined twice",
		},
		{
			name:   "NetnsPlain",
			mutate: func(c *Config) { c.Netns = "blue" },
		},
		{
			name: "NetnsWithOVSBridge",
			mutate: func(c *Config) {
				c.Netns = "blue"
				c.Networks[0].AddOVSBridge = true
			},
			wantErr: "network admin needs an OVS bridge",
		},
		{
			name: "NetnsWithReachability",
			mutate: func(c *Config) {
				c.Netns = "blue"
				c.Reachability.Target = "192.168.124.1"
			},
			wantErr: "reachability checks run in the current namespace",
		},
		{
			name:    "UnknownConduit",
			mutate:  func(c *Config) { c.Networks[0].Conduit = "intf9" },
			wantErr: `unknown conduit "intf9"`,
		},
		{
			name: "VLANOutOfRange",
			mutate: func(c *Config) {
				c.Networks[0].UseVLAN = true
				c.Networks[0].VLAN = 4095
			},
			wantErr: "vlan 4095 out of range",
		},
		{
			name: "VLANNameTooLong",
			mutate: func(c *Config) {
				c.Conduits["intf0"] = types.Conduit{Interfaces: []string{"enp129s0f1np1"}}
				c.Networks[0].UseVLAN = true
				c.Networks[0].VLAN = 400
			},
			wantErr: "exceeds 15 characters",
		},
		{
			name:    "MTUOutOfRange",
			mutate:  func(c *Config) { c.Networks[0].MTU = 10 },
			wantErr: "mtu 10 out of range",
		},
		{
			name:    "InvalidAddress",
			mutate:  func(c *Config) { c.Networks[0].Address = "10.0.0.300" },
			wantErr: `invalid address "10.0.0.300"`,
		},
		{
			name:    "MissingNetmask",
			mutate:  func(c *Config) { c.Networks[0].Netmask = "" },
			wantErr: "has no netmask",
		},
		{
			name:    "InvalidRouter",
			mutate:  func(c *Config) { c.Networks[0].Router = "gateway" },
			wantErr: `router "gateway" is not an IPv4 address`,
		},
		{
			name:    "PrefWithoutRouter",
			mutate:  func(c *Config) { c.Networks[0].RouterPref = &pref },
			wantErr: "router_pref without router",
		},
		{
			name: "BadBondMode",
			mutate: func(c *Config) {
				c.Conduits["bond"] = types.Conduit{Interfaces: []string{"eth1", "eth2"}, TeamMode: "9"}
			},
			wantErr: "bond mode 9 out of range",
		},
		{
			name: "BadXmitHashPolicy",
			mutate: func(c *Config) {
				c.Conduits["bond"] = types.Conduit{Interfaces: []string{"eth1", "eth2"}, XmitHashPolicy: "layer9"}
			},
			wantErr: `unknown xmit hash policy "layer9"`,
		},
		{
			name:    "EmptyConduit",
			mutate:  func(c *Config) { c.Conduits["empty"] = types.Conduit{} },
			wantErr: "conduit empty: no interfaces",
		},
		{
			name: "OVSBridgeNameTooLong",
			mutate: func(c *Config) {
				c.Networks[0].AddOVSBridge = true
				c.Networks[0].BridgeName = "br-very-long-name"
			},
			wantErr: "exceeds 15 characters",
		},
		{
			name:    "BadReachabilityTarget",
			mutate:  func(c *Config) { c.Reachability.Target = "admin-node" },
			wantErr: "reachability target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrConfiguration))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
