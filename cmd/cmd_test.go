//go:build unit

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang-netreconcile/internal/mock"
	"golang-netreconcile/internal/port"
	"golang-netreconcile/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDescribeNetwork(t *testing.T) {
	st := types.NewPersistedState()
	st.Networks["os_sdn"] = []string{"bond0", "bond0.100", "br-os_sdn"}
	st.NetworkAddresses["os_sdn"] = []string{"192.168.130.10/24"}
	st.DefaultRoute = &types.DefaultRouteSelection{Interface: "br-os_sdn", Gateway: "192.168.130.1", Network: "os_sdn"}

	out, err := describeNetwork(st, "os_sdn")
	require.NoError(t, err)
	assert.Contains(t, out, "interface: br-os_sdn")
	assert.Contains(t, out, "chain:     bond0 -> bond0.100 -> br-os_sdn")
	assert.Contains(t, out, "addresses: 192.168.130.10/24")
	assert.Contains(t, out, "gateway:   192.168.130.1 (default route)")

	_, err = describeNetwork(st, "storage")
	assert.Error(t, err)
}

func TestPrintInventory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	live := types.NewLiveState([]*types.ObservedInterface{
		{Name: "lo", Type: types.TypeLoopback, MTU: 65536, Up: true, Addresses: []string{"127.0.0.1/8"}},
		{Name: "eth0", Type: types.TypePhysical, MTU: 1500, Up: true, Master: "bond0"},
		{Name: "eth1", Type: types.TypePhysical, MTU: 1500},
		{Name: "bond0", Type: types.TypeBond, MTU: 1500, Up: true, Addresses: []string{"10.0.0.2/24"}},
	})

	inspector := mock.NewMockLinkInspector(ctrl)
	inspector.EXPECT().Inspect("eth0").Return(&port.LinkDetails{Driver: "ixgbe", BusInfo: "0000:01:00.0", Speed: 10000, Duplex: "full"}, nil)
	inspector.EXPECT().Inspect("eth1").Return(nil, errors.New("operation not supported"))

	var buf bytes.Buffer
	require.NoError(t, printInventory(&buf, live, inspector))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "bond0"), "containers are listed first")
	assert.Contains(t, lines[2], "ixgbe")
	assert.Contains(t, lines[2], "10000Mb/s/full")
	assert.True(t, strings.HasPrefix(lines[4], "lo"))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
conduits:
  intf0:
    interfaces: [eth0]
networks:
  - name: admin
    conduit: intf0
    address: 192.168.124.10/24
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.State.Backend)

	require.NoError(t, os.WriteFile(path, []byte("networks: []\n"), 0o644))
	_, err = loadConfig(path)
	assert.ErrorContains(t, err, "config validation error")
}
