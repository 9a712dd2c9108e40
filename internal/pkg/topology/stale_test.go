//go:build unit

package topology

import (
	"testing"

	"golang-netreconcile/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestCollectStale(t *testing.T) {
	live := liveOf(
		physical("eth0"),
		physical("eth1"),
		&types.ObservedInterface{Name: "bond9", Type: types.TypeBond, Kind: "bond"},
		&types.ObservedInterface{Name: "br-old", Type: types.TypeBridge, Kind: "bridge"},
		&types.ObservedInterface{Name: "br-ovs", Type: types.TypeOVSBridge, Kind: "openvswitch"},
		&types.ObservedInterface{Name: "ovs-system", Type: types.TypeOther, Kind: "openvswitch"},
	)
	desired := types.InterfaceMap{
		"eth0": {Name: "eth0", Type: types.TypePhysical},
	}

	tests := []struct {
		name     string
		previous types.InterfaceMap
		managed  bool
		want     []string
	}{
		{
			name:    "FirstRunRemovesEverythingUnknown",
			managed: false,
			want:    []string{"br-ovs", "br-old", "bond9", "eth1"},
		},
		{
			name:     "ManagedRemovesOnlyPreviouslyManaged",
			previous: types.InterfaceMap{"br-old": {Name: "br-old"}, "eth0": {Name: "eth0"}},
			managed:  true,
			want:     []string{"br-old"},
		},
		{
			name:    "ManagedWithoutHistory",
			managed: true,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectStale(desired, live, tt.previous, tt.managed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectStale_NeverLoopback(t *testing.T) {
	got := CollectStale(types.InterfaceMap{}, liveOf(), nil, false)
	assert.Empty(t, got)
}
