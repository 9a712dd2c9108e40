//go:build unit

package topology

import (
	"testing"

	"golang-netreconcile/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkCIDR(t *testing.T) {
	tests := []struct {
		name    string
		def     types.NetworkDefinition
		want    string
		wantErr bool
	}{
		{"NoAddress", types.NetworkDefinition{Name: "n"}, "", false},
		{"Netmask", types.NetworkDefinition{Name: "n", Address: "192.168.124.10", Netmask: "255.255.255.0"}, "192.168.124.10/24", false},
		{"CIDR", types.NetworkDefinition{Name: "n", Address: "10.1.2.3/16"}, "10.1.2.3/16", false},
		{"MissingNetmask", types.NetworkDefinition{Name: "n", Address: "10.1.2.3"}, "", true},
		{"NonContiguousMask", types.NetworkDefinition{Name: "n", Address: "10.1.2.3", Netmask: "255.0.255.0"}, "", true},
		{"Garbage", types.NetworkDefinition{Name: "n", Address: "not-an-ip", Netmask: "255.255.255.0"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NetworkCIDR(tt.def)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBondMode(t *testing.T) {
	mode, err := ParseBondMode("")
	require.NoError(t, err)
	assert.Equal(t, "balance-tlb", mode)

	mode, err = ParseBondMode("1")
	require.NoError(t, err)
	assert.Equal(t, "active-backup", mode)

	mode, err = ParseBondMode("802.3ad")
	require.NoError(t, err)
	assert.Equal(t, "802.3ad", mode)

	_, err = ParseBondMode("round-robin")
	assert.ErrorIs(t, err, types.ErrConfiguration)
}

func TestParseXmitHashPolicy(t *testing.T) {
	p, err := ParseXmitHashPolicy("")
	require.NoError(t, err)
	assert.Equal(t, "layer2", p)

	_, err = ParseXmitHashPolicy("layer9")
	assert.ErrorIs(t, err, types.ErrConfiguration)
}

func TestDefaultDatapathID(t *testing.T) {
	a, b := DefaultDatapathID(), DefaultDatapathID()
	assert.Len(t, a, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", a)
	assert.NotEqual(t, a, b)
}

func TestValidateInterfaceName(t *testing.T) {
	assert.NoError(t, ValidateInterfaceName("bond0.100"))
	assert.ErrorIs(t, ValidateInterfaceName(""), types.ErrConfiguration)
	assert.ErrorIs(t, ValidateInterfaceName("br-a-very-long-name"), types.ErrConfiguration)
}
