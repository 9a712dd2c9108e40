//go:build unit

package probe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProberAdapter_InvalidTarget(t *testing.T) {
	p := NewProberAdapter(100*time.Millisecond, false)

	err := p.Probe(context.Background(), "not a host name!")
	assert.Error(t, err)
}

func TestProberAdapter_Loopback(t *testing.T) {
	p := NewProberAdapter(time.Second, false)

	if err := p.Probe(context.Background(), "127.0.0.1"); err != nil {
		// Unprivileged ICMP depends on net.ipv4.ping_group_range.
		t.Skipf("ICMP not permitted here: %v", err)
	}
}

func TestNewProberAdapter_DefaultTimeout(t *testing.T) {
	p := NewProberAdapter(0, true)
	assert.Equal(t, time.Second, p.timeout)
	assert.True(t, p.privileged)
}
