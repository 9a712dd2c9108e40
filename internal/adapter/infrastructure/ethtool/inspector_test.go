//go:build unit && linux

package ethtool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectorAdapter_Inspect(t *testing.T) {
	inspector, err := NewInspectorAdapter()
	if err != nil {
		t.Skipf("ethtool not available: %v", err)
	}
	defer inspector.Close()

	t.Run("UnknownInterface", func(t *testing.T) {
		_, err := inspector.Inspect("netreconcile0")
		assert.Error(t, err)
	})
}
