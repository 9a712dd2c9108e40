//go:build unit

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorAdapter_RunCommand(t *testing.T) {
	e := NewExecutorAdapter()

	t.Run("Success", func(t *testing.T) {
		out, err := e.RunCommand("echo", "hello", "world")
		require.NoError(t, err)
		assert.Equal(t, "hello world", out)
	})

	t.Run("Failure", func(t *testing.T) {
		_, err := e.RunCommand("sh", "-c", "echo boom; exit 3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestExecutorAdapter_LookPath(t *testing.T) {
	e := NewExecutorAdapter()

	_, err := e.LookPath("sh")
	assert.NoError(t, err)

	_, err = e.LookPath("netreconcile-no-such-binary")
	assert.Error(t, err)
}
