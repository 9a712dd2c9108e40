package cmd

import (
	"golang-netreconcile/internal/adapter/infrastructure/ethtool"
	"golang-netreconcile/internal/port"
)

func newLinkInspector() (port.LinkInspector, error) {
	return ethtool.NewInspectorAdapter()
}
