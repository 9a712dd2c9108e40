//go:build !linux

package cmd

import (
	"errors"

	"golang-netreconcile/internal/port"
)

func newLinkInspector() (port.LinkInspector, error) {
	return nil, errors.New("ethtool is only available on linux")
}
