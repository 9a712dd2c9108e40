//go:build linux

// Package ethtool reads NIC hardware details for the inventory report.
package ethtool

import (
	"fmt"

	"golang-netreconcile/internal/port"

	"github.com/safchain/ethtool"
)

// unknownSpeed is what the kernel reports for a NIC without carrier.
const unknownSpeed = ^uint32(0)

// InspectorAdapter implements the LinkInspector port with an ethtool handle.
type InspectorAdapter struct {
	handle *ethtool.Ethtool
}

var _ port.LinkInspector = (*InspectorAdapter)(nil)

// NewInspectorAdapter opens an ethtool handle.
func NewInspectorAdapter() (*InspectorAdapter, error) {
	h, err := ethtool.NewEthtool()
	if err != nil {
		return nil, fmt.Errorf("failed to open ethtool handle: %w", err)
	}
	return &InspectorAdapter{handle: h}, nil
}

// Close closes the ethtool handle.
func (i *InspectorAdapter) Close() {
	i.handle.Close()
}

// Inspect returns driver, bus and link settings of a NIC. Link settings are
// best effort: virtual NICs often do not report them.
func (i *InspectorAdapter) Inspect(interfaceName string) (*port.LinkDetails, error) {
	info, err := i.handle.DriverInfo(interfaceName)
	if err != nil {
		return nil, fmt.Errorf("ethtool DriverInfo failed for %s: %w", interfaceName, err)
	}
	details := &port.LinkDetails{
		Driver:  info.Driver,
		BusInfo: info.BusInfo,
		Duplex:  "unknown",
	}

	settings, err := i.handle.GetLinkSettings(interfaceName)
	if err != nil {
		return details, nil
	}
	if settings.Speed != unknownSpeed {
		details.Speed = settings.Speed
	}
	switch settings.Duplex {
	case ethtool.DUPLEX_FULL:
		details.Duplex = "full"
	case ethtool.DUPLEX_HALF:
		details.Duplex = "half"
	}
	return details, nil
}
