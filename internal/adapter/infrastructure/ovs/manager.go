// Package ovs drives Open vSwitch through ovs-vsctl.
package ovs

import (
	"fmt"
	"strings"

	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/port"
)

// DefaultVsctl is the ovs-vsctl binary looked up on PATH.
const DefaultVsctl = "ovs-vsctl"

// ManagerAdapter implements the OVSManager port on top of ovs-vsctl.
type ManagerAdapter struct {
	exec  port.CommandExecutor
	vsctl string
}

var _ port.OVSManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates an OVS adapter running vsctl through exec.
func NewManagerAdapter(exec port.CommandExecutor, vsctl string) *ManagerAdapter {
	if vsctl == "" {
		vsctl = DefaultVsctl
	}
	return &ManagerAdapter{exec: exec, vsctl: vsctl}
}

func (m *ManagerAdapter) run(args ...string) (string, error) {
	return m.exec.RunCommand(m.vsctl, append([]string{"--timeout=10"}, args...)...)
}

// ListBridges returns the configured bridges. A host without OVS has none.
func (m *ManagerAdapter) ListBridges() ([]string, error) {
	if _, err := m.exec.LookPath(m.vsctl); err != nil {
		logging.WithComponent("ovs").Debugf("%s not found, assuming no OVS bridges", m.vsctl)
		return nil, nil
	}
	out, err := m.run("list-br")
	if err != nil {
		return nil, fmt.Errorf("failed to list OVS bridges: %w", err)
	}
	return lines(out), nil
}

// ListPorts returns the ports attached to bridge.
func (m *ManagerAdapter) ListPorts(bridge string) ([]string, error) {
	out, err := m.run("list-ports", bridge)
	if err != nil {
		return nil, fmt.Errorf("failed to list ports of %s: %w", bridge, err)
	}
	return lines(out), nil
}

// AddBridge creates bridge if it does not exist.
func (m *ManagerAdapter) AddBridge(bridge string) error {
	if _, err := m.run("--may-exist", "add-br", bridge); err != nil {
		return fmt.Errorf("failed to add OVS bridge %s: %w", bridge, err)
	}
	return nil
}

// DeleteBridge removes bridge.
func (m *ManagerAdapter) DeleteBridge(bridge string) error {
	if _, err := m.run("--if-exists", "del-br", bridge); err != nil {
		return fmt.Errorf("failed to delete OVS bridge %s: %w", bridge, err)
	}
	return nil
}

// GetDatapathID returns the pinned datapath-id of bridge, empty when unset.
func (m *ManagerAdapter) GetDatapathID(bridge string) (string, error) {
	out, err := m.run("--if-exists", "get", "bridge", bridge, "other-config:datapath-id")
	if err != nil {
		return "", fmt.Errorf("failed to read datapath-id of %s: %w", bridge, err)
	}
	return strings.Trim(strings.TrimSpace(out), `"`), nil
}

// SetDatapathID pins the datapath-id of bridge.
func (m *ManagerAdapter) SetDatapathID(bridge, id string) error {
	if _, err := m.run("set", "bridge", bridge, "other-config:datapath-id="+id); err != nil {
		return fmt.Errorf("failed to set datapath-id of %s: %w", bridge, err)
	}
	return nil
}

// AddPort attaches port to bridge.
func (m *ManagerAdapter) AddPort(bridge, portName string) error {
	if _, err := m.run("--may-exist", "add-port", bridge, portName); err != nil {
		return fmt.Errorf("failed to add port %s to %s: %w", portName, bridge, err)
	}
	return nil
}

// DeletePort detaches port. An empty bridge removes it from whichever bridge holds it.
func (m *ManagerAdapter) DeletePort(bridge, portName string) error {
	args := []string{"--if-exists", "del-port"}
	if bridge != "" {
		args = append(args, bridge)
	}
	if _, err := m.run(append(args, portName)...); err != nil {
		return fmt.Errorf("failed to delete port %s: %w", portName, err)
	}
	return nil
}

func lines(out string) []string {
	var res []string
	for _, l := range strings.Split(out, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			res = append(res, l)
		}
	}
	return res
}
