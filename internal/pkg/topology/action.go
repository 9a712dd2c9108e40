package topology

import (
	"fmt"

	"golang-netreconcile/internal/types"
)

// ActionKind names a structural change to the live topology.
type ActionKind string

const (
	ActionDestroy         ActionKind = "destroy"
	ActionCreateBond      ActionKind = "create-bond"
	ActionCreateVLAN      ActionKind = "create-vlan"
	ActionCreateBridge    ActionKind = "create-bridge"
	ActionCreateOVSBridge ActionKind = "create-ovs-bridge"
	ActionSetDatapathID   ActionKind = "set-datapath-id"
	ActionEnslave         ActionKind = "enslave"
	ActionOVSAddPort      ActionKind = "ovs-add-port"
	ActionRelease         ActionKind = "release"
)

// Action is one structural step. Actions are executed in plan order.
type Action struct {
	Kind      ActionKind
	Interface string
	Type      types.InterfaceType // destroy only

	// Master is the bond or bridge Interface is attached to.
	Master string
	// From is the live master Interface must leave first; FromOVS tells
	// whether From is an OVS bridge.
	From    string
	FromOVS bool
	// Down brings Interface down before enslaving it (bond members).
	Down bool

	Parent string
	VLANID int

	BondMode       string
	Miimon         int
	XmitHashPolicy string

	DatapathID string
}

func (a Action) String() string {
	switch a.Kind {
	case ActionCreateBond:
		return fmt.Sprintf("%s %s mode=%s miimon=%d xmit_hash_policy=%s", a.Kind, a.Interface, a.BondMode, a.Miimon, a.XmitHashPolicy)
	case ActionCreateVLAN:
		return fmt.Sprintf("%s %s parent=%s id=%d", a.Kind, a.Interface, a.Parent, a.VLANID)
	case ActionCreateOVSBridge, ActionSetDatapathID:
		return fmt.Sprintf("%s %s datapath-id=%s", a.Kind, a.Interface, a.DatapathID)
	case ActionEnslave, ActionOVSAddPort:
		if a.From != "" {
			return fmt.Sprintf("%s %s master=%s from=%s", a.Kind, a.Interface, a.Master, a.From)
		}
		return fmt.Sprintf("%s %s master=%s", a.Kind, a.Interface, a.Master)
	case ActionRelease:
		return fmt.Sprintf("%s %s from=%s", a.Kind, a.Interface, a.From)
	case ActionDestroy:
		return fmt.Sprintf("%s %s type=%s", a.Kind, a.Interface, a.Type)
	}
	return fmt.Sprintf("%s %s", a.Kind, a.Interface)
}
