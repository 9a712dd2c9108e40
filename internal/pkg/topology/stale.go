package topology

import (
	"golang-netreconcile/internal/types"
)

// CollectStale returns the live interfaces to destroy, in live order. An
// interface qualifies when it is not desired, is not loopback or the OVS
// datapath, and either the host is not managed yet or the previous pass
// managed it.
func CollectStale(desired types.InterfaceMap, live *types.LiveState, previous types.InterfaceMap, managed bool) []string {
	if live == nil {
		return nil
	}
	var stale []string
	for _, name := range live.Order {
		o := live.Interfaces[name]
		if desired.Has(name) || o.Type == types.TypeLoopback || name == OVSDatapathName {
			continue
		}
		if o.Kind == "openvswitch" && o.Type != types.TypeOVSBridge {
			continue
		}
		if !managed || previous.Has(name) {
			stale = append(stale, name)
		}
	}
	return stale
}
