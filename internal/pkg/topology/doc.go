// Package topology plans the desired interface layout of a host.
//
// # Overview
//
// Planning is pure: given the declared networks, the conduit mapping, one
// snapshot of the live kernel and the state persisted by the previous pass,
// [Build] returns a [Plan] holding the desired interface map, the ordered
// interface chain serving every network, the default route selection and the
// list of structural [Action]s (create bond, create VLAN, enslave, ...) needed
// to get there. Nothing here talks to the kernel.
//
// # Layering
//
// Networks are processed in [SortNetworks] order so plain networks materialise
// their base interfaces before VLAN and bridge networks reuse them. For every
// network the chain is built bottom-up:
//
//	physical NIC | bond -> VLAN -> Linux bridge -> OVS bridge
//
// Enslaving an interface moves its planned addresses, default route and
// network chains up to the new master.
//
// # Cleanup
//
// [CollectStale] lists live interfaces that fell out of the desired map and
// may be destroyed, honouring the managed marker.
package topology
