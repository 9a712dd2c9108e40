package topology

import (
	"fmt"

	"golang-netreconcile/internal/types"
)

// Input is everything a planning pass looks at.
type Input struct {
	Networks []types.NetworkDefinition
	Conduits types.ConduitMapping
	// Live is a fresh inventory snapshot taken at the start of the pass.
	Live *types.LiveState
	// Previous is the state saved by the last successful pass.
	Previous *types.PersistedState
	// Managed is true once the managed marker exists on the host.
	Managed bool
	// VLANBridgeNames selects br{vlan} names for bridges placed on a VLAN.
	VLANBridgeNames bool
	// NewDatapathID generates OVS datapath ids; DefaultDatapathID when nil.
	NewDatapathID func() string
}

// Plan is the desired state of the host plus the structural steps to reach it.
type Plan struct {
	Interfaces       types.InterfaceMap
	Networks         map[string][]string
	NetworkAddresses map[string][]string
	DefaultRoute     *types.DefaultRouteSelection
	// DatapathIDs holds every OVS datapath id in use, keyed by bridge.
	DatapathIDs map[string]string
	// GeneratedDatapathIDs lists bridges whose id was created in this pass.
	GeneratedDatapathIDs []string
	Actions              []Action
	Warnings             []string
}

// State converts the plan into what gets persisted for the next pass.
func (p *Plan) State() *types.PersistedState {
	return &types.PersistedState{
		Interfaces:       p.Interfaces,
		Networks:         p.Networks,
		NetworkAddresses: p.NetworkAddresses,
		DefaultRoute:     p.DefaultRoute,
		DatapathIDs:      p.DatapathIDs,
	}
}

type ovsReplug struct {
	priorOwner string
	bridge     string
}

type builder struct {
	in        Input
	plan      *Plan
	destroyed map[string]bool
	replugs   []ovsReplug
}

// Build computes the plan. It returns an ErrConfiguration or
// ErrConstraintViolation error without side effects when the input cannot be
// realised.
func Build(in Input) (*Plan, error) {
	if in.Live == nil {
		in.Live = &types.LiveState{Interfaces: map[string]*types.ObservedInterface{}}
	}
	if in.Previous == nil {
		in.Previous = types.NewPersistedState()
	}
	in.Previous.Normalize()
	if in.NewDatapathID == nil {
		in.NewDatapathID = DefaultDatapathID
	}

	b := &builder{
		in: in,
		plan: &Plan{
			Interfaces:       types.InterfaceMap{},
			Networks:         map[string][]string{},
			NetworkAddresses: map[string][]string{},
			DatapathIDs:      map[string]string{},
		},
		destroyed: map[string]bool{},
	}

	networks := SortNetworks(in.Networks)
	// Resolve every conduit before planning anything so a bad mapping
	// never leaves a half-built plan behind.
	for _, n := range networks {
		if _, _, err := b.resolveConduit(n); err != nil {
			return nil, err
		}
	}
	for _, n := range networks {
		if err := b.addNetwork(n); err != nil {
			return nil, fmt.Errorf("network %s: %w", n.Name, err)
		}
	}

	if err := b.cascadeMTU(networks); err != nil {
		return nil, err
	}
	b.flagUncascadedMTU()
	b.replugOVSChildren()
	b.releaseDetached()

	b.selectDefaultRoute(in.Networks)
	if dr := b.plan.DefaultRoute; dr != nil {
		b.plan.Interfaces[dr.Interface].Gateway = dr.Gateway
	}
	return b.plan, nil
}

func (b *builder) warnf(format string, args ...any) {
	b.plan.Warnings = append(b.plan.Warnings, fmt.Sprintf(format, args...))
}

func (b *builder) resolveConduit(n types.NetworkDefinition) (types.Conduit, []string, error) {
	c, ok := b.in.Conduits[n.Conduit]
	if !ok {
		return c, nil, types.Configurationf("network %s: conduit %q is not mapped", n.Name, n.Conduit)
	}
	if len(c.Interfaces) == 0 {
		return c, nil, types.Configurationf("network %s: conduit %q has no interfaces", n.Name, n.Conduit)
	}
	seen := map[string]bool{}
	for _, nic := range c.Interfaces {
		if seen[nic] {
			return c, nil, types.Configurationf("conduit %q lists %s twice", n.Conduit, nic)
		}
		seen[nic] = true
		if _, ok := b.in.Live.Get(nic); !ok {
			return c, nil, types.Configurationf("conduit %q references %s which does not exist on this host", n.Conduit, nic)
		}
	}
	return c, c.Interfaces, nil
}

func (b *builder) addNetwork(n types.NetworkDefinition) error {
	conduit, nics, err := b.resolveConduit(n)
	if err != nil {
		return err
	}

	var base string
	if len(nics) == 1 {
		base = b.ensureBase(nics[0])
	} else {
		if base, err = b.ensureBond(conduit, nics); err != nil {
			return err
		}
	}

	// A base already enslaved earlier in this pass is served by its master.
	chain := []string{base}
	owner := base
	for rec := b.plan.Interfaces[owner]; rec.Slave; rec = b.plan.Interfaces[owner] {
		owner = rec.Master
		chain = append(chain, owner)
	}

	if n.UseVLAN {
		if owner, err = b.ensureVLAN(owner, n.VLAN); err != nil {
			return err
		}
		chain = append(chain, owner)
	}
	if n.AddBridge {
		name := BridgeName(n.Name, b.plan.Interfaces[owner], b.in.VLANBridgeNames)
		if owner, err = b.ensureBridge(name, owner); err != nil {
			return err
		}
		chain = append(chain, owner)
	}
	if n.AddOVSBridge {
		if owner, err = b.ensureOVSBridge(OVSBridgeName(n), owner); err != nil {
			return err
		}
		chain = append(chain, owner)
	}

	rec := b.plan.Interfaces[owner]
	if n.MTU > rec.MTU {
		rec.MTU = n.MTU
	}
	cidr, err := NetworkCIDR(n)
	if err != nil {
		return err
	}
	if cidr != "" {
		rec.AddAddress(cidr)
		b.plan.NetworkAddresses[n.Name] = append(b.plan.NetworkAddresses[n.Name], cidr)
	}
	b.plan.Networks[n.Name] = chain
	return nil
}

// selectDefaultRoute picks the routed network with the lowest preference,
// walking networks in configuration order so that ties go to the one listed
// first. The route lands on the top of the network's final chain.
func (b *builder) selectDefaultRoute(networks []types.NetworkDefinition) {
	pref := 0
	for _, n := range networks {
		if !n.HasRouter() {
			continue
		}
		chain := b.plan.Networks[n.Name]
		if len(chain) == 0 {
			continue
		}
		if b.plan.DefaultRoute != nil && n.Preference() >= pref {
			continue
		}
		b.plan.DefaultRoute = &types.DefaultRouteSelection{
			Interface: chain[len(chain)-1],
			Gateway:   n.Router,
			Network:   n.Name,
		}
		pref = n.Preference()
	}
}

// destroy schedules removal of a live interface that blocks a new one.
func (b *builder) destroy(o *types.ObservedInterface) {
	if b.destroyed[o.Name] {
		return
	}
	b.destroyed[o.Name] = true
	b.plan.Actions = append(b.plan.Actions, Action{Kind: ActionDestroy, Interface: o.Name, Type: o.Type})
}

// releaseDetached frees desired standalone interfaces still held by a live
// master, and marks those held by an external master as unmanaged.
func (b *builder) releaseDetached() {
	for _, name := range b.plan.Interfaces.Names() {
		rec := b.plan.Interfaces[name]
		o, ok := b.in.Live.Get(name)
		if !ok || rec.Slave || rec.Unmanaged || o.Master == "" {
			continue
		}
		if b.external(o) {
			rec.Unmanaged = true
			b.warnf("%s is enslaved to %s which is not managed here, leaving it alone", name, o.Master)
			continue
		}
		from, fromOVS := b.liveMaster(o)
		b.plan.Actions = append(b.plan.Actions, Action{
			Kind:      ActionRelease,
			Interface: name,
			From:      from,
			FromOVS:   fromOVS,
		})
	}
}
