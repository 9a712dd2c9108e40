package topology

import (
	"golang-netreconcile/internal/types"
)

// plannedMTU is the MTU the configuration asks for, else the kernel
// default. Live MTUs are ignored so that the plan depends only on the
// configuration and not on what earlier passes already raised.
func (b *builder) plannedMTU(name string) int {
	if rec, ok := b.plan.Interfaces[name]; ok && rec.MTU > 0 {
		return rec.MTU
	}
	return DefaultMTU
}

// cascadeMTU raises a VLAN parent's MTU to the VLAN's, one level only. A
// parent that also serves a network without a VLAN keeps its MTU, and a
// VLAN above it is a constraint violation.
func (b *builder) cascadeMTU(networks []types.NetworkDefinition) error {
	direct := map[string]string{}
	for _, n := range networks {
		if n.UseVLAN {
			continue
		}
		for _, name := range b.plan.Networks[n.Name] {
			if _, ok := direct[name]; !ok {
				direct[name] = n.Name
			}
		}
	}

	for _, name := range b.plan.Interfaces.Names() {
		rec := b.plan.Interfaces[name]
		if rec.Type != types.TypeVLAN || rec.MTU == 0 {
			continue
		}
		parentMTU := b.plannedMTU(rec.Parent)
		if rec.MTU <= parentMTU {
			continue
		}
		if network, ok := direct[rec.Parent]; ok {
			return types.ConstraintViolationf("%s needs MTU %d but its parent %s is held at %d by network %s",
				name, rec.MTU, rec.Parent, parentMTU, network)
		}
		b.plan.Interfaces[rec.Parent].MTU = rec.MTU
	}
	return nil
}

// flagUncascadedMTU warns about bridges whose MTU is above a port's. The
// cascade stops at VLAN parents, so these are left as they are.
func (b *builder) flagUncascadedMTU() {
	for _, name := range b.plan.Interfaces.Names() {
		rec := b.plan.Interfaces[name]
		if rec.MTU == 0 || (rec.Type != types.TypeBridge && rec.Type != types.TypeOVSBridge) {
			continue
		}
		for _, port := range rec.Slaves {
			if mtu := b.plannedMTU(port); mtu < rec.MTU {
				b.warnf("%s has MTU %d but its port %s stays at %d", name, rec.MTU, port, mtu)
			}
		}
	}
}
