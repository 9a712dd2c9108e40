package topology

import (
	"golang-netreconcile/internal/types"
)

// enslave makes slave a member of master in the working map. Addresses the
// slave carried move up to the master, together with every network chain
// that ended at the slave.
func (b *builder) enslave(slave, master string) error {
	s := b.plan.Interfaces[slave]
	m := b.plan.Interfaces[master]

	if s.Slave {
		if s.Master == master {
			return nil
		}
		return types.Configurationf("%s is already a member of %s, cannot add it to %s", slave, s.Master, master)
	}

	o, live := b.in.Live.Get(slave)
	if live && o.Master != "" && o.Master != master && b.external(o) {
		s.Unmanaged = true
		b.warnf("%s is enslaved to %s which is not managed here, leaving it alone", slave, o.Master)
		return nil
	}

	for _, addr := range s.Addresses {
		m.AddAddress(addr)
	}
	s.Addresses = nil

	for name, chain := range b.plan.Networks {
		if len(chain) > 0 && chain[len(chain)-1] == slave {
			b.plan.Networks[name] = append(chain, master)
		}
	}

	s.Slave = true
	s.Master = master
	m.AddSlave(slave)

	if live && o.Master == master {
		return nil
	}
	a := Action{Interface: slave, Master: master}
	if live {
		a.From, a.FromOVS = b.liveMaster(o)
	}
	switch m.Type {
	case types.TypeOVSBridge:
		a.Kind = ActionOVSAddPort
	case types.TypeBond:
		a.Kind = ActionEnslave
		a.Down = true
	default:
		a.Kind = ActionEnslave
	}
	b.plan.Actions = append(b.plan.Actions, a)
	return nil
}

// external reports whether the live master of o is owned by someone else:
// it is neither planned nor remembered from the previous pass, and the host
// is already under management.
func (b *builder) external(o *types.ObservedInterface) bool {
	if o.Master == "" || !b.in.Managed {
		return false
	}
	return !b.plan.Interfaces.Has(o.Master) && !b.in.Previous.Interfaces.Has(o.Master)
}

func (b *builder) liveMaster(o *types.ObservedInterface) (string, bool) {
	if o.Master == "" {
		return "", false
	}
	m, ok := b.in.Live.Get(o.Master)
	return o.Master, ok && m.Type == types.TypeOVSBridge
}
