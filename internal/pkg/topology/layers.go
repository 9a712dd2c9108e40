package topology

import (
	"fmt"

	"golang-netreconcile/internal/types"
)

// ensureBase puts a conduit NIC into the working map.
func (b *builder) ensureBase(nic string) string {
	if _, ok := b.plan.Interfaces[nic]; ok {
		return nic
	}
	typ := types.TypePhysical
	if o, ok := b.in.Live.Get(nic); ok && o.Type != types.TypeOther {
		typ = o.Type
	}
	b.plan.Interfaces[nic] = &types.InterfaceRecord{Name: nic, Type: typ}
	return nic
}

// ensureBond finds the bond whose members are exactly nics, creating one
// under the lowest free bondN name when none exists.
func (b *builder) ensureBond(c types.Conduit, nics []string) (string, error) {
	for _, name := range b.plan.Interfaces.Names() {
		rec := b.plan.Interfaces[name]
		if rec.Type == types.TypeBond && sameSet(rec.Slaves, nics) {
			return name, nil
		}
	}

	mode, err := ParseBondMode(c.TeamMode)
	if err != nil {
		return "", err
	}
	xmit, err := ParseXmitHashPolicy(c.XmitHashPolicy)
	if err != nil {
		return "", err
	}
	miimon := c.Miimon
	if miimon == 0 {
		miimon = DefaultMiimon
	}
	rec := &types.InterfaceRecord{
		Type:           types.TypeBond,
		BondMode:       mode,
		Miimon:         miimon,
		XmitHashPolicy: xmit,
	}

	for _, name := range b.in.Live.Order {
		o := b.in.Live.Interfaces[name]
		if o.Type == types.TypeBond && !b.plan.Interfaces.Has(name) && sameSet(o.Slaves, nics) {
			rec.Name = name
			break
		}
	}
	if rec.Name == "" {
		rec.Name = b.freeBondName()
		b.plan.Actions = append(b.plan.Actions, Action{
			Kind:           ActionCreateBond,
			Interface:      rec.Name,
			BondMode:       mode,
			Miimon:         miimon,
			XmitHashPolicy: xmit,
		})
	}
	b.plan.Interfaces[rec.Name] = rec

	for _, nic := range nics {
		b.ensureBase(nic)
		if err := b.enslave(nic, rec.Name); err != nil {
			return "", err
		}
	}
	return rec.Name, nil
}

func (b *builder) freeBondName() string {
	for i := 0; ; i++ {
		name := fmt.Sprintf("bond%d", i)
		if _, live := b.in.Live.Get(name); !live && !b.plan.Interfaces.Has(name) {
			return name
		}
	}
}

// ensureVLAN finds or creates {owner}.{id}. Live VLANs with the same id on
// the same parent under another name are destroyed first since the kernel
// allows only one.
func (b *builder) ensureVLAN(owner string, id int) (string, error) {
	name := VLANName(owner, id)
	if err := ValidateInterfaceName(name); err != nil {
		return "", err
	}
	if rec, ok := b.plan.Interfaces[name]; ok {
		if rec.Type != types.TypeVLAN || rec.Parent != owner || rec.VLANID != id {
			return "", types.Configurationf("%s is already planned as %s", name, rec.Type)
		}
		return name, nil
	}

	rec := &types.InterfaceRecord{Name: name, Type: types.TypeVLAN, Parent: owner, VLANID: id}
	b.plan.Interfaces[name] = rec

	if o, ok := b.in.Live.Get(name); ok {
		if o.Type == types.TypeVLAN && o.Parent == owner && o.VLANID == id {
			return name, nil
		}
		b.destroy(o)
	}
	for _, other := range b.in.Live.Order {
		o := b.in.Live.Interfaces[other]
		if other != name && o.Type == types.TypeVLAN && o.Parent == owner && o.VLANID == id {
			b.destroy(o)
		}
	}
	b.plan.Actions = append(b.plan.Actions, Action{
		Kind:      ActionCreateVLAN,
		Interface: name,
		Parent:    owner,
		VLANID:    id,
	})
	return name, nil
}

// ensureBridge finds or creates the Linux bridge and enslaves owner into it.
func (b *builder) ensureBridge(name, owner string) (string, error) {
	if err := b.ensureContainer(name, types.TypeBridge, func() {
		b.plan.Actions = append(b.plan.Actions, Action{Kind: ActionCreateBridge, Interface: name})
	}); err != nil {
		return "", err
	}
	if err := b.enslave(owner, name); err != nil {
		return "", err
	}
	return name, nil
}

// ensureOVSBridge finds or creates the OVS bridge with a stable datapath id
// and plugs owner into it.
func (b *builder) ensureOVSBridge(name, owner string) (string, error) {
	id, ok := b.plan.DatapathIDs[name]
	if !ok {
		id = b.in.Previous.DatapathIDs[name]
		if id == "" {
			id = b.in.NewDatapathID()
			b.plan.GeneratedDatapathIDs = append(b.plan.GeneratedDatapathIDs, name)
		}
		b.plan.DatapathIDs[name] = id
	}

	if err := b.ensureContainer(name, types.TypeOVSBridge, func() {
		b.plan.Actions = append(b.plan.Actions, Action{Kind: ActionCreateOVSBridge, Interface: name, DatapathID: id})
	}); err != nil {
		return "", err
	}
	rec := b.plan.Interfaces[name]
	if rec.DatapathID == "" {
		rec.DatapathID = id
		if o, ok := b.in.Live.Get(name); ok && o.DatapathID != id {
			b.plan.Actions = append(b.plan.Actions, Action{Kind: ActionSetDatapathID, Interface: name, DatapathID: id})
		}
	}

	if err := b.enslave(owner, name); err != nil {
		return "", err
	}
	b.replugs = append(b.replugs, ovsReplug{priorOwner: owner, bridge: name})
	return name, nil
}

// ensureContainer records a bridge-like interface, calling create when it
// does not exist yet.
func (b *builder) ensureContainer(name string, typ types.InterfaceType, create func()) error {
	if err := ValidateInterfaceName(name); err != nil {
		return err
	}
	if rec, ok := b.plan.Interfaces[name]; ok {
		if rec.Type != typ {
			return types.Configurationf("%s is already planned as %s, not %s", name, rec.Type, typ)
		}
		return nil
	}
	if o, ok := b.in.Live.Get(name); ok && o.Type != typ {
		return types.Configurationf("%s exists as %s, cannot use it as %s", name, o.Type, typ)
	} else if !ok {
		create()
	}
	b.plan.Interfaces[name] = &types.InterfaceRecord{Name: name, Type: typ}
	return nil
}

// replugOVSChildren moves VLAN children of an OVS bridge's prior owner that
// sit on a different OVS bridge onto the new one. The kernel does not replug
// them when the parent moves.
func (b *builder) replugOVSChildren() {
	for _, r := range b.replugs {
		for _, name := range b.in.Live.Order {
			o := b.in.Live.Interfaces[name]
			if o.Type != types.TypeVLAN || o.Parent != r.priorOwner || o.Master == "" || o.Master == r.bridge {
				continue
			}
			if m, ok := b.in.Live.Get(o.Master); !ok || m.Type != types.TypeOVSBridge {
				continue
			}
			if rec, ok := b.plan.Interfaces[name]; ok && rec.Slave && rec.Master != r.bridge {
				continue
			}
			b.plan.Actions = append(b.plan.Actions, Action{
				Kind:      ActionOVSAddPort,
				Interface: name,
				Master:    r.bridge,
				From:      o.Master,
				FromOVS:   true,
			})
		}
	}
}
