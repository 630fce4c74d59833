package stratum

import "fmt"

// entityRecord is one slot of a manager's entity vector. Records are
// append-only; destruction clears the live flag and releases the id into
// the manager's free-slot queue without moving neighbors.
type entityRecord struct {
	id   uint32
	live bool

	// mask is the runtime signature over the manager's allComponents
	// order. On a projection record it carries the subset of the creation
	// signature visible in this manager's vocabulary.
	mask signature

	// bases holds one projection slot per entry of the manager's
	// AllManagers order: the local id of this entity's record in that
	// manager, or -1. The slot for the manager itself always holds the
	// record's own id.
	bases []int32

	// origin locates the record carrying the full creation signature;
	// for records created directly it is the record itself.
	originMgr *Manager
	originID  uint32
}

// record resolves e against the manager's entity vector.
func (m *Manager) record(e Entity) *entityRecord {
	if int(e.ID) >= len(m.entities) {
		panic(fmt.Sprintf("ecs: entity %d out of range for manager %s", e.ID, m.name))
	}
	return &m.entities[e.ID]
}

// newRecord appends a fresh live record and wires its own projection
// slot.
func (m *Manager) newRecord() uint32 {
	id := uint32(len(m.entities))
	bases := make([]int32, len(m.managers))
	for i := range bases {
		bases[i] = -1
	}
	bases[len(m.managers)-1] = int32(id)
	m.entities = append(m.entities, entityRecord{id: id, live: true, bases: bases})
	return id
}

// checkCreateSignature validates a creation signature: every component
// must be in the manager's vocabulary and appear once; the first nvalues
// entries carry values and must be storage components; the rest carry no
// value and must be tags.
func (m *Manager) checkCreateSignature(sig []ComponentID, nvalues int) {
	var seen signature
	for i, c := range sig {
		m.mustHave(c)
		idx := uint8(m.componentIndex[c])
		if seen.has(idx) {
			panic(fmt.Sprintf("ecs: duplicate component %s in signature", componentName(c)))
		}
		seen.add(idx)
		if i < nvalues {
			if IsTag(c) {
				panic(fmt.Sprintf("ecs: tag component %s cannot carry a value", componentName(c)))
			}
		} else if !IsTag(c) {
			panic(fmt.Sprintf("ecs: storage component %s requires a value", componentName(c)))
		}
	}
}

// projectionFor ensures the record id has a projection in the manager
// owning c and returns that owner and the projection's local id.
func (m *Manager) projectionFor(id uint32, c ComponentID) (*Manager, uint32) {
	k := m.ownerIndex[c]
	owner := m.managers[k]
	rec := &m.entities[id]
	if rec.bases[k] < 0 {
		pid := owner.newRecord()
		prec := &owner.entities[pid]
		prec.originMgr = m
		prec.originID = id
		rec = &m.entities[id]
		rec.bases[k] = int32(pid)
	}
	return owner, uint32(rec.bases[k])
}

// placeComponent moves v into the storage map of its owning manager,
// creating the projection record on first contact with that manager.
func placeComponent[T any](m *Manager, id uint32, v T) {
	c := GetID[T]()
	owner, pid := m.projectionFor(id, c)
	sparsePut(owner.stores[owner.myStorageIndex[c]], pid, v)
}

// finishCreate installs the runtime signature, propagates the visible
// signature bits and the projection cross-links into every projection
// record, and records the id vectors for each signature component.
func (m *Manager) finishCreate(id uint32, sig []ComponentID) Entity {
	rec := &m.entities[id]
	rec.originMgr = m
	rec.originID = id
	rec.mask = m.runtimeSignature(sig)

	self := len(m.managers) - 1
	for k, pid := range rec.bases {
		if pid < 0 || k == self {
			continue
		}
		b := m.managers[k]
		prec := &b.entities[pid]
		for _, c := range sig {
			if ci := b.componentIndex[c]; ci >= 0 {
				prec.mask.add(uint8(ci))
			}
		}
		// A query dispatched to b resolves storage through b's own
		// projection slots, so every owner visible from b is linked.
		for j, o := range b.managers {
			kk := m.managerIndex[o]
			if rec.bases[kk] >= 0 {
				prec.bases[j] = rec.bases[kk]
			}
		}
	}

	for _, c := range sig {
		k := m.ownerIndex[c]
		if pid := rec.bases[k]; pid >= 0 {
			o := m.managers[k]
			mi := o.myComponentIndex[c]
			o.componentEntities[mi] = append(o.componentEntities[mi], uint32(pid))
		}
	}

	e := Entity{ID: id}
	m.notifyCreated(e)
	return e
}

// CreateEmptyEntity creates an entity whose signature holds no storage
// components. The optional tags must be tag components of the manager's
// vocabulary.
func CreateEmptyEntity(m *Manager, tags ...ComponentID) Entity {
	m.checkCreateSignature(tags, 0)
	id := m.newRecord()
	return m.finishCreate(id, tags)
}

// CreateEntity creates an entity with one storage component value plus
// any number of tag components. The value is moved into the storage map
// of the component's owning manager; a projection record is materialized
// there if the owner is a base manager.
func CreateEntity[T1 any](m *Manager, v1 T1, tags ...ComponentID) Entity {
	sig := make([]ComponentID, 0, 1+len(tags))
	sig = append(sig, GetID[T1]())
	sig = append(sig, tags...)
	m.checkCreateSignature(sig, 1)
	id := m.newRecord()
	placeComponent(m, id, v1)
	return m.finishCreate(id, sig)
}

// DestroyEntity destroys a live entity. The destroy path runs exactly
// once: every storage component of the creation signature is erased from
// its owner's map, and every projection record (the record itself
// included) is marked dead with its local id pushed onto that manager's
// free-slot queue. e may be a projection reference; destruction resolves
// the originating record first.
func DestroyEntity(m *Manager, e Entity) {
	rec := m.record(e)
	if !rec.live {
		panic(fmt.Sprintf("ecs: destroy of dead entity %d on manager %s", e.ID, m.name))
	}
	om := rec.originMgr
	orec := &om.entities[rec.originID]

	for _, c := range om.allStorage {
		if !orec.mask.has(uint8(om.componentIndex[c])) {
			continue
		}
		k := om.ownerIndex[c]
		o := om.managers[k]
		pid := uint32(orec.bases[k])
		o.stores[o.myStorageIndex[c]].erase(pid)
	}

	for k, pid := range orec.bases {
		if pid < 0 {
			continue
		}
		o := om.managers[k]
		prec := &o.entities[pid]
		prec.live = false
		o.freeSlots = append(o.freeSlots, uint32(pid))
	}

	m.notifyDestroyed(e)
}

// Alive reports whether e refers to a live record of m.
func Alive(m *Manager, e Entity) bool {
	if int(e.ID) >= len(m.entities) {
		return false
	}
	return m.entities[e.ID].live
}

// GetComponent returns a mutable pointer to the entity's storage
// component of type T1, resolved through the owning manager's projection.
// The entity must be live and must possess the component; violations
// panic.
func GetComponent[T1 any](m *Manager, e Entity) *T1 {
	c := GetID[T1]()
	if !m.IsStorageComponent(c) {
		panic(fmt.Sprintf("ecs: %s is not a storage component of manager %s", componentName(c), m.name))
	}
	rec := m.record(e)
	if !rec.live {
		panic(fmt.Sprintf("ecs: component access on dead entity %d of manager %s", e.ID, m.name))
	}
	if !rec.mask.has(uint8(m.componentIndex[c])) {
		panic(fmt.Sprintf("ecs: entity %d of manager %s does not possess %s", e.ID, m.name, componentName(c)))
	}
	k := m.ownerIndex[c]
	o := m.managers[k]
	return sparseGet[T1](o.stores[o.myStorageIndex[c]], uint32(rec.bases[k]))
}

// HasComponent reports whether the live entity possesses the component of
// type T1. The component must be in the manager's vocabulary.
func HasComponent[T1 any](m *Manager, e Entity) bool {
	c := GetID[T1]()
	m.mustHave(c)
	rec := m.record(e)
	if !rec.live {
		panic(fmt.Sprintf("ecs: component probe on dead entity %d of manager %s", e.ID, m.name))
	}
	return rec.mask.has(uint8(m.componentIndex[c]))
}
