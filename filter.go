package stratum

import "fmt"

// Filter iterates all entities whose signature is a superset of the
// signature {T1} ∪ tags. Construction dispatches to the most-base manager
// whose vocabulary covers the signature and scans that manager's entity
// vector in ascending local id order, so entities created in derived
// managers are visited through their projections.
//
// The scan bound is snapshotted by Reset: entities created while
// iterating are not visited; destroying entities (the current one
// included) never skips or repeats a record.
type Filter[T1 any] struct {
	target    *Manager
	store1    *sparseMap
	mask      signature
	ownerIdx1 int
	limit     int
	idx       int
}

// NewFilter creates a filter over the storage component T1 plus any
// number of tag components. T1 must be a storage component and every tag
// must be in m's vocabulary.
func NewFilter[T1 any](m *Manager, tags ...ComponentID) *Filter[T1] {
	id1 := GetID[T1]()
	sig := make([]ComponentID, 0, 1+len(tags))
	sig = append(sig, id1)
	sig = append(sig, tags...)
	b := m.queryTarget(sig, 1)
	f := &Filter[T1]{
		target:    b,
		mask:      b.runtimeSignature(sig),
		ownerIdx1: int(b.ownerIndex[id1]),
	}
	o := b.managers[f.ownerIdx1]
	f.store1 = o.stores[o.myStorageIndex[id1]]
	f.Reset()
	return f
}

// Reset rewinds the filter and re-snapshots the scan bound, picking up
// entities created since the last reset.
func (f *Filter[T1]) Reset() {
	f.idx = -1
	f.limit = len(f.target.entities)
}

// Next advances to the next live matching entity. It must be called
// before Entity or Get.
func (f *Filter[T1]) Next() bool {
	for {
		f.idx++
		if f.idx >= f.limit {
			return false
		}
		rec := &f.target.entities[f.idx]
		if rec.live && rec.mask.supersetOf(f.mask) {
			return true
		}
	}
}

// Entity returns the current entity, local to Manager().
func (f *Filter[T1]) Entity() Entity {
	return Entity{ID: f.target.entities[f.idx].id}
}

// Manager returns the manager the scan was dispatched to; Entity ids are
// local to it.
func (f *Filter[T1]) Manager() *Manager {
	return f.target
}

// Get returns a pointer to the T1 component of the current entity,
// resolved through the owning manager's projection.
func (f *Filter[T1]) Get() *T1 {
	rec := &f.target.entities[f.idx]
	return sparseGet[T1](f.store1, uint32(rec.bases[f.ownerIdx1]))
}

// Run invokes fn for every live entity matching {T1} ∪ tags, in ascending
// local id order of the dispatched manager.
func Run[T1 any](m *Manager, fn func(*T1), tags ...ComponentID) {
	f := NewFilter[T1](m, tags...)
	for f.Next() {
		fn(f.Get())
	}
}

// EntityFilter iterates entities matching a signature of zero or more tag
// components, with no storage access. An empty signature matches every
// live entity of the dispatched manager.
type EntityFilter struct {
	target *Manager
	mask   signature
	limit  int
	idx    int
}

// NewEntityFilter creates a filter over a storage-free signature.
func NewEntityFilter(m *Manager, tags ...ComponentID) *EntityFilter {
	b := m.queryTarget(tags, 0)
	f := &EntityFilter{target: b, mask: b.runtimeSignature(tags)}
	f.Reset()
	return f
}

// Reset rewinds the filter and re-snapshots the scan bound.
func (f *EntityFilter) Reset() {
	f.idx = -1
	f.limit = len(f.target.entities)
}

// Next advances to the next live matching entity.
func (f *EntityFilter) Next() bool {
	for {
		f.idx++
		if f.idx >= f.limit {
			return false
		}
		rec := &f.target.entities[f.idx]
		if rec.live && rec.mask.supersetOf(f.mask) {
			return true
		}
	}
}

// Entity returns the current entity, local to Manager().
func (f *EntityFilter) Entity() Entity {
	return Entity{ID: f.target.entities[f.idx].id}
}

// Manager returns the manager the scan was dispatched to.
func (f *EntityFilter) Manager() *Manager {
	return f.target
}

// RunEntities invokes fn for every live entity matching the storage-free
// signature tags, passing the dispatched manager and the local entity.
func RunEntities(m *Manager, fn func(*Manager, Entity), tags ...ComponentID) {
	f := NewEntityFilter(m, tags...)
	for f.Next() {
		fn(f.target, f.Entity())
	}
}

// queryTarget validates a query signature and dispatches to its most-base
// manager. The first nstorage components must be storage components; the
// rest must be tags.
func (m *Manager) queryTarget(sig []ComponentID, nstorage int) *Manager {
	var seen signature
	for i, c := range sig {
		m.mustHave(c)
		idx := uint8(m.componentIndex[c])
		if seen.has(idx) {
			panic(fmt.Sprintf("ecs: duplicate component %s in query signature", componentName(c)))
		}
		seen.add(idx)
		if i < nstorage {
			if IsTag(c) {
				panic(fmt.Sprintf("ecs: tag component %s has no storage to fetch", componentName(c)))
			}
		} else if !IsTag(c) {
			panic(fmt.Sprintf("ecs: storage component %s must be a typed filter parameter", componentName(c)))
		}
	}
	return m.MostBaseFor(sig)
}
