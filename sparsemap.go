package stratum

import (
	"reflect"
	"unsafe"
)

// pageSize is the number of slots per storage page. One occupancy word
// covers a full page.
const pageSize = 64

// sparsePage holds fixed-size storage for pageSize component values plus
// an occupancy bit per slot.
type sparsePage struct {
	data     unsafe.Pointer // backing array of pageSize values
	occupied uint64
}

// sparseMap is a segmented map from local entity id to component value.
// The page directory is sparse: pages are allocated on first insert into
// their id range, erasure clears an occupancy bit without shifting
// neighbors, and iteration walks live slots in ascending id order.
// Insert, erase and lookup are O(1).
type sparseMap struct {
	typ   reflect.Type
	pages []*sparsePage
	size  uintptr // element size in bytes, 0 never occurs (tags have no map)
	count int
}

// newSparseMap creates an empty map for values of the given type.
func newSparseMap(typ reflect.Type) *sparseMap {
	return &sparseMap{typ: typ, size: typ.Size()}
}

// newPage allocates typed backing storage for one page. Going through
// reflect keeps the memory typed for the garbage collector.
func (m *sparseMap) newPage() *sparsePage {
	slice := reflect.MakeSlice(reflect.SliceOf(m.typ), pageSize, pageSize)
	return &sparsePage{data: slice.UnsafePointer()}
}

// ensure returns a pointer to the slot for id, allocating its page and
// marking the slot occupied if needed.
func (m *sparseMap) ensure(id uint32) unsafe.Pointer {
	pi := int(id) / pageSize
	if pi >= len(m.pages) {
		grown := make([]*sparsePage, pi+1)
		copy(grown, m.pages)
		m.pages = grown
	}
	p := m.pages[pi]
	if p == nil {
		p = m.newPage()
		m.pages[pi] = p
	}
	o := uint64(id) % pageSize
	if p.occupied&(uint64(1)<<o) == 0 {
		p.occupied |= uint64(1) << o
		m.count++
	}
	return unsafe.Pointer(uintptr(p.data) + uintptr(o)*m.size)
}

// get returns a pointer to the slot for id, or nil if id is absent.
func (m *sparseMap) get(id uint32) unsafe.Pointer {
	pi := int(id) / pageSize
	if pi >= len(m.pages) {
		return nil
	}
	p := m.pages[pi]
	if p == nil {
		return nil
	}
	o := uint64(id) % pageSize
	if p.occupied&(uint64(1)<<o) == 0 {
		return nil
	}
	return unsafe.Pointer(uintptr(p.data) + uintptr(o)*m.size)
}

// has reports whether id is present.
func (m *sparseMap) has(id uint32) bool {
	return m.get(id) != nil
}

// erase removes id from the map, zeroing its slot so pointer-carrying
// components release their referents. Reports whether id was present.
func (m *sparseMap) erase(id uint32) bool {
	pi := int(id) / pageSize
	if pi >= len(m.pages) || m.pages[pi] == nil {
		return false
	}
	p := m.pages[pi]
	o := uint64(id) % pageSize
	if p.occupied&(uint64(1)<<o) == 0 {
		return false
	}
	p.occupied &^= uint64(1) << o
	m.count--
	slot := unsafe.Pointer(uintptr(p.data) + uintptr(o)*m.size)
	b := unsafe.Slice((*byte)(slot), m.size)
	for i := range b {
		b[i] = 0
	}
	return true
}

// len returns the number of live entries.
func (m *sparseMap) len() int {
	return m.count
}

// each calls fn for every live entry in ascending id order until fn
// returns false.
func (m *sparseMap) each(fn func(id uint32, p unsafe.Pointer) bool) {
	for pi, p := range m.pages {
		if p == nil || p.occupied == 0 {
			continue
		}
		for o := 0; o < pageSize; o++ {
			if p.occupied&(uint64(1)<<uint64(o)) == 0 {
				continue
			}
			id := uint32(pi*pageSize + o)
			if !fn(id, unsafe.Pointer(uintptr(p.data)+uintptr(o)*m.size)) {
				return
			}
		}
	}
}

// sparsePut stores v at id. The map must have been created for type T.
func sparsePut[T any](m *sparseMap, id uint32, v T) {
	*(*T)(m.ensure(id)) = v
}

// sparseGet returns a typed pointer to the value at id, or nil.
func sparseGet[T any](m *sparseMap, id uint32) *T {
	return (*T)(m.get(id))
}
