package stratum

// CreateEntityBatch creates count entities back to back, each with a copy
// of v1 plus the given tag components, and returns the half-open local id
// interval [first, last) they occupy in m's entity vector.
func CreateEntityBatch[T1 any](m *Manager, count int, v1 T1, tags ...ComponentID) (first, last uint32) {
	first = uint32(len(m.entities))
	for range count {
		CreateEntity(m, v1, tags...)
	}
	return first, uint32(len(m.entities))
}

// CreateEntityBatch2 creates count entities back to back, each with
// copies of v1 and v2 plus the given tag components, and returns the
// half-open local id interval [first, last).
func CreateEntityBatch2[T1 any, T2 any](m *Manager, count int, v1 T1, v2 T2, tags ...ComponentID) (first, last uint32) {
	first = uint32(len(m.entities))
	for range count {
		CreateEntity2(m, v1, v2, tags...)
	}
	return first, uint32(len(m.entities))
}
