package stratum

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ComponentID is the global identifier of a registered component type.
// Managers translate it to their own dense component indices.
type ComponentID uint32

const (
	maskWords         = 4
	maxComponentTypes = maskWords * 64
)

// componentInfo is one registry entry. The tag flag is decided once at
// registration: a zero-sized type participates in signatures but carries
// no storage, so every manager partitions its vocabulary off this flag.
type componentInfo struct {
	typ reflect.Type
	tag bool
}

var (
	componentInfos []componentInfo
	componentIDs   = make(map[reflect.Type]ComponentID, maxComponentTypes)
)

// ResetGlobalRegistry drops every registered component type. Managers
// built against the previous registry must be discarded with it.
func ResetGlobalRegistry() {
	componentInfos = componentInfos[:0]
	componentIDs = make(map[reflect.Type]ComponentID, maxComponentTypes)
}

// RegisterComponent registers T and returns its ComponentID, or the
// existing ID if T was registered before. It panics once the component
// universe is full: a manager signature cannot address further types.
func RegisterComponent[T any]() ComponentID {
	var zero T
	typ := reflect.TypeOf(zero)
	if id, ok := componentIDs[typ]; ok {
		return id
	}
	if len(componentInfos) == maxComponentTypes {
		panic(fmt.Sprintf("ecs: cannot register component %s: all %d signature slots taken", typ, maxComponentTypes))
	}
	id := ComponentID(len(componentInfos))
	componentInfos = append(componentInfos, componentInfo{typ: typ, tag: unsafe.Sizeof(zero) == 0})
	componentIDs[typ] = id
	return id
}

// GetID returns the ComponentID of T. It panics if T was never
// registered.
func GetID[T any]() ComponentID {
	id, ok := TryGetID[T]()
	if !ok {
		var zero T
		panic(fmt.Sprintf("ecs: component type %s not registered", reflect.TypeOf(zero)))
	}
	return id
}

// TryGetID returns the ComponentID of T and whether T is registered.
func TryGetID[T any]() (ComponentID, bool) {
	var zero T
	id, ok := componentIDs[reflect.TypeOf(zero)]
	return id, ok
}

// IsTag reports whether the registered component is a tag component,
// meaning its value representation has no observable state.
func IsTag(id ComponentID) bool {
	return componentInfos[id].tag
}

// isRegistered reports whether id was handed out by RegisterComponent.
func isRegistered(id ComponentID) bool {
	return int(id) < len(componentInfos)
}

// componentType returns the value type of a registered component, used
// when a manager allocates the component's storage plane.
func componentType(id ComponentID) reflect.Type {
	return componentInfos[id].typ
}

// componentName returns the type name of a registered component, for
// diagnostics.
func componentName(id ComponentID) string {
	if int(id) < len(componentInfos) {
		return componentInfos[id].typ.String()
	}
	return fmt.Sprintf("component#%d", id)
}
