package stratum

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config describes a manager: the component types it declares locally and
// the base managers whose vocabulary it inherits. Bases must be fully
// constructed before the derived manager references them, which keeps the
// composition graph acyclic by construction.
type Config struct {
	Name            string
	Components      []ComponentID
	Bases           []*Manager
	InitialCapacity int

	// Logger, when non-nil, replaces the default no-op logger before the
	// construction diagnostics are emitted.
	Logger *zerolog.Logger
}

// Manager is one shard of the entity store. It owns the storage for its
// locally declared components, a dense vector of entity records, and the
// derived composition tables shared by lookups and queries. All derived
// tables are frozen at construction; only the entity plane and the
// storage plane mutate afterwards.
type Manager struct {
	name string

	myComponents []ComponentID // locally declared, declaration order
	myStorage    []ComponentID
	myTags       []ComponentID

	allComponents []ComponentID // depth-first over bases, dedup, locals last
	allStorage    []ComponentID
	allTags       []ComponentID

	bases    []*Manager // direct bases, declaration order
	managers []*Manager // transitive bases dedup, self last

	componentIndex   [maxComponentTypes]int16 // index in allComponents, -1 absent
	myComponentIndex [maxComponentTypes]int16 // index in myComponents, -1 absent
	storageIndex     [maxComponentTypes]int16 // index in allStorage, -1 absent
	myStorageIndex   [maxComponentTypes]int16 // index in myStorage, -1 absent
	ownerIndex       [maxComponentTypes]int16 // index in managers of the owner, -1 absent
	managerIndex     map[*Manager]int

	// storage plane: one segmented map per local storage component, plus
	// the append-only id vector per local component.
	stores            []*sparseMap
	componentEntities [][]uint32

	// entity plane. Records are never physically removed; freeSlots holds
	// the ids released by destruction.
	entities  []entityRecord
	freeSlots []uint32

	data     ManagerData
	watchers []EntityWatcher
	logger   zerolog.Logger
}

// NewManager constructs a manager from cfg. It panics on any
// configuration or structural error; use TryNewManager to receive the
// error instead.
func NewManager(cfg Config) *Manager {
	m, err := TryNewManager(cfg)
	if err != nil {
		panic(fmt.Sprintf("ecs: %v", err))
	}
	return m
}

// TryNewManager constructs a manager from cfg, deriving the full
// composition tables: allManagers (transitive bases deduplicated, self
// last), allComponents (depth-first over bases deduplicated keeping first
// occurrence, locals appended), the storage/tag partitions and the owner
// table. Every component must be registered, declared at most once, and
// declared locally by at most one manager in the composition graph.
func TryNewManager(cfg Config) (*Manager, error) {
	name := cfg.Name
	if name == "" {
		name = fmt.Sprintf("manager@%d", len(cfg.Components))
	}
	for i, b := range cfg.Bases {
		if b == nil {
			return nil, eris.Wrapf(ErrNilBase, "manager %s: base %d", name, i)
		}
	}

	m := &Manager{
		name:         name,
		managerIndex: make(map[*Manager]int),
		logger:       zerolog.Nop(),
	}
	if cfg.Logger != nil {
		m.logger = *cfg.Logger
	}
	for i := range maxComponentTypes {
		m.componentIndex[i] = -1
		m.myComponentIndex[i] = -1
		m.storageIndex[i] = -1
		m.myStorageIndex[i] = -1
		m.ownerIndex[i] = -1
	}

	m.bases = append(m.bases, cfg.Bases...)

	// allManagers: concatenate each base's allManagers (which already
	// ends with the base itself), dedup keeping first occurrence, self
	// appended last.
	for _, b := range cfg.Bases {
		for _, a := range b.managers {
			if _, ok := m.managerIndex[a]; ok {
				continue
			}
			m.managerIndex[a] = len(m.managers)
			m.managers = append(m.managers, a)
		}
	}
	m.managerIndex[m] = len(m.managers)
	m.managers = append(m.managers, m)

	// allComponents: inherited first, dedup keeping first occurrence.
	for _, b := range cfg.Bases {
		for _, c := range b.allComponents {
			if m.componentIndex[c] >= 0 {
				continue
			}
			m.componentIndex[c] = int16(len(m.allComponents))
			m.allComponents = append(m.allComponents, c)
		}
	}

	// local declarations are appended after every inherited component.
	for _, c := range cfg.Components {
		if !isRegistered(c) {
			return nil, eris.Wrapf(ErrUnknownComponent, "manager %s: component id %d", name, c)
		}
		if m.myComponentIndex[c] >= 0 {
			return nil, eris.Wrapf(ErrDuplicateComponent, "manager %s: component %s declared twice", name, componentName(c))
		}
		for _, a := range m.managers[:len(m.managers)-1] {
			if a.myComponentIndex[c] >= 0 {
				return nil, eris.Wrapf(ErrDuplicateComponent, "manager %s: component %s already declared by manager %s", name, componentName(c), a.name)
			}
		}
		m.myComponentIndex[c] = int16(len(m.myComponents))
		m.myComponents = append(m.myComponents, c)
		if m.componentIndex[c] < 0 {
			m.componentIndex[c] = int16(len(m.allComponents))
			m.allComponents = append(m.allComponents, c)
		}
		if IsTag(c) {
			m.myTags = append(m.myTags, c)
		} else {
			m.myStorageIndex[c] = int16(len(m.myStorage))
			m.myStorage = append(m.myStorage, c)
		}
	}

	// partitions over allComponents, preserving relative order.
	for _, c := range m.allComponents {
		if IsTag(c) {
			m.allTags = append(m.allTags, c)
		} else {
			m.storageIndex[c] = int16(len(m.allStorage))
			m.allStorage = append(m.allStorage, c)
		}
	}

	// owner table: the first manager in allManagers order declaring the
	// component locally. Uniqueness was checked above.
	for _, c := range m.allComponents {
		for k, a := range m.managers {
			if a.myComponentIndex[c] >= 0 {
				m.ownerIndex[c] = int16(k)
				break
			}
		}
	}

	m.stores = make([]*sparseMap, len(m.myStorage))
	for i, c := range m.myStorage {
		m.stores[i] = newSparseMap(componentType(c))
	}
	m.componentEntities = make([][]uint32, len(m.myComponents))
	if cfg.InitialCapacity > 0 {
		m.entities = make([]entityRecord, 0, cfg.InitialCapacity)
	}

	m.logger.Debug().
		Str("manager", m.name).
		Int("components", len(m.allComponents)).
		Int("managers", len(m.managers)).
		Msg("manager constructed")
	return m, nil
}

// InjectLogger replaces the manager's logger. The default is a no-op
// logger.
func (m *Manager) InjectLogger(logger *zerolog.Logger) {
	m.logger = *logger
}

// Name returns the manager's configured name.
func (m *Manager) Name() string {
	return m.name
}

// Data returns the manager's typed side-data store.
func (m *Manager) Data() *ManagerData {
	return &m.data
}

// MyComponents returns the locally declared components in declaration
// order.
func (m *Manager) MyComponents() []ComponentID {
	return m.myComponents
}

// AllComponents returns the manager's full component vocabulary: the
// transitive union over its bases deduplicated keeping first occurrence,
// followed by the local declarations.
func (m *Manager) AllComponents() []ComponentID {
	return m.allComponents
}

// AllStorageComponents returns the storage subset of AllComponents,
// preserving relative order.
func (m *Manager) AllStorageComponents() []ComponentID {
	return m.allStorage
}

// AllTagComponents returns the tag subset of AllComponents, preserving
// relative order.
func (m *Manager) AllTagComponents() []ComponentID {
	return m.allTags
}

// AllManagers returns the transitive base closure plus the manager
// itself, deduplicated, self last.
func (m *Manager) AllManagers() []*Manager {
	return m.managers
}

// Bases returns the direct bases in declaration order.
func (m *Manager) Bases() []*Manager {
	return m.bases
}

// IsComponent reports whether c is in the manager's vocabulary.
func (m *Manager) IsComponent(c ComponentID) bool {
	return int(c) < maxComponentTypes && m.componentIndex[c] >= 0
}

// IsMyComponent reports whether c is declared locally.
func (m *Manager) IsMyComponent(c ComponentID) bool {
	return int(c) < maxComponentTypes && m.myComponentIndex[c] >= 0
}

// IsStorageComponent reports whether c is a storage component of the
// manager's vocabulary.
func (m *Manager) IsStorageComponent(c ComponentID) bool {
	return int(c) < maxComponentTypes && m.storageIndex[c] >= 0
}

// IsTagComponent reports whether c is a tag component of the manager's
// vocabulary.
func (m *Manager) IsTagComponent(c ComponentID) bool {
	return m.IsComponent(c) && IsTag(c)
}

// IsManager reports whether b is in the manager's transitive closure
// (including itself).
func (m *Manager) IsManager(b *Manager) bool {
	_, ok := m.managerIndex[b]
	return ok
}

// IsBase reports whether b is a direct base.
func (m *Manager) IsBase(b *Manager) bool {
	for _, d := range m.bases {
		if d == b {
			return true
		}
	}
	return false
}

// IsSignature reports whether every component of sig is in the manager's
// vocabulary.
func (m *Manager) IsSignature(sig []ComponentID) bool {
	for _, c := range sig {
		if !m.IsComponent(c) {
			return false
		}
	}
	return true
}

// ComponentIndex returns c's index within AllComponents. Asking for a
// component outside the vocabulary is a configuration error and panics.
func (m *Manager) ComponentIndex(c ComponentID) int {
	m.mustHave(c)
	return int(m.componentIndex[c])
}

// MyComponentIndex returns c's index within MyComponents.
func (m *Manager) MyComponentIndex(c ComponentID) int {
	if !m.IsMyComponent(c) {
		panic(fmt.Sprintf("ecs: %s is not a local component of manager %s", componentName(c), m.name))
	}
	return int(m.myComponentIndex[c])
}

// StorageComponentIndex returns c's index within AllStorageComponents.
func (m *Manager) StorageComponentIndex(c ComponentID) int {
	if !m.IsStorageComponent(c) {
		panic(fmt.Sprintf("ecs: %s is not a storage component of manager %s", componentName(c), m.name))
	}
	return int(m.storageIndex[c])
}

// MyStorageComponentIndex returns c's index within the local storage
// components.
func (m *Manager) MyStorageComponentIndex(c ComponentID) int {
	if int(c) >= maxComponentTypes || m.myStorageIndex[c] < 0 {
		panic(fmt.Sprintf("ecs: %s is not a local storage component of manager %s", componentName(c), m.name))
	}
	return int(m.myStorageIndex[c])
}

// ManagerIndex returns b's index within AllManagers.
func (m *Manager) ManagerIndex(b *Manager) int {
	k, ok := m.managerIndex[b]
	if !ok {
		panic(fmt.Sprintf("ecs: manager %s is not in the composition graph of %s", b.name, m.name))
	}
	return k
}

// OwnerOf returns the unique manager in AllManagers that declares c
// locally.
func (m *Manager) OwnerOf(c ComponentID) *Manager {
	m.mustHave(c)
	return m.managers[m.ownerIndex[c]]
}

// directBaseFor returns the leftmost direct base whose vocabulary covers
// sig, or m itself if none qualifies.
func (m *Manager) directBaseFor(sig []ComponentID) *Manager {
	for _, b := range m.bases {
		if b.IsSignature(sig) {
			return b
		}
	}
	return m
}

// MostBaseFor iterates directBaseFor until a fixed point: the smallest
// manager in the composition graph whose vocabulary still covers sig.
// Ties break toward the first direct base in declaration order.
func (m *Manager) MostBaseFor(sig []ComponentID) *Manager {
	cur := m
	for {
		next := cur.directBaseFor(sig)
		if next == cur {
			return cur
		}
		cur = next
	}
}

// runtimeSignature builds the bitset representation of sig over the
// manager's allComponents order.
func (m *Manager) runtimeSignature(sig []ComponentID) signature {
	var mask signature
	for _, c := range sig {
		mask.add(uint8(m.ComponentIndex(c)))
	}
	return mask
}

// EntityCount returns the length of the entity vector, counting dead
// records.
func (m *Manager) EntityCount() int {
	return len(m.entities)
}

// FreeSlotCount returns the number of local ids released by destruction.
func (m *Manager) FreeSlotCount() int {
	return len(m.freeSlots)
}

// StorageLen returns the number of live entries in the local storage map
// for c. c must be a local storage component.
func (m *Manager) StorageLen(c ComponentID) int {
	return m.stores[m.MyStorageComponentIndex(c)].len()
}

// ComponentEntityIDs returns the append-only vector of local ids that
// have carried the local component c. It is not compacted on
// destruction.
func (m *Manager) ComponentEntityIDs(c ComponentID) []uint32 {
	return m.componentEntities[m.MyComponentIndex(c)]
}

func (m *Manager) mustHave(c ComponentID) {
	if !m.IsComponent(c) {
		panic(fmt.Sprintf("ecs: %s is not a component of manager %s", componentName(c), m.name))
	}
}
