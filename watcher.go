package stratum

// EntityWatcher observes a manager's entity lifecycle. Notifications fire
// on the manager the operation was invoked on, after the operation
// completes; projections materialized in base managers do not notify.
type EntityWatcher interface {
	EntityCreated(m *Manager, e Entity)
	EntityDestroyed(m *Manager, e Entity)
}

// Watch registers w on the manager. Watchers are notified in registration
// order and cannot be removed.
func (m *Manager) Watch(w EntityWatcher) {
	m.watchers = append(m.watchers, w)
}

// EntityWatcherFuncs adapts plain functions to the EntityWatcher
// interface. Either field may be nil.
type EntityWatcherFuncs struct {
	Created   func(*Manager, Entity)
	Destroyed func(*Manager, Entity)
}

func (f EntityWatcherFuncs) EntityCreated(m *Manager, e Entity) {
	if f.Created != nil {
		f.Created(m, e)
	}
}

func (f EntityWatcherFuncs) EntityDestroyed(m *Manager, e Entity) {
	if f.Destroyed != nil {
		f.Destroyed(m, e)
	}
}

func (m *Manager) notifyCreated(e Entity) {
	for _, w := range m.watchers {
		w.EntityCreated(m, e)
	}
}

func (m *Manager) notifyDestroyed(e Entity) {
	for _, w := range m.watchers {
		w.EntityDestroyed(m, e)
	}
}
