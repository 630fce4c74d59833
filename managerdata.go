package stratum

import "reflect"

// ManagerData is a manager's typed side-data store: at most one value per
// type, keyed by the value's type. It backs Manager.Data and is never
// touched by the entity lifecycle.
type ManagerData struct {
	byType map[reflect.Type]any
}

// SetData stores res under its type, replacing any previous value of the
// same type. A nil res panics.
func SetData[T any](d *ManagerData, res *T) {
	if res == nil {
		panic("ecs: cannot store nil manager data")
	}
	if d.byType == nil {
		d.byType = make(map[reflect.Type]any)
	}
	d.byType[reflect.TypeFor[*T]()] = res
}

// GetData returns the stored *T and whether one exists.
func GetData[T any](d *ManagerData) (*T, bool) {
	res, ok := d.byType[reflect.TypeFor[*T]()]
	if !ok {
		return nil, false
	}
	return res.(*T), true
}

// RemoveData drops the stored *T, reporting whether one existed.
func RemoveData[T any](d *ManagerData) bool {
	t := reflect.TypeFor[*T]()
	if _, ok := d.byType[t]; !ok {
		return false
	}
	delete(d.byType, t)
	return true
}

// Len returns the number of stored values.
func (d *ManagerData) Len() int {
	return len(d.byType)
}

// Clear drops every stored value.
func (d *ManagerData) Clear() {
	clear(d.byType)
}
