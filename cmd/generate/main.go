// Command generate emits the arity variants of the filter and entity
// APIs (filter_generated.go, api_generated.go). Run from the repository
// root via go generate.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const minArity = 2
const maxArity = 4

type arity struct {
	N          int
	TypeParams string // "T1 any, T2 any"
	TypeArgs   string // "T1, T2"
	ValueArgs  string // "v1 T1, v2 T2"
	ValueNames string // "v1, v2"
	PtrTypes   string // "*T1, *T2"
	NameList   string // "T1, T2"
	IDsLiteral string // "GetID[T1](), GetID[T2]()"
	GetLines   string // sparseGet lines of the Get body
	PlaceLines string // placeComponent lines of the CreateEntityN body
	GetCalls   string // "GetComponent[T1](m, e), GetComponent[T2](m, e)"
}

func makeArity(n int) arity {
	var tp, ta, va, vn, pt, ids, gets, places, calls []string
	for i := 1; i <= n; i++ {
		tp = append(tp, fmt.Sprintf("T%d any", i))
		ta = append(ta, fmt.Sprintf("T%d", i))
		va = append(va, fmt.Sprintf("v%d T%d", i, i))
		vn = append(vn, fmt.Sprintf("v%d", i))
		pt = append(pt, fmt.Sprintf("*T%d", i))
		ids = append(ids, fmt.Sprintf("GetID[T%d]()", i))
		gets = append(gets, fmt.Sprintf("sparseGet[T%d](f.stores[%d], uint32(rec.bases[f.ownerIdxs[%d]]))", i, i-1, i-1))
		places = append(places, fmt.Sprintf("\tplaceComponent(m, id, v%d)", i))
		calls = append(calls, fmt.Sprintf("GetComponent[T%d](m, e)", i))
	}
	return arity{
		N:          n,
		TypeParams: strings.Join(tp, ", "),
		TypeArgs:   strings.Join(ta, ", "),
		ValueArgs:  strings.Join(va, ", "),
		ValueNames: strings.Join(vn, ", "),
		PtrTypes:   strings.Join(pt, ", "),
		NameList:   strings.Join(ta, ", "),
		IDsLiteral: strings.Join(ids, ", "),
		GetLines:   strings.Join(gets, ",\n\t\t"),
		PlaceLines: strings.Join(places, "\n"),
		GetCalls:   strings.Join(calls, ", "),
	}
}

var filterTmpl = template.Must(template.New("filter").Parse(`
// Filter{{.N}} iterates all entities whose signature is a superset of
// {{"{"}}{{.NameList}}{{"}"}} ∪ tags. See Filter for dispatch and iteration
// semantics.
type Filter{{.N}}[{{.TypeParams}}] struct {
	target    *Manager
	stores    [{{.N}}]*sparseMap
	mask      signature
	ownerIdxs [{{.N}}]int
	limit     int
	idx       int
}

// NewFilter{{.N}} creates a filter over the storage components {{.NameList}}
// plus any number of tag components.
func NewFilter{{.N}}[{{.TypeParams}}](m *Manager, tags ...ComponentID) *Filter{{.N}}[{{.TypeArgs}}] {
	ids := [{{.N}}]ComponentID{ {{.IDsLiteral}} }
	sig := make([]ComponentID, 0, {{.N}}+len(tags))
	sig = append(sig, ids[:]...)
	sig = append(sig, tags...)
	b := m.queryTarget(sig, {{.N}})
	f := &Filter{{.N}}[{{.TypeArgs}}]{target: b, mask: b.runtimeSignature(sig)}
	for i, id := range ids {
		f.ownerIdxs[i] = int(b.ownerIndex[id])
		o := b.managers[f.ownerIdxs[i]]
		f.stores[i] = o.stores[o.myStorageIndex[id]]
	}
	f.Reset()
	return f
}

// Reset rewinds the filter and re-snapshots the scan bound.
func (f *Filter{{.N}}[{{.TypeArgs}}]) Reset() {
	f.idx = -1
	f.limit = len(f.target.entities)
}

// Next advances to the next live matching entity. It must be called
// before Entity or Get.
func (f *Filter{{.N}}[{{.TypeArgs}}]) Next() bool {
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
func (f *Filter{{.N}}[{{.TypeArgs}}]) Entity() Entity {
	return Entity{ID: f.target.entities[f.idx].id}
}

// Manager returns the manager the scan was dispatched to.
func (f *Filter{{.N}}[{{.TypeArgs}}]) Manager() *Manager {
	return f.target
}

// Get returns pointers to the {{.NameList}} components of the current
// entity.
func (f *Filter{{.N}}[{{.TypeArgs}}]) Get() ({{.PtrTypes}}) {
	rec := &f.target.entities[f.idx]
	return {{.GetLines}}
}

// Run{{.N}} invokes fn for every live entity matching {{"{"}}{{.NameList}}{{"}"}} ∪ tags,
// in ascending local id order of the dispatched manager.
func Run{{.N}}[{{.TypeParams}}](m *Manager, fn func({{.PtrTypes}}), tags ...ComponentID) {
	f := NewFilter{{.N}}[{{.TypeArgs}}](m, tags...)
	for f.Next() {
		fn(f.Get())
	}
}
`))

var apiTmpl = template.Must(template.New("api").Parse(`
// CreateEntity{{.N}} creates an entity with the {{.N}} storage component values
// {{.ValueNames}} plus any number of tag components.
func CreateEntity{{.N}}[{{.TypeParams}}](m *Manager, {{.ValueArgs}}, tags ...ComponentID) Entity {
	sig := make([]ComponentID, 0, {{.N}}+len(tags))
	sig = append(sig, {{.IDsLiteral}})
	sig = append(sig, tags...)
	m.checkCreateSignature(sig, {{.N}})
	id := m.newRecord()
{{.PlaceLines}}
	return m.finishCreate(id, sig)
}
`))

var getTmpl = template.Must(template.New("get").Parse(`
// GetComponent{{.N}} returns mutable pointers to the entity's {{.N}} storage
// components {{.NameList}}.
func GetComponent{{.N}}[{{.TypeParams}}](m *Manager, e Entity) ({{.PtrTypes}}) {
	return {{.GetCalls}}
}
`))

func main() {
	log.SetFlags(0)
	log.SetPrefix("generate: ")

	var buf bytes.Buffer
	buf.WriteString("// Code generated by cmd/generate. DO NOT EDIT.\n\npackage stratum\n")
	for n := minArity; n <= maxArity; n++ {
		if err := filterTmpl.Execute(&buf, makeArity(n)); err != nil {
			log.Fatal(err)
		}
	}
	write("filter_generated.go", buf.Bytes())

	buf.Reset()
	buf.WriteString("// Code generated by cmd/generate. DO NOT EDIT.\n\npackage stratum\n")
	for n := minArity; n <= maxArity; n++ {
		if err := apiTmpl.Execute(&buf, makeArity(n)); err != nil {
			log.Fatal(err)
		}
	}
	for n := minArity; n <= maxArity; n++ {
		if err := getTmpl.Execute(&buf, makeArity(n)); err != nil {
			log.Fatal(err)
		}
	}
	write("api_generated.go", buf.Bytes())
}

func write(name string, src []byte) {
	out, err := format.Source(src)
	if err != nil {
		log.Fatalf("formatting %s: %v", name, err)
	}
	if err := os.WriteFile(name, out, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", name)
}
