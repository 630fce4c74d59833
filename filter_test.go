package stratum_test

import (
	"testing"

	"github.com/kvistgard/stratum"
)

// go test -run ^TestFilterMutatesThroughQuery$ . -count 1
func TestFilterMutatesThroughQuery(t *testing.T) {
	physics, _ := setupPair(t)
	e := stratum.CreateEntity2(physics, Position{X: 1, Y: 2}, Velocity{VX: 3, VY: 4})

	stratum.Run(physics, func(p *Position) {
		p.X += 1
	})

	if got := stratum.GetComponent[Position](physics, e).X; got != 2 {
		t.Errorf("Expected X == 2 after the query mutation, got %v", got)
	}
}

// go test -run ^TestFilterIntersection$ . -count 1
func TestFilterIntersection(t *testing.T) {
	physics, _ := setupPair(t)
	stratum.CreateEntity(physics, Position{})
	stratum.CreateEntity2(physics, Position{}, Velocity{VX: 1, VY: 1})

	count := 0
	stratum.Run2(physics, func(_ *Position, _ *Velocity) {
		count++
	})
	if count != 1 {
		t.Errorf("Expected 1 entity with Position and Velocity, got %d", count)
	}
}

// go test -run ^TestFilterSkipsDestroyed$ . -count 1
func TestFilterSkipsDestroyed(t *testing.T) {
	physics, _ := setupPair(t)
	stratum.CreateEntity(physics, Position{X: 1})
	mid := stratum.CreateEntity(physics, Position{X: 2})
	stratum.CreateEntity(physics, Position{X: 3})
	stratum.DestroyEntity(physics, mid)

	var seen []float32
	stratum.Run(physics, func(p *Position) {
		seen = append(seen, p.X)
	})
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Errorf("Expected survivors [1 3] in creation order, got %v", seen)
	}
}

// go test -run ^TestFilterDispatchesToBase$ . -count 1
func TestFilterDispatchesToBase(t *testing.T) {
	physics, gameplay := setupPair(t)
	stratum.CreateEntity2(physics, Position{X: 1}, Velocity{VX: 10})
	stratum.CreateEntity2(gameplay, Position{X: 2}, Velocity{VX: 20})

	f := stratum.NewFilter2[Position, Velocity](gameplay)
	if f.Manager() != physics {
		t.Fatalf("Expected dispatch to Physics, got %s", f.Manager().Name())
	}

	var seen []float32
	for f.Next() {
		p, v := f.Get()
		seen = append(seen, p.X, v.VX)
	}
	// ascending local id in Physics: the direct entity first, then the
	// projection of the Gameplay entity
	if len(seen) != 4 || seen[0] != 1 || seen[1] != 10 || seen[2] != 2 || seen[3] != 20 {
		t.Errorf("Expected visits [1 10 2 20], got %v", seen)
	}
}

// go test -run ^TestFilterTagRestriction$ . -count 1
func TestFilterTagRestriction(t *testing.T) {
	_, gameplay := setupPair(t)
	stratum.CreateEntity(gameplay, Health{Current: 1})
	stratum.CreateEntity(gameplay, Health{Current: 2}, stratum.GetID[Dead]())

	f := stratum.NewFilter[Health](gameplay, stratum.GetID[Dead]())
	if f.Manager() != gameplay {
		t.Fatalf("Expected the tag to pin the query to Gameplay, got %s", f.Manager().Name())
	}

	var seen []int
	for f.Next() {
		seen = append(seen, f.Get().Current)
	}
	if len(seen) != 1 || seen[0] != 2 {
		t.Errorf("Expected only the tagged entity, got %v", seen)
	}
}

// go test -run ^TestFilterSnapshotsScanBound$ . -count 1
func TestFilterSnapshotsScanBound(t *testing.T) {
	physics, _ := setupPair(t)
	stratum.CreateEntity(physics, Position{X: 1})
	stratum.CreateEntity(physics, Position{X: 2})

	count := 0
	f := stratum.NewFilter[Position](physics)
	for f.Next() {
		if count == 0 {
			stratum.CreateEntity(physics, Position{X: 3})
		}
		count++
	}
	if count != 2 {
		t.Errorf("Expected entities created mid-scan to be invisible, visited %d", count)
	}

	// a Reset picks them up
	f.Reset()
	count = 0
	for f.Next() {
		count++
	}
	if count != 3 {
		t.Errorf("Expected 3 visits after Reset, got %d", count)
	}
}

// go test -run ^TestFilterDestroyCurrent$ . -count 1
func TestFilterDestroyCurrent(t *testing.T) {
	physics, _ := setupPair(t)
	stratum.CreateEntity(physics, Position{X: 1})
	stratum.CreateEntity(physics, Position{X: 2})
	stratum.CreateEntity(physics, Position{X: 3})

	var seen []float32
	f := stratum.NewFilter[Position](physics)
	for f.Next() {
		seen = append(seen, f.Get().X)
		stratum.DestroyEntity(physics, f.Entity())
	}
	if len(seen) != 3 {
		t.Errorf("Expected destroying the current entity to skip nothing, visited %v", seen)
	}
	if physics.FreeSlotCount() != 3 {
		t.Errorf("Expected 3 free slots, got %d", physics.FreeSlotCount())
	}
}

// go test -run ^TestEmptySignature$ . -count 1
func TestEmptySignature(t *testing.T) {
	stratum.ResetGlobalRegistry()
	stratum.RegisterComponent[Position]()
	solo := stratum.NewManager(stratum.Config{
		Name:       "Solo",
		Components: []stratum.ComponentID{stratum.GetID[Position]()},
	})
	stratum.CreateEntity(solo, Position{X: 1})
	e := stratum.CreateEntity(solo, Position{X: 2})
	stratum.CreateEmptyEntity(solo)

	count := 0
	stratum.RunEntities(solo, func(_ *stratum.Manager, _ stratum.Entity) {
		count++
	})
	if count != 3 {
		t.Errorf("Expected the empty signature to visit every live entity, got %d", count)
	}

	stratum.DestroyEntity(solo, e)
	count = 0
	stratum.RunEntities(solo, func(_ *stratum.Manager, _ stratum.Entity) {
		count++
	})
	if count != 2 {
		t.Errorf("Expected 2 visits after a destroy, got %d", count)
	}
}

// go test -run ^TestEmptySignatureDispatch$ . -count 1
func TestEmptySignatureDispatch(t *testing.T) {
	physics, gameplay := setupPair(t)

	// an empty signature is covered by every base, so the scan settles on
	// the most-base manager
	f := stratum.NewEntityFilter(gameplay)
	if f.Manager() != physics {
		t.Errorf("Expected the empty signature to dispatch to Physics, got %s", f.Manager().Name())
	}
}

// go test -run ^TestEntityFilterTags$ . -count 1
func TestEntityFilterTags(t *testing.T) {
	_, gameplay := setupPair(t)
	stratum.CreateEntity(gameplay, Health{Current: 1})
	tagged := stratum.CreateEntity(gameplay, Health{Current: 2}, stratum.GetID[Dead]())

	var seen []stratum.Entity
	stratum.RunEntities(gameplay, func(_ *stratum.Manager, e stratum.Entity) {
		seen = append(seen, e)
	}, stratum.GetID[Dead]())

	if len(seen) != 1 || seen[0] != tagged {
		t.Errorf("Expected only the tagged entity, got %v", seen)
	}
}

// go test -run ^TestFilterDiamond$ . -count 1
func TestFilterDiamond(t *testing.T) {
	g, b1, _, m := setupDiamond(t)
	stratum.CreateEntity3(m, CompA{V: 1}, CompB{V: 2}, CompC{V: 3})

	// {CompA} settles on the root of the diamond
	fa := stratum.NewFilter[CompA](m)
	if fa.Manager() != g {
		t.Fatalf("Expected dispatch to G, got %s", fa.Manager().Name())
	}
	if !fa.Next() || fa.Get().V != 1 {
		t.Fatal("Expected the projection in G to be visited")
	}

	// {CompA, CompB} settles on the left branch and resolves CompA
	// through G's storage
	fab := stratum.NewFilter2[CompA, CompB](m)
	if fab.Manager() != b1 {
		t.Fatalf("Expected dispatch to B1, got %s", fab.Manager().Name())
	}
	if !fab.Next() {
		t.Fatal("Expected the projection in B1 to be visited")
	}
	a, b := fab.Get()
	if a.V != 1 || b.V != 2 {
		t.Errorf("Expected CompA=1 CompB=2 through the diamond, got %d %d", a.V, b.V)
	}
	if fab.Next() {
		t.Error("Expected exactly one match")
	}
}

// go test -run ^TestFilterArities$ . -count 1
func TestFilterArities(t *testing.T) {
	stratum.ResetGlobalRegistry()
	stratum.RegisterComponent[Position]()
	stratum.RegisterComponent[Velocity]()
	stratum.RegisterComponent[Health]()
	stratum.RegisterComponent[Mass]()
	m := stratum.NewManager(stratum.Config{
		Name: "Solo",
		Components: []stratum.ComponentID{
			stratum.GetID[Position](), stratum.GetID[Velocity](),
			stratum.GetID[Health](), stratum.GetID[Mass](),
		},
	})
	stratum.CreateEntity4(m, Position{X: 1}, Velocity{VX: 2}, Health{Current: 3}, Mass{Kg: 4})
	stratum.CreateEntity3(m, Position{X: 5}, Velocity{VX: 6}, Health{Current: 7})

	count3 := 0
	stratum.Run3(m, func(p *Position, v *Velocity, h *Health) {
		count3++
	})
	if count3 != 2 {
		t.Errorf("Expected Run3 to visit 2 entities, got %d", count3)
	}

	count4 := 0
	stratum.Run4(m, func(p *Position, v *Velocity, h *Health, w *Mass) {
		if p.X != 1 || v.VX != 2 || h.Current != 3 || w.Kg != 4 {
			t.Errorf("Run4 handed out wrong components: %+v %+v %+v %+v", p, v, h, w)
		}
		count4++
	})
	if count4 != 1 {
		t.Errorf("Expected Run4 to visit 1 entity, got %d", count4)
	}
}

// go test -run ^TestFilterMisuse$ . -count 1
func TestFilterMisuse(t *testing.T) {
	physics, _ := setupPair(t)

	expectPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	expectPanic("unregistered component", func() { stratum.NewFilter[Unregistered](physics) })
	expectPanic("foreign component", func() { stratum.NewFilter[Health](physics) })
	expectPanic("storage id as tag", func() {
		stratum.NewEntityFilter(physics, stratum.GetID[Position]())
	})
	expectPanic("duplicate in signature", func() {
		stratum.NewFilter2[Position, Position](physics)
	})
}
