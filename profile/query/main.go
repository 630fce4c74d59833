// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"github.com/kvistgard/stratum"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		stratum.ResetGlobalRegistry()
		stratum.RegisterComponent[comp1]()
		stratum.RegisterComponent[comp2]()
		stratum.RegisterComponent[comp3]()

		base := stratum.NewManager(stratum.Config{
			Name:            "base",
			Components:      []stratum.ComponentID{stratum.GetID[comp1](), stratum.GetID[comp2]()},
			InitialCapacity: numEntities,
		})
		derived := stratum.NewManager(stratum.Config{
			Name:       "derived",
			Components: []stratum.ComponentID{stratum.GetID[comp3]()},
			Bases:      []*stratum.Manager{base},
		})

		stratum.CreateEntityBatch2(derived, numEntities, comp1{V: 1}, comp2{V: 2})

		// The signature is covered by the base vocabulary, so the scan
		// dispatches there and walks the projections.
		query := stratum.NewFilter2[comp1, comp2](derived)
		for range iters {
			query.Reset()
			for query.Next() {
				c1, c2 := query.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}
