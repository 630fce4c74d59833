// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

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

func main() {
	count := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		stratum.ResetGlobalRegistry()
		stratum.RegisterComponent[comp1]()
		stratum.RegisterComponent[comp2]()

		for range iters {
			m := stratum.NewManager(stratum.Config{
				Name:            "plane",
				Components:      []stratum.ComponentID{stratum.GetID[comp1](), stratum.GetID[comp2]()},
				InitialCapacity: numEntities,
			})
			stratum.CreateEntityBatch2(m, numEntities, comp1{V: 1}, comp2{V: 2})

			query := stratum.NewFilter2[comp1, comp2](m)
			entities := make([]stratum.Entity, 0, numEntities)
			for query.Next() {
				entities = append(entities, query.Entity())
				c1, c2 := query.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
			for _, e := range entities {
				stratum.DestroyEntity(m, e)
			}
		}
	}
}
