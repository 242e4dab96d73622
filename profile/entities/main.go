// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/jengine-go/ecs"
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
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := ecs.NewWorld()

		for range iters {
			handles := make([]ecs.Entity, 0, numEntities)
			for i := range numEntities {
				e := w.Spawn()
				ecs.Insert(w, e, comp1{V: int64(i)})
				ecs.Insert(w, e, comp2{W: int64(i)})
				handles = append(handles, e)
			}
			q := ecs.NewQuery2[comp1, comp2](w)
			for q.Next() {
				c1, c2 := q.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
			for _, e := range handles {
				w.Despawn(e)
			}
		}
	}
}
