// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

func main() {
	// CPU Profiling
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	rounds := 50
	iters := 10000
	entities := 100000
	run(rounds, iters, entities)

	// Memory Profiling
	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := ecs.NewWorld()
		for i := range numEntities {
			e := w.Spawn()
			v := int64(i)
			ecs.Insert(w, e, comp1{V: v})
			ecs.Insert(w, e, comp2{V: v})
			ecs.Insert(w, e, comp3{V: v})
			ecs.Insert(w, e, comp4{V: v})
			ecs.Insert(w, e, comp5{V: v})
			ecs.Insert(w, e, comp6{V: v})
		}

		query := ecs.NewQuery6[comp1, comp2, comp3, comp4, comp5, comp6](w)
		for range iters {
			query.Reset()
			for query.Next() {
				c1, c2, _, _, _, _ := query.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}
