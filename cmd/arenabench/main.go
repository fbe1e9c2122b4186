// Command arenabench drives an Arena through a randomized allocate/
// release workload and reports occupancy, sized by environment
// variables so it can be rerun at different scales without a rebuild.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/nmxmxh/inos-arena/arena"
	"github.com/nmxmxh/inos-arena/internal/utils"
	"github.com/xyproto/env/v2"
)

func main() {
	regionBytes := env.Int("ARENABENCH_REGION_BYTES", 4*1024*1024)
	power := env.Int("ARENABENCH_POWER", 2)
	actions := env.Int("ARENABENCH_ACTIONS", 65536)

	logger := utils.DefaultLogger("arenabench")
	logger.Info("starting run",
		utils.Int("region_bytes", regionBytes),
		utils.Int("power", power),
		utils.Int("actions", actions),
	)

	region := make([]byte, regionBytes)
	a, err := arena.New(region, uint32(power))
	if err != nil {
		logger.Fatal("failed to create arena", utils.Err(err))
	}
	a.WithLogger(logger)

	start := time.Now()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	live := make([]arena.Ptr, 0, 4096)

	var allocs, releases, failures int
	for i := 0; i < actions; i++ {
		if len(live) == 0 || rng.Intn(2) == 0 {
			size := rng.Intn(4096) + 1
			p := a.Allocate(size)
			if p == arena.None {
				failures++
				continue
			}
			allocs++
			live = append(live, p)
		} else {
			idx := rng.Intn(len(live))
			a.Release(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
			releases++
		}
	}

	for _, p := range live {
		a.Release(p)
	}

	if err := a.Check(); err != nil {
		logger.Error("post-run integrity check failed", utils.Err(err))
		os.Exit(1)
	}

	stats := a.Stats()
	elapsed := time.Since(start)

	fmt.Printf("arena_id=%s elapsed=%s allocs=%d releases=%d failures=%d\n",
		a.ID(), elapsed, allocs, releases, failures)
	fmt.Printf("region_words=%d free_words=%d used_words=%d\n",
		stats.RegionWords, stats.FreeWords, stats.UsedWords)
	for k, count := range stats.ClassCounts {
		if count > 0 {
			fmt.Printf("class[%d]=%d\n", k, count)
		}
	}
}
