package ids

import (
	"sync"
	"testing"
)

func TestNext_Unique(t *testing.T) {
	const n = 1000
	seen := make(map[int64]bool, n)
	for i := 0; i < n; i++ {
		id := Next()
		if seen[id] {
			t.Fatalf("duplicate id generated: %d", id)
		}
		seen[id] = true
	}
}

func TestNext_Monotonic(t *testing.T) {
	prev := Next()
	for i := 0; i < 100; i++ {
		id := Next()
		if id <= prev {
			t.Fatalf("id %d is not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestNext_Concurrent(t *testing.T) {
	const workers = 8
	const perWorker = 500

	var mu sync.Mutex
	seen := make(map[int64]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				if seen[id] {
					t.Errorf("duplicate id generated: %d", id)
				}
				seen[id] = true
			}
		}()
	}
	wg.Wait()
}
