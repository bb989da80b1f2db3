package util

import (
	"strings"
	"sync"
	"testing"
)

func TestRandStrLengthAndCharset(t *testing.T) {
	for _, n := range []int{1, 10, 64} {
		s := RandStr(n)

		if len(s) != n {
			t.Errorf("RandStr(%d) returned %d characters", n, len(s))
		}

		for _, r := range s {
			if !strings.ContainsRune(charset, r) {
				t.Errorf("RandStr(%d) produced %q outside the charset", n, r)
			}
		}
	}
}

// Request IDs are generated from concurrent handlers, so RandStr must
// hold up under the race detector
func TestRandStrConcurrent(t *testing.T) {
	var wg sync.WaitGroup

	seen := make([]string, 8)

	for g := range seen {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 1000 {
				if s := RandStr(10); len(s) != 10 {
					t.Errorf("RandStr(10) returned %d characters", len(s))
					return
				}
			}

			seen[g] = RandStr(10)
		}()
	}

	wg.Wait()

	unique := make(map[string]bool, len(seen))
	for _, s := range seen {
		unique[s] = true
	}

	if len(unique) != len(seen) {
		t.Errorf("got %d distinct strings from %d goroutines", len(unique), len(seen))
	}
}
