package storage

import (
	"sync"
	"testing"
)

func TestSyncMap_Basics(t *testing.T) {
	s := NewSyncMapStorage[int, string]()

	if s.Exist(1) {
		t.Error("empty store reports key 1")
	}

	s.Add(1, "one")
	s.Add(2, "two")
	s.Add(1, "uno")

	if got := s.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if v, ok := s.Get(1); !ok || v != "uno" {
		t.Errorf("Get(1) = %q, %v; want %q, true", v, ok, "uno")
	}

	s.Delete(1)
	if s.Exist(1) {
		t.Error("key 1 still present after Delete")
	}
	if got := s.Len(); got != 1 {
		t.Errorf("Len() after delete = %d, want 1", got)
	}

	s.Delete(1)
	if got := s.Len(); got != 1 {
		t.Errorf("Len() after double delete = %d, want 1", got)
	}
}

func TestSyncMap_Tap(t *testing.T) {
	s := NewSyncMapStorage[string, int]()
	s.Add("a", 1)
	s.Add("b", 2)

	seen := make(map[string]int)
	s.Tap(func(k string, v int) bool {
		seen[k] = v
		return true
	})
	if len(seen) != 2 || seen["a"] != 1 || seen["b"] != 2 {
		t.Errorf("Tap visited %v", seen)
	}
}

func TestSyncMap_ConcurrentAccess(t *testing.T) {
	s := NewSyncMapStorage[int, int]()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := range 100 {
				k := base*100 + j
				s.Add(k, k)
				s.Get(k)
				s.Delete(k)
			}
		}(i)
	}
	wg.Wait()

	if got := s.Len(); got != 0 {
		t.Errorf("Len() after churn = %d, want 0", got)
	}
}
