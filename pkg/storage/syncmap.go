package storage

import (
	"sync"
	"sync/atomic"
)

type SyncMap[key any, val any] struct {
	m     sync.Map
	count atomic.Int64
}

// NewSyncMapStorage creates an empty SyncMap.
func NewSyncMapStorage[key any, val any]() *SyncMap[key, val] {
	return &SyncMap[key, val]{}
}

func (s *SyncMap[key, val]) Add(k key, v val) {
	_, loaded := s.m.Swap(k, v)
	if !loaded {
		s.count.Add(1)
	}
}

func (s *SyncMap[key, val]) Delete(k key) {
	_, loaded := s.m.LoadAndDelete(k)
	if loaded {
		s.count.Add(-1)
	}
}

func (s *SyncMap[key, val]) Get(k key) (val, bool) {
	v, ok := s.m.Load(k)
	if !ok {
		var zero val
		return zero, false
	}
	return v.(val), true
}

func (s *SyncMap[key, val]) Exist(k key) bool {
	_, ok := s.m.Load(k)
	return ok
}

func (s *SyncMap[key, val]) Tap(fn func(key, val) bool) {
	s.m.Range(func(k, v any) bool {
		return fn(k.(key), v.(val))
	})
}

func (s *SyncMap[key, val]) Len() int {
	return int(s.count.Load())
}
