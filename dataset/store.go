package dataset

import (
	"context"
	"sync/atomic"

	"github.com/erin-james/ai-query-interface/model"
)

// Provider loads a full snapshot of the four datasets from some source.
// The engine itself never does I/O; providers are the only place data
// enters the process.
type Provider interface {
	Load(ctx context.Context) (*model.Snapshot, error)
}

// Store holds the current snapshot behind an atomic pointer. Readers get
// a consistent snapshot without locking; Swap replaces the whole snapshot
// at once, so an in-flight query sees either the old data in full or the
// new data in full, never a mix.
type Store struct {
	current atomic.Pointer[model.Snapshot]
}

func NewStore(snap *model.Snapshot) *Store {
	s := &Store{}
	if snap == nil {
		snap = &model.Snapshot{}
	}
	s.current.Store(snap)
	return s
}

func (s *Store) Current() *model.Snapshot {
	return s.current.Load()
}

func (s *Store) Swap(snap *model.Snapshot) {
	if snap == nil {
		return
	}
	s.current.Store(snap)
}
