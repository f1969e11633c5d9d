package graph

import "sync/atomic"

// Sequencer provides monotonically increasing numbers for child-node ids.
// Each Graph owns one per child kind so instances never share counters.
type Sequencer struct{ n atomic.Uint64 }

// Next returns the next sequence number.
func (s *Sequencer) Next() uint64 { return s.n.Add(1) }
