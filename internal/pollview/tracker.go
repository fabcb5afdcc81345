package pollview

import "sync"

// Tracker keeps the most recent display state of one poll while updates
// are computed out of order. A result is kept only if no newer update has
// been committed already.
type Tracker struct {
	mu        sync.Mutex
	issued    uint64
	committed uint64
	state     State
}

// Begin issues the sequence number of a new update.
func (t *Tracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.issued++
	return t.issued
}

// Commit stores state computed for seq. It returns false and drops the
// state when a newer update was committed first.
func (t *Tracker) Commit(seq uint64, state State) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq <= t.committed {
		return false
	}
	t.committed = seq
	t.state = state
	return true
}

// Current returns the latest committed state, or nil before the first commit.
func (t *Tracker) Current() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Update classifies in and commits the result. kept reports whether the
// result became current.
func (t *Tracker) Update(c *Classifier, in Input) (state State, kept bool, err error) {
	seq := t.Begin()
	state, err = c.Classify(in.Definition, in.Status, in.Aggregate, in.Edited)
	if err != nil {
		return nil, false, err
	}
	return state, t.Commit(seq, state), nil
}
