package opframework

import "github.com/katalvlaran/tsdag/core"

// assocFrame is one retained element of an assocQueue. val is the
// associative fold of this element combined with everything between it and
// the stack's bottom (see transfer() for the exact direction per stack).
type assocFrame struct {
	t    core.Timestamp
	data any
	val  any
}

// assocQueue is the two-stack (front/back) associative queue backing both
// FixedWindow and TimeWindow: push onto back, evict from front, query the
// fold of everything currently retained — all amortised O(1) per push/evict
// for an associative (non-commutative-safe) Combine.
//
// Invariant maintained by transfer(): frontStack's top-to-bottom order is
// oldest-to-newest (so popping the top evicts the true oldest element), and
// each frame's val is the ascending-time fold of itself down to the stack's
// bottom.
type assocQueue struct {
	combine Combine
	front   []assocFrame
	back    []assocFrame
}

func newAssocQueue(combine Combine) *assocQueue {
	return &assocQueue{combine: combine}
}

func (q *assocQueue) Len() int { return len(q.front) + len(q.back) }

// Push appends a new (t, data) pair to the back of the queue.
func (q *assocQueue) Push(t core.Timestamp, data any) error {
	val := data
	if n := len(q.back); n > 0 {
		v, err := q.combine(q.back[n-1].val, data)
		if err != nil {
			return err
		}
		val = v
	}
	q.back = append(q.back, assocFrame{t: t, data: data, val: val})
	return nil
}

// transfer moves every element from back onto front, recomputing folds so
// that front's top-to-bottom order becomes oldest-to-newest.
func (q *assocQueue) transfer() error {
	for i := len(q.back) - 1; i >= 0; i-- {
		f := q.back[i]
		val := f.data
		if n := len(q.front); n > 0 {
			v, err := q.combine(f.data, q.front[n-1].val)
			if err != nil {
				return err
			}
			val = v
		}
		q.front = append(q.front, assocFrame{t: f.t, data: f.data, val: val})
	}
	q.back = q.back[:0]
	return nil
}

// OldestTime reports the timestamp of the current front-most (oldest)
// retained element.
func (q *assocQueue) OldestTime() (core.Timestamp, bool) {
	if len(q.front) == 0 {
		if err := q.transfer(); err != nil || len(q.front) == 0 {
			return 0, false
		}
	}
	return q.front[len(q.front)-1].t, true
}

// PopOldest evicts the current oldest retained element.
func (q *assocQueue) PopOldest() error {
	if len(q.front) == 0 {
		if err := q.transfer(); err != nil {
			return err
		}
	}
	if len(q.front) == 0 {
		return nil
	}
	q.front = q.front[:len(q.front)-1]
	return nil
}

// Value folds every currently retained element in ascending time order.
func (q *assocQueue) Value() (any, bool) {
	switch {
	case len(q.front) == 0 && len(q.back) == 0:
		return nil, false
	case len(q.back) == 0:
		return q.front[len(q.front)-1].val, true
	case len(q.front) == 0:
		return q.back[len(q.back)-1].val, true
	default:
		v, err := q.combine(q.front[len(q.front)-1].val, q.back[len(q.back)-1].val)
		if err != nil {
			return nil, false
		}
		return v, true
	}
}
