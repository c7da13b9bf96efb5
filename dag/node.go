package dag

// Operator is the polymorphic carrier of node behaviour. Concrete operators
// live in the ops package and implement this interface plus one of the kind
// interfaces in kinds.go (SourceOp, UnaryOp, BinaryAlignedOp,
// AccumulatingOp, BinaryAccumulatingOp), which the scheduler dispatches on.
//
// Key must be pure and immutable: two Operators with equal Key are treated
// as interchangeable by the IdentityMap. Random-source operators must key
// on a frozen copy of their RNG's seed/state, never on the live *rand.Rand
// (spec.md §4.1, §9 RNG discipline).
type Operator interface {
	// Key returns a string uniquely identifying this operator's identity
	// for structural deduplication purposes.
	Key() string

	// ValueType names the Go-level value kind this operator's Blocks carry
	// (e.g. "float64", "vector", "matrix"), for ValueType(node) introspection.
	ValueType() string
}

// Node is a DAG vertex: an ordered list of parents plus an operator.
// Nodes are immutable after creation and identified by reference — two
// structurally equal nodes (same parents in the same order, equal operator
// key) are always the same *Node, enforced by IdentityMap.Obtain.
type Node struct {
	id      uint64
	parents []*Node
	op      Operator
}

// ID returns an identifier that is unique within the IdentityMap that
// interned the node (each map numbers its nodes from 1), useful
// for diagnostics and for building a stable canonical ordering (see
// ops.Coalign's stable object-id sort).
func (n *Node) ID() uint64 { return n.id }

// Parents returns the node's ordered parent list. Callers must not mutate
// the returned slice.
func (n *Node) Parents() []*Node { return n.parents }

// Op returns the node's operator.
func (n *Node) Op() Operator { return n.op }

// ValueType reports the value-type tag of the node's operator.
func (n *Node) ValueType() string { return n.op.ValueType() }

// IsSource reports whether the node has no parents.
func (n *Node) IsSource() bool { return len(n.parents) == 0 }
