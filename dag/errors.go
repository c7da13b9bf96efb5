// Package dag defines the DAG vertex (Node), the polymorphic Operator
// carrier, and the process-wide IdentityMap that structurally deduplicates
// nodes by (parents, operator key).
package dag

import "errors"

// ErrNilOperator indicates Obtain was called with a nil Operator.
var ErrNilOperator = errors.New("dag: operator is nil")
