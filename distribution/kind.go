// SPDX-License-Identifier: MIT
// Package: distribution
//
// Purpose:
//   - Explicit kind hierarchy (child → parent table) replacing runtime type
//     inspection for dispatch.
//
// Concurrency:
//   - The table is guarded by a RWMutex; lookups take the read lock only.
//
// Complexity:
//   - IsSubKind is O(depth); the built-in hierarchy has depth ≤ 3.

package distribution

import "sync"

// Kind is a stable distribution discriminator.
type Kind string

// Built-in kinds.
const (
	KindDistribution      Kind = "Distribution"
	KindExponentialFamily Kind = "ExponentialFamily"
	KindBeta              Kind = "Beta"
	KindDirichlet         Kind = "Dirichlet"
	KindNormal            Kind = "Normal"
	KindUniform           Kind = "Uniform"
	KindCategorical       Kind = "Categorical"
	KindTransformed       Kind = "Transformed"
)

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

var kindTable = struct {
	sync.RWMutex
	parent map[Kind]Kind // root maps to ""
}{
	parent: map[Kind]Kind{
		KindDistribution:      "",
		KindExponentialFamily: KindDistribution,
		KindBeta:              KindExponentialFamily,
		KindDirichlet:         KindExponentialFamily,
		KindNormal:            KindDistribution,
		KindUniform:           KindDistribution,
		KindCategorical:       KindDistribution,
		KindTransformed:       KindDistribution,
	},
}

// RegisterKind adds name as a direct sub-kind of parent.
// Re-registering the same (name, parent) is a no-op.
//
// Errors: ErrUnknownKind (parent missing or empty name), ErrDuplicateKind.
func RegisterKind(name string, parent Kind) (Kind, error) {
	k := Kind(name)
	if name == "" {
		return "", distErrorf("RegisterKind", ErrUnknownKind, "empty kind name")
	}

	kindTable.Lock()
	defer kindTable.Unlock()
	if _, ok := kindTable.parent[parent]; !ok {
		return "", distErrorf("RegisterKind", ErrUnknownKind, "parent %q", parent)
	}
	if prev, ok := kindTable.parent[k]; ok {
		if prev == parent {
			return k, nil
		}
		return "", distErrorf("RegisterKind", ErrDuplicateKind, "%q already has parent %q", k, prev)
	}
	kindTable.parent[k] = parent

	return k, nil
}

// Known reports whether k is in the kind table.
func Known(k Kind) bool {
	kindTable.RLock()
	defer kindTable.RUnlock()
	_, ok := kindTable.parent[k]

	return ok
}

// Parent returns the direct parent of k; false for the root or unknown kinds.
func Parent(k Kind) (Kind, bool) {
	kindTable.RLock()
	defer kindTable.RUnlock()
	p, ok := kindTable.parent[k]

	return p, ok && p != ""
}

// IsSubKind reports whether a equals b or descends from it.
// Unknown kinds are sub-kinds of nothing but themselves.
func IsSubKind(a, b Kind) bool {
	kindTable.RLock()
	defer kindTable.RUnlock()
	for cur := a; cur != ""; {
		if cur == b {
			return true
		}
		next, ok := kindTable.parent[cur]
		if !ok {
			return false
		}
		cur = next
	}

	return false
}
