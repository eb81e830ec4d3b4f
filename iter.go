/*
 * iter.go, part of molarch.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * molarch is developed at Universidad de Tarapaca (UTA)
 *
 */

package chem

//The walkers keep their own stack instead of recursing, so the depth of
//a hierarchy is not limited by the call stack.

// cursor is a position in a child sequence. The end of the sequence is len(seq).
type cursor struct {
	seq []Node
	pos int
}

// Walker is a pre-order, depth-first iterator over a subtree, starting with
// the subtree root itself. It is one-shot: once Next returns false, a new
// Walker is needed to walk the subtree again. The subtree must not be
// modified during the walk.
type Walker struct {
	cur   cursor
	stack []cursor
	node  Node
	depth int
}

// Walk returns a Walker over the subtree under n.
func Walk(n Node) *Walker {
	W := new(Walker)
	if n != nil {
		W.cur = cursor{seq: []Node{n}}
	}
	return W
}

// Next advances the walker and reports whether there is a node to visit.
func (W *Walker) Next() bool {
	if W.node != nil {
		if k := kids(W.node); len(k) > 0 {
			W.stack = append(W.stack, W.cur)
			W.cur = cursor{seq: k}
		}
	}
	for W.cur.pos >= len(W.cur.seq) {
		if len(W.stack) == 0 {
			W.node = nil
			W.cur = cursor{}
			return false
		}
		W.cur = W.stack[len(W.stack)-1]
		W.stack = W.stack[:len(W.stack)-1]
	}
	W.node = W.cur.seq[W.cur.pos]
	W.depth = len(W.stack)
	W.cur.pos++
	return true
}

// Node returns the current node, or nil if the walk is over or not started.
func (W *Walker) Node() Node {
	return W.node
}

// Depth returns the depth of the current node relative to the subtree root, which has depth 0.
func (W *Walker) Depth() int {
	return W.depth
}

// TypedWalker yields only the nodes of the subtree that satisfy T, which is
// usually a concrete node type (*Atom) or a capability (Positioned). The
// skipped nodes are still descended into.
type TypedWalker[T any] struct {
	w   *Walker
	cur T
}

func WalkType[T any](n Node) *TypedWalker[T] {
	return &TypedWalker[T]{w: Walk(n)}
}

func (W *TypedWalker[T]) Next() bool {
	for W.w.Next() {
		if t, ok := W.w.Node().(T); ok {
			W.cur = t
			return true
		}
	}
	var zero T
	W.cur = zero
	return false
}

func (W *TypedWalker[T]) Node() T    { return W.cur }
func (W *TypedWalker[T]) Depth() int { return W.w.Depth() }

// FilterWalker is a TypedWalker that also skips the nodes for which
// its predicate returns false.
type FilterWalker[T any] struct {
	TypedWalker[T]
	pred func(T) bool
}

// WalkFilter returns a FilterWalker over the subtree under n. A nil
// predicate accepts every node of type T.
func WalkFilter[T any](n Node, pred func(T) bool) *FilterWalker[T] {
	return &FilterWalker[T]{TypedWalker: TypedWalker[T]{w: Walk(n)}, pred: pred}
}

func (W *FilterWalker[T]) Next() bool {
	for W.TypedWalker.Next() {
		if W.pred == nil || W.pred(W.cur) {
			return true
		}
	}
	return false
}

// WalkKind returns a walker over the nodes of kind k in the subtree under n.
func WalkKind(n Node, k Kind) *FilterWalker[Node] {
	return WalkFilter(n, func(m Node) bool { return m.Kind() == k })
}

// Collect returns all the nodes in the subtree under n, in pre-order.
func Collect(n Node) []Node {
	return CollectType[Node](n)
}

// CollectType returns the nodes in the subtree under n that satisfy T, in pre-order.
func CollectType[T any](n Node) []T {
	ret := make([]T, 0)
	w := WalkType[T](n)
	for w.Next() {
		ret = append(ret, w.Node())
	}
	return ret
}
