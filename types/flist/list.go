package flist

import (
	"sync"
)

// node is a single storage unit of the list holding one element value
// and the link to its successor (nil terminates the chain).
type node[T any] struct {
	value T
	next  *node[T]
}

// List represents a singly linked list.
//
// A singly linked list (SLL) keeps one forward link per node, so it supports
// ordered front-to-back traversal and O(1) insertion/removal given the
// preceding position, at half the per-node link overhead of a doubly linked
// list. The list embeds a sentinel head node representing the position
// "before the first element"; the sentinel never holds a value and is never
// removed.
type List[T any] struct {
	pool *sync.Pool // optional pool used to create/release list nodes
	head node[T]    // sentinel node, only head.next is used
	size int        // current list length excluding (this) sentinel node
}

// New creates new List instance.
func New[T any]() *List[T] {
	return NewPooled[T](nil)
}

// NewPooled creates new List instance.
// Pooled list uses given pool for nodes creating/releasing.
func NewPooled[T any](pool *sync.Pool) *List[T] {
	l := new(List[T])
	l.pool = pool
	return l
}

// NodePool creates a pool producing list nodes for element type T,
// suitable for passing to NewPooled.
func NodePool[T any]() *sync.Pool {
	return &sync.Pool{New: func() any {
		return new(node[T])
	}}
}

// Of creates a new List containing the given values in the given order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	rev := New[T]()
	for _, v := range values {
		rev.PushFront(v)
	}
	ordered := New[T]()
	for c := rev.ReadFront(); !c.IsEnd(); c = c.Next() {
		ordered.PushFront(c.Value())
	}
	l.Swap(ordered)
	return l
}

// Len returns the number of elements of list l.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether list l has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns a cursor to the first element of list l,
// or the end cursor if the list is empty.
func (l *List[T]) Front() Cursor[T] {
	return Cursor[T]{ReadCursor[T]{list: l, node: l.head.next}}
}

// BeforeFront returns a cursor to the sentinel position preceding the first
// element. The cursor is a valid mark for InsertAfter and EraseAfter but
// must not be dereferenced.
func (l *List[T]) BeforeFront() Cursor[T] {
	return Cursor[T]{ReadCursor[T]{list: l, node: &l.head}}
}

// End returns the past-the-last cursor of list l.
// The cursor must not be dereferenced or advanced.
func (l *List[T]) End() Cursor[T] {
	return Cursor[T]{ReadCursor[T]{list: l}}
}

// ReadFront returns a read-only cursor to the first element of list l,
// or the end cursor if the list is empty.
func (l *List[T]) ReadFront() ReadCursor[T] {
	return ReadCursor[T]{list: l, node: l.head.next}
}

// ReadBeforeFront returns a read-only cursor to the sentinel position
// preceding the first element.
func (l *List[T]) ReadBeforeFront() ReadCursor[T] {
	return ReadCursor[T]{list: l, node: &l.head}
}

// ReadEnd returns the read-only past-the-last cursor of list l.
func (l *List[T]) ReadEnd() ReadCursor[T] {
	return ReadCursor[T]{list: l}
}

// PushFront inserts a new node with value v at the front of list l
// and returns a cursor to it.
func (l *List[T]) PushFront(v T) Cursor[T] {
	n := l.newNode(v)
	n.next = l.head.next
	l.head.next = n
	l.size++
	return Cursor[T]{ReadCursor[T]{list: l, node: n}}
}

// PopFront removes the first node of list l and returns its value.
// ErrorListIsEmpty is returned when the list has no elements.
func (l *List[T]) PopFront() (v T, err error) {
	if l.size == 0 {
		err = ErrorListIsEmpty
		return
	}
	n := l.head.next
	v = n.value
	l.head.next = n.next
	l.size--
	l.freeNode(n)
	return
}

// InsertAfter inserts a new node with value v immediately after mark and
// returns a cursor to it. The mark may be the before-front cursor, which
// makes the new node the first element. ErrorCursorIsNotInTheList is
// returned when mark belongs to another list, ErrorCursorIsEnd when mark is
// the end cursor.
func (l *List[T]) InsertAfter(mark ReadCursor[T], v T) (Cursor[T], error) {
	if mark.list != l {
		return Cursor[T]{}, ErrorCursorIsNotInTheList
	}
	if mark.node == nil {
		return Cursor[T]{}, ErrorCursorIsEnd
	}
	n := l.newNode(v)
	n.next = mark.node.next
	mark.node.next = n
	l.size++
	return Cursor[T]{ReadCursor[T]{list: l, node: n}}, nil
}

// EraseAfter removes the node immediately after mark and returns a cursor
// to the node now following mark (possibly the end cursor). The mark may be
// the before-front cursor, which removes the first element.
// ErrorCursorIsNotInTheList is returned when mark belongs to another list,
// ErrorCursorIsEnd when mark is the end cursor, ErrorCursorHasNoNext when
// mark references the last element.
func (l *List[T]) EraseAfter(mark ReadCursor[T]) (Cursor[T], error) {
	if mark.list != l {
		return Cursor[T]{}, ErrorCursorIsNotInTheList
	}
	if mark.node == nil {
		return Cursor[T]{}, ErrorCursorIsEnd
	}
	n := mark.node.next
	if n == nil {
		return Cursor[T]{}, ErrorCursorHasNoNext
	}
	mark.node.next = n.next
	l.size--
	l.freeNode(n)
	return Cursor[T]{ReadCursor[T]{list: l, node: mark.node.next}}, nil
}

// Clear removes all existing nodes of list l. Safe to call on an empty list.
func (l *List[T]) Clear() {
	for n := l.head.next; n != nil; {
		next := n.next
		l.freeNode(n)
		n = next
	}
	l.head.next = nil
	l.size = 0
}

// Swap exchanges the contents of lists l and other in O(1) by relinking the
// two sentinel nodes and swapping the cached sizes. No node is copied or
// reallocated, so cursors to elements keep referencing the same values in
// the other list. Each list keeps its own node pool.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of lists a and b. See List.Swap.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Clone returns a deep copy of list l preserving element order. The copy
// shares l's node pool but no nodes: mutating either list never affects
// the other.
func (l *List[T]) Clone() *List[T] {
	c := NewPooled[T](l.pool)
	c.rebuild(l.ReadFront())
	return c
}

// Assign replaces the contents of list l with a deep copy of other.
// The full replacement chain is built first and swapped into place
// afterwards, so l is left untouched if building the copy dies halfway.
// Self-assignment is a no-op.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	l.rebuild(other.ReadFront())
}

// ToSlice returns the elements of list l in front-to-back order.
func (l *List[T]) ToSlice() []T {
	s := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		s = append(s, n.value)
	}
	return s
}

// rebuild replaces the contents of list l with the values walked from src.
// A single front-insertion pass would reverse the walked order, so the walk
// is pushed onto a scratch list (reversed) and the scratch list is pushed
// onto a second one (order restored), which is then swapped into l.
func (l *List[T]) rebuild(src ReadCursor[T]) {
	rev := NewPooled[T](l.pool)
	for c := src; !c.IsEnd(); c = c.Next() {
		rev.PushFront(c.Value())
	}
	ordered := NewPooled[T](l.pool)
	for c := rev.ReadFront(); !c.IsEnd(); c = c.Next() {
		ordered.PushFront(c.Value())
	}
	rev.Clear()
	l.Swap(ordered)
	ordered.Clear()
}

// newNode creates a list node holding value v.
func (l *List[T]) newNode(v T) (n *node[T]) {
	if l.pool != nil {
		n = l.pool.Get().(*node[T])
		n.value = v
	} else {
		n = &node[T]{value: v}
	}
	return
}

// freeNode releases a node unlinked from the chain.
func (l *List[T]) freeNode(n *node[T]) {
	// Clean up removed node so stale cursors and iterators cannot walk
	// into the live chain from it.
	// don't need to clear n.value, it always changed when adding.
	n.next = nil
	if l.pool != nil {
		l.pool.Put(n)
	}
}
