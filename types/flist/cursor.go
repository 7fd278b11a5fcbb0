package flist

// ReadCursor is a forward-only position marker over the nodes of a List
// with read-only access to the referenced element. A cursor references
// either the sentinel (before-front), a live node, or nothing (end).
// Copies of a cursor are independent: each copy can be advanced separately,
// so a list can be re-traversed any number of times.
//
// Two cursors are equal iff they reference the identical node or are both
// end cursors; ReadCursor values compare directly with ==.
//
// A cursor referencing a node removed from the list is invalidated;
// cursors to surviving nodes stay valid across insertions and removals
// elsewhere in the chain.
type ReadCursor[T any] struct {
	list *List[T]
	node *node[T]
}

// Cursor is a ReadCursor that additionally allows mutating the referenced
// element. Both access modes share one traversal implementation; a Cursor
// converts to its read-only view via Read.
type Cursor[T any] struct {
	ReadCursor[T]
}

// Next returns a cursor to the successor of the referenced node.
// Advancing the end cursor panics; advancing the before-front cursor
// yields the front cursor.
func (c ReadCursor[T]) Next() ReadCursor[T] {
	if c.node == nil {
		panic("flist: Next of end cursor")
	}
	return ReadCursor[T]{list: c.list, node: c.node.next}
}

// Value returns the referenced element value. Dereferencing the end or
// before-front cursor panics.
func (c ReadCursor[T]) Value() T {
	c.mustReferenceElement()
	return c.node.value
}

// IsEnd reports whether c is the past-the-last cursor.
func (c ReadCursor[T]) IsEnd() bool {
	return c.node == nil
}

// Equal reports whether cursors c and o reference the identical node.
// Two end cursors are equal.
func (c ReadCursor[T]) Equal(o ReadCursor[T]) bool {
	return c.node == o.node
}

func (c ReadCursor[T]) mustReferenceElement() {
	if c.node == nil {
		panic("flist: dereference of end cursor")
	}
	if c.list != nil && c.node == &c.list.head {
		panic("flist: dereference of before-front cursor")
	}
}

// Next returns a cursor to the successor of the referenced node.
// See ReadCursor.Next.
func (c Cursor[T]) Next() Cursor[T] {
	return Cursor[T]{c.ReadCursor.Next()}
}

// Read returns the read-only view of cursor c. The views are mutually
// comparable: c.Read().Equal(o) holds exactly when c and o reference the
// identical node.
func (c Cursor[T]) Read() ReadCursor[T] {
	return c.ReadCursor
}

// Ref returns a pointer to the referenced element value, valid until the
// node is removed from the list. Dereferencing the end or before-front
// cursor panics.
func (c Cursor[T]) Ref() *T {
	c.mustReferenceElement()
	return &c.node.value
}

// Set replaces the referenced element value with v.
func (c Cursor[T]) Set(v T) {
	*c.Ref() = v
}
