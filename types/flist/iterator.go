package flist

// Iterator with ability to validate himself when current element is removed
// from list. Tracking the predecessor of the current node is also what a
// singly linked removal needs, so the iterator can erase its own current
// element in O(1) via Remove.
//
// Removing the current element (through Remove, EraseAfter or Clear) is
// tolerated: the next call to Next resynchronizes from the last intact
// predecessor. Removing the element ahead of the current one is not.
type Iterator[T any] struct {
	list    *List[T]
	prev    *node[T]
	current *node[T]
	next    *node[T]
}

// Iterator creates an iterator over list l.
// Iterator is not valid until Next() call.
func (l *List[T]) Iterator() Iterator[T] {
	return Iterator[T]{
		list: l,
		prev: &l.head,
	}
}

// Current returns a cursor to the element the iterator is standing on,
// or the end cursor when the iterator is not valid.
func (it *Iterator[T]) Current() Cursor[T] {
	return Cursor[T]{ReadCursor[T]{list: it.list, node: it.current}}
}

// Value returns the value of the current element.
func (it *Iterator[T]) Value() T {
	return it.Current().Value()
}

// Next advances the iterator and reports whether a current element exists.
func (it *Iterator[T]) Next() bool {
	if it.prev != nil && it.prev.next != it.current {
		// 1. iteration starts, or the current element was removed:
		// resynchronize to the live successor of the last intact position
		it.current = it.prev.next
	} else {
		// 2. no changes in list
		it.prev = it.current
		it.current = it.next
	}

	if it.current == nil {
		return false
	}
	it.next = it.current.next
	return true
}

// Valid reports whether the iterator stands on an element.
func (it *Iterator[T]) Valid() bool {
	return it.current != nil
}

// Remove erases the current element and returns its value.
// ErrorCursorIsEnd is returned when the iterator is not valid.
// The iterator stays usable: the following Next continues with the element
// after the removed one.
func (it *Iterator[T]) Remove() (v T, err error) {
	if it.current == nil {
		err = ErrorCursorIsEnd
		return
	}
	v = it.current.value
	// prev still links to current unless the chain was mutated externally;
	// in that case the element is already gone from the chain.
	if it.prev != nil && it.prev.next == it.current {
		it.prev.next = it.current.next
		it.list.size--
		it.list.freeNode(it.current)
	}
	it.current = nil
	return
}
