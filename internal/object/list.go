package object

// Node is an element of a List.
type Node[T any] struct {
	Value T

	next, prev *Node[T]
	list       *List[T]
}

// Next returns the node after n, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List is a doubly-linked list that owns its nodes. New values go to the
// front, so iteration visits the newest value first. Nodes can be removed
// while the list is being walked without disturbing the rest of the walk.
type List[T any] struct {
	front *Node[T]
	back  *Node[T]
	len   int
}

// NewList creates an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of live nodes.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the newest node, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	return l.front
}

// PushFront inserts v at the front and returns its node.
func (l *List[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{Value: v, next: l.front, list: l}
	if l.front != nil {
		l.front.prev = n
	} else {
		l.back = n
	}
	l.front = n
	l.len++
	return n
}

// Remove unlinks n and returns the node that followed it, which is where an
// in-progress walk should resume. Removing a node that does not belong to l
// is a no-op that still returns the follower.
func (l *List[T]) Remove(n *Node[T]) *Node[T] {
	next := n.next
	if n.list != l {
		return next
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}

	n.next, n.prev, n.list = nil, nil, nil
	l.len--
	return next
}

// Each calls fn for every value, newest first.
func (l *List[T]) Each(fn func(T)) {
	for n := l.front; n != nil; n = n.next {
		fn(n.Value)
	}
}
