package ringlist

// none marks the absence of a node (an empty list's head, or the end of
// the free chain). Slot 0 of the arena is reserved and never holds a node,
// which makes the zero List an empty list.
const none = 0

// Nodes live in the list's arena and link to each other by slot index.
// A free slot reuses next to chain to the following free slot.
type node[T any] struct {
	prev    int
	next    int
	payload T
}

// alloc takes a slot from the free chain, or grows the arena when the
// chain is empty. The returned node is not linked into the ring.
func (l *List[T]) alloc(payload T) int {
	if i := l.free; i != none {
		l.free = l.nodes[i].next
		l.nodes[i] = node[T]{prev: none, next: none, payload: payload}
		return i
	}
	if len(l.nodes) == 0 {
		l.nodes = append(l.nodes, node[T]{})
	}
	l.nodes = append(l.nodes, node[T]{prev: none, next: none, payload: payload})
	return len(l.nodes) - 1
}

// reclaim hands the payload to release and returns the slot to the free
// chain. The slot must already be unlinked.
func (l *List[T]) reclaim(i int, release func(T)) {
	payload := l.nodes[i].payload
	if release != nil {
		release(payload)
	}
	l.nodes[i] = node[T]{prev: none, next: l.free}
	l.free = i
}

// link places i immediately before at.
func (l *List[T]) link(i int, at int) {
	prev := l.nodes[at].prev
	l.nodes[i].prev = prev
	l.nodes[i].next = at
	l.nodes[prev].next = i
	l.nodes[at].prev = i
}

// unlink detaches i from the ring and re-anchors head if i was the head.
func (l *List[T]) unlink(i int) {
	n := l.nodes[i]
	if l.count == 1 {
		l.head = none
	} else {
		l.nodes[n.prev].next = n.next
		l.nodes[n.next].prev = n.prev
		if l.head == i {
			l.head = n.next
		}
	}
	l.count--
}

// walk returns the slot index forward distance steps from head.
func (l *List[T]) walk(steps int) int {
	i := l.head
	for ; steps > 0; steps-- {
		i = l.nodes[i].next
	}
	return i
}
