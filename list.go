// A circular doubly linked list whose behavior (equality, filtering and
// payload release) is supplied by the caller.
//
// Removing a payload transfers its ownership to the release callback: the
// callback runs exactly once per removed payload, even if the caller still
// holds references to it elsewhere. A nil release callback does nothing.
//
// The zero List is an empty list ready to use. It behaves like one built
// with Configure().Trim(0): Clear always hands its node slots back to the GC.
//
// A List is not safe for concurrent use. Callbacks must not mutate the list
// they're invoked from.
package ringlist

type List[T any] struct {
	nodes []node[T]
	free  int
	head  int
	count int
	trim  int
}

// Create a new, empty list.
// See ringlist.Configure() for creating a configuration; a nil config
// uses the defaults.
func New[T any](config *Configuration) *List[T] {
	if config == nil {
		config = Configure()
	}
	return &List[T]{
		nodes: make([]node[T], 0, config.capacity+1),
		trim:  config.trim,
	}
}

// Equal is an equality callback for comparable payloads.
func Equal[T comparable](a, b T) bool {
	return a == b
}

func (l *List[T]) Len() int {
	return l.count
}

func (l *List[T]) IsEmpty() bool {
	return l.count == 0
}

// Insert the payload as the new head
func (l *List[T]) PushFront(payload T) {
	l.PushBack(payload)
	l.head = l.nodes[l.head].prev
}

// Insert the payload as the new tail (immediately before the head)
func (l *List[T]) PushBack(payload T) {
	i := l.alloc(payload)
	if l.count == 0 {
		l.nodes[i].prev = i
		l.nodes[i].next = i
		l.head = i
	} else {
		l.link(i, l.head)
	}
	l.count++
}

// Removes the head, passing its payload to release.
// Returns ErrEmptyList if there's nothing to remove.
func (l *List[T]) RemoveFront(release func(T)) error {
	if l.count == 0 {
		return ErrEmptyList
	}
	l.remove(l.head, release)
	return nil
}

// Removes the tail, passing its payload to release.
// Returns ErrEmptyList if there's nothing to remove.
func (l *List[T]) RemoveBack(release func(T)) error {
	if l.count == 0 {
		return ErrEmptyList
	}
	l.remove(l.nodes[l.head].prev, release)
	return nil
}

// Removes the node index positions forward from the head.
func (l *List[T]) RemoveAt(index int, release func(T)) error {
	if l.count == 0 {
		return ErrEmptyList
	}
	if index < 0 || index >= l.count {
		return ErrIndexOutOfRange
	}
	l.remove(l.walk(index), release)
	return nil
}

// Removes every payload for which equals(target, payload) is true.
// Returns the number of payloads removed.
func (l *List[T]) RemoveMatching(target T, equals func(a, b T) bool, release func(T)) int {
	return l.RemoveFunc(func(payload T) bool {
		return equals(target, payload)
	}, release)
}

// Removes every payload that matches. Each node present when the call
// starts is visited exactly once.
// Returns the number of payloads removed.
func (l *List[T]) RemoveFunc(matches func(T) bool, release func(T)) int {
	removed := 0
	i := l.head
	for n := l.count; n > 0; n-- {
		next := l.nodes[i].next
		if matches(l.nodes[i].payload) {
			l.remove(i, release)
			removed++
		}
		i = next
	}
	return removed
}

// Returns the head payload, or false if the list is empty
func (l *List[T]) Front() (T, bool) {
	if l.count == 0 {
		var zero T
		return zero, false
	}
	return l.nodes[l.head].payload, true
}

// Returns the tail payload, or false if the list is empty
func (l *List[T]) Back() (T, bool) {
	if l.count == 0 {
		var zero T
		return zero, false
	}
	return l.nodes[l.nodes[l.head].prev].payload, true
}

// Returns the payload index positions forward from the head, or false if
// index is out of range
func (l *List[T]) At(index int) (T, bool) {
	if index < 0 || index >= l.count {
		var zero T
		return zero, false
	}
	return l.nodes[l.walk(index)].payload, true
}

// Returns true if equals(target, payload) holds for any payload
func (l *List[T]) Contains(target T, equals func(a, b T) bool) bool {
	i := l.head
	for n := l.count; n > 0; n-- {
		if equals(target, l.nodes[i].payload) {
			return true
		}
		i = l.nodes[i].next
	}
	return false
}

// Calls action for every payload, head first. action must not insert into
// or remove from the list.
func (l *List[T]) ForEach(action func(T)) {
	i := l.head
	for n := l.count; n > 0; n-- {
		action(l.nodes[i].payload)
		i = l.nodes[i].next
	}
}

// Returns the payloads in ring order, head first.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	l.ForEach(func(payload T) {
		values = append(values, payload)
	})
	return values
}

// Removes everything, passing each payload to release in ring order.
func (l *List[T]) Clear(release func(T)) {
	i := l.head
	for n := l.count; n > 0; n-- {
		next := l.nodes[i].next
		if release != nil {
			release(l.nodes[i].payload)
		}
		i = next
	}

	if cap(l.nodes) > l.trim {
		l.nodes = nil
	} else {
		var zero node[T]
		for i := range l.nodes {
			l.nodes[i] = zero
		}
		l.nodes = l.nodes[:0]
	}
	l.free = none
	l.head = none
	l.count = 0
}

func (l *List[T]) remove(i int, release func(T)) {
	l.unlink(i)
	l.reclaim(i, release)
}
