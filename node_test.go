package ringlist

import (
	. "github.com/karlseguin/expect"
	"testing"
)

type NodeTests struct{}

func Test_Node(t *testing.T) {
	Expectify(new(NodeTests), t)
}

func (n *NodeTests) ReusesFreedSlots() {
	l := New[int](Configure())
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	l.RemoveAt(1, nil)
	Expect(l.free).To.Equal(2)

	l.PushFront(4)
	Expect(len(l.nodes)).To.Equal(4)
	Expect(l.free).To.Equal(none)
	Expect(l.head).To.Equal(2)
}

func (n *NodeTests) ReclaimDropsPayload() {
	l := New[*string](Configure())
	s := "spice"
	l.PushBack(&s)
	l.RemoveFront(nil)
	Expect(l.nodes[1].payload == nil).To.Equal(true)
}

func (n *NodeTests) ReleaseRunsBeforeSlotIsFreed() {
	l := New[string](Configure())
	l.PushBack("worm")
	var seen string
	l.RemoveBack(func(payload string) {
		seen = payload
		Expect(l.free).To.Equal(none)
	})
	Expect(seen).To.Equal("worm")
	Expect(l.free).To.Equal(1)
}

func (n *NodeTests) SingleNodeLinksToItself() {
	l := New[int](Configure())
	l.PushFront(1)
	Expect(l.nodes[1].next).To.Equal(1)
	Expect(l.nodes[1].prev).To.Equal(1)
}

func (n *NodeTests) ClearKeepsSmallArena() {
	l := New[int](Configure().Capacity(4).Trim(8))
	l.PushBack(1)
	l.PushBack(2)
	l.Clear(nil)
	Expect(len(l.nodes)).To.Equal(0)
	Expect(cap(l.nodes)).To.Equal(5)
}

func (n *NodeTests) ClearDropsLargeArena() {
	l := New[int](Configure().Capacity(0).Trim(2))
	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}
	l.Clear(nil)
	Expect(cap(l.nodes)).To.Equal(0)
	Expect(l.Len()).To.Equal(0)
}

func (n *NodeTests) ReservesFirstSlot() {
	var l List[int]
	l.PushBack(1)
	Expect(len(l.nodes)).To.Equal(2)
	Expect(l.head).To.Equal(1)
}

func (n *NodeTests) ZeroValueClearDropsArena() {
	var l List[int]
	l.PushBack(1)
	l.Clear(nil)
	Expect(l.nodes == nil).To.Equal(true)
}
