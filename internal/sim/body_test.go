package sim

import "testing"

func TestBodyPushPop(t *testing.T) {
	b := NewBody(8)
	b.PushFront(Cell{X: 1, Y: 1})
	b.PushFront(Cell{X: 2, Y: 1})
	b.PushFront(Cell{X: 3, Y: 1})

	if b.Len() != 3 {
		t.Fatalf("len = %d, want 3", b.Len())
	}
	if b.Head() != (Cell{X: 3, Y: 1}) {
		t.Errorf("head = %v", b.Head())
	}
	if b.Tail() != (Cell{X: 1, Y: 1}) {
		t.Errorf("tail = %v", b.Tail())
	}

	got := b.PopBack()
	if got != (Cell{X: 1, Y: 1}) {
		t.Errorf("popped %v, want (1,1)", got)
	}
	if b.Contains(Cell{X: 1, Y: 1}) {
		t.Error("popped cell still reported occupied")
	}
	if !b.Contains(Cell{X: 2, Y: 1}) || !b.Contains(Cell{X: 3, Y: 1}) {
		t.Error("remaining cells not reported occupied")
	}
}

func TestBodyCellsOrder(t *testing.T) {
	b := NewBody(8)
	want := []Cell{{X: 5, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 0}}
	for i := len(want) - 1; i >= 0; i-- {
		b.PushFront(want[i])
	}
	got := b.Cells()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cells[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBodyGrowsPastCapacity(t *testing.T) {
	b := NewBody(8)
	for i := 0; i < 50; i++ {
		b.PushFront(Cell{X: i, Y: 0})
	}
	if b.Len() != 50 {
		t.Fatalf("len = %d, want 50", b.Len())
	}
	if b.Head() != (Cell{X: 49, Y: 0}) {
		t.Errorf("head = %v, want (49,0)", b.Head())
	}
	if b.Tail() != (Cell{X: 0, Y: 0}) {
		t.Errorf("tail = %v, want (0,0)", b.Tail())
	}
	for i := 0; i < 50; i++ {
		if !b.Contains(Cell{X: i, Y: 0}) {
			t.Errorf("missing cell (%d,0) after growth", i)
		}
	}
}

func TestBodyDuplicateCellCounting(t *testing.T) {
	// Within a single move the new head may momentarily coincide with a
	// cell the tail still holds; popping one copy must not erase both.
	b := NewBody(8)
	b.PushFront(Cell{X: 0, Y: 0})
	b.PushFront(Cell{X: 1, Y: 0})
	b.PushFront(Cell{X: 0, Y: 0})

	b.PopBack()
	if !b.Contains(Cell{X: 0, Y: 0}) {
		t.Error("cell with a remaining copy reported free")
	}
	b.PopBack()
	b.PopBack()
	if b.Contains(Cell{X: 0, Y: 0}) {
		t.Error("fully drained cell still reported occupied")
	}
}

func TestBodyWrapAround(t *testing.T) {
	b := NewBody(8)
	// Shuffle the ring so head wraps past index zero.
	for i := 0; i < 6; i++ {
		b.PushFront(Cell{X: i, Y: 0})
	}
	for i := 0; i < 4; i++ {
		b.PopBack()
	}
	for i := 6; i < 12; i++ {
		b.PushFront(Cell{X: i, Y: 0})
	}
	if b.Len() != 8 {
		t.Fatalf("len = %d, want 8", b.Len())
	}
	if b.Head() != (Cell{X: 11, Y: 0}) {
		t.Errorf("head = %v, want (11,0)", b.Head())
	}
	if b.Tail() != (Cell{X: 4, Y: 0}) {
		t.Errorf("tail = %v, want (4,0)", b.Tail())
	}
}
