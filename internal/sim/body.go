package sim

// Body is the snake's segment sequence, head first. It is a ring-buffer
// deque so the per-tick push-front/pop-back pair is O(1), with an occupancy
// count map kept in lockstep for O(1) self-collision tests. The count map
// (rather than a set) tolerates the transient moment within a move where
// the new head has been pushed but the tail not yet popped.
type Body struct {
	cells []Cell
	head  int // index of the head segment in cells
	size  int
	occ   map[Cell]int
}

// NewBody creates an empty body with room for capacity segments.
func NewBody(capacity int) *Body {
	if capacity < 8 {
		capacity = 8
	}
	return &Body{
		cells: make([]Cell, capacity),
		occ:   make(map[Cell]int),
	}
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.size
}

// Head returns the head segment. Panics on an empty body.
func (b *Body) Head() Cell {
	return b.At(0)
}

// Tail returns the last segment. Panics on an empty body.
func (b *Body) Tail() Cell {
	return b.At(b.size - 1)
}

// At returns the i-th segment, 0 being the head.
func (b *Body) At(i int) Cell {
	if i < 0 || i >= b.size {
		panic("sim: body index out of range")
	}
	return b.cells[(b.head+i)%len(b.cells)]
}

// Contains reports whether any segment occupies the given cell.
func (b *Body) Contains(c Cell) bool {
	return b.occ[c] > 0
}

// PushFront prepends a new head segment.
func (b *Body) PushFront(c Cell) {
	if b.size == len(b.cells) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.head] = c
	b.size++
	b.occ[c]++
}

// PopBack removes and returns the tail segment.
func (b *Body) PopBack() Cell {
	tail := b.Tail()
	b.size--
	n := b.occ[tail] - 1
	if n <= 0 {
		delete(b.occ, tail)
	} else {
		b.occ[tail] = n
	}
	return tail
}

// Cells returns the segments head first, as a fresh slice.
func (b *Body) Cells() []Cell {
	out := make([]Cell, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.At(i)
	}
	return out
}

// grow doubles the ring storage, relinearizing the segments.
func (b *Body) grow() {
	bigger := make([]Cell, len(b.cells)*2)
	for i := 0; i < b.size; i++ {
		bigger[i] = b.At(i)
	}
	b.cells = bigger
	b.head = 0
}
