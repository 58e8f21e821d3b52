package mino

// QueueLength is the number of upcoming pieces kept visible.
const QueueLength = 5

// Queue is a fixed length FIFO of upcoming pieces, refilled from a Generator
// every time the front is taken.
type Queue struct {
	pieces []PieceType
	gen    Generator
}

func NewQueue(gen Generator, length int) *Queue {
	if length < 1 {
		length = QueueLength
	}

	q := &Queue{pieces: make([]PieceType, length), gen: gen}
	for i := range q.pieces {
		q.pieces[i] = gen.Next()
	}

	return q
}

// Dequeue removes and returns the front piece and appends a fresh one.
func (q *Queue) Dequeue() PieceType {
	t := q.pieces[0]
	copy(q.pieces, q.pieces[1:])
	q.pieces[len(q.pieces)-1] = q.gen.Next()
	return t
}

// Peek returns a copy of the queue, front first.
func (q *Queue) Peek() []PieceType {
	p := make([]PieceType, len(q.pieces))
	copy(p, q.pieces)
	return p
}

func (q *Queue) Len() int {
	return len(q.pieces)
}

// Hold is the single reserved slot. Used is set once a swap happened for the
// current piece and cleared when a piece locks.
type Hold struct {
	Piece    PieceType
	Occupied bool
	Used     bool
}

// Exchange stores t and returns the previously held piece, if any.
func (h *Hold) Exchange(t PieceType) (PieceType, bool) {
	prev, had := h.Piece, h.Occupied
	h.Piece, h.Occupied = t, true
	return prev, had
}

func (h *Hold) Reset() {
	*h = Hold{}
}
