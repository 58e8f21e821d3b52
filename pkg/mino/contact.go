package mino

import (
	"github.com/kamstrup/intmap"
)

// ContactSet returns the subset of cells that lead in direction d: for Down,
// the lowest cell of each column; for Left and Right, the leftmost or rightmost
// cell of each row; for Up, the highest cell of each column. Only these cells
// can collide when the shape translates one step in d.
func ContactSet(cells [4]Point, d Direction) []Point {
	// key is the lane (column or row), value the extreme coordinate along d
	extreme := intmap.New[int, int](len(cells))

	lane := func(p Point) (int, int) {
		if d == Left || d == Right {
			return p.Y, p.X
		}
		return p.X, p.Y
	}
	better := func(a, b int) bool {
		if d == Down || d == Right {
			return a > b
		}
		return a < b
	}

	for _, p := range cells {
		k, v := lane(p)
		if cur, ok := extreme.Get(k); !ok || better(v, cur) {
			extreme.Put(k, v)
		}
	}

	contact := make([]Point, 0, extreme.Len())
	for _, p := range cells {
		k, v := lane(p)
		if cur, _ := extreme.Get(k); cur == v {
			contact = append(contact, p)
			extreme.Del(k)
		}
	}

	return contact
}
