package mino

import (
	"math/rand"
)

// Generator produces an endless sequence of piece types.
type Generator interface {
	Next() PieceType
}

// Uniform draws each piece independently and uniformly at random.
type Uniform struct {
	r *rand.Rand
}

func NewUniform(seed int64) *Uniform {
	return &Uniform{r: rand.New(rand.NewSource(seed))}
}

func (u *Uniform) Next() PieceType {
	return AllPieceTypes[u.r.Intn(PieceTypes)]
}

// Bag deals every piece type once per shuffled bag of seven.
type Bag struct {
	Pieces []PieceType

	r *rand.Rand
	i int
}

func NewBag(seed int64) *Bag {
	b := &Bag{r: rand.New(rand.NewSource(seed))}

	b.shuffle()

	return b
}

func (b *Bag) Next() PieceType {
	t := b.Pieces[b.i]
	if b.i == len(b.Pieces)-1 {
		b.shuffle()

		b.i = 0
	} else {
		b.i++
	}

	return t
}

func (b *Bag) shuffle() {
	if b.Pieces == nil {
		b.Pieces = make([]PieceType, PieceTypes)
	}
	copy(b.Pieces, AllPieceTypes)

	b.r.Shuffle(len(b.Pieces), func(i, j int) { b.Pieces[i], b.Pieces[j] = b.Pieces[j], b.Pieces[i] })
}
