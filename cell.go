package unigrid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cell identifies one axis-aligned cube of the grid by its integer coordinates.
// Two cells are equal iff all three coordinates match.
type cell struct {
	x, y, z int32
}

// Large multiplicative constants, arbitrarily chosen primes.
// Wraparound on overflow is fine; this is a cheap spatial hash.
const (
	hashX uint32 = 0x8da6b343
	hashY uint32 = 0xd8163841
	hashZ uint32 = 0xcb1ab31f
)

func (c cell) hash() uint32 {
	return uint32(c.x)*hashX + uint32(c.y)*hashY + uint32(c.z)*hashZ
}

// cellAt returns the cell containing point p on a grid with the given cell size.
func cellAt(p mgl64.Vec3, size float64) cell {
	return cell{
		x: int32(math.Floor(p.X() / size)),
		y: int32(math.Floor(p.Y() / size)),
		z: int32(math.Floor(p.Z() / size)),
	}
}

// bucket holds the indices of every shape whose bounding box overlaps one cell.
// Buckets whose cells share a hash value are chained.
type bucket struct {
	key     cell
	indices []int32
	next    *bucket
}

// cellTable maps cells to buckets. Bucket placement is keyed by the spatial
// hash; unequal cells that collide on it live on the same chain and are told
// apart by exact coordinate equality.
type cellTable struct {
	bins map[uint32]*bucket
}

func newCellTable() *cellTable {
	return &cellTable{bins: map[uint32]*bucket{}}
}

// add appends a shape index to the bucket for c, creating the bucket if this is
// the first occupant of the cell.
func (t *cellTable) add(c cell, index int32) {
	h := c.hash()

	bin := t.bins[h]
	for bin != nil && bin.key != c {
		bin = bin.next
	}

	if bin == nil {
		bin = &bucket{key: c, indices: make([]int32, 0, 4)}
		bin.next = t.bins[h]
		t.bins[h] = bin
	}

	bin.indices = append(bin.indices, index)
}

// lookup returns the indices occupying cell c, or nil if the cell is empty.
func (t *cellTable) lookup(c cell) []int32 {
	bin := t.bins[c.hash()]
	for bin != nil && bin.key != c {
		bin = bin.next
	}
	if bin == nil {
		return nil
	}
	return bin.indices
}

// each calls f for every occupied cell's bucket, in no particular order.
func (t *cellTable) each(f func(*bucket)) {
	for _, bin := range t.bins {
		for ; bin != nil; bin = bin.next {
			f(bin)
		}
	}
}

func (t *cellTable) clear() {
	t.bins = map[uint32]*bucket{}
}
