package unigrid

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Grid is a uniform spatial hash grid for broadphase collision culling.
// Shapes are staged with Add, placed into cells by an explicit Rebuild, and
// queried with ManyToMany or Pairs; the result narrows the O(n²) pair search
// to the shapes that share at least one grid cell, leaving the exact
// intersection test to a narrowphase of the caller's choosing.
//
// The grid performs no internal locking. Add, Rebuild and the query passes
// must not be interleaved from multiple goroutines against the same Grid.
type Grid[S Shape] struct {
	cellSize float64

	waiting []S
	stored  []S
	table   *cellTable

	// Running min/max over every coordinate of every box ever added.
	minExtent float64
	maxExtent float64
	hasExtent bool
}

// Pair is a broadphase candidate: two distinct shapes, identified by their
// storage indices, whose bounding boxes share a grid cell and overlap.
// A < B always holds.
type Pair struct {
	A, B int
}

// New creates a grid preallocated for roughly sizeHint shapes.
// The hint only sizes initial allocations; it does not bound capacity.
func New[S Shape](sizeHint int) *Grid[S] {
	return &Grid[S]{
		waiting: make([]S, 0, sizeHint),
		stored:  make([]S, 0, sizeHint),
		table:   newCellTable(),
	}
}

// Add stages a shape for insertion at the next Rebuild.
//
// The cell size grows to fit the shape if it is the widest seen so far, which
// invalidates the cell placement of previously hashed shapes; that is why
// placement is deferred to an explicit Rebuild instead of done here.
func (g *Grid[S]) Add(shape S) {
	g.waiting = append(g.waiting, shape)

	bb := shape.BoundingBox()
	if w := bb.MaxWidth(); w > g.cellSize {
		g.cellSize = w
	}

	lo := min(bb.Min.X(), min(bb.Min.Y(), bb.Min.Z()))
	hi := max(bb.Max.X(), max(bb.Max.Y(), bb.Max.Z()))
	if !g.hasExtent {
		g.minExtent, g.maxExtent = lo, hi
		g.hasExtent = true
	} else {
		g.minExtent = min(g.minExtent, lo)
		g.maxExtent = max(g.maxExtent, hi)
	}
}

// Rebuild recomputes the whole cell table under the current cell size: every
// stored shape is re-hashed, then every waiting shape is moved into storage
// and hashed. After Rebuild the waiting queue is empty.
//
// The rebuild is a full batch pass, not incremental; it is meant to run once
// per simulation tick over the full active shape set.
func (g *Grid[S]) Rebuild() {
	g.table.clear()

	size := g.cellSize
	if size <= 0 {
		// Every shape so far is a degenerate point; any positive size buckets
		// them by position.
		size = 1
	}

	for i := range g.stored {
		g.insert(int32(i), size)
	}

	for _, shape := range g.waiting {
		g.stored = append(g.stored, shape)
		g.insert(int32(len(g.stored)-1), size)
	}
	g.waiting = g.waiting[:0]
}

// insert appends the shape's index to the bucket of every cell touched by its
// bounding box. Because the cell size is at least the box's widest extent, the
// box spans at most two cells per axis, so its 8 corners cover every cell it
// touches.
func (g *Grid[S]) insert(index int32, size float64) {
	bb := g.stored[index].BoundingBox()
	lo := bb.Min
	w := bb.Widths()

	// Deduplicate corner cells so an index lands at most once per bucket.
	// Degenerate axes collapse their corners here.
	cells := make(map[cell]struct{}, 8)
	for _, corner := range [8]mgl64.Vec3{
		lo,
		{lo.X() + w.X(), lo.Y(), lo.Z()},
		{lo.X(), lo.Y() + w.Y(), lo.Z()},
		{lo.X(), lo.Y(), lo.Z() + w.Z()},
		{lo.X(), lo.Y() + w.Y(), lo.Z() + w.Z()},
		{lo.X() + w.X(), lo.Y(), lo.Z() + w.Z()},
		{lo.X() + w.X(), lo.Y() + w.Y(), lo.Z()},
		{lo.X() + w.X(), lo.Y() + w.Y(), lo.Z() + w.Z()},
	} {
		cells[cellAt(corner, size)] = struct{}{}
	}

	for c := range cells {
		g.table.add(c, index)
	}
}

// ManyToMany returns every stored shape that shares at least one grid cell
// with another shape, one entry per shape regardless of how many cells or
// partners it collides in. Shapes still waiting for a Rebuild are unplaced and
// never reported.
//
// The returned pointers alias the grid's own storage and are valid only until
// the next Add or Rebuild; callers must not retain them across mutations.
func (g *Grid[S]) ManyToMany() []*S {
	if len(g.stored) == 0 {
		return nil
	}

	flagged := make([]bool, len(g.stored))
	g.table.each(func(b *bucket) {
		if len(b.indices) < 2 {
			return
		}
		for _, index := range b.indices {
			flagged[index] = true
		}
	})

	var result []*S
	for i := range g.stored {
		if flagged[i] {
			result = append(result, &g.stored[i])
		}
	}
	return result
}

// Pairs returns every candidate pair: two distinct stored shapes that share a
// grid cell and whose bounding boxes overlap. Each pair is reported once even
// when the shapes co-occupy several cells, ordered by storage index.
func (g *Grid[S]) Pairs() []Pair {
	seen := map[Pair]struct{}{}
	var pairs []Pair

	g.table.each(func(b *bucket) {
		for i := 0; i < len(b.indices); i++ {
			for j := i + 1; j < len(b.indices); j++ {
				a, c := b.indices[i], b.indices[j]
				if a > c {
					a, c = c, a
				}
				p := Pair{A: int(a), B: int(c)}
				if _, dup := seen[p]; dup {
					continue
				}
				seen[p] = struct{}{}
				if g.stored[p.A].BoundingBox().Overlaps(g.stored[p.B].BoundingBox()) {
					pairs = append(pairs, p)
				}
			}
		}
	})

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

// Len returns the number of stored (rebuilt) shapes.
func (g *Grid[S]) Len() int {
	return len(g.stored)
}

// Pending returns the number of shapes waiting for the next Rebuild.
func (g *Grid[S]) Pending() int {
	return len(g.waiting)
}

// At returns a pointer to the stored shape at index i. Indices are stable
// across Rebuilds, but the pointer itself is only valid until the next Add or
// Rebuild.
func (g *Grid[S]) At(i int) *S {
	return &g.stored[i]
}

// CellSize returns the current edge length of a grid cell: the largest
// bounding-box extent of any shape ever added. It never decreases.
func (g *Grid[S]) CellSize() float64 {
	return g.cellSize
}

// Extents returns the running minimum and maximum over every coordinate of
// every bounding box ever added. ok is false until the first Add.
func (g *Grid[S]) Extents() (lo, hi float64, ok bool) {
	return g.minExtent, g.maxExtent, g.hasExtent
}
