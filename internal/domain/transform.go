package domain

// Transform maps an index as seen through a view onto an index of the
// original, untransformed board, stored as a lookup table.
type Transform struct {
	perm [Size]int
}

// Identity leaves every index in place.
var Identity = TransformFunc(func(_, i int) int { return i })

// Rotation turns the board by 90 degrees around its center.
//
//	| 0 -1 |
//	| 1  0 |
var Rotation = TransformFunc(func(order, i int) int {
	last := order - 1
	x, y := i%order, i/order
	nx, ny := last-y, x
	return nx + ny*order
})

// Mirror flips the board horizontally.
//
//	| -1 0 |
//	|  0 1 |
var Mirror = TransformFunc(func(order, i int) int {
	last := order - 1
	x, y := i%order, i/order
	nx, ny := last-x, y
	return nx + ny*order
})

// TransformFunc tabulates fn for every index of a board of the fixed order.
// fn receives the board order and the index to remap.
func TransformFunc(fn func(order, index int) int) Transform {
	var t Transform
	for i := range t.perm {
		t.perm[i] = fn(Order, i)
	}
	return t
}

// Apply returns the original board index for view index i. Out of range
// indices are returned unchanged so that lookups fail on the board.
func (t Transform) Apply(i int) int {
	if !validIndex(i) {
		return i
	}
	return t.perm[i]
}

// Then returns the transform that applies t first and u afterwards.
func (t Transform) Then(u Transform) Transform {
	var out Transform
	for i, j := range t.perm {
		out.perm[i] = u.Apply(j)
	}
	return out
}

// Inverse returns the transform undoing t. It is only meaningful when t is a
// permutation of the board indices, which holds for every symmetry.
func (t Transform) Inverse() Transform {
	var out Transform
	for i := range out.perm {
		out.perm[i] = -1
	}
	for i, j := range t.perm {
		if validIndex(j) {
			out.perm[j] = i
		}
	}
	return out
}

// Symmetry enumerates the eight symmetries of the square in lookup order.
type Symmetry int

const (
	Original Symmetry = iota
	Mirrored
	Rotated90
	Rotated90Mirrored
	Rotated180
	Rotated180Mirrored
	Rotated270
	Rotated270Mirrored
)

// NumSymmetries is the number of distinct symmetries of the board.
const NumSymmetries = 8

var symmetryNames = [NumSymmetries]string{
	"original", "mirrored",
	"rot90", "rot90-mirrored",
	"rot180", "rot180-mirrored",
	"rot270", "rot270-mirrored",
}

func (s Symmetry) String() string {
	if s < 0 || int(s) >= NumSymmetries {
		return "unknown"
	}
	return symmetryNames[s]
}

// Symmetries lists the transforms of all eight symmetries, ordered by Symmetry.
// Every odd entry is the mirrored form of the entry before it and each pair
// is the previous pair rotated by another 90 degrees.
func Symmetries() [NumSymmetries]Transform {
	var ts [NumSymmetries]Transform
	ts[0] = Identity
	ts[1] = Identity.Then(Mirror)
	for i := 0; i < NumSymmetries-2; i++ {
		ts[i+2] = ts[i].Then(Rotation)
	}
	return ts
}
