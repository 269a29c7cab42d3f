package voxel

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidSize = errors.New("voxel: invalid chunk size")

// Kind is the collision shape stored in a chunk cell.
type Kind uint8

const (
	Empty Kind = iota
	Cuboid
	// Slope is a wedge. With the identity orientation its sloped face points
	// toward (0, 1, 1) and the solid part is where y+z <= 1 in cell space.
	Slope
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Cuboid:
		return "Cuboid"
	case Slope:
		return "Slope"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Data is one chunk cell.
type Data struct {
	Kind        Kind
	Orientation Orientation
}

func NewData(kind Kind) Data {
	return Data{Kind: kind}
}

func (d Data) WithOrientation(o Orientation) Data {
	d.Orientation = o
	return d
}

func (d Data) IsEmpty() bool {
	return d.Kind == Empty
}

var slopeNormal = mgl32.Vec3{0, 1, 1}.Normalize()

// SlopeNormal is the outward normal of the sloped face after orientation.
func (d Data) SlopeNormal() mgl32.Vec3 {
	return d.Orientation.Rotate(slopeNormal)
}

// PlaneAxis picks the two axes a plane fill iterates over.
type PlaneAxis uint8

const (
	PlaneXY PlaneAxis = iota // fixed z
	PlaneYZ                  // fixed x
	PlaneXZ                  // fixed y
)

// Chunk is a dense, fixed-size grid of cells. Cells are stored x-fastest,
// then y, then z.
type Chunk struct {
	width  int
	height int
	depth  int
	cells  []Data
}

func NewChunk(width, height, depth int) (*Chunk, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidSize, width, height, depth)
	}
	return &Chunk{
		width:  width,
		height: height,
		depth:  depth,
		cells:  make([]Data, width*height*depth),
	}, nil
}

// MustNewChunk is NewChunk for sizes known to be valid.
func MustNewChunk(width, height, depth int) *Chunk {
	c, err := NewChunk(width, height, depth)
	if err != nil {
		panic(err)
	}
	return c
}

// Size is the chunk dimensions in cells.
func (c *Chunk) Size() [3]int {
	return [3]int{c.width, c.height, c.depth}
}

func (c *Chunk) Len() int {
	return len(c.cells)
}

func (c *Chunk) InBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < c.width && y < c.height && z < c.depth
}

func (c *Chunk) index(x, y, z int) int {
	return x + c.width*(y+c.height*z)
}

// Get returns the cell at the given coordinates, or false when out of bounds.
func (c *Chunk) Get(x, y, z int) (Data, bool) {
	if !c.InBounds(x, y, z) {
		return Data{}, false
	}
	return c.cells[c.index(x, y, z)], true
}

// GetMut returns a pointer into the chunk, or false when out of bounds.
func (c *Chunk) GetMut(x, y, z int) (*Data, bool) {
	if !c.InBounds(x, y, z) {
		return nil, false
	}
	return &c.cells[c.index(x, y, z)], true
}

// Set writes one cell and returns the chunk for chaining. Writing outside the
// chunk is a builder bug and panics.
func (c *Chunk) Set(x, y, z int, d Data) *Chunk {
	if !c.InBounds(x, y, z) {
		panic(fmt.Sprintf("voxel: coordinates (%d, %d, %d) out of bounds for chunk %dx%dx%d", x, y, z, c.width, c.height, c.depth))
	}
	c.cells[c.index(x, y, z)] = d
	return c
}

// SetPlane fills the half-open rectangle [src, dest) on the plane where the
// remaining axis equals fixed.
func (c *Chunk) SetPlane(fixed int, src, dest [2]int, axis PlaneAxis, d Data) *Chunk {
	for u := src[0]; u < dest[0]; u++ {
		for v := src[1]; v < dest[1]; v++ {
			switch axis {
			case PlaneXY:
				c.Set(u, v, fixed, d)
			case PlaneYZ:
				c.Set(fixed, u, v, d)
			case PlaneXZ:
				c.Set(u, fixed, v, d)
			default:
				panic(fmt.Sprintf("voxel: unknown plane axis %d", axis))
			}
		}
	}
	return c
}

// Solid counts the non-empty cells.
func (c *Chunk) Solid() int {
	n := 0
	for _, d := range c.cells {
		if d.Kind != Empty {
			n++
		}
	}
	return n
}

// Each visits every cell in storage order until fn returns false.
func (c *Chunk) Each(fn func(d Data, coords [3]int) bool) {
	it := c.Iter()
	for {
		d, coords, ok := it.Next()
		if !ok || !fn(d, coords) {
			return
		}
	}
}

// Iter returns an iterator positioned at the first cell.
func (c *Chunk) Iter() *Iterator {
	return &Iterator{chunk: c}
}

// Iterator walks a chunk x-fastest, then y, then z.
type Iterator struct {
	chunk *Chunk
	pos   [3]int
	index int
}

func (it *Iterator) Next() (Data, [3]int, bool) {
	if it.index >= len(it.chunk.cells) {
		return Data{}, [3]int{}, false
	}
	d := it.chunk.cells[it.index]
	pos := it.pos
	it.pos[0]++
	if it.pos[0] == it.chunk.width {
		it.pos[0] = 0
		it.pos[1]++
		if it.pos[1] == it.chunk.height {
			it.pos[1] = 0
			it.pos[2]++
		}
	}
	it.index++
	return d, pos, true
}

// Reset rewinds the iterator to the first cell.
func (it *Iterator) Reset() {
	it.pos = [3]int{}
	it.index = 0
}
