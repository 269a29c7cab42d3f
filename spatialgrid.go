package voxphys

import (
	"slices"

	"github.com/chewxy/math32"
)

// SpatialHashGrid buckets body indices by the grid cells their boxes touch.
type SpatialHashGrid struct {
	cellSize float32
	// Map from cell hash to body indices
	cells map[uint64][]int
}

func NewSpatialHashGrid(cellSize float32) *SpatialHashGrid {
	return &SpatialHashGrid{
		cellSize: cellSize,
		cells:    make(map[uint64][]int),
	}
}

func (grid *SpatialHashGrid) Clear() {
	clear(grid.cells)
}

func (grid *SpatialHashGrid) Insert(idx int, box AABB) {
	min, max := box.Min(), box.Max()
	minX, maxX := grid.getCellIndex(min.X()), grid.getCellIndex(max.X())
	minY, maxY := grid.getCellIndex(min.Y()), grid.getCellIndex(max.Y())
	minZ, maxZ := grid.getCellIndex(min.Z()), grid.getCellIndex(max.Z())

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				key := grid.hashKey(x, y, z)
				grid.cells[key] = append(grid.cells[key], idx)
			}
		}
	}
}

// QueryAABB returns every index sharing a cell with box, in ascending order.
// Hash collisions can add extra candidates but never drop one.
func (grid *SpatialHashGrid) QueryAABB(box AABB) []int {
	min, max := box.Min(), box.Max()
	minX, maxX := grid.getCellIndex(min.X()), grid.getCellIndex(max.X())
	minY, maxY := grid.getCellIndex(min.Y()), grid.getCellIndex(max.Y())
	minZ, maxZ := grid.getCellIndex(min.Z()), grid.getCellIndex(max.Z())

	unique := make(map[int]struct{})
	var results []int

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				key := grid.hashKey(x, y, z)
				for _, idx := range grid.cells[key] {
					if _, ok := unique[idx]; !ok {
						unique[idx] = struct{}{}
						results = append(results, idx)
					}
				}
			}
		}
	}
	slices.Sort(results)
	return results
}

func (grid *SpatialHashGrid) getCellIndex(pos float32) int {
	return int(math32.Floor(pos / grid.cellSize))
}

// Simple hash function for 3D coordinates
func (grid *SpatialHashGrid) hashKey(x, y, z int) uint64 {
	// large primes for mixing
	const p1 = 73856093
	const p2 = 19349663
	const p3 = 83492791
	return uint64(x*p1 ^ y*p2 ^ z*p3)
}
