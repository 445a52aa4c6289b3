package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
)

// SpatialGrid provides cell-bucketed broad-phase lookups.
// Entities are bucketed by centre; positions outside the field land in the
// nearest edge cell, so off-screen spawns are still found by edge queries.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]ecs.Entity // flat grid of entity lists
}

// NewSpatialGrid creates a spatial grid covering the given field size.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]ecs.Entity, cols*rows)
	for i := range cells {
		cells[i] = make([]ecs.Entity, 0, 4)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all entities from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity to the grid at the given position.
func (g *SpatialGrid) Insert(e ecs.Entity, x, y float64) {
	idx := g.row(y)*g.cols + g.col(x)
	g.cells[idx] = append(g.cells[idx], e)
}

// QueryRectInto appends every entity bucketed in a cell touched by the
// rectangle [minX,maxX]x[minY,maxY] to dst and returns it.
// Callers pad the rectangle by the largest footprint they care about and
// run an exact overlap test on the result.
func (g *SpatialGrid) QueryRectInto(dst []ecs.Entity, minX, minY, maxX, maxY float64) []ecs.Entity {
	c0, c1 := g.col(minX), g.col(maxX)
	r0, r1 := g.row(minY), g.row(maxY)

	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			dst = append(dst, g.cells[r*g.cols+c]...)
		}
	}
	return dst
}

// Len returns the number of bucketed entities.
func (g *SpatialGrid) Len() int {
	n := 0
	for _, cell := range g.cells {
		n += len(cell)
	}
	return n
}

func (g *SpatialGrid) col(x float64) int {
	return clampIndex(x/g.cellSize, g.cols)
}

func (g *SpatialGrid) row(y float64) int {
	return clampIndex(y/g.cellSize, g.rows)
}

// clampIndex floors v into [0, n-1]. NaN maps to 0.
func clampIndex(v float64, n int) int {
	if !(v >= 0) {
		return 0
	}
	if v >= float64(n) {
		return n - 1
	}
	return int(math.Floor(v))
}
