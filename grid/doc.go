// Package grid provides the cell representation used by the astar search:
// packed coordinates, 4-bit adjacency masks, nodes and a dense square grid.
//
// Adjacency is directional. A cell's mask says which of its four edges may be
// crossed when leaving it; entering a cell is governed by its neighbours'
// masks. Use Isolate to make a cell impassable in both directions.
package grid
