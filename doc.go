// Package astar finds minimal-cost routes between two cells of a grid graph
// using A* with an admissible heuristic.
//
// It exposes three entry points:
//
//   - Solve: the plain form, returning whether a path exists and the path.
//   - Search: run the algorithm to completion with options and get a Result.
//   - Stepper: iterate the search one frontier pop at a time to drive UIs or debugging tools.
//
// The engine depends only on the Graph contract, so any graph built from
// grid.Node values (square grids, hex grids, navmeshes) can be searched.
// Every call owns its search state; concurrent searches over a graph that
// is not being modified are safe.
//
// Paths are returned goal first and start last. Use Result.Forward for the
// start-to-goal order.
package astar
