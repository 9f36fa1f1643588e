// Package pipemaze measures closed pipe loops on rectangular grids of pipe
// tiles.
//
// 🚀 What is pipemaze?
//
//	A small, pure-Go pipeline that turns a grid of pipe symbols into two numbers:
//		• Half-length: the farthest along-loop distance from the start tile
//		• Interior: the number of cells strictly enclosed by the loop
//
// Grids are written with one symbol per cell:
//
//	|  north-south        -  east-west
//	L  north-east         J  north-west
//	7  south-west         F  south-east
//	.  ground             S  start (shape inferred from the loop)
//
// The pipeline is split into subpackages, each feeding the next:
//
//	tile/     positions, directions, pipe kinds and their connectors
//	grid/     parsing text rows into an addressable grid
//	network/  adjacency between mutually connecting pipe tiles
//	loop/     extraction of the unique closed loop through the start tile
//	area/     enclosed cells via shoelace and Pick's theorem, or a scanline
//	solver/   the composed pipeline plus concurrent batch solving
//	manifest/ HCL manifests describing batches of grids
//	render/   PNG rendering of a solved grid
//
// Quick example:
//
//	F-7
//	|.|     loop of 8 tiles, half-length 4,
//	L-S     one enclosed cell at (1,1)
//
// The pipemaze command in cmd/pipemaze solves a single grid file or a batch
// manifest:
//
//	pipemaze -method scanline grids/sample.txt
//	pipemaze -manifest batch.hcl
package pipemaze
