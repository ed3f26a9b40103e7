// Package render draws a grid to a PNG image.
//
// Every cell is one filled square of grid.CellSize pixels colored by its
// state, with row r at y = r*size and column c at x = c*size, followed by
// thin grey grid lines. The canvas is PixelWidth pixels square, so a width
// that is not a multiple of the row count leaves a white margin on the
// right and bottom edges.
//
// Palette maps states to colors; DefaultPalette uses the classic scheme:
// white empty cells, orange start, turquoise end, black barriers, green
// frontier, red visited and purple path.
package render
