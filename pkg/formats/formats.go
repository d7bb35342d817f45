// Package formats provides parsers for the asset file formats the renderer
// imports.
package formats

// Note: Wavefront OBJ is implemented in obj.go
