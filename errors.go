package geom

import "errors"

// ErrSingularMatrix is returned by Matrix.Inverse when the determinant is
// too close to zero for the inverse to be meaningful.
var ErrSingularMatrix = errors.New("geom: singular matrix")
