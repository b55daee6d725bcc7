// Package projection implements the film-plane edge point computation: a
// world-space point is rotated into the camera frame by the camera's
// orientation quaternion and intersected with the film plane at
// z = focalLength.
package projection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// epsilon guards the perspective divide: points with camera-frame depth at
// or below it sit behind the camera or on the film plane.
const epsilon = 1e-12

// FilmPoint is a precise (non-integer) coordinate on the film plane.
type FilmPoint struct {
	X, Y float64
}

// Quaternion is a camera orientation in (x, y, z, w) component order,
// rotating the camera frame into the world frame.
type Quaternion struct {
	X, Y, Z, W float64
}

// EdgePoint projects a world-space point into film-plane coordinates.
// The focal length is the distance between the camera origin and the film
// plane; its units carry through to the output coordinates.
//
// It returns an error when the focal length is not positive, the quaternion
// has no rotation (zero norm), or the point projects behind the camera or
// onto the film plane.
func EdgePoint(px, py, pz float64, q Quaternion, focalLength float64) (FilmPoint, error) {
	if focalLength <= 0 {
		return FilmPoint{}, fmt.Errorf("focal length must be positive, got %g", focalLength)
	}

	norm := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if norm < epsilon {
		return FilmPoint{}, fmt.Errorf("orientation quaternion must be nonzero")
	}

	// The camera-to-world rotation of v is r v r⁻¹; moving the world point
	// into the camera frame applies the inverse: r⁻¹ v r.
	r := quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
	v := quat.Number{Imag: px, Jmag: py, Kmag: pz}
	cam := quat.Mul(quat.Mul(quat.Inv(r), v), r)

	if cam.Kmag <= epsilon {
		return FilmPoint{}, fmt.Errorf("point projects behind the camera or onto the film plane")
	}

	scale := focalLength / cam.Kmag
	return FilmPoint{X: cam.Imag * scale, Y: cam.Jmag * scale}, nil
}
