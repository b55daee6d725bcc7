// Command edgepoint projects a world-space coordinate into film-plane
// coordinates using a camera orientation expressed as a quaternion.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"camnoise/pkg/projection"
)

func main() {
	px := flag.Float64("x", 0, "World X coordinate of the target point")
	py := flag.Float64("y", 0, "World Y coordinate of the target point")
	pz := flag.Float64("z", 0, "World Z coordinate of the target point")
	qx := flag.Float64("qx", 0, "Camera orientation quaternion X component")
	qy := flag.Float64("qy", 0, "Camera orientation quaternion Y component")
	qz := flag.Float64("qz", 0, "Camera orientation quaternion Z component")
	qw := flag.Float64("qw", 1, "Camera orientation quaternion W component")
	focal := flag.Float64("focal-length", 1.0, "Film-plane distance from the camera origin")
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	q := projection.Quaternion{X: *qx, Y: *qy, Z: *qz, W: *qw}
	point, err := projection.EdgePoint(*px, *py, *pz, q, *focal)
	if err != nil {
		log.Fatalf("Projection failed: %v", err)
	}

	fmt.Printf("Film edge point -> x: %.15g, y: %.15g\n", point.X, point.Y)
}
