package artifacts

import (
	"math"

	"camnoise/internal/models"
)

// intrinsics is the synthetic pinhole camera model used by the distortion
// operator. It is derived fresh from the image's own dimensions on every
// call, not a persisted calibration: unit focal length and principal point
// at the image center.
type intrinsics struct {
	fx, fy float64
	cx, cy float64
}

func newIntrinsics(width, height int) intrinsics {
	return intrinsics{
		fx: 1.0,
		fy: 1.0,
		cx: float64(width) / 2.0,
		cy: float64(height) / 2.0,
	}
}

// ApplyDistortion applies radial and tangential lens distortion following
// the Brown-Conrady model. For every destination pixel it computes the
// source coordinate to sample from:
//
//	x_n = (u - cx)/fx, y_n = (v - cy)/fy, r² = x_n² + y_n²
//	x_d = x_n(1 + k1·r² + k2·r⁴) + 2·p1·x_n·y_n + p2(r² + 2·x_n²)
//	y_d = y_n(1 + k1·r² + k2·r⁴) + p1(r² + 2·y_n²) + 2·p2·x_n·y_n
//	u' = fx·x_d + cx, v' = fy·y_d + cy
//
// and resamples the source bilinearly at (u', v'). Destination pixels whose
// source coordinate falls outside the source bounds are filled with black.
// All four coefficients at zero reproduce the input exactly.
func (g *Generator) ApplyDistortion(img *models.Image, k1, k2, p1, p2 float64) *models.Image {
	out := models.NewImage(img.Height, img.Width, img.Channels)
	k := newIntrinsics(img.Width, img.Height)

	for v := 0; v < img.Height; v++ {
		yn := (float64(v) - k.cy) / k.fy
		for u := 0; u < img.Width; u++ {
			xn := (float64(u) - k.cx) / k.fx

			r2 := xn*xn + yn*yn
			radial := 1 + k1*r2 + k2*r2*r2
			xd := xn*radial + 2*p1*xn*yn + p2*(r2+2*xn*xn)
			yd := yn*radial + p1*(r2+2*yn*yn) + 2*p2*xn*yn

			srcU := k.fx*xd + k.cx
			srcV := k.fy*yd + k.cy

			sampleBilinear(img, srcU, srcV, out, u, v)
		}
	}

	return out
}

// sampleBilinear resamples src at the fractional coordinate (u, v) and
// writes all channels of the destination pixel (dstX, dstY). Coordinates
// outside the source bounds produce the 0 fill value.
func sampleBilinear(src *models.Image, u, v float64, dst *models.Image, dstX, dstY int) {
	if u < 0 || v < 0 || u > float64(src.Width-1) || v > float64(src.Height-1) {
		// Destination buffer is zero-initialized; black fill is implicit.
		return
	}

	x0 := int(math.Floor(u))
	y0 := int(math.Floor(v))
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 > src.Width-1 {
		x1 = src.Width - 1
	}
	if y1 > src.Height-1 {
		y1 = src.Height - 1
	}

	fx := u - float64(x0)
	fy := v - float64(y0)

	for c := 0; c < src.Channels; c++ {
		tl := float64(src.At(y0, x0, c))
		tr := float64(src.At(y0, x1, c))
		bl := float64(src.At(y1, x0, c))
		br := float64(src.At(y1, x1, c))

		top := tl + (tr-tl)*fx
		bottom := bl + (br-bl)*fx
		dst.Set(dstY, dstX, c, clampToUint8(top+(bottom-top)*fy))
	}
}
