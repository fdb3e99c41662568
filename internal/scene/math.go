package scene

import "math"

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vec3
}

func (b Box) Diagonal() float64 {
	return b.Max.Sub(b.Min).Len()
}

// Corner returns one of the 8 box corners. The ordering walks the bottom
// face counter-clockwise (z = min), then the top face:
//
//	0:(x0,y0,z0) 1:(x1,y0,z0) 2:(x1,y1,z0) 3:(x0,y1,z0)
//	4:(x0,y0,z1) 5:(x1,y0,z1) 6:(x1,y1,z1) 7:(x0,y1,z1)
func (b Box) Corner(i int) Vec3 {
	x := b.Min.X
	if i == 1 || i == 2 || i == 5 || i == 6 {
		x = b.Max.X
	}
	y := b.Min.Y
	if i == 2 || i == 3 || i == 6 || i == 7 {
		y = b.Max.Y
	}
	z := b.Min.Z
	if i >= 4 {
		z = b.Max.Z
	}
	return Vec3{x, y, z}
}
