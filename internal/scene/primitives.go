package scene

import "math"

// NewCube builds an axis-aligned cube centered on the local origin.
func NewCube(name string, size float64) *Mesh {
	h := size / 2
	pts := []Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
	}
	return NewMesh(name, pts, edges)
}

// NewSphere builds a latitude/longitude sphere. res controls the number of
// parallels; meridians are 2*res.
func NewSphere(name string, radius float64, res int) *Mesh {
	if res < 3 {
		res = 3
	}
	lats, lons := res, 2*res

	var pts []Vec3
	pts = append(pts, Vec3{0, radius, 0}) // north pole
	for i := 1; i < lats; i++ {
		phi := math.Pi * float64(i) / float64(lats)
		for j := 0; j < lons; j++ {
			theta := 2 * math.Pi * float64(j) / float64(lons)
			pts = append(pts, Vec3{
				X: radius * math.Sin(phi) * math.Cos(theta),
				Y: radius * math.Cos(phi),
				Z: radius * math.Sin(phi) * math.Sin(theta),
			})
		}
	}
	pts = append(pts, Vec3{0, -radius, 0}) // south pole
	south := len(pts) - 1

	ring := func(i, j int) int { return 1 + (i-1)*lons + (j%lons) }

	var edges [][2]int
	for j := 0; j < lons; j++ {
		edges = append(edges, [2]int{0, ring(1, j)})
		edges = append(edges, [2]int{ring(lats-1, j), south})
	}
	for i := 1; i < lats; i++ {
		for j := 0; j < lons; j++ {
			edges = append(edges, [2]int{ring(i, j), ring(i, j+1)})
			if i < lats-1 {
				edges = append(edges, [2]int{ring(i, j), ring(i + 1, j)})
			}
		}
	}
	return NewMesh(name, pts, edges)
}

// NewGrid builds a flat grid in the XY plane with nx by ny cells.
func NewGrid(name string, width, height float64, nx, ny int) *Mesh {
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	var pts []Vec3
	for iy := 0; iy <= ny; iy++ {
		for ix := 0; ix <= nx; ix++ {
			pts = append(pts, Vec3{
				X: -width/2 + width*float64(ix)/float64(nx),
				Y: -height/2 + height*float64(iy)/float64(ny),
			})
		}
	}
	at := func(ix, iy int) int { return iy*(nx+1) + ix }

	var edges [][2]int
	for iy := 0; iy <= ny; iy++ {
		for ix := 0; ix <= nx; ix++ {
			if ix < nx {
				edges = append(edges, [2]int{at(ix, iy), at(ix + 1, iy)})
			}
			if iy < ny {
				edges = append(edges, [2]int{at(ix, iy), at(ix, iy + 1)})
			}
		}
	}
	return NewMesh(name, pts, edges)
}

// NewLine builds a polyline between two points with n segments.
func NewLine(name string, p0, p1 Vec3, n int) *Mesh {
	if n < 1 {
		n = 1
	}
	var pts []Vec3
	var edges [][2]int
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pts = append(pts, p0.Add(p1.Sub(p0).Mul(t)))
		if i > 0 {
			edges = append(edges, [2]int{i - 1, i})
		}
	}
	return NewMesh(name, pts, edges)
}
