package scene

import "math"

// Mesh is a point/edge soup with the full animatable property set. World
// coordinates are origin + local*scale; rotations mutate the local points
// so repeated incremental rotations compose naturally.
type Mesh struct {
	name   string
	pts    []Vec3
	edges  [][2]int
	hidden []bool

	origin Vec3
	scale  float64

	alpha     float64
	color     RGB
	backColor RGB
	hasBack   bool
	wireframe bool
	lineWidth float64
	lineColor RGB
	lighting  Lighting
}

// DefaultLighting matches the "default" lighting style coefficients.
var DefaultLighting = Lighting{Ambient: 0.1, Diffuse: 1.0, Specular: 0.05, SpecularPower: 5}

func NewMesh(name string, pts []Vec3, edges [][2]int) *Mesh {
	return &Mesh{
		name:      name,
		pts:       pts,
		edges:     edges,
		hidden:    make([]bool, len(pts)),
		scale:     1.0,
		alpha:     1.0,
		color:     RGB{R: 0.8, G: 0.8, B: 0.8},
		lineWidth: 1.0,
		lineColor: RGB{R: 0.1, G: 0.1, B: 0.1},
		lighting:  DefaultLighting,
	}
}

func (m *Mesh) Name() string { return m.name }

func (m *Mesh) Alpha() float64     { return m.alpha }
func (m *Mesh) SetAlpha(a float64) { m.alpha = a }

func (m *Mesh) Color() RGB     { return m.color }
func (m *Mesh) SetColor(c RGB) { m.color = c }

func (m *Mesh) BackColor() (RGB, bool) { return m.backColor, m.hasBack }
func (m *Mesh) SetBackColor(c RGB) {
	m.backColor = c
	m.hasBack = true
}

func (m *Mesh) Wireframe() bool      { return m.wireframe }
func (m *Mesh) SetWireframe(on bool) { m.wireframe = on }

func (m *Mesh) LineWidth() float64     { return m.lineWidth }
func (m *Mesh) SetLineWidth(w float64) { m.lineWidth = w }

func (m *Mesh) LineColor() RGB     { return m.lineColor }
func (m *Mesh) SetLineColor(c RGB) { m.lineColor = c }

func (m *Mesh) Lighting() Lighting     { return m.lighting }
func (m *Mesh) SetLighting(l Lighting) { m.lighting = l }

func (m *Mesh) Pos() Vec3     { return m.origin }
func (m *Mesh) SetPos(p Vec3) { m.origin = p }

func (m *Mesh) Scale() float64     { return m.scale }
func (m *Mesh) SetScale(f float64) { m.scale = f }

func (m *Mesh) RotateX(deg float64) { m.rotate(deg, AxisX) }
func (m *Mesh) RotateY(deg float64) { m.rotate(deg, AxisY) }
func (m *Mesh) RotateZ(deg float64) { m.rotate(deg, AxisZ) }

func (m *Mesh) rotate(deg float64, axis Axis) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	for i, p := range m.pts {
		switch axis {
		case AxisX:
			m.pts[i] = Vec3{p.X, p.Y*cos - p.Z*sin, p.Y*sin + p.Z*cos}
		case AxisY:
			m.pts[i] = Vec3{p.X*cos + p.Z*sin, p.Y, -p.X*sin + p.Z*cos}
		case AxisZ:
			m.pts[i] = Vec3{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos, p.Z}
		}
	}
}

// WorldPoint returns point i in world coordinates.
func (m *Mesh) WorldPoint(i int) Vec3 {
	return m.origin.Add(m.pts[i].Mul(m.scale))
}

func (m *Mesh) Edges() [][2]int { return m.edges }

func (m *Mesh) PointVisible(i int) bool { return !m.hidden[i] }

func (m *Mesh) NPoints() int { return len(m.pts) }

func (m *Mesh) Bounds() Box {
	if len(m.pts) == 0 {
		return Box{Min: m.origin, Max: m.origin}
	}
	b := Box{Min: m.WorldPoint(0), Max: m.WorldPoint(0)}
	for i := 1; i < len(m.pts); i++ {
		p := m.WorldPoint(i)
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}

func (m *Mesh) DiagonalSize() float64 {
	return m.Bounds().Diagonal()
}

func (m *Mesh) ClosestPointDistance(p Vec3) float64 {
	best := math.Inf(1)
	for i := range m.pts {
		if d := m.WorldPoint(i).Dist(p); d < best {
			best = d
		}
	}
	return best
}

func (m *Mesh) PointIDsWithinRadius(p Vec3, radius float64) []int {
	var ids []int
	for i := range m.pts {
		if m.WorldPoint(i).Dist(p) <= radius {
			ids = append(ids, i)
		}
	}
	return ids
}

func (m *Mesh) HidePoints(ids []int) {
	for _, id := range ids {
		if id >= 0 && id < len(m.hidden) {
			m.hidden[id] = true
		}
	}
}
