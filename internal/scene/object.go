package scene

// Axis selects a world axis for incremental rotations.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Lighting holds the four Phong-style coefficients transitions interpolate.
type Lighting struct {
	Ambient       float64
	Diffuse       float64
	Specular      float64
	SpecularPower float64
}

// Object is the visual property surface the animation scheduler mutates.
// Implementations own their geometry; the scheduler only borrows references
// and never creates or destroys objects.
type Object interface {
	Name() string

	Alpha() float64
	SetAlpha(a float64)

	Color() RGB
	SetColor(c RGB)

	// BackColor reports false until a backface color has been set.
	BackColor() (RGB, bool)
	SetBackColor(c RGB)

	Wireframe() bool
	SetWireframe(on bool)

	LineWidth() float64
	SetLineWidth(w float64)

	LineColor() RGB
	SetLineColor(c RGB)

	Lighting() Lighting
	SetLighting(l Lighting)

	Pos() Vec3
	SetPos(p Vec3)

	RotateX(deg float64)
	RotateY(deg float64)
	RotateZ(deg float64)

	// SetScale sets the absolute uniform scale relative to the object's
	// base geometry.
	SetScale(f float64)
	Scale() float64
}

// Geometry exposes the point-level queries mesh erosion needs.
type Geometry interface {
	Bounds() Box
	DiagonalSize() float64
	NPoints() int

	// ClosestPointDistance returns the distance from p to the nearest
	// geometry point, hidden points included.
	ClosestPointDistance(p Vec3) float64

	// PointIDsWithinRadius returns the ids of all points within radius of p.
	PointIDsWithinRadius(p Vec3, radius float64) []int

	// HidePoints removes the given point ids from rendering. Unknown ids
	// are ignored.
	HidePoints(ids []int)
}
