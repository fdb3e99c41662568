package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/GHzytp/vedo/internal/scene"
)

// Camera is a minimal orbit camera: positioned Distance units from the
// origin, orbited by Azimuth/Elevation degrees, looking at the origin.
type Camera struct {
	Distance  float64
	Azimuth   float64
	Elevation float64
	Zoom      float64
}

// Renderable is what the canvas knows how to draw: an animatable object
// that also exposes its point/edge soup. scene.Mesh satisfies it.
type Renderable interface {
	scene.Object
	NPoints() int
	WorldPoint(i int) scene.Vec3
	Edges() [][2]int
	PointVisible(i int) bool
}

// Canvas rasterizes a scene into RGBA frames. Rendering is deterministic:
// the same scene state always produces the same pixels.
type Canvas struct {
	Scene      *scene.Scene
	Width      int
	Height     int
	Background scene.RGB
	Camera     Camera

	backdrop image.Image
	qr       image.Image
}

func NewCanvas(s *scene.Scene, width, height int) *Canvas {
	return &Canvas{
		Scene:      s,
		Width:      width,
		Height:     height,
		Background: scene.RGB{R: 0.08, G: 0.08, B: 0.1},
		Camera:     Camera{Distance: 4, Zoom: 1},
	}
}

// Frame renders the current scene state.
func (c *Canvas) Frame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.Background.NRGBA(1)), image.Point{}, draw.Src)

	if c.backdrop != nil {
		composeBackdrop(img, c.backdrop)
	}

	r := vector.NewRasterizer(c.Width, c.Height)
	for _, obj := range c.Scene.Objects() {
		if rend, ok := obj.(Renderable); ok {
			c.drawObject(img, r, rend)
		}
	}

	if c.qr != nil {
		stampQR(img, c.qr)
	}
	return img
}

func (c *Canvas) drawObject(img *image.RGBA, r *vector.Rasterizer, obj Renderable) {
	alpha := obj.Alpha()
	if alpha < 1.0/255 {
		return
	}

	l := obj.Lighting()
	shade := clamp01(l.Ambient + 0.85*l.Diffuse + 0.1*l.Specular)

	if !obj.Wireframe() {
		// Surface representation: point sprites in the shaded body color.
		col := obj.Color().Scaled(shade).NRGBA(alpha)
		size := 1.5 + 0.5*obj.LineWidth()
		for i := 0; i < obj.NPoints(); i++ {
			if !obj.PointVisible(i) {
				continue
			}
			x, y, depth := c.project(obj.WorldPoint(i))
			if depth <= 0 {
				continue
			}
			fillSquare(r, img, x, y, size, col)
		}
	}

	lw := obj.LineWidth()
	if lw <= 0 {
		return
	}
	front := obj.LineColor().NRGBA(alpha)
	if obj.Wireframe() {
		front = obj.Color().Scaled(shade).NRGBA(alpha)
	}
	backCol, hasBack := obj.BackColor()
	_, _, originDepth := c.project(obj.Pos())
	for _, e := range obj.Edges() {
		if !obj.PointVisible(e[0]) || !obj.PointVisible(e[1]) {
			continue
		}
		x0, y0, d0 := c.project(obj.WorldPoint(e[0]))
		x1, y1, d1 := c.project(obj.WorldPoint(e[1]))
		if d0 <= 0 || d1 <= 0 {
			continue
		}
		col := front
		// Far-half edges take the backface color when one is set.
		if hasBack && obj.Wireframe() && (d0+d1)/2 > originDepth {
			col = backCol.NRGBA(alpha)
		}
		strokeSegment(r, img, x0, y0, x1, y1, lw, col)
	}
}

// project maps a world point to canvas coordinates. depth grows away from
// the camera; non-positive depth means behind it.
func (c *Canvas) project(p scene.Vec3) (x, y, depth float64) {
	az := c.Camera.Azimuth * math.Pi / 180
	el := c.Camera.Elevation * math.Pi / 180

	// Orbit: rotate the world by -azimuth about Y, then -elevation about X.
	sinA, cosA := math.Sin(-az), math.Cos(-az)
	px := p.X*cosA + p.Z*sinA
	pz := -p.X*sinA + p.Z*cosA
	sinE, cosE := math.Sin(-el), math.Cos(-el)
	py := p.Y*cosE - pz*sinE
	pz = p.Y*sinE + pz*cosE

	depth = c.Camera.Distance - pz
	if depth <= 0 {
		return 0, 0, depth
	}
	k := c.Camera.Zoom * float64(c.Height) / 4 * c.Camera.Distance / depth
	x = float64(c.Width)/2 + px*k
	y = float64(c.Height)/2 - py*k
	return x, y, depth
}

func strokeSegment(r *vector.Rasterizer, dst *image.RGBA, x0, y0, x1, y1, width float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		fillSquare(r, dst, x0, y0, width, col)
		return
	}
	// Perpendicular half-width offset turns the segment into a quad.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	r.Reset(dst.Bounds().Dx(), dst.Bounds().Dy())
	r.MoveTo(float32(x0+nx), float32(y0+ny))
	r.LineTo(float32(x1+nx), float32(y1+ny))
	r.LineTo(float32(x1-nx), float32(y1-ny))
	r.LineTo(float32(x0-nx), float32(y0-ny))
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

func fillSquare(r *vector.Rasterizer, dst *image.RGBA, cx, cy, size float64, col color.Color) {
	h := size / 2
	r.Reset(dst.Bounds().Dx(), dst.Bounds().Dy())
	r.MoveTo(float32(cx-h), float32(cy-h))
	r.LineTo(float32(cx+h), float32(cy-h))
	r.LineTo(float32(cx+h), float32(cy+h))
	r.LineTo(float32(cx-h), float32(cy+h))
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
