package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/GHzytp/vedo/internal/scene"
)

func TestFrameSizeAndBackground(t *testing.T) {
	c := NewCanvas(scene.NewScene(), 64, 48)
	c.Background = scene.RGB{R: 1}

	img := c.Frame()
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Fatalf("Unexpected frame size: %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("Expected red background, got %+v", got)
	}
}

func TestFrameDrawsObjects(t *testing.T) {
	s := scene.NewScene()
	s.Add(scene.NewCube("cube", 1))

	c := NewCanvas(s, 64, 64)
	c.Background = scene.RGB{}

	if countNonBackground(c.Frame(), color.RGBA{A: 255}) == 0 {
		t.Error("Expected a visible cube to touch some pixels")
	}
}

func TestInvisibleObjectSkipsDrawing(t *testing.T) {
	s := scene.NewScene()
	cube := scene.NewCube("cube", 1)
	cube.SetAlpha(0)
	s.Add(cube)

	c := NewCanvas(s, 64, 64)
	c.Background = scene.RGB{}

	if n := countNonBackground(c.Frame(), color.RGBA{A: 255}); n != 0 {
		t.Errorf("Fully transparent object touched %d pixels", n)
	}
}

func TestFrameIsDeterministic(t *testing.T) {
	s := scene.NewScene()
	s.Add(scene.NewSphere("ball", 1, 6))

	c := NewCanvas(s, 48, 48)
	a := c.Frame()
	b := c.Frame()

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatal("Identical scene state produced different pixels")
		}
	}
}

func TestSetQRLink(t *testing.T) {
	c := NewCanvas(scene.NewScene(), 64, 64)

	if err := c.SetQRLink("https://example.org", 21); err != nil {
		t.Fatalf("SetQRLink failed: %v", err)
	}
	if c.qr == nil {
		t.Fatal("Expected a QR stamp")
	}

	if err := c.SetQRLink("", 0); err != nil {
		t.Fatalf("Clearing QR failed: %v", err)
	}
	if c.qr != nil {
		t.Error("Empty link should clear the stamp")
	}
}

func TestBackdropLetterboxed(t *testing.T) {
	c := NewCanvas(scene.NewScene(), 100, 100)
	c.Background = scene.RGB{}

	// A wide white backdrop in a square frame leaves bands top and bottom.
	backdrop := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for i := range backdrop.Pix {
		backdrop.Pix[i] = 255
	}
	c.SetBackdrop(backdrop)

	img := c.Frame()
	if got := img.RGBAAt(50, 2); got.R != 0 {
		t.Errorf("Expected letterbox band at the top, got %+v", got)
	}
	if got := img.RGBAAt(50, 50); got.R != 255 {
		t.Errorf("Expected backdrop content in the middle, got %+v", got)
	}
}

func TestProjectCentersOrigin(t *testing.T) {
	c := NewCanvas(scene.NewScene(), 100, 80)

	x, y, depth := c.project(scene.Vec3{})
	if x != 50 || y != 40 {
		t.Errorf("Origin should project to the frame center, got (%f, %f)", x, y)
	}
	if depth != c.Camera.Distance {
		t.Errorf("Expected depth %f, got %f", c.Camera.Distance, depth)
	}
}

func countNonBackground(img *image.RGBA, bg color.RGBA) int {
	n := 0
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}
