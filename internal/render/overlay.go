package render

import (
	"fmt"
	"image"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// SetBackdrop installs a background image drawn behind the scene,
// letterboxed to preserve its aspect ratio. A nil image clears it.
func (c *Canvas) SetBackdrop(img image.Image) {
	c.backdrop = img
}

// SetQRLink stamps a QR code for the given link into the bottom-right
// corner of every frame. An empty link clears the stamp.
func (c *Canvas) SetQRLink(link string, size int) error {
	if link == "" {
		c.qr = nil
		return nil
	}
	if size <= 0 {
		size = c.Height / 6
	}
	q, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("build qr code: %w", err)
	}
	c.qr = q.Image(size)
	return nil
}

// composeBackdrop scales src to fit dst, centered with letterboxing, the
// same policy as ffmpeg's force_original_aspect_ratio=decrease with center
// padding.
func composeBackdrop(dst *image.RGBA, src image.Image) {
	dw, dh := dst.Bounds().Dx(), dst.Bounds().Dy()
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return
	}
	scale := float64(dw) / float64(sw)
	if s := float64(dh) / float64(sh); s < scale {
		scale = s
	}
	w := int(float64(sw) * scale)
	h := int(float64(sh) * scale)
	x0 := (dw - w) / 2
	y0 := (dh - h) / 2
	xdraw.ApproxBiLinear.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), src, src.Bounds(), xdraw.Over, nil)
}

// stampQR draws the QR image in the bottom-right corner with a small
// margin.
func stampQR(dst *image.RGBA, qr image.Image) {
	const margin = 8
	b := dst.Bounds()
	qb := qr.Bounds()
	at := image.Pt(b.Max.X-qb.Dx()-margin, b.Max.Y-qb.Dy()-margin)
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(qb.Size())}, qr, qb.Min, draw.Over)
}
