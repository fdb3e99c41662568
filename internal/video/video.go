package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"
	"os/exec"
)

// Writer records rendered frames. Failures propagate to the playback loop
// uncaught; Close must be safe to call on every exit path.
type Writer interface {
	AddFrame(img *image.RGBA) error
	// Pause holds the last written frame on screen for the given number of
	// seconds of recorded time.
	Pause(seconds float64) error
	Close() error
}

// Null discards all frames. Used when no video output was requested.
type Null struct{}

func (Null) AddFrame(*image.RGBA) error { return nil }
func (Null) Pause(float64) error        { return nil }
func (Null) Close() error               { return nil }

// EncoderOptions configures the ffmpeg encoding process.
type EncoderOptions struct {
	FPS     int
	Width   int
	Height  int
	Encoder string // h264_videotoolbox, h264_nvenc or libx264
	Quality int    // CRF for x264/NVENC, bitrate/100k for VideoToolbox
}

// FFmpegWriter streams raw RGBA frames to a single long-lived ffmpeg
// process over stdin, avoiding any intermediate files on disk.
type FFmpegWriter struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	output bytes.Buffer

	fps    int
	width  int
	height int

	last   *image.RGBA
	frames int
	closed bool
}

// NewFFmpegWriter starts the encoding process. The caller must Close the
// writer to finalize the file.
func NewFFmpegWriter(ctx context.Context, path string, opts EncoderOptions) (*FFmpegWriter, error) {
	if opts.FPS <= 0 {
		opts.FPS = 24
	}
	if opts.Encoder == "" {
		opts.Encoder = "libx264"
	}

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"-framerate", fmt.Sprintf("%d", opts.FPS),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		"-c:v", opts.Encoder,
	}
	args = append(args, qualityArgs(opts.Encoder, opts.Quality)...)
	args = append(args, path)

	w := &FFmpegWriter{
		cmd:    exec.CommandContext(ctx, "ffmpeg", args...),
		fps:    opts.FPS,
		width:  opts.Width,
		height: opts.Height,
	}
	w.cmd.Stdout = &w.output
	w.cmd.Stderr = &w.output

	stdin, err := w.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe error: %w", err)
	}
	w.stdin = stdin

	if err := w.cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}
	return w, nil
}

// qualityArgs selects encoder-specific quality flags. VideoToolbox often
// rejects -q:v, so it gets a bitrate instead.
func qualityArgs(encoder string, quality int) []string {
	switch encoder {
	case "h264_videotoolbox":
		if quality <= 0 {
			quality = 75
		}
		return []string{"-b:v", fmt.Sprintf("%dk", quality*100)}
	case "h264_nvenc":
		if quality <= 0 {
			quality = 28
		}
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		if quality <= 0 {
			quality = 23
		}
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

func (w *FFmpegWriter) AddFrame(img *image.RGBA) error {
	if w.closed {
		return fmt.Errorf("ffmpeg writer already closed")
	}
	rgba := normalizeRGBA(img)
	if rgba.Rect.Dx() != w.width || rgba.Rect.Dy() != w.height {
		return fmt.Errorf("frame size %dx%d does not match writer size %dx%d",
			rgba.Rect.Dx(), rgba.Rect.Dy(), w.width, w.height)
	}
	if _, err := w.stdin.Write(rgba.Pix); err != nil {
		return fmt.Errorf("write raw frame: %w", err)
	}
	w.last = rgba
	w.frames++
	return nil
}

// Pause re-emits the last frame round(seconds*fps) times. A pause before
// any frame was written is a no-op.
func (w *FFmpegWriter) Pause(seconds float64) error {
	if w.closed {
		return fmt.Errorf("ffmpeg writer already closed")
	}
	if w.last == nil {
		return nil
	}
	n := int(math.Floor(seconds*float64(w.fps) + 0.5))
	for i := 0; i < n; i++ {
		if _, err := w.stdin.Write(w.last.Pix); err != nil {
			return fmt.Errorf("write hold frame: %w", err)
		}
		w.frames++
	}
	return nil
}

// Close finalizes the stream and waits for ffmpeg to exit. Idempotent.
func (w *FFmpegWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.stdin.Close()
	if err := w.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %w, output: %s", err, w.output.String())
	}
	return nil
}

// FrameCount returns the number of frames written so far, holds included.
func (w *FFmpegWriter) FrameCount() int { return w.frames }

// normalizeRGBA guarantees a zero-origin image with a packed stride, which
// is what the rawvideo demuxer expects.
func normalizeRGBA(img *image.RGBA) *image.RGBA {
	bounds := img.Bounds()
	if img.Stride == bounds.Dx()*4 && bounds.Min.X == 0 && bounds.Min.Y == 0 {
		return img
	}
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
