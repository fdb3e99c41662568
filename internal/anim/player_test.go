package anim

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GHzytp/vedo/internal/scene"
)

type fakeRenderer struct {
	frames int
}

func (r *fakeRenderer) Frame() *image.RGBA {
	r.frames++
	return image.NewRGBA(image.Rect(0, 0, 2, 2))
}

type fakeWriter struct {
	frames   int
	pauses   []float64
	closes   int
	closeErr error
}

func (w *fakeWriter) AddFrame(*image.RGBA) error { w.frames++; return nil }
func (w *fakeWriter) Pause(s float64) error      { w.pauses = append(w.pauses, s); return nil }
func (w *fakeWriter) Close() error               { w.closes++; return w.closeErr }

func TestPlayFrameSchedule(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	// Four zero-duration events at t = 0, 1, 1, 2.
	tl.SwitchOn(Targets(cube), Start(0))
	tl.SwitchOff(Start(1))
	tl.SwitchOn(Start(1))
	tl.SwitchOff(Start(2))
	require.NoError(t, tl.Err())

	r := &fakeRenderer{}
	w := &fakeWriter{}
	require.NoError(t, tl.Play(context.Background(), r, w))

	// t=0 does not advance time; t=1 and t=2 each emit one frame, plus the
	// terminal frame.
	assert.Equal(t, 3, w.frames)
	// Both one-second gaps exceed the resolution, so both become holds.
	require.Len(t, w.pauses, 2)
	assert.InDelta(t, 1.0, w.pauses[0], 1e-9)
	assert.InDelta(t, 1.0, w.pauses[1], 1e-9)
	assert.Equal(t, 1, w.closes)
}

func TestPlayAppliesFinalState(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)
	cube.SetAlpha(0)

	tl.FadeIn(Targets(cube), Start(0), Duration(0.5))
	require.NoError(t, tl.Err())
	require.NoError(t, tl.Play(context.Background(), &fakeRenderer{}, &fakeWriter{}))

	assert.InDelta(t, 1.0, cube.Alpha(), 1e-9)
}

func TestPlayEmptyScheduleEmitsOneFrame(t *testing.T) {
	tl := newTestTimeline()

	r := &fakeRenderer{}
	w := &fakeWriter{}
	require.NoError(t, tl.Play(context.Background(), r, w))

	assert.Equal(t, 1, w.frames)
	assert.Equal(t, 1, w.closes)
}

func TestPlayNilWriter(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)
	tl.SwitchOn(Targets(cube), Start(0))

	assert.NoError(t, tl.Play(context.Background(), &fakeRenderer{}, nil))
}

func TestPlayReturnsLatchedError(t *testing.T) {
	tl := newTestTimeline()
	tl.FadeIn(Start(0), Duration(1)) // no target

	w := &fakeWriter{}
	err := tl.Play(context.Background(), &fakeRenderer{}, w)
	assert.ErrorIs(t, err, ErrMissingTarget)
	assert.Zero(t, w.frames)
	assert.Equal(t, 1, w.closes, "writer must be closed even when booking failed")
}

func TestPlayHonorsCancellation(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)
	tl.SwitchOn(Targets(cube), Start(0))
	tl.SwitchOff(Start(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &fakeWriter{}
	err := tl.Play(ctx, &fakeRenderer{}, w)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, w.closes, "writer must be closed on cancellation")
}

func TestPlayTiesKeepBookingOrder(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	// Both events fire at t=1; the later-booked one must win.
	tl.SwitchOff(Targets(cube), Start(1))
	tl.SwitchOn(Start(1))
	require.NoError(t, tl.Err())
	require.NoError(t, tl.Play(context.Background(), &fakeRenderer{}, &fakeWriter{}))

	assert.InDelta(t, 1.0, cube.Alpha(), 1e-9)
}

func TestPlaySortsOutOfOrderBookings(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	// Booked backwards: the t=2 event must still be applied last.
	tl.SwitchOff(Targets(cube), Start(2))
	tl.SwitchOn(Start(0))
	require.NoError(t, tl.Err())

	r := &fakeRenderer{}
	w := &fakeWriter{}
	require.NoError(t, tl.Play(context.Background(), r, w))

	assert.InDelta(t, 0.0, cube.Alpha(), 1e-9)
	// Same frame schedule as booking in time order: one frame at t=2 plus
	// the terminal frame.
	assert.Equal(t, 2, w.frames)
	require.Len(t, w.pauses, 1)
	assert.InDelta(t, 2.0, w.pauses[0], 1e-9)
}

func TestPlaySurfacesCloseError(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)
	tl.SwitchOn(Targets(cube), Start(0))

	boom := errors.New("encoder crashed")
	err := tl.Play(context.Background(), &fakeRenderer{}, &fakeWriter{closeErr: boom})
	assert.ErrorIs(t, err, boom)
}

func TestPlayProgressCallback(t *testing.T) {
	var calls []int
	tl := New(scene.NewScene(), Options{
		Progress: func(current, total int, label string) {
			assert.Equal(t, 2, total)
			assert.NotEmpty(t, label)
			calls = append(calls, current)
		},
	})
	cube := scene.NewCube("cube", 1)
	tl.SwitchOn(Targets(cube), Start(0))
	tl.SwitchOff(Start(1))
	require.NoError(t, tl.Play(context.Background(), &fakeRenderer{}, nil))

	assert.Equal(t, []int{1, 2}, calls)
}

func TestTotalDuration(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)
	tl.SwitchOn(Targets(cube), Start(1))
	tl.SwitchOff(Start(4))
	assert.InDelta(t, 3.0, tl.TotalDuration(), 1e-9)

	override := New(scene.NewScene(), Options{TotalDuration: 10})
	assert.InDelta(t, 10.0, override.TotalDuration(), 1e-9)
}
