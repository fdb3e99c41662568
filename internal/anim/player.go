package anim

import (
	"context"
	"fmt"
	"image"
	"sort"

	"github.com/GHzytp/vedo/internal/video"
)

// timeEps is the minimum simulated-time advance that triggers a frame.
const timeEps = 1e-5

// Renderer produces the current frame of the scene.
type Renderer interface {
	Frame() *image.RGBA
}

// TotalDuration returns the configured playback duration, or the span
// between the first and last booked event when none was configured.
func (tl *Timeline) TotalDuration() float64 {
	if tl.total > 0 {
		return tl.total
	}
	if len(tl.events) == 0 {
		return 0
	}
	lo, hi := tl.events[0].Time, tl.events[0].Time
	for _, e := range tl.events[1:] {
		if e.Time < lo {
			lo = e.Time
		}
		if e.Time > hi {
			hi = e.Time
		}
	}
	return hi - lo
}

// Play replays the booked events in ascending time order, applying each
// payload and emitting a frame whenever simulated time advances. The writer
// is closed on every exit path; a nil writer records nothing. Gaps wider
// than the time resolution become still holds in the recording so playback
// timing matches the declared schedule. ctx is checked once per event.
//
// Events are stable-sorted in place, so ties keep booking order. The event
// list is not cleared afterwards: further declarations may be booked and
// replayed on top of the already-played ones.
func (tl *Timeline) Play(ctx context.Context, r Renderer, w video.Writer) (err error) {
	if w == nil {
		w = video.Null{}
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close video writer: %w", cerr)
		}
	}()

	if tl.err != nil {
		return tl.err
	}

	sort.SliceStable(tl.events, func(i, j int) bool {
		return tl.events[i].Time < tl.events[j].Time
	})

	emit := func() error {
		return w.AddFrame(r.Frame())
	}

	// An empty schedule is a valid no-op run: one frame of the initial
	// state, minimal video.
	if len(tl.events) == 0 {
		tl.log.Debug().Msg("playback with empty event list")
		return emit()
	}

	tl.log.Info().
		Int("events", len(tl.events)).
		Float64("duration", tl.TotalDuration()).
		Msg("playback start")

	lastT := 0.0
	for i, e := range tl.events {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		e.Payload.Apply(e.Targets)

		dt := e.Time - lastT
		if dt > timeEps {
			if err := emit(); err != nil {
				return err
			}
			if dt > tl.res+timeEps {
				if err := w.Pause(dt); err != nil {
					return err
				}
			}
		}
		lastT = e.Time

		if tl.progress != nil {
			tl.progress(i+1, len(tl.events), fmt.Sprintf("t=%.2fs %s", e.Time, e.Label))
		}
	}

	// Terminal state is always captured.
	return emit()
}
