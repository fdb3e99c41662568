package anim

import "github.com/GHzytp/vedo/internal/scene"

// Context is the resolved declaration context for one transition call:
// explicit where the caller supplied values, carried over from the previous
// declaration where the caller omitted them. Start and Duration are already
// quantized to the timeline resolution.
type Context struct {
	Targets  []scene.Object
	Start    float64
	Duration float64

	// Times holds the nsteps+1 inclusive sample times between Start and
	// Start+Duration. A zero duration yields exactly one sample.
	Times []float64
}

// End returns the time the transition finishes; the next omitted-argument
// declaration continues from here.
func (c Context) End() float64 {
	return c.Start + c.Duration
}

// frac maps a sample time onto [0, 1] across the context interval.
func (c Context) frac(t float64) float64 {
	return linInterp(t, c.Start, c.End(), 0, 1)
}

// request collects the raw optional arguments of one declaration call before
// resolution against the previous context.
type request struct {
	targets  []scene.Object
	start    *float64
	duration *float64
	style    string
}

// Option supplies an optional declaration argument. Omitted options default
// to the previous declaration's values.
type Option func(*request)

// Targets names the objects a declaration affects.
func Targets(objs ...scene.Object) Option {
	return func(r *request) { r.targets = objs }
}

// Start sets the transition start time in seconds.
func Start(t float64) Option {
	return func(r *request) { r.start = &t }
}

// Duration sets the transition duration in seconds.
func Duration(d float64) Option {
	return func(r *request) { r.duration = &d }
}

// Style selects an alternate interpolation curve where a transition
// supports one ("linear" or "quad" for Move).
func Style(s string) Option {
	return func(r *request) { r.style = s }
}

func buildRequest(opts []Option) request {
	var r request
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// resolve produces the declaration context for one call. last is the
// previous call's context, or nil for the first declaration.
func resolve(r request, last *Context, res float64) (Context, error) {
	targets := r.targets
	if len(targets) == 0 {
		if last == nil || len(last.Targets) == 0 {
			return Context{}, ErrMissingTarget
		}
		targets = last.Targets
	}

	start := 0.0
	if r.start != nil {
		start = *r.start
	} else if last != nil {
		start = last.End()
	}

	duration := 0.0
	if r.duration != nil {
		duration = *r.duration
	} else if last != nil {
		duration = last.Duration
	}

	start = quantize(start, res)
	nsteps := quantizeSteps(duration, res)
	duration = float64(nsteps) * res

	times := make([]float64, nsteps+1)
	for i := range times {
		if nsteps == 0 {
			times[i] = start
		} else {
			times[i] = start + duration*float64(i)/float64(nsteps)
		}
	}

	return Context{
		Targets:  targets,
		Start:    start,
		Duration: duration,
		Times:    times,
	}, nil
}
