package anim

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/GHzytp/vedo/internal/scene"
)

// DefaultTimeResolution is the quantization step for event times, in
// seconds.
const DefaultTimeResolution = 0.02

// Options configures a Timeline.
type Options struct {
	// TimeResolution is the time quantum for start times and durations.
	// Defaults to DefaultTimeResolution.
	TimeResolution float64

	// TotalDuration overrides the playback duration derived from the
	// booked events.
	TotalDuration float64

	// Progress, when set, receives (current, total, label) once per event
	// during playback.
	Progress Progress

	Logger zerolog.Logger
}

// Progress receives per-event playback progress.
type Progress func(current, total int, label string)

// Timeline books timed visual transitions as discrete events and replays
// them in time order. Declaration methods return the timeline itself so
// transitions can be chained; the first structural error latches, turns
// subsequent declarations into no-ops, and surfaces through Err and Play.
//
// A Timeline is not safe for concurrent use: booking and playback run on a
// single goroutine.
type Timeline struct {
	stage    *scene.Scene
	res      float64
	total    float64
	progress Progress
	log      zerolog.Logger

	events []Event
	last   *Context
	err    error
}

// New creates a Timeline that registers its targets on stage.
func New(stage *scene.Scene, opts Options) *Timeline {
	res := opts.TimeResolution
	if res <= 0 {
		res = DefaultTimeResolution
	}
	return &Timeline{
		stage:    stage,
		res:      res,
		total:    opts.TotalDuration,
		progress: opts.Progress,
		log:      opts.Logger,
	}
}

// Err returns the first structural booking error, if any.
func (tl *Timeline) Err() error { return tl.err }

// Events returns a copy of the booked event list, in booking order.
func (tl *Timeline) Events() []Event {
	out := make([]Event, len(tl.events))
	copy(out, tl.events)
	return out
}

// TimeResolution returns the quantization step in seconds.
func (tl *Timeline) TimeResolution() float64 { return tl.res }

func (tl *Timeline) fail(name string, err error) {
	if tl.err == nil {
		tl.err = fmt.Errorf("%s: %w", name, err)
	}
}

// begin resolves the declaration context for one transition call and
// registers its targets. ok is false when the timeline already failed or
// this call fails.
func (tl *Timeline) begin(name string, opts []Option) (Context, request, bool) {
	req := buildRequest(opts)
	if tl.err != nil {
		return Context{}, req, false
	}
	ctx, err := resolve(req, tl.last, tl.res)
	if err != nil {
		tl.fail(name, err)
		return Context{}, req, false
	}
	if tl.stage != nil {
		for _, t := range ctx.Targets {
			tl.stage.Add(t)
		}
	}
	tl.last = &ctx
	return ctx, req, true
}

// beginSingle is begin for transitions that accept exactly one target.
func (tl *Timeline) beginSingle(name string, opts []Option) (Context, request, bool) {
	ctx, req, ok := tl.begin(name, opts)
	if !ok {
		return ctx, req, false
	}
	if len(ctx.Targets) != 1 {
		tl.fail(name, fmt.Errorf("%w (got %d)", ErrInvalidTargetCount, len(ctx.Targets)))
		return ctx, req, false
	}
	return ctx, req, true
}

func (tl *Timeline) push(t float64, label string, targets []scene.Object, p Payload) {
	tl.events = append(tl.events, Event{Time: t, Label: label, Targets: targets, Payload: p})
}

// FadeIn books an opacity ramp from 0 to 1 over the declaration interval.
func (tl *Timeline) FadeIn(opts ...Option) *Timeline {
	return tl.alphaRamp("fade_in", 0, 1, opts)
}

// FadeOut books an opacity ramp from 1 to 0.
func (tl *Timeline) FadeOut(opts ...Option) *Timeline {
	return tl.alphaRamp("fade_out", 1, 0, opts)
}

// ChangeAlphaBetween books an opacity ramp between two arbitrary values.
func (tl *Timeline) ChangeAlphaBetween(a1, a2 float64, opts ...Option) *Timeline {
	return tl.alphaRamp("change_alpha", a1, a2, opts)
}

func (tl *Timeline) alphaRamp(name string, from, to float64, opts []Option) *Timeline {
	ctx, _, ok := tl.begin(name, opts)
	if !ok {
		return tl
	}
	for _, t := range ctx.Times {
		tl.push(t, name, ctx.Targets, AlphaPayload{Value: lerp(from, to, ctx.frac(t))})
	}
	return tl
}

// SwitchOn makes the targets fully opaque at the start time.
func (tl *Timeline) SwitchOn(opts ...Option) *Timeline {
	return tl.alphaRamp("switch_on", 0, 1, append(opts, Duration(0)))
}

// SwitchOff makes the targets fully transparent at the start time.
func (tl *Timeline) SwitchOff(opts ...Option) *Timeline {
	return tl.alphaRamp("switch_off", 1, 0, append(opts, Duration(0)))
}

// ChangeColor books a per-channel linear blend from each target's current
// color to c.
func (tl *Timeline) ChangeColor(c scene.RGB, opts ...Option) *Timeline {
	ctx, _, ok := tl.begin("change_color", opts)
	if !ok {
		return tl
	}
	from := make([]scene.RGB, len(ctx.Targets))
	for i, t := range ctx.Targets {
		from[i] = t.Color()
	}
	for _, t := range ctx.Times {
		colors := make([]scene.RGB, len(from))
		for i := range from {
			colors[i] = from[i].Lerp(c, ctx.frac(t))
		}
		tl.push(t, "change_color", ctx.Targets, ColorPayload{Colors: colors})
	}
	return tl
}

// ChangeBackColor books a backface color blend. Targets without a backface
// color at booking time are left untouched.
func (tl *Timeline) ChangeBackColor(c scene.RGB, opts ...Option) *Timeline {
	ctx, _, ok := tl.begin("change_backcolor", opts)
	if !ok {
		return tl
	}
	from := make([]*scene.RGB, len(ctx.Targets))
	for i, t := range ctx.Targets {
		if bc, has := t.BackColor(); has {
			start := bc
			from[i] = &start
		}
	}
	for _, t := range ctx.Times {
		colors := make([]*scene.RGB, len(from))
		for i := range from {
			if from[i] != nil {
				blended := from[i].Lerp(c, ctx.frac(t))
				colors[i] = &blended
			}
		}
		tl.push(t, "change_backcolor", ctx.Targets, BackColorPayload{Colors: colors})
	}
	return tl
}

// ChangeToWireframe switches the targets to wireframe representation at the
// start time.
func (tl *Timeline) ChangeToWireframe(opts ...Option) *Timeline {
	ctx, _, ok := tl.begin("change_to_wireframe", opts)
	if !ok {
		return tl
	}
	tl.push(ctx.Start, "change_to_wireframe", ctx.Targets, WireframePayload{On: true})
	return tl
}

// ChangeToSurface switches the targets to surface representation at the
// start time.
func (tl *Timeline) ChangeToSurface(opts ...Option) *Timeline {
	ctx, _, ok := tl.begin("change_to_surface", opts)
	if !ok {
		return tl
	}
	tl.push(ctx.Start, "change_to_surface", ctx.Targets, WireframePayload{On: false})
	return tl
}

// ChangeLineWidth books an edge width ramp from each target's current width
// to lw.
func (tl *Timeline) ChangeLineWidth(lw float64, opts ...Option) *Timeline {
	ctx, _, ok := tl.begin("change_line_width", opts)
	if !ok {
		return tl
	}
	from := make([]float64, len(ctx.Targets))
	for i, t := range ctx.Targets {
		from[i] = t.LineWidth()
	}
	for _, t := range ctx.Times {
		widths := make([]float64, len(from))
		for i := range from {
			widths[i] = lerp(from[i], lw, ctx.frac(t))
		}
		tl.push(t, "change_line_width", ctx.Targets, LineWidthPayload{Widths: widths})
	}
	return tl
}

// ChangeLineColor books an edge color blend from each target's current line
// color to c.
func (tl *Timeline) ChangeLineColor(c scene.RGB, opts ...Option) *Timeline {
	ctx, _, ok := tl.begin("change_line_color", opts)
	if !ok {
		return tl
	}
	from := make([]scene.RGB, len(ctx.Targets))
	for i, t := range ctx.Targets {
		from[i] = t.LineColor()
	}
	for _, t := range ctx.Times {
		colors := make([]scene.RGB, len(from))
		for i := range from {
			colors[i] = from[i].Lerp(c, ctx.frac(t))
		}
		tl.push(t, "change_line_color", ctx.Targets, LineColorPayload{Colors: colors})
	}
	return tl
}

// lightingStyles maps style names to (ambient, diffuse, specular,
// specular power) coefficients.
var lightingStyles = map[string]scene.Lighting{
	"metallic": {Ambient: 0.1, Diffuse: 0.3, Specular: 1.0, SpecularPower: 10},
	"plastic":  {Ambient: 0.3, Diffuse: 0.4, Specular: 0.3, SpecularPower: 5},
	"shiny":    {Ambient: 0.2, Diffuse: 0.6, Specular: 0.8, SpecularPower: 50},
	"glossy":   {Ambient: 0.1, Diffuse: 0.7, Specular: 0.9, SpecularPower: 90},
	"default":  {Ambient: 0.1, Diffuse: 1.0, Specular: 0.05, SpecularPower: 5},
}

// ChangeLighting books an interpolation of all four lighting coefficients
// from each target's current values to the named style. Unknown styles are
// a booking error.
func (tl *Timeline) ChangeLighting(style string, opts ...Option) *Timeline {
	target, known := lightingStyles[style]
	if !known {
		tl.fail("change_lighting", fmt.Errorf("%w: lighting style %q", ErrUnknownStyle, style))
		return tl
	}
	ctx, _, ok := tl.begin("change_lighting", opts)
	if !ok {
		return tl
	}
	from := make([]scene.Lighting, len(ctx.Targets))
	for i, t := range ctx.Targets {
		from[i] = t.Lighting()
	}
	for _, t := range ctx.Times {
		f := ctx.frac(t)
		coeffs := make([]scene.Lighting, len(from))
		for i, l := range from {
			coeffs[i] = scene.Lighting{
				Ambient:       lerp(l.Ambient, target.Ambient, f),
				Diffuse:       lerp(l.Diffuse, target.Diffuse, f),
				Specular:      lerp(l.Specular, target.Specular, f),
				SpecularPower: lerp(l.SpecularPower, target.SpecularPower, f),
			}
		}
		tl.push(t, "change_lighting", ctx.Targets, LightingPayload{Coeffs: coeffs})
	}
	return tl
}

// Move books a translation of a single object to pt. Style "quad" selects
// quadratic easing; the default is linear.
func (tl *Timeline) Move(pt scene.Vec3, opts ...Option) *Timeline {
	ctx, req, ok := tl.beginSingle("move", opts)
	if !ok {
		return tl
	}
	style := req.style
	if style == "" {
		style = "linear"
	}
	if style != "linear" && style != "quad" {
		tl.fail("move", fmt.Errorf("%w: move style %q", ErrUnknownStyle, style))
		return tl
	}
	cpos := ctx.Targets[0].Pos()
	n := float64(len(ctx.Times))
	dv := pt.Sub(cpos).Mul(1 / n)
	for j, t := range ctx.Times {
		i := float64(j + 1)
		step := i
		if style == "quad" {
			x := i / n
			step = i * x * x
		}
		tl.push(t, "move", ctx.Targets, MovePayload{Pos: cpos.Add(dv.Mul(step))})
	}
	return tl
}

// Rotate books a rotation of a single object around a world axis; the angle
// is split evenly across the samples and applied incrementally.
func (tl *Timeline) Rotate(axis scene.Axis, angle float64, opts ...Option) *Timeline {
	ctx, _, ok := tl.beginSingle("rotate", opts)
	if !ok {
		return tl
	}
	step := angle / float64(len(ctx.Times))
	for _, t := range ctx.Times {
		tl.push(t, "rotate", ctx.Targets, RotatePayload{Axis: axis, Angle: step})
	}
	return tl
}

// Scale books a uniform scale ramp from 1 to factor.
func (tl *Timeline) Scale(factor float64, opts ...Option) *Timeline {
	ctx, _, ok := tl.begin("scale", opts)
	if !ok {
		return tl
	}
	for _, t := range ctx.Times {
		tl.push(t, "scale", ctx.Targets, ScalePayload{Factor: lerp(1, factor, ctx.frac(t))})
	}
	return tl
}

// MeshErode books a progressive erosion of a single mesh: an inclusion
// radius grows from the given bounding-box corner (0-7) toward the far
// diagonal, and at each sample the point ids inside the radius are hidden.
// Samples with a non-positive radius or an empty or out-of-range point query
// are skipped with a warning.
func (tl *Timeline) MeshErode(corner int, opts ...Option) *Timeline {
	if corner < 0 || corner > 7 {
		tl.fail("mesh_erode", fmt.Errorf("corner index %d out of range [0,7]", corner))
		return tl
	}
	ctx, _, ok := tl.beginSingle("mesh_erode", opts)
	if !ok {
		return tl
	}
	g, isGeom := ctx.Targets[0].(scene.Geometry)
	if !isGeom {
		tl.fail("mesh_erode", fmt.Errorf("%w: %s", ErrNoGeometry, ctx.Targets[0].Name()))
		return tl
	}
	diag := g.DiagonalSize()
	pt := g.Bounds().Corner(corner)
	dmin := g.ClosestPointDistance(pt)
	for _, t := range ctx.Times {
		d := lerp(dmin, diag*1.01, ctx.frac(t))
		if d <= 0 {
			tl.log.Warn().Float64("t", t).Float64("radius", d).
				Msg("mesh_erode: skipping sample with non-positive radius")
			continue
		}
		ids := g.PointIDsWithinRadius(pt, d)
		if len(ids) == 0 || len(ids) > g.NPoints() {
			tl.log.Warn().Float64("t", t).Float64("radius", d).Int("points", len(ids)).
				Msg("mesh_erode: skipping sample with out-of-range point query")
			continue
		}
		tl.push(t, "mesh_erode", ctx.Targets, ErodePayload{IDs: ids})
	}
	return tl
}
