package anim

import "github.com/GHzytp/vedo/internal/scene"

// Event is one discrete, time-stamped application of a precomputed value to
// a set of target objects. Events are created during booking, immutable once
// created, and consumed in ascending time order during playback.
type Event struct {
	Time    float64
	Label   string
	Targets []scene.Object
	Payload Payload
}

// Payload is a precomputed transition value. Each transition type has its
// own variant so playback never inspects runtime shapes.
type Payload interface {
	Apply(targets []scene.Object)
}

// AlphaPayload sets one opacity on every target.
type AlphaPayload struct {
	Value float64
}

func (p AlphaPayload) Apply(targets []scene.Object) {
	for _, t := range targets {
		t.SetAlpha(p.Value)
	}
}

// ColorPayload carries one interpolated surface color per target.
type ColorPayload struct {
	Colors []scene.RGB
}

func (p ColorPayload) Apply(targets []scene.Object) {
	for i, t := range targets {
		if i < len(p.Colors) {
			t.SetColor(p.Colors[i])
		}
	}
}

// BackColorPayload carries one backface color per target; nil entries mark
// targets that had no backface color at booking time.
type BackColorPayload struct {
	Colors []*scene.RGB
}

func (p BackColorPayload) Apply(targets []scene.Object) {
	for i, t := range targets {
		if i < len(p.Colors) && p.Colors[i] != nil {
			t.SetBackColor(*p.Colors[i])
		}
	}
}

// WireframePayload toggles wireframe representation.
type WireframePayload struct {
	On bool
}

func (p WireframePayload) Apply(targets []scene.Object) {
	for _, t := range targets {
		t.SetWireframe(p.On)
	}
}

// LineWidthPayload carries one edge width per target.
type LineWidthPayload struct {
	Widths []float64
}

func (p LineWidthPayload) Apply(targets []scene.Object) {
	for i, t := range targets {
		if i < len(p.Widths) {
			t.SetLineWidth(p.Widths[i])
		}
	}
}

// LineColorPayload carries one edge color per target.
type LineColorPayload struct {
	Colors []scene.RGB
}

func (p LineColorPayload) Apply(targets []scene.Object) {
	for i, t := range targets {
		if i < len(p.Colors) {
			t.SetLineColor(p.Colors[i])
		}
	}
}

// LightingPayload carries interpolated lighting coefficients per target.
type LightingPayload struct {
	Coeffs []scene.Lighting
}

func (p LightingPayload) Apply(targets []scene.Object) {
	for i, t := range targets {
		if i < len(p.Coeffs) {
			t.SetLighting(p.Coeffs[i])
		}
	}
}

// MovePayload sets an absolute position on a single target.
type MovePayload struct {
	Pos scene.Vec3
}

func (p MovePayload) Apply(targets []scene.Object) {
	if len(targets) > 0 {
		targets[0].SetPos(p.Pos)
	}
}

// RotatePayload applies one incremental rotation step to a single target.
type RotatePayload struct {
	Axis  scene.Axis
	Angle float64
}

func (p RotatePayload) Apply(targets []scene.Object) {
	if len(targets) == 0 {
		return
	}
	switch p.Axis {
	case scene.AxisX:
		targets[0].RotateX(p.Angle)
	case scene.AxisY:
		targets[0].RotateY(p.Angle)
	case scene.AxisZ:
		targets[0].RotateZ(p.Angle)
	}
}

// ScalePayload sets an absolute uniform scale on every target.
type ScalePayload struct {
	Factor float64
}

func (p ScalePayload) Apply(targets []scene.Object) {
	for _, t := range targets {
		t.SetScale(p.Factor)
	}
}

// ErodePayload hides a precomputed set of point ids on a single target.
type ErodePayload struct {
	IDs []int
}

func (p ErodePayload) Apply(targets []scene.Object) {
	if len(targets) == 0 {
		return
	}
	if g, ok := targets[0].(scene.Geometry); ok {
		g.HidePoints(p.IDs)
	}
}
